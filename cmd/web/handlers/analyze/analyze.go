package analyze

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/tubescan/cmd/web/handlers/common"
	"thirdcoast.systems/tubescan/internal/analysis"
	"thirdcoast.systems/tubescan/internal/db"
	"thirdcoast.systems/tubescan/internal/youtube"
	"thirdcoast.systems/tubescan/pkg/utils/format"
)

// channelSampleSize is how many recent uploads feed a channel analysis.
const channelSampleSize = 20

type analyzeRequest struct {
	URL string `json:"url"`
}

type analyzeResponse struct {
	ID     string          `json:"id,omitempty"`
	Result json.RawMessage `json:"result"`
}

// HandleAnalyze accepts a YouTube URL, runs the matching channel or video
// analysis and persists the result before returning it.
func HandleAnalyze(dbc *db.DatabaseConnection, yt *youtube.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req analyzeRequest
		if err := c.Bind(&req); err != nil {
			return common.ErrBadRequest("invalid request body")
		}
		if strings.TrimSpace(req.URL) == "" {
			return common.ErrBadRequest("url is required")
		}

		ref, err := youtube.ParseReference(req.URL)
		if err != nil {
			return common.ErrBadRequest(err.Error())
		}

		ctx := c.Request().Context()

		var (
			youtubeID  string
			resultType analysis.ResultType
			result     any
		)
		if ref.IsChannel() {
			meta, err := yt.Channel(ctx, ref)
			if err != nil {
				return mapLookupErr(err)
			}
			videos, err := yt.RecentVideos(ctx, meta.ID, channelSampleSize, ref.ShortsScoped)
			if err != nil {
				return mapLookupErr(err)
			}
			channelResult := analysis.NewChannelResult(meta, videos, ref.ShortsScoped)
			slog.Info("channel analyzed",
				"channel", meta.Title,
				"videos", len(videos),
				"avg_views", format.Number(channelResult.AverageViews))
			youtubeID = meta.ID
			resultType = channelResult.Type
			result = channelResult
		} else {
			info, err := yt.Video(ctx, ref.ID)
			if err != nil {
				return mapLookupErr(err)
			}
			videoResult := analysis.NewVideoResult(info)
			slog.Info("video analyzed", "title", format.Truncate(info.Title, 60))
			youtubeID = info.ID
			resultType = videoResult.Type
			result = videoResult
		}

		body, err := json.Marshal(result)
		if err != nil {
			return common.ErrInternal("failed to encode analysis result")
		}

		resp := analyzeResponse{Result: body}

		// Persistence is best effort: a storage hiccup should not cost the
		// caller an analysis they already paid API quota for.
		saved, err := dbc.InsertAnalysis(ctx, db.NewAnalysisParams{
			YouTubeID:  youtubeID,
			URL:        req.URL,
			ResultType: string(resultType),
			Result:     body,
		})
		if err != nil {
			slog.Error("failed to persist analysis", "youtube_id", youtubeID, "error", err)
		} else {
			resp.ID = uuidString(saved.ID)
		}

		return c.JSON(http.StatusOK, resp)
	}
}

func mapLookupErr(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, youtube.ErrChannelNotFound):
		return common.ErrNotFound("channel not found")
	case errors.Is(err, youtube.ErrVideoNotFound):
		return common.ErrNotFound("video not found")
	default:
		slog.Error("youtube lookup failed", "error", err)
		return common.ErrBadGateway("youtube api request failed")
	}
}
