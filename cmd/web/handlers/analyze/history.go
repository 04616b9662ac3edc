package analyze

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"

	"thirdcoast.systems/tubescan/cmd/web/handlers/common"
	"thirdcoast.systems/tubescan/internal/db"
)

const (
	historyDefaultLimit = 10
	historyMaxLimit     = 50
)

type historyEntry struct {
	ID        string    `json:"id"`
	YouTubeID string    `json:"youtubeId"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

type historyDetail struct {
	historyEntry
	Result json.RawMessage `json:"result"`
}

// HandleHistory lists recent analyses, newest first, without their result
// payloads. With ?youtubeId= it instead returns the latest stored analysis
// for that channel or video, payload included.
func HandleHistory(dbc *db.DatabaseConnection) echo.HandlerFunc {
	return func(c echo.Context) error {
		if youtubeID := c.QueryParam("youtubeId"); youtubeID != "" {
			a, err := dbc.LatestAnalysisByYouTubeID(c.Request().Context(), youtubeID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return common.ErrNotFound("no analysis for this id")
				}
				return common.ErrInternal("failed to fetch analysis")
			}
			return c.JSON(http.StatusOK, historyDetail{
				historyEntry: entryFromAnalysis(a),
				Result:       a.Result,
			})
		}

		limit := historyDefaultLimit
		if raw := c.QueryParam("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				return common.ErrBadRequest("limit must be a positive integer")
			}
			limit = min(parsed, historyMaxLimit)
		}

		analyses, err := dbc.ListRecentAnalyses(c.Request().Context(), limit)
		if err != nil {
			return common.ErrInternal("failed to list analyses")
		}

		entries := make([]historyEntry, 0, len(analyses))
		for _, a := range analyses {
			entries = append(entries, entryFromAnalysis(a))
		}
		return c.JSON(http.StatusOK, entries)
	}
}

// HandleHistoryDetail fetches one stored analysis, result payload included.
func HandleHistoryDetail(dbc *db.DatabaseConnection) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseAnalysisID(c.Param("id"))
		if err != nil {
			return common.ErrBadRequest("invalid analysis id")
		}

		a, err := dbc.GetAnalysis(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return common.ErrNotFound("analysis not found")
			}
			return common.ErrInternal("failed to fetch analysis")
		}

		return c.JSON(http.StatusOK, historyDetail{
			historyEntry: entryFromAnalysis(a),
			Result:       a.Result,
		})
	}
}

func entryFromAnalysis(a *db.Analysis) historyEntry {
	return historyEntry{
		ID:        uuidString(a.ID),
		YouTubeID: a.YouTubeID,
		URL:       a.URL,
		Type:      a.ResultType,
		CreatedAt: a.CreatedAt.Time,
	}
}

func parseAnalysisID(raw string) (pgtype.UUID, error) {
	var id pgtype.UUID
	if err := id.Scan(raw); err != nil {
		return pgtype.UUID{}, err
	}
	return id, nil
}

func uuidString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	b := id.Bytes
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
