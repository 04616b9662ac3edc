package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"thirdcoast.systems/tubescan/internal/analysis"
	"thirdcoast.systems/tubescan/pkg/utils/format"
)

// Sentinel errors surfaced to callers as request rejections.
var (
	ErrChannelNotFound = errors.New("channel not found")
	ErrVideoNotFound   = errors.New("video not found")
)

// playlistPageSize is the Data API maximum for playlistItems.list.
const playlistPageSize = 50

// Client wraps the YouTube Data API v3 for channel and video lookups.
type Client struct {
	svc *yt.Service
}

// NewClient builds a Data API client authenticated with an API key. The
// key is threaded in from configuration, never read from globals.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("youtube api key is required")
	}

	svc, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// Channel resolves a channel-like reference to its metadata. Handles and
// legacy aliases are resolved through search.list first.
func (c *Client) Channel(ctx context.Context, ref Reference) (analysis.ChannelMeta, error) {
	if !ref.IsChannel() {
		return analysis.ChannelMeta{}, fmt.Errorf("reference %q is not a channel", ref.Kind)
	}

	channelID := ref.ID
	if ref.Kind != RefChannelID {
		id, err := c.resolveChannelID(ctx, ref.ID)
		if err != nil {
			return analysis.ChannelMeta{}, err
		}
		channelID = id
	}

	return c.channelByID(ctx, channelID)
}

func (c *Client) channelByID(ctx context.Context, channelID string) (analysis.ChannelMeta, error) {
	resp, err := c.svc.Channels.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return analysis.ChannelMeta{}, fmt.Errorf("fetch channel %s: %w", channelID, err)
	}
	if len(resp.Items) == 0 {
		return analysis.ChannelMeta{}, ErrChannelNotFound
	}

	ch := resp.Items[0]
	meta := analysis.ChannelMeta{
		ID:          ch.Id,
		Title:       ch.Snippet.Title,
		Description: ch.Snippet.Description,
		CustomURL:   ch.Snippet.CustomUrl,
		PublishedAt: parseTimestamp(ch.Snippet.PublishedAt),
		Thumbnail:   thumbnailURL(ch.Snippet.Thumbnails),
	}
	if ch.Statistics != nil {
		meta.SubscriberCount = int64(ch.Statistics.SubscriberCount)
		meta.VideoCount = int64(ch.Statistics.VideoCount)
		meta.ViewCount = int64(ch.Statistics.ViewCount)
	}
	return meta, nil
}

// resolveChannelID finds the channel id behind a handle or legacy alias
// via search.list, mirroring how the web UI resolves those URLs.
func (c *Client) resolveChannelID(ctx context.Context, query string) (string, error) {
	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("search channel %q: %w", query, err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil || resp.Items[0].Snippet.ChannelId == "" {
		return "", ErrChannelNotFound
	}
	return resp.Items[0].Snippet.ChannelId, nil
}

// RecentVideos lists a channel's most recent uploads as enriched records.
// With onlyShorts set it keeps only Shorts, honoring the explicit #shorts
// tag in addition to the 60-second duration rule.
func (c *Client) RecentVideos(ctx context.Context, channelID string, maxResults int, onlyShorts bool) ([]analysis.VideoRecord, error) {
	uploadsID, err := c.uploadsPlaylistID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	playlist, err := c.svc.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(uploadsID).
		MaxResults(playlistPageSize).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list uploads playlist %s: %w", uploadsID, err)
	}

	ids := make([]string, 0, len(playlist.Items))
	for _, item := range playlist.Items {
		if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
			ids = append(ids, item.ContentDetails.VideoId)
		}
	}
	if len(ids) == 0 {
		return []analysis.VideoRecord{}, nil
	}

	details, err := c.svc.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetch video details: %w", err)
	}

	records := make([]analysis.VideoRecord, 0, len(details.Items))
	for _, item := range details.Items {
		if onlyShorts && !looksLikeShort(item) {
			continue
		}
		records = append(records, recordFromItem(item))
		if len(records) >= maxResults {
			break
		}
	}
	return records, nil
}

func (c *Client) uploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	resp, err := c.svc.Channels.List([]string{"contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("fetch channel %s: %w", channelID, err)
	}
	if len(resp.Items) == 0 {
		return "", ErrChannelNotFound
	}
	cd := resp.Items[0].ContentDetails
	if cd == nil || cd.RelatedPlaylists == nil || cd.RelatedPlaylists.Uploads == "" {
		return "", fmt.Errorf("channel %s has no uploads playlist", channelID)
	}
	return cd.RelatedPlaylists.Uploads, nil
}

// Video fetches a single video with its channel context and probes caption
// availability. The caption probe soft-fails: the captions endpoint needs
// extra authorization for many videos.
func (c *Client) Video(ctx context.Context, videoID string) (analysis.VideoInfo, error) {
	resp, err := c.svc.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return analysis.VideoInfo{}, fmt.Errorf("fetch video %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return analysis.VideoInfo{}, ErrVideoNotFound
	}

	item := resp.Items[0]
	record := recordFromItem(item)
	info := analysis.VideoInfo{
		VideoRecord:       record,
		ChannelID:         item.Snippet.ChannelId,
		ChannelTitle:      item.Snippet.ChannelTitle,
		CaptionsAvailable: c.captionsAvailable(ctx, videoID),
		DurationDisplay:   format.Duration(record.DurationSeconds),
	}
	return info, nil
}

func (c *Client) captionsAvailable(ctx context.Context, videoID string) bool {
	resp, err := c.svc.Captions.List([]string{"snippet"}, videoID).Context(ctx).Do()
	if err != nil {
		slog.Debug("caption availability check failed", "video_id", videoID, "error", err)
		return false
	}
	return len(resp.Items) > 0
}

func recordFromItem(item *yt.Video) analysis.VideoRecord {
	p := analysis.NewVideoRecordParams{ID: item.Id}
	if item.Snippet != nil {
		p.Title = item.Snippet.Title
		p.Description = item.Snippet.Description
		p.PublishedAt = parseTimestamp(item.Snippet.PublishedAt)
		p.Thumbnail = thumbnailURL(item.Snippet.Thumbnails)
	}
	if item.ContentDetails != nil {
		p.DurationSeconds = ParseISODuration(item.ContentDetails.Duration)
	}
	if item.Statistics != nil {
		p.ViewCount = int64(item.Statistics.ViewCount)
		p.LikeCount = int64(item.Statistics.LikeCount)
		p.CommentCount = int64(item.Statistics.CommentCount)
	}
	return analysis.NewVideoRecord(p)
}

// looksLikeShort applies the listing filter: duration at most 60 seconds,
// or an explicit shorts tag in the video's tags or description.
func looksLikeShort(item *yt.Video) bool {
	if item.ContentDetails != nil && IsShort(ParseISODuration(item.ContentDetails.Duration)) {
		return true
	}
	if item.Snippet == nil {
		return false
	}
	for _, tag := range item.Snippet.Tags {
		if strings.EqualFold(tag, "shorts") {
			return true
		}
	}
	return strings.Contains(strings.ToLower(item.Snippet.Description), "#shorts")
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func thumbnailURL(t *yt.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	switch {
	case t.High != nil:
		return t.High.Url
	case t.Medium != nil:
		return t.Medium.Url
	case t.Default != nil:
		return t.Default.Url
	}
	return ""
}
