package analysis

import "time"

// ShortMaxSeconds is the duration cutoff for classifying a video as a Short.
const ShortMaxSeconds = 60

// VideoRecord is an enriched snapshot of a single video. It is built once
// from a raw API item and never mutated afterwards; the aggregator and the
// SEO scorer only read it.
type VideoRecord struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PublishedAt     time.Time `json:"publishedAt"`
	ViewCount       int64     `json:"viewCount"`
	LikeCount       int64     `json:"likeCount"`
	CommentCount    int64     `json:"commentCount"`
	DurationSeconds int64     `json:"duration"`
	IsShort         bool      `json:"isShort"`
	Hashtags        []string  `json:"hashtags"`
	Thumbnail       string    `json:"thumbnail,omitempty"`
}

// NewVideoRecordParams carries the raw per-video fields coming from the data
// source. Duration must already be parsed to seconds.
type NewVideoRecordParams struct {
	ID              string
	Title           string
	Description     string
	PublishedAt     time.Time
	ViewCount       int64
	LikeCount       int64
	CommentCount    int64
	DurationSeconds int64
	Thumbnail       string
}

// NewVideoRecord enriches a raw video item: classifies it as a Short when
// its duration is at most 60 seconds and extracts hashtags from the title
// and description.
func NewVideoRecord(p NewVideoRecordParams) VideoRecord {
	return VideoRecord{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		PublishedAt:     p.PublishedAt,
		ViewCount:       p.ViewCount,
		LikeCount:       p.LikeCount,
		CommentCount:    p.CommentCount,
		DurationSeconds: p.DurationSeconds,
		IsShort:         p.DurationSeconds <= ShortMaxSeconds,
		Hashtags:        ExtractHashtags(p.Title + " " + p.Description),
		Thumbnail:       p.Thumbnail,
	}
}
