package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"
	"unicode/utf8"
)

const (
	// TopVideoCount is the size of the top-performing subset that common
	// features and the performance list are computed over.
	TopVideoCount = 10
	// PopularHashtagsMax caps the channel-wide popular hashtag list.
	PopularHashtagsMax = 8
)

// ChannelMeta is the raw channel metadata from the data source.
type ChannelMeta struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CustomURL       string    `json:"customUrl,omitempty"`
	PublishedAt     time.Time `json:"publishedAt"`
	SubscriberCount int64     `json:"subscriberCount"`
	VideoCount      int64     `json:"videoCount"`
	ViewCount       int64     `json:"viewCount"`
	Thumbnail       string    `json:"thumbnail,omitempty"`
}

// ChannelSummary is the channel metadata plus derived upload statistics.
type ChannelSummary struct {
	ChannelMeta
	UploadFrequency string   `json:"uploadFrequency"`
	ShortsFrequency string   `json:"shortsFrequency"`
	PopularHashtags []string `json:"popularHashtags"`
}

// ContentMix describes the Shorts vs regular split of the sampled videos.
// Percentages are computed against the sampled set, not the channel's
// lifetime video count, so they always sum to 100.
type ContentMix struct {
	ShortsCount    int     `json:"shortsCount"`
	RegularCount   int     `json:"regularCount"`
	ShortsPercent  float64 `json:"shortsPercent"`
	RegularPercent float64 `json:"regularPercent"`
}

// LengthStats summarizes a character-length distribution.
type LengthStats struct {
	Average int    `json:"average"`
	Range   string `json:"range"`
}

// CountStats summarizes a per-video count distribution with one decimal.
type CountStats struct {
	Average float64 `json:"average"`
	Range   string  `json:"range"`
}

// CommonFeatures is a read-only snapshot over the top-performing videos.
type CommonFeatures struct {
	TitleLength       LengthStats `json:"titleLength"`
	DescriptionLength LengthStats `json:"descriptionLength"`
	HashtagCount      CountStats  `json:"hashtagCount"`
	CommonWords       []string    `json:"commonWords"`
	CommonHashtags    []string    `json:"commonHashtags"`
}

// ChannelAggregate is the full cross-video aggregation for one channel.
type ChannelAggregate struct {
	Summary        ChannelSummary `json:"channelInfo"`
	Videos         []VideoRecord  `json:"videos"`
	ContentMix     ContentMix     `json:"contentMix"`
	AverageViews   int64          `json:"averageViews"`
	EngagementRate string         `json:"engagementRate"`
	TopVideos      []VideoRecord  `json:"topVideos"`
	CommonFeatures CommonFeatures `json:"commonFeatures"`
	IsMainlyShorts bool           `json:"isMainlyShorts"`
}

// AggregateChannel derives the channel-level statistics from its sampled
// videos. Videos must already be enriched (duration classified, hashtags
// extracted). Empty input degrades to zeros and "N/A" frequencies.
func AggregateChannel(meta ChannelMeta, videos []VideoRecord) ChannelAggregate {
	shortsCount := 0
	var totalViews, totalLikes, totalComments int64
	uploadTimes := make([]time.Time, 0, len(videos))
	shortsTimes := make([]time.Time, 0, len(videos))
	hashtagSets := make([][]string, 0, len(videos))

	for _, v := range videos {
		if v.IsShort {
			shortsCount++
			shortsTimes = append(shortsTimes, v.PublishedAt)
		}
		totalViews += v.ViewCount
		totalLikes += v.LikeCount
		totalComments += v.CommentCount
		uploadTimes = append(uploadTimes, v.PublishedAt)
		hashtagSets = append(hashtagSets, v.Hashtags)
	}

	total := len(videos)
	regularCount := total - shortsCount

	mix := ContentMix{ShortsCount: shortsCount, RegularCount: regularCount}
	if total > 0 {
		mix.ShortsPercent = float64(shortsCount) / float64(total) * 100
		mix.RegularPercent = float64(regularCount) / float64(total) * 100
	}

	var avgViews int64
	if total > 0 {
		avgViews = int64(math.Round(float64(totalViews) / float64(total)))
	}

	top := topByViews(videos, TopVideoCount)

	return ChannelAggregate{
		Summary: ChannelSummary{
			ChannelMeta:     meta,
			UploadFrequency: EstimateCadence(uploadTimes),
			ShortsFrequency: EstimateCadence(shortsTimes),
			PopularHashtags: popularHashtags(hashtagSets),
		},
		Videos:         videos,
		ContentMix:     mix,
		AverageViews:   avgViews,
		EngagementRate: EngagementRate(totalViews, totalLikes, totalComments),
		TopVideos:      top,
		CommonFeatures: commonFeatures(top),
		IsMainlyShorts: total > 0 && float64(shortsCount)/float64(total) >= 0.5,
	}
}

// topByViews returns the n most viewed videos, ties kept in original order.
func topByViews(videos []VideoRecord, n int) []VideoRecord {
	sorted := make([]VideoRecord, len(videos))
	copy(sorted, videos)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ViewCount > sorted[j].ViewCount })
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// popularHashtags ranks hashtags by how many videos use them.
func popularHashtags(hashtagSets [][]string) []string {
	return ExtractCommonHashtags(hashtagSets, 0, PopularHashtagsMax)
}

func commonFeatures(top []VideoRecord) CommonFeatures {
	titleLengths := make([]int, 0, len(top))
	descLengths := make([]int, 0, len(top))
	hashtagCounts := make([]int, 0, len(top))
	docs := make([]string, 0, len(top))
	hashtagSets := make([][]string, 0, len(top))

	for _, v := range top {
		titleLengths = append(titleLengths, utf8.RuneCountInString(v.Title))
		descLengths = append(descLengths, utf8.RuneCountInString(v.Description))
		hashtagCounts = append(hashtagCounts, len(v.Hashtags))
		docs = append(docs, v.Title+" "+v.Description)
		hashtagSets = append(hashtagSets, v.Hashtags)
	}

	return CommonFeatures{
		TitleLength:       lengthStats(titleLengths),
		DescriptionLength: lengthStats(descLengths),
		HashtagCount:      countStats(hashtagCounts),
		CommonWords:       ExtractCommonWords(docs, CommonWordSupport, CommonTopK),
		CommonHashtags:    ExtractCommonHashtags(hashtagSets, CommonHashtagSupport, CommonTopK),
	}
}

func lengthStats(values []int) LengthStats {
	if len(values) == 0 {
		return LengthStats{Range: "0 - 0"}
	}
	minV, maxV, sum := values[0], values[0], 0
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
		sum += v
	}
	return LengthStats{
		Average: int(math.Round(float64(sum) / float64(len(values)))),
		Range:   fmt.Sprintf("%d - %d", minV, maxV),
	}
}

func countStats(values []int) CountStats {
	if len(values) == 0 {
		return CountStats{Range: "0 - 0"}
	}
	minV, maxV, sum := values[0], values[0], 0
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
		sum += v
	}
	return CountStats{
		Average: round1(float64(sum) / float64(len(values))),
		Range:   fmt.Sprintf("%d - %d", minV, maxV),
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
