package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleVideo(id string, views int64, durationSeconds int64, publishedAt time.Time) VideoRecord {
	return NewVideoRecord(NewVideoRecordParams{
		ID:              id,
		Title:           "Video " + id,
		Description:     "Description for " + id + " #shorts",
		PublishedAt:     publishedAt,
		ViewCount:       views,
		LikeCount:       views / 10,
		CommentCount:    views / 100,
		DurationSeconds: durationSeconds,
	})
}

func TestAggregateChannel_ContentMix(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		sampleVideo("a", 100, 30, base),
		sampleVideo("b", 200, 45, base.Add(-24*time.Hour)),
		sampleVideo("c", 300, 60, base.Add(-48*time.Hour)),
		sampleVideo("d", 400, 300, base.Add(-72*time.Hour)),
	}

	agg := AggregateChannel(ChannelMeta{ID: "ch"}, videos)

	require.Equal(t, 3, agg.ContentMix.ShortsCount)
	require.Equal(t, 1, agg.ContentMix.RegularCount)
	require.InDelta(t, 75.0, agg.ContentMix.ShortsPercent, 1e-9)
	require.InDelta(t, 25.0, agg.ContentMix.RegularPercent, 1e-9)
	require.True(t, agg.IsMainlyShorts)
}

func TestAggregateChannel_AverageViewsRounded(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		sampleVideo("a", 100, 30, base),
		sampleVideo("b", 101, 30, base.Add(-24*time.Hour)),
	}

	agg := AggregateChannel(ChannelMeta{ID: "ch"}, videos)
	require.Equal(t, int64(101), agg.AverageViews)
}

func TestAggregateChannel_UploadFrequencies(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		sampleVideo("a", 100, 30, base),
		sampleVideo("b", 100, 30, base.Add(-24*time.Hour)),
		sampleVideo("c", 100, 300, base.Add(-48*time.Hour)),
	}

	agg := AggregateChannel(ChannelMeta{ID: "ch"}, videos)
	require.Equal(t, "1.0 days", agg.Summary.UploadFrequency)
	require.Equal(t, "1.0 days", agg.Summary.ShortsFrequency)
}

func TestAggregateChannel_TopVideosSortedByViews(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		sampleVideo("low", 10, 30, base),
		sampleVideo("high", 1000, 30, base.Add(-24*time.Hour)),
		sampleVideo("mid", 500, 30, base.Add(-48*time.Hour)),
	}

	agg := AggregateChannel(ChannelMeta{ID: "ch"}, videos)
	require.Len(t, agg.TopVideos, 3)
	require.Equal(t, "high", agg.TopVideos[0].ID)
	require.Equal(t, "mid", agg.TopVideos[1].ID)
	require.Equal(t, "low", agg.TopVideos[2].ID)
}

func TestAggregateChannel_TopVideosCapped(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := make([]VideoRecord, 0, 15)
	for i := 0; i < 15; i++ {
		videos = append(videos, sampleVideo(string(rune('a'+i)), int64(i), 30, base.Add(-time.Duration(i)*24*time.Hour)))
	}

	agg := AggregateChannel(ChannelMeta{ID: "ch"}, videos)
	require.Len(t, agg.TopVideos, TopVideoCount)
	require.Len(t, agg.Videos, 15)
}

func TestAggregateChannel_EmptyInput(t *testing.T) {
	agg := AggregateChannel(ChannelMeta{ID: "ch"}, nil)

	require.Equal(t, "N/A", agg.Summary.UploadFrequency)
	require.Equal(t, "N/A", agg.Summary.ShortsFrequency)
	require.Empty(t, agg.Summary.PopularHashtags)
	require.Equal(t, int64(0), agg.AverageViews)
	require.Equal(t, "0%", agg.EngagementRate)
	require.False(t, agg.IsMainlyShorts)
	require.Equal(t, "0 - 0", agg.CommonFeatures.TitleLength.Range)
}

func TestAggregateChannel_PopularHashtags(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		sampleVideo("a", 100, 30, base),
		sampleVideo("b", 100, 30, base.Add(-24*time.Hour)),
	}

	agg := AggregateChannel(ChannelMeta{ID: "ch"}, videos)
	require.Contains(t, agg.Summary.PopularHashtags, "#shorts")
}

func TestLengthStats_AverageAndRange(t *testing.T) {
	stats := lengthStats([]int{10, 20, 33})
	require.Equal(t, 21, stats.Average)
	require.Equal(t, "10 - 33", stats.Range)
}

func TestCountStats_OneDecimalAverage(t *testing.T) {
	stats := countStats([]int{1, 2})
	require.InDelta(t, 1.5, stats.Average, 1e-9)
	require.Equal(t, "1 - 2", stats.Range)
}
