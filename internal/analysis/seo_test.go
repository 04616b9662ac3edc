package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func scoredVideo(title, description string, publishedAt time.Time, durationSeconds int64) VideoRecord {
	return NewVideoRecord(NewVideoRecordParams{
		ID:              "v",
		Title:           title,
		Description:     description,
		PublishedAt:     publishedAt,
		ViewCount:       1000,
		LikeCount:       50,
		CommentCount:    5,
		DurationSeconds: durationSeconds,
	})
}

func TestAnalyzeVideos_TitleTierShorts_Optimal(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		scoredVideo(strings.Repeat("a", 50), "", base, 30),
	}

	seo := AnalyzeVideos(videos, true)
	require.Equal(t, 50, seo.Title.AverageLength)
	require.InDelta(t, 5.0, seo.Title.Score, 1e-9)
}

func TestAnalyzeVideos_TitleTierShorts_JustOverOptimal(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		scoredVideo(strings.Repeat("a", 51), "", base, 30),
	}

	seo := AnalyzeVideos(videos, true)
	require.InDelta(t, 4.5, seo.Title.Score, 1e-9)
}

func TestAnalyzeVideos_TitleLengthInRunes(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		scoredVideo(strings.Repeat("한", 40), "", base, 30),
	}

	seo := AnalyzeVideos(videos, true)
	require.Equal(t, 40, seo.Title.AverageLength)
	require.InDelta(t, 5.0, seo.Title.Score, 1e-9)
}

func TestAnalyzeVideos_DescriptionTierRegular(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		scoredVideo("title", strings.Repeat("d", 200), base, 300),
	}

	seo := AnalyzeVideos(videos, false)
	require.InDelta(t, 5.0, seo.Description.Score, 1e-9)
}

func TestAnalyzeVideos_HashtagTier_NoneIsPenalized(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		scoredVideo("title without tags", "plain description", base, 30),
	}

	shorts := AnalyzeVideos(videos, true)
	require.InDelta(t, 2.0, shorts.Hashtags.Score, 1e-9)

	regular := AnalyzeVideos(videos, false)
	require.InDelta(t, 1.0, regular.Hashtags.Score, 1e-9)
}

func TestAnalyzeVideos_KeywordConsistencyRegular(t *testing.T) {
	// 5 docs, 0.4 support: a token must appear in ceil(2) = 2 documents.
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		scoredVideo("golang tutorial", "", base, 300),
		scoredVideo("golang tutorial", "", base.Add(-24*time.Hour), 300),
		scoredVideo("cooking pasta", "", base.Add(-48*time.Hour), 300),
		scoredVideo("gardening tips", "", base.Add(-72*time.Hour), 300),
		scoredVideo("travel blog", "", base.Add(-96*time.Hour), 300),
	}

	seo := AnalyzeVideos(videos, false)
	require.Equal(t, 2, seo.Keywords.ConsistentKeywords)
	require.InDelta(t, 3.0, seo.Keywords.Score, 1e-9)
}

func TestAnalyzeVideos_KeywordTopKeywords(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		scoredVideo("golang tutorial", "", base, 300),
		scoredVideo("golang tutorial", "", base.Add(-24*time.Hour), 300),
		scoredVideo("cooking pasta", "", base.Add(-48*time.Hour), 300),
	}

	seo := AnalyzeVideos(videos, false)
	require.NotEmpty(t, seo.Keywords.TopKeywords)
	require.Equal(t, "golang", seo.Keywords.TopKeywords[0])
	require.Equal(t, "tutorial", seo.Keywords.TopKeywords[1])
	require.Contains(t, seo.Keywords.TopKeywords, "cooking")
}

func TestAnalyzeVideos_UploadStrategy_DailyConsistent(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		scoredVideo("one", "", base, 30),
		scoredVideo("two", "", base.Add(-24*time.Hour), 30),
		scoredVideo("three", "", base.Add(-48*time.Hour), 30),
	}

	seo := AnalyzeVideos(videos, true)
	require.InDelta(t, 1.0, seo.Upload.AverageIntervalDays, 1e-9)
	require.InDelta(t, 5.0, seo.Upload.Score, 1e-9)
	require.Equal(t, "1.0 days", seo.Upload.Frequency)
}

func TestAnalyzeVideos_UploadStrategy_TooFewUploads(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		scoredVideo("one", "", base, 30),
		scoredVideo("two", "", base.Add(-24*time.Hour), 30),
	}

	seo := AnalyzeVideos(videos, true)
	require.InDelta(t, NeutralScore, seo.Upload.Score, 1e-9)
	require.Equal(t, "1.0 days", seo.Upload.Frequency)
}

func TestAnalyzeVideos_UploadStrategy_IrregularGetsNoBonus(t *testing.T) {
	// Gaps of 7 and 21 days: mean 14 (base 3.5), stddev 7 (modifier 0).
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{
		scoredVideo("one", "", base, 30),
		scoredVideo("two", "", base.Add(-7*24*time.Hour), 30),
		scoredVideo("three", "", base.Add(-28*24*time.Hour), 30),
	}

	seo := AnalyzeVideos(videos, true)
	require.InDelta(t, 14.0, seo.Upload.AverageIntervalDays, 1e-9)
	require.InDelta(t, 3.5, seo.Upload.Score, 1e-9)
}

func TestAnalyzeSingleVideo_NeutralDefaults(t *testing.T) {
	v := scoredVideo(strings.Repeat("a", 40), "short description here for a video", time.Now(), 30)

	seo := AnalyzeSingleVideo(v)
	require.InDelta(t, NeutralScore, seo.Keywords.Score, 1e-9)
	require.InDelta(t, NeutralScore, seo.Upload.Score, 1e-9)
	require.NotEmpty(t, seo.Keywords.Recommendation)
	require.NotEmpty(t, seo.Upload.Recommendation)
	require.Equal(t, "N/A", seo.Upload.Frequency)
	require.Contains(t, seo.Keywords.TopKeywords, "short")
}

func TestOverallScore_MeanRoundedToOneDecimal(t *testing.T) {
	require.InDelta(t, 3.0, overallScore(5, 4, 3, 2, 1), 1e-9)
	require.InDelta(t, 4.9, overallScore(5, 5, 5, 5, 4.5), 1e-9)
}

func TestNewChannelResult_FullyOptimizedShortsChannel(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := make([]VideoRecord, 0, 10)
	for i := 0; i < 10; i++ {
		videos = append(videos, scoredVideo(
			"amazing golang tutorial series episode",
			"daily coding content #golang #tutorial #shorts #dev",
			base.Add(-time.Duration(i)*24*time.Hour),
			30,
		))
	}

	result := NewChannelResult(ChannelMeta{ID: "ch", Title: "Channel"}, videos, false)

	require.Equal(t, ResultChannel, result.Type)
	require.True(t, result.IsMainlyShorts)
	require.InDelta(t, 5.0, result.Seo.Title.Score, 1e-9)
	require.InDelta(t, 5.0, result.Seo.Description.Score, 1e-9)
	require.InDelta(t, 5.0, result.Seo.Hashtags.Score, 1e-9)
	require.InDelta(t, 5.0, result.Seo.Keywords.Score, 1e-9)
	require.InDelta(t, 5.0, result.Seo.Upload.Score, 1e-9)
	require.InDelta(t, 5.0, result.Seo.OverallScore, 1e-9)
}

func TestNewChannelResult_ShortsScopedType(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []VideoRecord{scoredVideo("one", "", base, 30)}

	result := NewChannelResult(ChannelMeta{ID: "ch"}, videos, true)
	require.Equal(t, ResultChannelShorts, result.Type)
}

func TestNewVideoResult_SetsEngagementAndType(t *testing.T) {
	info := VideoInfo{
		VideoRecord:  scoredVideo(strings.Repeat("a", 40), "description", time.Now(), 30),
		ChannelID:    "ch",
		ChannelTitle: "Channel",
	}

	result := NewVideoResult(info)
	require.Equal(t, ResultShorts, result.Type)
	require.Equal(t, "5.50%", result.Video.EngagementRate)
	require.InDelta(t, NeutralScore, result.Seo.Keywords.Score, 1e-9)
}
