package analysis

import (
	"time"
	"unicode/utf8"
)

// NeutralScore is used when the sample carries no distributional signal
// (single video, too few timestamps).
const NeutralScore = 3.0

// Keyword-consistency support thresholds. Shorts channels tolerate more
// topical variance, so their threshold is lower.
const (
	keywordSupportShorts  = 0.3
	keywordSupportRegular = 0.4
)

// TitleScoreDetail, DescriptionScoreDetail etc. pair a sub-score with the
// aggregate it was derived from and a short recommendation.
type TitleScoreDetail struct {
	AverageLength  int     `json:"averageLength"`
	Recommendation string  `json:"recommendation"`
	Score          float64 `json:"score"`
}

type DescriptionScoreDetail struct {
	AverageLength  int     `json:"averageLength"`
	Recommendation string  `json:"recommendation"`
	Score          float64 `json:"score"`
}

type HashtagScoreDetail struct {
	AverageCount   float64 `json:"averageCount"`
	Recommendation string  `json:"recommendation"`
	Score          float64 `json:"score"`
}

type KeywordScoreDetail struct {
	ConsistentKeywords int      `json:"consistentKeywords"`
	TopKeywords        []string `json:"topKeywords"`
	Recommendation     string   `json:"recommendation"`
	Score              float64  `json:"score"`
}

type UploadScoreDetail struct {
	Frequency           string  `json:"frequency"`
	AverageIntervalDays float64 `json:"averageIntervalDays"`
	Recommendation      string  `json:"recommendation"`
	Score               float64 `json:"score"`
}

// SeoAnalysis is the five-dimension SEO breakdown plus the overall score.
// Every score is in [0, 5]; the overall score is the unweighted mean of
// the five sub-scores rounded to one decimal.
type SeoAnalysis struct {
	Title        TitleScoreDetail       `json:"titleOptimization"`
	Description  DescriptionScoreDetail `json:"descriptionOptimization"`
	Hashtags     HashtagScoreDetail     `json:"hashtagUsage"`
	Keywords     KeywordScoreDetail     `json:"keywordConsistency"`
	Upload       UploadScoreDetail      `json:"uploadStrategy"`
	OverallScore float64                `json:"overallScore"`
}

// AnalyzeVideos scores a set of enriched videos. isShorts selects the
// Shorts tier tables; callers pass the aggregator's IsMainlyShorts flag.
func AnalyzeVideos(videos []VideoRecord, isShorts bool) SeoAnalysis {
	titleLengths := make([]int, 0, len(videos))
	descLengths := make([]int, 0, len(videos))
	hashtagCounts := make([]int, 0, len(videos))
	docs := make([]string, 0, len(videos))
	timestamps := make([]time.Time, 0, len(videos))

	for _, v := range videos {
		titleLengths = append(titleLengths, utf8.RuneCountInString(v.Title))
		descLengths = append(descLengths, utf8.RuneCountInString(v.Description))
		hashtagCounts = append(hashtagCounts, len(v.Hashtags))
		docs = append(docs, v.Title+" "+v.Description)
		timestamps = append(timestamps, v.PublishedAt)
	}

	title := scoreTitle(titleLengths, isShorts)
	desc := scoreDescription(descLengths, isShorts)
	tags := scoreHashtags(hashtagCounts, isShorts)
	keywords := scoreKeywordConsistency(docs, isShorts)
	upload := scoreUploadStrategy(timestamps)

	return SeoAnalysis{
		Title:        title,
		Description:  desc,
		Hashtags:     tags,
		Keywords:     keywords,
		Upload:       upload,
		OverallScore: overallScore(title.Score, desc.Score, tags.Score, keywords.Score, upload.Score),
	}
}

// AnalyzeSingleVideo scores one video. Keyword consistency and upload
// strategy default to the neutral score: a single document or timestamp
// carries no distributional signal.
func AnalyzeSingleVideo(v VideoRecord) SeoAnalysis {
	title := scoreTitle([]int{utf8.RuneCountInString(v.Title)}, v.IsShort)
	desc := scoreDescription([]int{utf8.RuneCountInString(v.Description)}, v.IsShort)
	tags := scoreHashtags([]int{len(v.Hashtags)}, v.IsShort)
	keywords := KeywordScoreDetail{
		TopKeywords:    ExtractTopKeywords([]string{v.Title + " " + v.Description}, TopKeywordsK),
		Recommendation: "Not enough videos to measure keyword consistency.",
		Score:          NeutralScore,
	}
	upload := UploadScoreDetail{
		Frequency:      CadenceUnknown,
		Recommendation: "Not enough uploads to evaluate an upload schedule.",
		Score:          NeutralScore,
	}

	return SeoAnalysis{
		Title:        title,
		Description:  desc,
		Hashtags:     tags,
		Keywords:     keywords,
		Upload:       upload,
		OverallScore: overallScore(title.Score, desc.Score, tags.Score, keywords.Score, upload.Score),
	}
}

func overallScore(scores ...float64) float64 {
	return round1(mean(scores))
}

func averageInt(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func scoreTitle(lengths []int, isShorts bool) TitleScoreDetail {
	l := averageInt(lengths)

	var score float64
	if isShorts {
		switch {
		case l >= 30 && l <= 50:
			score = 5.0
		case (l >= 25 && l < 30) || (l > 50 && l <= 55):
			score = 4.5
		case (l >= 20 && l < 25) || (l > 55 && l <= 60):
			score = 4.0
		case (l >= 15 && l < 20) || (l > 60 && l <= 70):
			score = 3.5
		case (l >= 10 && l < 15) || (l > 70 && l <= 80):
			score = 3.0
		default:
			score = 2.0
		}
	} else {
		switch {
		case l >= 60 && l <= 70:
			score = 5.0
		case l >= 50 && l < 60:
			score = 4.5
		case l > 70 && l <= 80:
			score = 4.0
		case l >= 40 && l < 50:
			score = 3.5
		case l > 80 && l <= 90:
			score = 3.0
		case l >= 30 && l < 40:
			score = 2.5
		case l > 90 && l <= 100:
			score = 2.0
		case l >= 20 && l < 30:
			score = 1.5
		case l > 100:
			score = 1.0
		default:
			score = 0.5
		}
	}

	return TitleScoreDetail{
		AverageLength:  int(l),
		Recommendation: titleRecommendation(l, isShorts),
		Score:          score,
	}
}

func titleRecommendation(l float64, isShorts bool) string {
	if isShorts {
		switch {
		case l >= 30 && l <= 50:
			return "Title length is well-optimized for Shorts."
		case l < 30:
			return "Titles are too short; aim for 30-50 characters so the topic is clear in the feed."
		default:
			return "Titles are too long for Shorts; keep them within 50 characters to avoid truncation."
		}
	}
	switch {
	case l >= 60 && l <= 70:
		return "Title length is well-optimized for search results."
	case l < 60:
		return "Titles are too short; 60-70 characters leave room for searchable keywords."
	default:
		return "Titles are too long and will be truncated in search results; target 60-70 characters."
	}
}

func scoreDescription(lengths []int, isShorts bool) DescriptionScoreDetail {
	l := averageInt(lengths)

	var score float64
	if isShorts {
		switch {
		case l >= 30 && l <= 100:
			score = 5.0
		case l > 100 && l <= 150:
			score = 4.5
		case l > 150 && l <= 200:
			score = 4.0
		case l > 0 && l < 30:
			score = 3.5
		case l > 200:
			score = 3.0
		default:
			score = 2.0
		}
	} else {
		switch {
		case l >= 200:
			score = 5.0
		case l >= 150:
			score = 4.0
		case l >= 100:
			score = 3.0
		case l >= 50:
			score = 2.0
		case l >= 20:
			score = 1.0
		default:
			score = 0.5
		}
	}

	return DescriptionScoreDetail{
		AverageLength:  int(l),
		Recommendation: descriptionRecommendation(l, isShorts),
		Score:          score,
	}
}

func descriptionRecommendation(l float64, isShorts bool) string {
	if isShorts {
		switch {
		case l == 0:
			return "Descriptions are empty; even a short description with hashtags helps discovery."
		case l < 30:
			return "Descriptions are too short; 30-100 characters is the sweet spot for Shorts."
		case l <= 100:
			return "Description length is well-optimized for Shorts."
		default:
			return "Descriptions are too long for Shorts; viewers rarely expand them past 100 characters."
		}
	}
	switch {
	case l >= 200:
		return "Description length is well-optimized; keywords early in the text carry the most weight."
	case l < 20:
		return "Descriptions are nearly empty; write at least 200 characters with relevant keywords."
	default:
		return "Descriptions are too short; aim for 200+ characters to give search more context."
	}
}

func scoreHashtags(counts []int, isShorts bool) HashtagScoreDetail {
	c := averageInt(counts)

	var score float64
	if isShorts {
		switch {
		case c >= 3 && c <= 5:
			score = 5.0
		case c > 5 && c <= 7:
			score = 4.5
		case c >= 2 && c < 3:
			score = 4.0
		case c > 0 && c < 2:
			score = 3.5
		case c > 7 && c <= 10:
			score = 3.0
		case c > 10:
			score = 2.5
		default:
			score = 2.0
		}
	} else {
		switch {
		case c >= 3 && c <= 5:
			score = 5.0
		case c > 5 && c <= 7:
			score = 4.0
		case c > 0 && c < 3:
			score = 3.5
		case c > 7 && c <= 10:
			score = 3.0
		case c > 10:
			score = 2.0
		default:
			score = 1.0
		}
	}

	return HashtagScoreDetail{
		AverageCount:   round1(c),
		Recommendation: hashtagRecommendation(c, isShorts),
		Score:          score,
	}
}

func hashtagRecommendation(c float64, isShorts bool) string {
	switch {
	case c == 0:
		if isShorts {
			return "No hashtags found; add 3-5 including #shorts to surface in the Shorts feed."
		}
		return "No hashtags found; add 3-5 relevant hashtags to improve discoverability."
	case c >= 3 && c <= 5:
		return "Hashtag usage is well-optimized."
	case c < 3:
		return "Too few hashtags; 3-5 relevant hashtags perform best."
	default:
		return "Too many hashtags dilute relevance; trim down to the 3-5 strongest."
	}
}

func scoreKeywordConsistency(docs []string, isShorts bool) KeywordScoreDetail {
	support := keywordSupportRegular
	if isShorts {
		support = keywordSupportShorts
	}
	count := CommonWordCount(docs, support)

	var score float64
	switch {
	case count >= 5:
		score = 5.0
	case count == 4:
		score = 4.5
	case count == 3:
		score = 4.0
	case count == 2:
		score = 3.0
	case count == 1:
		score = 2.0
	default:
		score = 1.0
	}

	return KeywordScoreDetail{
		ConsistentKeywords: count,
		TopKeywords:        ExtractTopKeywords(docs, TopKeywordsK),
		Recommendation:     keywordRecommendation(count),
		Score:              score,
	}
}

func keywordRecommendation(count int) string {
	switch {
	case count >= 5:
		return "Strong keyword consistency; titles and descriptions share a clear vocabulary."
	case count >= 3:
		return "Decent keyword consistency; repeating a few more core terms would strengthen the channel theme."
	case count >= 1:
		return "Weak keyword consistency; reuse the channel's core topic words across titles and descriptions."
	default:
		return "No recurring keywords found; settle on a topic vocabulary and repeat it across videos."
	}
}

func scoreUploadStrategy(timestamps []time.Time) UploadScoreDetail {
	if len(timestamps) < 3 {
		return UploadScoreDetail{
			Frequency:      EstimateCadence(timestamps),
			Recommendation: "Not enough uploads to evaluate an upload schedule.",
			Score:          NeutralScore,
		}
	}

	gaps := uploadGapsDays(timestamps)
	avgInterval := mean(gaps)
	deviation := stdDev(gaps)

	var base float64
	switch {
	case avgInterval <= 1:
		base = 5.0
	case avgInterval <= 3:
		base = 4.5
	case avgInterval <= 7:
		base = 4.0
	case avgInterval <= 10:
		base = 3.8
	case avgInterval <= 14:
		base = 3.5
	case avgInterval <= 21:
		base = 3.0
	case avgInterval <= 30:
		base = 2.5
	default:
		base = 2.0
	}

	var modifier float64
	switch {
	case deviation <= 0.5:
		modifier = 1.0
	case deviation <= 1:
		modifier = 0.5
	case deviation <= 2:
		modifier = 0.3
	case deviation <= 3:
		modifier = 0.2
	case deviation <= 5:
		modifier = 0.1
	case deviation <= 10:
		modifier = 0
	case deviation <= 15:
		modifier = -0.1
	default:
		modifier = -0.2
	}

	score := base + modifier
	if score > 5 {
		score = 5
	}
	if score < 1 {
		score = 1
	}

	return UploadScoreDetail{
		Frequency:           EstimateCadence(timestamps),
		AverageIntervalDays: round1(avgInterval),
		Recommendation:      uploadRecommendation(avgInterval, deviation),
		Score:               round1(score),
	}
}

func uploadRecommendation(avgInterval, deviation float64) string {
	switch {
	case avgInterval <= 7 && deviation <= 2:
		return "Upload schedule is frequent and consistent; keep it up."
	case avgInterval <= 7:
		return "Upload frequency is good but irregular; a fixed schedule trains the algorithm and the audience."
	case avgInterval <= 21:
		return "Uploads are infrequent; weekly or better cadence significantly improves reach."
	default:
		return "Uploads are rare; channels below a monthly cadence struggle to retain subscribers."
	}
}
