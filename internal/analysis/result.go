package analysis

// ResultType discriminates the analysis result union.
type ResultType string

const (
	ResultChannel       ResultType = "channel"
	ResultChannelShorts ResultType = "channel_shorts"
	ResultShorts        ResultType = "shorts"
)

// ChannelResult is the analysis output for a channel (or a channel's
// Shorts section when Type is ResultChannelShorts).
type ChannelResult struct {
	Type ResultType `json:"type"`
	ChannelAggregate
	Seo SeoAnalysis `json:"seoAnalysis"`
}

// VideoInfo is a single analyzed video plus its channel context.
// DurationDisplay is the pre-rendered duration for clients.
type VideoInfo struct {
	VideoRecord
	ChannelID         string `json:"channelId"`
	ChannelTitle      string `json:"channelTitle"`
	CaptionsAvailable bool   `json:"captionsAvailable"`
	DurationDisplay   string `json:"durationFormatted"`
	EngagementRate    string `json:"engagementRate"`
}

// VideoResult is the analysis output for a single video or Short.
type VideoResult struct {
	Type  ResultType  `json:"type"`
	Video VideoInfo   `json:"videoInfo"`
	Seo   SeoAnalysis `json:"seoAnalysis"`
}

// NewChannelResult runs aggregation and scoring over a channel's sampled
// videos. shortsScoped marks an analysis of the channel's Shorts section.
func NewChannelResult(meta ChannelMeta, videos []VideoRecord, shortsScoped bool) ChannelResult {
	agg := AggregateChannel(meta, videos)

	t := ResultChannel
	if shortsScoped {
		t = ResultChannelShorts
	}

	return ChannelResult{
		Type:             t,
		ChannelAggregate: agg,
		Seo:              AnalyzeVideos(videos, agg.IsMainlyShorts || shortsScoped),
	}
}

// NewVideoResult scores a single video.
func NewVideoResult(info VideoInfo) VideoResult {
	info.EngagementRate = EngagementRate(info.ViewCount, info.LikeCount, info.CommentCount)
	return VideoResult{
		Type:  ResultShorts,
		Video: info,
		Seo:   AnalyzeSingleVideo(info.VideoRecord),
	}
}
