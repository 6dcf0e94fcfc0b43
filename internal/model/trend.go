package model

const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentMixed    = "Mixed"
)

type TrendTopic struct {
	Category  string `json:"category"`
	Topic     string `json:"topic"`
	Summary   string `json:"summary"`
	Sentiment string `json:"sentiment"`
}

// TrendAnalysis is the daily digest synthesized from freshly fetched items.
// It lives only for the current session; a failed synthesis keeps the
// previous value.
type TrendAnalysis struct {
	Date             string       `json:"date"`
	ExecutiveSummary string       `json:"executiveSummary"`
	Topics           []TrendTopic `json:"topics"`
}

type AnalysisMetric struct {
	Name    string `json:"name"`
	Finding string `json:"finding"`
}

type PodcastAnalysis struct {
	ID             string           `json:"id,omitempty"`
	PodcastName    string           `json:"podcastName"`
	EpisodeTitle   string           `json:"episodeTitle"`
	Score          float64          `json:"score"`
	Summary        string           `json:"summary"`
	Metrics        []AnalysisMetric `json:"metrics"`
	Recommendation string           `json:"recommendation"`
}
