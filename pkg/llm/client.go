package llm

import "context"

// ScrapedArticle is one candidate item returned by the source scraper.
type ScrapedArticle struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Date    string `json:"date"`
	URL     string `json:"url"`
	Source  string `json:"source"`
}

// ScrapedItem is the single newest item returned by FetchLatest.
type ScrapedItem struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Source        string   `json:"source"`
	SpecificURL   string   `json:"specificUrl"`
	Date          string   `json:"date"`
	Category      string   `json:"category"`
	Duration      string   `json:"duration,omitempty"`
	SummaryPoints []string `json:"summaryPoints,omitempty"`
	YoutubeURL    string   `json:"youtubeUrl,omitempty"`
	SpotifyURL    string   `json:"spotifyUrl,omitempty"`
}

type TrendInput struct {
	Title       string
	Description string
}

type TrendTopic struct {
	Category  string `json:"category"`
	Topic     string `json:"topic"`
	Summary   string `json:"summary"`
	Sentiment string `json:"sentiment"`
}

type TrendResult struct {
	Date             string       `json:"date"`
	ExecutiveSummary string       `json:"executiveSummary"`
	Topics           []TrendTopic `json:"topics"`
}

type PodcastMetric struct {
	Name    string `json:"name"`
	Finding string `json:"finding"`
}

type PodcastResult struct {
	PodcastName    string          `json:"podcastName"`
	EpisodeTitle   string          `json:"episodeTitle"`
	Score          float64         `json:"score"`
	Summary        string          `json:"summary"`
	Metrics        []PodcastMetric `json:"metrics"`
	Recommendation string          `json:"recommendation"`
}

type ContentReview struct {
	ImprovedTitle       string `json:"improvedTitle"`
	ImprovedDescription string `json:"improvedDescription"`
	Feedback            string `json:"feedback"`
}

type ChatTurn struct {
	Role    string
	Content string
}

// Scraper is the slice of the gateway the refresh pipeline depends on.
// A transport failure is returned as an error so the caller can skip the
// source; semantically empty output is an empty slice with a nil error.
type Scraper interface {
	ScrapeNewest(ctx context.Context, sourceURL, sourceName string) ([]ScrapedArticle, error)
}

// TrendAnalyzer synthesizes a daily digest from freshly fetched items.
// Empty input and every failure mode yield nil.
type TrendAnalyzer interface {
	AnalyzeTrends(ctx context.Context, items []TrendInput) *TrendResult
}
