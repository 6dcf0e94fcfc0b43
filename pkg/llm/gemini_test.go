package llm

import (
	"context"
	"testing"

	"github.com/go-playground/assert/v2"
)

// A gateway without a key must degrade per operation, never error out.
func TestGatewayDegradedWithoutKey(t *testing.T) {
	g := NewGateway("", "gemini-2.5-flash", "gemini-2.5-flash-preview-tts", "Kore")
	ctx := context.Background()

	assert.Equal(t, false, g.Available())
	assert.Equal(t, MsgUnavailable, g.Summarize(ctx, "some text", "en"))
	assert.Equal(t, "unchanged", g.Translate(ctx, "unchanged", "ar"))
	assert.Equal(t, msgAnalysisUnavail, g.AnalyzeMarket(ctx, "EGX 30: 28500"))
	assert.Equal(t, msgContentUnavail, g.ArticleContent(ctx, "https://example.com/a"))
	assert.Equal(t, MsgChatUnavailable, g.Chat(ctx, nil, "hello", ""))

	if g.SynthesizeSpeech(ctx, "text") != nil {
		t.Error("expected nil audio without key")
	}
	if g.AnalyzePodcast(ctx, "https://example.com/pod") != nil {
		t.Error("expected nil podcast analysis without key")
	}
	if g.ReviewContent(ctx, "t", "d") != nil {
		t.Error("expected nil review without key")
	}
	if g.FetchLatest(ctx, "https://example.com") != nil {
		t.Error("expected nil item without key")
	}

	articles, err := g.ScrapeNewest(ctx, "https://example.com", "Example")
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

// Empty input short-circuits before any network call, so this holds even
// for a gateway that was never given a client.
func TestAnalyzeTrendsEmptyInput(t *testing.T) {
	g := NewGateway("", "gemini-2.5-flash", "", "")

	if g.AnalyzeTrends(context.Background(), nil) != nil {
		t.Error("expected nil trends for empty input")
	}
	if g.AnalyzeTrends(context.Background(), []TrendInput{}) != nil {
		t.Error("expected nil trends for empty slice")
	}
}
