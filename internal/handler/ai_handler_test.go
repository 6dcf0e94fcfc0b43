package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/rahmasleam/Neux-Mena-V5/pkg/llm"
)

type fakeGateway struct {
	summary     string
	translation string
	analysis    string
	content     string
	reply       string
	podcast     *llm.PodcastResult
	review      *llm.ContentReview
	latest      *llm.ScrapedItem
	audio       []byte

	lastHistory []llm.ChatTurn
	lastContext string
}

func (f *fakeGateway) Summarize(_ context.Context, _, _ string) string     { return f.summary }
func (f *fakeGateway) Translate(_ context.Context, _, _ string) string     { return f.translation }
func (f *fakeGateway) AnalyzeMarket(_ context.Context, _ string) string    { return f.analysis }
func (f *fakeGateway) ArticleContent(_ context.Context, _ string) string   { return f.content }
func (f *fakeGateway) SynthesizeSpeech(_ context.Context, _ string) []byte { return f.audio }

func (f *fakeGateway) AnalyzePodcast(_ context.Context, _ string) *llm.PodcastResult {
	return f.podcast
}

func (f *fakeGateway) ReviewContent(_ context.Context, _, _ string) *llm.ContentReview {
	return f.review
}

func (f *fakeGateway) FetchLatest(_ context.Context, _ string) *llm.ScrapedItem {
	return f.latest
}

func (f *fakeGateway) Chat(_ context.Context, history []llm.ChatTurn, _, contextData string) string {
	f.lastHistory = history
	f.lastContext = contextData
	return f.reply
}

func newAIRouter(gateway AIGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAIHandler(gateway)
	r.POST("/ai/summarize", h.Summarize)
	r.POST("/ai/translate", h.Translate)
	r.POST("/ai/market-analysis", h.AnalyzeMarket)
	r.POST("/ai/article-content", h.ArticleContent)
	r.POST("/ai/podcast-analysis", h.AnalyzePodcast)
	r.POST("/ai/review", h.Review)
	r.POST("/ai/fetch-latest", h.FetchLatest)
	r.POST("/ai/chat", h.Chat)
	r.POST("/ai/speak", h.Speak)
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSummarize(t *testing.T) {
	r := newAIRouter(&fakeGateway{summary: "Short version."})

	w := post(r, "/ai/summarize", `{"text":"long article text","lang":"en"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, body["summary"], "Short version.")
}

func TestSummarize_MissingText(t *testing.T) {
	r := newAIRouter(&fakeGateway{})

	w := post(r, "/ai/summarize", `{"lang":"en"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSummarize_DegradedGatewayStillOK(t *testing.T) {
	// A missing key degrades to fallback copy, not an error status.
	r := newAIRouter(&fakeGateway{summary: llm.MsgUnavailable})

	w := post(r, "/ai/summarize", `{"text":"anything"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, body["summary"], llm.MsgUnavailable)
}

func TestTranslate(t *testing.T) {
	r := newAIRouter(&fakeGateway{translation: "مرحبا"})

	w := post(r, "/ai/translate", `{"text":"hello","targetLang":"Arabic"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, body["translation"], "مرحبا")
}

func TestAnalyzePodcast_BadGatewayOnNil(t *testing.T) {
	r := newAIRouter(&fakeGateway{podcast: nil})

	w := post(r, "/ai/podcast-analysis", `{"url":"https://open.spotify.com/show/x"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAnalyzePodcast_ReturnsResult(t *testing.T) {
	r := newAIRouter(&fakeGateway{podcast: &llm.PodcastResult{
		PodcastName: "BME Podcast",
		Score:       8.5,
	}})

	w := post(r, "/ai/podcast-analysis", `{"url":"https://open.spotify.com/show/x"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var res llm.PodcastResult
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, res.PodcastName, "BME Podcast")
	assert.Equal(t, res.Score, 8.5)
}

func TestReview(t *testing.T) {
	r := newAIRouter(&fakeGateway{review: &llm.ContentReview{ImprovedTitle: "Better title"}})

	w := post(r, "/ai/review", `{"title":"ok title","description":"desc"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var res llm.ContentReview
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, res.ImprovedTitle, "Better title")
}

func TestChat_ForwardsHistoryAndContext(t *testing.T) {
	gateway := &fakeGateway{reply: "Here is what I found."}
	r := newAIRouter(gateway)

	w := post(r, "/ai/chat", `{
		"history": [{"role":"user","content":"hi"},{"role":"model","content":"hello"}],
		"message": "what moved EGX today?",
		"context": "market page"
	}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, body["reply"], "Here is what I found.")
	assert.Equal(t, len(gateway.lastHistory), 2)
	assert.Equal(t, gateway.lastHistory[1].Role, "model")
	assert.Equal(t, gateway.lastContext, "market page")
}

func TestSpeak(t *testing.T) {
	r := newAIRouter(&fakeGateway{audio: []byte{0x01, 0x02}})

	w := post(r, "/ai/speak", `{"text":"read this aloud"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, w.Body.Bytes(), []byte{0x01, 0x02})

	r = newAIRouter(&fakeGateway{audio: nil})
	w = post(r, "/ai/speak", `{"text":"read this aloud"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestFetchLatest(t *testing.T) {
	r := newAIRouter(&fakeGateway{latest: &llm.ScrapedItem{Title: "Newest episode"}})

	w := post(r, "/ai/fetch-latest", `{"url":"https://example.com/feed"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var item llm.ScrapedItem
	json.Unmarshal(w.Body.Bytes(), &item)
	assert.Equal(t, item.Title, "Newest episode")
}
