package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahmasleam/Neux-Mena-V5/pkg/llm"
)

// AIGateway is the slice of the model gateway the /ai routes depend on.
// Text operations degrade to fallback copy instead of failing, so only the
// pointer-returning operations can signal an error here.
type AIGateway interface {
	Summarize(ctx context.Context, text, lang string) string
	Translate(ctx context.Context, text, targetLang string) string
	AnalyzeMarket(ctx context.Context, dataContext string) string
	ArticleContent(ctx context.Context, url string) string
	Chat(ctx context.Context, history []llm.ChatTurn, message, contextData string) string
	AnalyzePodcast(ctx context.Context, url string) *llm.PodcastResult
	ReviewContent(ctx context.Context, title, description string) *llm.ContentReview
	FetchLatest(ctx context.Context, url string) *llm.ScrapedItem
	SynthesizeSpeech(ctx context.Context, text string) []byte
}

type AIHandler struct {
	gateway AIGateway
}

func NewAIHandler(gateway AIGateway) *AIHandler {
	return &AIHandler{gateway: gateway}
}

func (h *AIHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	summary := h.gateway.Summarize(c.Request.Context(), req.Text, req.Lang)
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (h *AIHandler) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	translation := h.gateway.Translate(c.Request.Context(), req.Text, req.TargetLang)
	c.JSON(http.StatusOK, gin.H{"translation": translation})
}

func (h *AIHandler) AnalyzeMarket(c *gin.Context) {
	var req MarketAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	analysis := h.gateway.AnalyzeMarket(c.Request.Context(), req.Context)
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

func (h *AIHandler) ArticleContent(c *gin.Context) {
	var req ArticleContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	content := h.gateway.ArticleContent(c.Request.Context(), req.URL)
	c.JSON(http.StatusOK, gin.H{"content": content})
}

func (h *AIHandler) AnalyzePodcast(c *gin.Context) {
	var req PodcastAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result := h.gateway.AnalyzePodcast(c.Request.Context(), req.URL)
	if result == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Podcast analysis unavailable"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AIHandler) Review(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	review := h.gateway.ReviewContent(c.Request.Context(), req.Title, req.Description)
	if review == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Content review unavailable"})
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *AIHandler) FetchLatest(c *gin.Context) {
	var req FetchLatestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item := h.gateway.FetchLatest(c.Request.Context(), req.URL)
	if item == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not fetch latest item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *AIHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	history := make([]llm.ChatTurn, len(req.History))
	for i, turn := range req.History {
		history[i] = llm.ChatTurn{Role: turn.Role, Content: turn.Content}
	}

	reply := h.gateway.Chat(c.Request.Context(), history, req.Message, req.Context)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// Speak returns raw 24 kHz PCM; the client wraps it into a WAV container.
func (h *AIHandler) Speak(c *gin.Context) {
	var req SpeakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	audio := h.gateway.SynthesizeSpeech(c.Request.Context(), req.Text)
	if audio == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Speech synthesis unavailable"})
		return
	}
	c.Data(http.StatusOK, "audio/L16;rate=24000", audio)
}
