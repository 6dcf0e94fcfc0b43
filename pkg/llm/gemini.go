package llm

import (
	"context"
	"log/slog"

	"google.golang.org/genai"
)

// Degraded responses used when the API key is missing or a call fails.
// Callers render these directly; the gateway never returns an error for
// free-text operations.
const (
	MsgUnavailable        = "AI Service Unavailable (Missing Key)"
	msgSummaryError       = "Error generating summary."
	msgSummaryEmpty       = "Could not generate summary."
	msgAnalysisUnavail    = "AI Analysis Unavailable"
	msgAnalysisError      = "Could not analyze market data."
	msgAnalysisEmpty      = "No insights available."
	msgContentUnavail     = "AI Service Unavailable"
	msgContentError       = "Error extracting article content."
	msgContentEmpty       = "Could not retrieve article content."
	MsgChatUnavailable    = "I'm sorry, I cannot connect to the AI service right now. Please check your API key."
	msgChatError          = "I encountered an error processing your request."
	failedAnalysisSummary = "Could not generate structured analysis. The AI response was not valid JSON."
)

// Gateway wraps the Gemini API. A Gateway with no usable client degrades to
// per-operation fallback values instead of failing.
type Gateway struct {
	client   *genai.Client
	model    string
	ttsModel string
	voice    string
}

func NewGateway(apiKey, model, ttsModel, voice string) *Gateway {
	g := &Gateway{model: model, ttsModel: ttsModel, voice: voice}

	if apiKey == "" {
		slog.Warn("GEMINI_API_KEY not set, AI operations degraded")
		return g
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		slog.Error("error creating Gemini client, AI operations degraded", "error", err)
		return g
	}

	g.client = client
	return g
}

// Available reports whether a real client is configured.
func (g *Gateway) Available() bool {
	return g.client != nil
}

func (g *Gateway) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func searchConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
}

func jsonConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
}

// Summarize condenses text into bullet points in the requested language
// ("en" or "ar").
func (g *Gateway) Summarize(ctx context.Context, text, lang string) string {
	if g.client == nil {
		return MsgUnavailable
	}

	out, err := g.generate(ctx, summaryPrompt(text, lang), nil)
	if err != nil {
		slog.Error("error generating summary", "error", err)
		return msgSummaryError
	}
	if out == "" {
		return msgSummaryEmpty
	}
	return out
}

// Translate renders text in the target language. On any failure the input
// text is returned unchanged.
func (g *Gateway) Translate(ctx context.Context, text, targetLang string) string {
	if g.client == nil {
		return text
	}

	out, err := g.generate(ctx, translatePrompt(text, targetLang), nil)
	if err != nil {
		slog.Error("error translating text", "error", err)
		return text
	}
	if out == "" {
		return text
	}
	return out
}

// AnalyzeMarket produces a short free-text insight for a market snapshot.
func (g *Gateway) AnalyzeMarket(ctx context.Context, dataContext string) string {
	if g.client == nil {
		return msgAnalysisUnavail
	}

	out, err := g.generate(ctx, marketPrompt(dataContext), nil)
	if err != nil {
		slog.Error("error analyzing market data", "error", err)
		return msgAnalysisError
	}
	if out == "" {
		return msgAnalysisEmpty
	}
	return out
}

// SynthesizeSpeech returns raw audio bytes for the given text, or nil.
func (g *Gateway) SynthesizeSpeech(ctx context.Context, text string) []byte {
	if g.client == nil {
		return nil
	}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: g.voice},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.ttsModel, genai.Text(text), cfg)
	if err != nil {
		slog.Error("error synthesizing speech", "error", err)
		return nil
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}

// AnalyzePodcast scores the episode behind url across fixed editorial
// metrics. Unparseable output yields a fixed "Analysis Failed" result;
// transport errors and a missing key yield nil.
func (g *Gateway) AnalyzePodcast(ctx context.Context, url string) *PodcastResult {
	if g.client == nil {
		return nil
	}

	out, err := g.generate(ctx, podcastPrompt(url), searchConfig())
	if err != nil {
		slog.Error("error analyzing podcast", "url", url, "error", err)
		return nil
	}

	var result PodcastResult
	if decodeJSON(out, &result) {
		return &result
	}

	slog.Warn("podcast analysis response was not valid JSON", "url", url)
	return &PodcastResult{
		PodcastName:    "Analysis Failed",
		EpisodeTitle:   "Error",
		Score:          0,
		Summary:        failedAnalysisSummary,
		Metrics:        []PodcastMetric{},
		Recommendation: "Please try again.",
	}
}

// AnalyzeTrends synthesizes a daily digest from item titles/descriptions.
// An empty batch short-circuits to nil without a network call.
func (g *Gateway) AnalyzeTrends(ctx context.Context, items []TrendInput) *TrendResult {
	if g.client == nil || len(items) == 0 {
		return nil
	}

	out, err := g.generate(ctx, trendsPrompt(items), jsonConfig())
	if err != nil {
		slog.Error("error analyzing trends", "error", err)
		return nil
	}

	var result TrendResult
	if !decodeJSON(out, &result) {
		slog.Warn("trend analysis response was not valid JSON")
		return nil
	}
	return &result
}

// ScrapeNewest asks the model, using search grounding, for the most recent
// articles published by the given source. A transport failure is returned
// as an error; anything short of valid JSON is an empty result.
func (g *Gateway) ScrapeNewest(ctx context.Context, sourceURL, sourceName string) ([]ScrapedArticle, error) {
	if g.client == nil {
		return nil, nil
	}

	out, err := g.generate(ctx, scrapePrompt(sourceURL, sourceName), searchConfig())
	if err != nil {
		return nil, err
	}

	var articles []ScrapedArticle
	if !decodeJSON(out, &articles) {
		slog.Warn("scrape response was not valid JSON", "source", sourceName)
		return nil, nil
	}
	return articles, nil
}

// FetchLatest finds the single newest item from a source.
func (g *Gateway) FetchLatest(ctx context.Context, url string) *ScrapedItem {
	if g.client == nil {
		return nil
	}

	out, err := g.generate(ctx, fetchLatestPrompt(url), searchConfig())
	if err != nil {
		slog.Error("error fetching latest item", "url", url, "error", err)
		return nil
	}

	var item ScrapedItem
	if !decodeJSON(out, &item) {
		return nil
	}
	if item.SpecificURL == url {
		slog.Warn("model returned homepage instead of a deep link", "url", url)
	}
	return &item
}

// ArticleContent extracts the full article text behind url as Markdown.
func (g *Gateway) ArticleContent(ctx context.Context, url string) string {
	if g.client == nil {
		return msgContentUnavail
	}

	out, err := g.generate(ctx, articleContentPrompt(url), searchConfig())
	if err != nil {
		slog.Error("error extracting article content", "url", url, "error", err)
		return msgContentError
	}
	if out == "" {
		return msgContentEmpty
	}
	return out
}

// ReviewContent runs an editorial pass over a submitted title/description.
func (g *Gateway) ReviewContent(ctx context.Context, title, description string) *ContentReview {
	if g.client == nil {
		return nil
	}

	out, err := g.generate(ctx, reviewPrompt(title, description), jsonConfig())
	if err != nil {
		slog.Error("error reviewing content", "error", err)
		return nil
	}

	var review ContentReview
	if !decodeJSON(out, &review) {
		return nil
	}
	return &review
}

// Chat sends a message with full history to the assistant. contextData, when
// present, is prepended to the message as page context.
func (g *Gateway) Chat(ctx context.Context, history []ChatTurn, message, contextData string) string {
	if g.client == nil {
		return MsgChatUnavailable
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(assistantSystemPrompt, genai.RoleUser),
	}

	var past []*genai.Content
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == "model" {
			role = genai.RoleModel
		}
		past = append(past, genai.NewContentFromText(turn.Content, role))
	}

	chat, err := g.client.Chats.Create(ctx, g.model, cfg, past)
	if err != nil {
		slog.Error("error creating chat session", "error", err)
		return msgChatError
	}

	if contextData != "" {
		message = "[Context from current page: " + contextData + "]\n\nUser Question: " + message
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		slog.Error("error sending chat message", "error", err)
		return msgChatError
	}
	return resp.Text()
}
