package handler

import "github.com/rahmasleam/Neux-Mena-V5/internal/model"

type SummarizeRequest struct {
	Text string `json:"text" binding:"required"`
	Lang string `json:"lang"`
}

type TranslateRequest struct {
	Text       string `json:"text" binding:"required"`
	TargetLang string `json:"targetLang" binding:"required"`
}

type MarketAnalysisRequest struct {
	Context string `json:"context" binding:"required"`
}

type ArticleContentRequest struct {
	URL string `json:"url" binding:"required"`
}

type PodcastAnalysisRequest struct {
	URL string `json:"url" binding:"required"`
}

type ReviewRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type FetchLatestRequest struct {
	URL string `json:"url" binding:"required"`
}

type ChatTurnPayload struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	History []ChatTurnPayload `json:"history"`
	Message string            `json:"message" binding:"required"`
	Context string            `json:"context"`
}

type SpeakRequest struct {
	Text string `json:"text" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type SaveChatRequest struct {
	Messages []model.ChatMessage `json:"messages"`
}
