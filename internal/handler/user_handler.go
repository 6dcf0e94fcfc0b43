package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
)

// UserStore holds the per-user state the account routes mutate.
type UserStore interface {
	ToggleFavorite(id string) bool
	Favorites() []string
	SaveChat(messages []model.ChatMessage) *model.SavedChat
	SavedChats() []model.SavedChat
	SaveAnalysis(a model.PodcastAnalysis) model.PodcastAnalysis
	DeleteAnalysis(id string) bool
	SavedAnalyses() []model.PodcastAnalysis
}

type UserHandler struct {
	store UserStore
}

func NewUserHandler(store UserStore) *UserHandler {
	return &UserHandler{store: store}
}

func (h *UserHandler) ToggleFavorite(c *gin.Context) {
	favorited := h.store.ToggleFavorite(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

func (h *UserHandler) GetFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ids": h.store.Favorites()})
}

func (h *UserHandler) SaveChat(c *gin.Context) {
	var req SaveChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	saved := h.store.SaveChat(req.Messages)
	if saved == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to save"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *UserHandler) GetChats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.SavedChats())
}

func (h *UserHandler) SaveAnalysis(c *gin.Context) {
	var analysis model.PodcastAnalysis
	if err := c.ShouldBindJSON(&analysis); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	c.JSON(http.StatusCreated, h.store.SaveAnalysis(analysis))
}

func (h *UserHandler) DeleteAnalysis(c *gin.Context) {
	if !h.store.DeleteAnalysis(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) GetAnalyses(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.SavedAnalyses())
}
