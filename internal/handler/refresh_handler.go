package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
	"github.com/rahmasleam/Neux-Mena-V5/internal/pipeline"
)

// FeedRefresher starts a background refresh cycle for one feed category.
type FeedRefresher interface {
	Start(ctx context.Context, category string) error
}

type RefreshHandler struct {
	refresher FeedRefresher
}

func NewRefreshHandler(refresher FeedRefresher) *RefreshHandler {
	return &RefreshHandler{refresher: refresher}
}

// Refresh accepts POST /refresh/news and /refresh/startups. The cycle runs
// in the background; a second request for a category already refreshing
// gets a conflict.
func (h *RefreshHandler) Refresh(c *gin.Context) {
	var category string
	switch c.Param("category") {
	case "news":
		category = model.CategoryLatest
	case "startups":
		category = model.CategoryStartup
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown refresh category"})
		return
	}

	// The cycle must outlive the request.
	err := h.refresher.Start(context.WithoutCancel(c.Request.Context()), category)
	if errors.Is(err, pipeline.ErrInFlight) {
		c.JSON(http.StatusConflict, gin.H{"error": "Refresh already in progress"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "refreshing"})
}
