package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
)

// ContentStore is the read side of the state store the public content
// routes depend on.
type ContentStore interface {
	Feed(category string) ([]model.NewsItem, error)
	Events() []model.EventItem
	Podcasts() []model.PodcastItem
	Newsletters() []model.NewsletterItem
	MarketMetrics() []model.MarketMetric
	Partners() []model.PartnerItem
	Resources() []model.ResourceItem
	Industry() model.IndustryData
	DailyTrend() *model.TrendAnalysis
	ItemByID(id string) (any, bool)
}

type ContentHandler struct {
	store ContentStore
}

func NewContentHandler(store ContentStore) *ContentHandler {
	return &ContentHandler{store: store}
}

func (h *ContentHandler) GetNews(c *gin.Context) {
	h.feed(c, model.CategoryLatest)
}

func (h *ContentHandler) GetStartups(c *gin.Context) {
	h.feed(c, model.CategoryStartup)
}

func (h *ContentHandler) feed(c *gin.Context, category string) {
	items, err := h.store.Feed(category)
	if err != nil {
		slog.Error("error fetching feed", "category", category, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return
	}

	if region := c.Query("region"); region != "" {
		filtered := make([]model.NewsItem, 0, len(items))
		for _, item := range items {
			if item.Region == region {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) GetEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Events())
}

func (h *ContentHandler) GetPodcasts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Podcasts())
}

func (h *ContentHandler) GetNewsletters(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Newsletters())
}

func (h *ContentHandler) GetMarket(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.MarketMetrics())
}

func (h *ContentHandler) GetPartners(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Partners())
}

func (h *ContentHandler) GetResources(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Resources())
}

func (h *ContentHandler) GetIndustry(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Industry())
}

// GetTrends returns the current daily digest, or a JSON null when no
// refresh has produced one yet.
func (h *ContentHandler) GetTrends(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.DailyTrend())
}

func (h *ContentHandler) GetItem(c *gin.Context) {
	item, ok := h.store.ItemByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Health reports liveness plus whether the AI gateway has a usable key.
func Health(aiAvailable bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"ai":     aiAvailable,
		})
	}
}
