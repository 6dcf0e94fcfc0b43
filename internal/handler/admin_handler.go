package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
)

// AdminStore is the write side of the state store behind the admin routes.
type AdminStore interface {
	AddNews(category string, item model.NewsItem) model.NewsItem
	UpdateNews(category string, item model.NewsItem) bool
	DeleteNews(category, id string) bool
	AddEvent(item model.EventItem) model.EventItem
	UpdateEvent(item model.EventItem) bool
	DeleteEvent(id string) bool
	AddPodcast(item model.PodcastItem) model.PodcastItem
	UpdatePodcast(item model.PodcastItem) bool
	DeletePodcast(id string) bool
	AddNewsletter(item model.NewsletterItem) model.NewsletterItem
	UpdateNewsletter(item model.NewsletterItem) bool
	DeleteNewsletter(id string) bool
	AddPartner(item model.PartnerItem) model.PartnerItem
	UpdatePartner(item model.PartnerItem) bool
	DeletePartner(id string) bool
	AddMetric(item model.MarketMetric) model.MarketMetric
	UpdateMetric(item model.MarketMetric) bool
	DeleteMetric(name string) bool
	AddResource(item model.ResourceItem) model.ResourceItem
	DeleteResource(id string) bool
}

type AdminHandler struct {
	store AdminStore
}

func NewAdminHandler(store AdminStore) *AdminHandler {
	return &AdminHandler{store: store}
}

// RequireAdmin rejects requests from sessions whose user is not the
// configured administrator.
func RequireAdmin(session SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// newsCategory maps the route segment to the internal feed key.
func newsCategory(param string) (string, bool) {
	switch param {
	case "news":
		return model.CategoryLatest, true
	case "startups":
		return model.CategoryStartup, true
	}
	return "", false
}

func (h *AdminHandler) Create(c *gin.Context) {
	category := c.Param("category")

	if feed, ok := newsCategory(category); ok {
		bindAndCreate(c, func(item model.NewsItem) any { return h.store.AddNews(feed, item) })
		return
	}

	switch category {
	case "events":
		bindAndCreate(c, func(item model.EventItem) any { return h.store.AddEvent(item) })
	case "podcasts":
		bindAndCreate(c, func(item model.PodcastItem) any { return h.store.AddPodcast(item) })
	case "newsletters":
		bindAndCreate(c, func(item model.NewsletterItem) any { return h.store.AddNewsletter(item) })
	case "partners":
		bindAndCreate(c, func(item model.PartnerItem) any { return h.store.AddPartner(item) })
	case "market":
		bindAndCreate(c, func(item model.MarketMetric) any { return h.store.AddMetric(item) })
	case "resources":
		bindAndCreate(c, func(item model.ResourceItem) any { return h.store.AddResource(item) })
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown content category"})
	}
}

func (h *AdminHandler) Update(c *gin.Context) {
	category := c.Param("category")

	if feed, ok := newsCategory(category); ok {
		bindAndUpdate(c, func(item model.NewsItem) bool { return h.store.UpdateNews(feed, item) })
		return
	}

	switch category {
	case "events":
		bindAndUpdate(c, h.store.UpdateEvent)
	case "podcasts":
		bindAndUpdate(c, h.store.UpdatePodcast)
	case "newsletters":
		bindAndUpdate(c, h.store.UpdateNewsletter)
	case "partners":
		bindAndUpdate(c, h.store.UpdatePartner)
	case "market":
		bindAndUpdate(c, h.store.UpdateMetric)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown content category"})
	}
}

// Delete removes an item by id, or by name for market metrics.
func (h *AdminHandler) Delete(c *gin.Context) {
	category := c.Param("category")
	id := c.Param("id")

	var deleted bool
	if feed, ok := newsCategory(category); ok {
		deleted = h.store.DeleteNews(feed, id)
	} else {
		switch category {
		case "events":
			deleted = h.store.DeleteEvent(id)
		case "podcasts":
			deleted = h.store.DeletePodcast(id)
		case "newsletters":
			deleted = h.store.DeleteNewsletter(id)
		case "partners":
			deleted = h.store.DeletePartner(id)
		case "market":
			deleted = h.store.DeleteMetric(id)
		case "resources":
			deleted = h.store.DeleteResource(id)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown content category"})
			return
		}
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func bindAndCreate[T any](c *gin.Context, add func(T) any) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	c.JSON(http.StatusCreated, add(item))
}

func bindAndUpdate[T any](c *gin.Context, update func(T) bool) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !update(item) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}
