package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
	"github.com/rahmasleam/Neux-Mena-V5/internal/pipeline"
)

type fakeRefresher struct {
	categories []string
	err        error
}

func (f *fakeRefresher) Start(_ context.Context, category string) error {
	f.categories = append(f.categories, category)
	return f.err
}

func newRefreshRouter(refresher FeedRefresher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRefreshHandler(refresher)
	r.POST("/refresh/:category", h.Refresh)
	return r
}

func TestRefresh_Accepted(t *testing.T) {
	refresher := &fakeRefresher{}
	r := newRefreshRouter(refresher)

	w := post(r, "/refresh/news", "")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, refresher.categories, []string{model.CategoryLatest})

	w = post(r, "/refresh/startups", "")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, refresher.categories, []string{model.CategoryLatest, model.CategoryStartup})
}

func TestRefresh_ConflictWhileRunning(t *testing.T) {
	r := newRefreshRouter(&fakeRefresher{err: pipeline.ErrInFlight})

	w := post(r, "/refresh/news", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRefresh_UnknownCategory(t *testing.T) {
	refresher := &fakeRefresher{}
	r := newRefreshRouter(refresher)

	w := post(r, "/refresh/podcasts", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, len(refresher.categories), 0)
}
