package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
	"github.com/rahmasleam/Neux-Mena-V5/internal/repository"
)

func newUserRouter(store *repository.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUserHandler(store)
	r.POST("/favorites/:id", h.ToggleFavorite)
	r.GET("/favorites", h.GetFavorites)
	r.POST("/chats", h.SaveChat)
	r.GET("/chats", h.GetChats)
	r.POST("/analyses", h.SaveAnalysis)
	r.DELETE("/analyses/:id", h.DeleteAnalysis)
	r.GET("/analyses", h.GetAnalyses)
	return r
}

func del(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestToggleFavorite_RoundTrip(t *testing.T) {
	r := newUserRouter(newTestStore())

	w := post(r, "/favorites/n_tc_init", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]bool
	json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, body["favorited"], true)

	w = get(r, "/favorites")
	var favorites struct {
		IDs []string `json:"ids"`
	}
	json.Unmarshal(w.Body.Bytes(), &favorites)
	assert.Equal(t, favorites.IDs, []string{"n_tc_init"})

	// The second toggle removes it again.
	w = post(r, "/favorites/n_tc_init", "")
	json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, body["favorited"], false)
}

func TestSaveChat(t *testing.T) {
	r := newUserRouter(newTestStore())

	w := post(r, "/chats", `{"messages":[{"role":"user","content":"what is new in fintech?"},{"role":"model","content":"Plenty."}]}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var saved model.SavedChat
	json.Unmarshal(w.Body.Bytes(), &saved)
	assert.Equal(t, len(saved.Messages), 2)
	if saved.ID == "" {
		t.Fatal("saved chat should have an id")
	}

	w = get(r, "/chats")
	var chats []model.SavedChat
	json.Unmarshal(w.Body.Bytes(), &chats)
	assert.Equal(t, len(chats), 1)
}

func TestSaveChat_EmptyRejected(t *testing.T) {
	r := newUserRouter(newTestStore())

	w := post(r, "/chats", `{"messages":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyses_SaveAndDelete(t *testing.T) {
	r := newUserRouter(newTestStore())

	w := post(r, "/analyses", `{"podcastName":"BME Podcast","episodeTitle":"Email Marketing 101","score":8.0}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var saved model.PodcastAnalysis
	json.Unmarshal(w.Body.Bytes(), &saved)
	assert.Equal(t, saved.PodcastName, "BME Podcast")

	w = del(r, "/analyses/"+saved.ID)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = del(r, "/analyses/"+saved.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(r, "/analyses")
	assert.Equal(t, w.Body.String(), "[]")
}
