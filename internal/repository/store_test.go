package repository

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
)

const adminEmail = "admin@edafaa.com"

func newTestStore() *Store {
	return New(adminEmail, &MemoryFallbackStore{})
}

func TestFeedSeeded(t *testing.T) {
	s := newTestStore()

	latest, err := s.Feed(model.CategoryLatest)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(latest))

	startup, err := s.Feed(model.CategoryStartup)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(startup))

	_, err = s.Feed("bogus")
	assert.NotEqual(t, nil, err)
}

func TestPrependNewsNewestFirst(t *testing.T) {
	s := newTestStore()

	s.PrependNews(model.CategoryLatest, []model.NewsItem{
		{ID: "a", Title: "first new", URL: "https://x/1"},
		{ID: "b", Title: "second new", URL: "https://x/2"},
	})

	latest, _ := s.Feed(model.CategoryLatest)
	assert.Equal(t, 4, len(latest))
	assert.Equal(t, "a", latest[0].ID)
	assert.Equal(t, "b", latest[1].ID)
}

func TestFeedURLs(t *testing.T) {
	s := newTestStore()

	urls := s.FeedURLs(model.CategoryLatest)
	_, ok := urls["https://techcrunch.com/category/artificial-intelligence/"]
	assert.Equal(t, true, ok)
	assert.Equal(t, 2, len(urls))
}

func TestAddNewsAssignsID(t *testing.T) {
	s := newTestStore()

	added := s.AddNews(model.CategoryStartup, model.NewsItem{Title: "No ID yet"})
	assert.NotEqual(t, "", added.ID)

	got, ok := s.ItemByID(added.ID)
	assert.Equal(t, true, ok)
	assert.Equal(t, "No ID yet", got.(model.NewsItem).Title)
}

func TestUpdateAndDeleteNews(t *testing.T) {
	s := newTestStore()

	item := s.AddNews(model.CategoryLatest, model.NewsItem{Title: "v1"})
	item.Title = "v2"

	assert.Equal(t, true, s.UpdateNews(model.CategoryLatest, item))

	got, _ := s.ItemByID(item.ID)
	assert.Equal(t, "v2", got.(model.NewsItem).Title)

	assert.Equal(t, true, s.DeleteNews(model.CategoryLatest, item.ID))
	assert.Equal(t, false, s.DeleteNews(model.CategoryLatest, item.ID))
}

func TestMarketMetricsKeyedByName(t *testing.T) {
	s := newTestStore()
	before := s.MarketMetrics()

	assert.Equal(t, true, s.UpdateMetric(model.MarketMetric{Name: "Bitcoin", Value: 70000, Trend: "up", Currency: "USD", Type: "Crypto"}))

	var btc model.MarketMetric
	for _, m := range s.MarketMetrics() {
		if m.Name == "Bitcoin" {
			btc = m
		}
	}
	assert.Equal(t, float64(70000), btc.Value)

	// Delete by name removes one entry and keeps the order of the rest.
	assert.Equal(t, true, s.DeleteMetric("Ethereum"))
	after := s.MarketMetrics()
	assert.Equal(t, len(before)-1, len(after))

	var names []string
	for _, m := range after {
		names = append(names, m.Name)
	}
	want := []string{"EGX 30", "NASDAQ", "S&P 500", "Tadawul", "Bitcoin", "Solana", "USD/EGP", "EUR/EGP", "SAR/EGP"}
	assert.Equal(t, want, names)

	assert.Equal(t, false, s.DeleteMetric("Ethereum"))
}

func TestItemByIDAcrossCollections(t *testing.T) {
	s := newTestStore()

	got, ok := s.ItemByID("e1")
	assert.Equal(t, true, ok)
	assert.Equal(t, "RiseUp Summit 2024", got.(model.EventItem).Title)

	got, ok = s.ItemByID("p_req_3")
	assert.Equal(t, true, ok)
	assert.Equal(t, "This Week in Startups", got.(model.PodcastItem).Title)

	got, ok = s.ItemByID("r_tc")
	assert.Equal(t, true, ok)
	assert.Equal(t, "TechCrunch", got.(model.ResourceItem).Name)

	_, ok = s.ItemByID("missing")
	assert.Equal(t, false, ok)
}

func TestResourcesByIDs(t *testing.T) {
	s := newTestStore()

	got := s.ResourcesByIDs([]string{"r_tc", "r_wamda", "nope"})
	assert.Equal(t, 2, len(got))
	// Catalog order, not request order.
	assert.Equal(t, "r_wamda", got[0].ID)
	assert.Equal(t, "r_tc", got[1].ID)
}

func TestToggleFavoriteIdempotence(t *testing.T) {
	s := newTestStore()

	assert.Equal(t, true, s.ToggleFavorite("n_tc_init"))
	assert.Equal(t, true, s.IsFavorite("n_tc_init"))

	assert.Equal(t, false, s.ToggleFavorite("n_tc_init"))
	assert.Equal(t, false, s.IsFavorite("n_tc_init"))
	assert.Equal(t, 0, len(s.Favorites()))
}

func TestSetDailyTrendIgnoresNil(t *testing.T) {
	s := newTestStore()

	trend := &model.TrendAnalysis{Date: "2026-08-29", ExecutiveSummary: "busy day"}
	s.SetDailyTrend(trend)
	assert.Equal(t, "busy day", s.DailyTrend().ExecutiveSummary)

	// A failed synthesis keeps the previous digest.
	s.SetDailyTrend(nil)
	assert.Equal(t, "busy day", s.DailyTrend().ExecutiveSummary)
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, model.SessionAuthenticating, s.SessionState())

	s.ResolveSession(&model.User{ID: "u1", Email: adminEmail})
	assert.Equal(t, model.SessionRemote, s.SessionState())
	assert.Equal(t, true, s.IsAdmin())

	s.Logout()
	assert.Equal(t, model.SessionUnauthenticated, s.SessionState())
	assert.Equal(t, false, s.IsAdmin())
	if s.CurrentUser() != nil {
		t.Error("expected nil user after logout")
	}
}

func TestResolveSessionRestoresFallback(t *testing.T) {
	fallback := &MemoryFallbackStore{}
	fallback.Save(&model.User{
		ID:            "guest-demo-bypass",
		Email:         "guest@nexus.demo",
		SavedAnalyses: []model.PodcastAnalysis{{ID: "an1", PodcastName: "TWiS"}},
	})

	s := New(adminEmail, fallback)
	s.ResolveSession(nil)

	assert.Equal(t, model.SessionLocalFallback, s.SessionState())
	assert.Equal(t, "guest@nexus.demo", s.CurrentUser().Email)
	assert.Equal(t, false, s.IsAdmin())
	assert.Equal(t, 1, len(s.SavedAnalyses()))
}

func TestResolveSessionUnauthenticated(t *testing.T) {
	s := newTestStore()
	s.ResolveSession(nil)
	assert.Equal(t, model.SessionUnauthenticated, s.SessionState())
}

func TestLogoutClearsEverything(t *testing.T) {
	fallback := &MemoryFallbackStore{}
	s := New(adminEmail, fallback)

	s.SetLocalFallbackUser(&model.User{ID: "admin-demo-bypass", Email: adminEmail})
	s.ToggleFavorite("n_tc_init")
	s.SaveAnalysis(model.PodcastAnalysis{PodcastName: "TWiS"})

	stored, _ := fallback.Load()
	assert.Equal(t, 1, len(stored.SavedAnalyses))

	s.Logout()

	assert.Equal(t, 0, len(s.Favorites()))
	assert.Equal(t, 0, len(s.SavedAnalyses()))
	assert.Equal(t, false, s.IsAdmin())

	stored, _ = fallback.Load()
	if stored != nil {
		t.Error("expected persisted fallback record to be removed on logout")
	}
}

func TestSaveAnalysisPersistsForFallbackSession(t *testing.T) {
	fallback := &MemoryFallbackStore{}
	s := New(adminEmail, fallback)
	s.SetLocalFallbackUser(&model.User{ID: "guest-demo-bypass", Email: "guest@nexus.demo"})

	saved := s.SaveAnalysis(model.PodcastAnalysis{PodcastName: "Diary of a CEO"})
	assert.NotEqual(t, "", saved.ID)

	stored, _ := fallback.Load()
	assert.Equal(t, 1, len(stored.SavedAnalyses))

	assert.Equal(t, true, s.DeleteAnalysis(saved.ID))
	stored, _ = fallback.Load()
	assert.Equal(t, 0, len(stored.SavedAnalyses))
}

func TestSaveChat(t *testing.T) {
	s := newTestStore()

	if s.SaveChat(nil) != nil {
		t.Error("expected nil for empty chat")
	}

	chat := s.SaveChat([]model.ChatMessage{
		{Role: "user", Content: "What is happening with fintech in Egypt today?"},
		{Role: "model", Content: "Here is a rundown."},
	})
	assert.NotEqual(t, "", chat.ID)
	assert.Equal(t, 1, len(s.SavedChats()))
	assert.Equal(t, 2, len(s.SavedChats()[0].Messages))
}
