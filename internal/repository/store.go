// Package repository holds the application state store: every content
// collection, the daily trend digest, favorites, saved chats and analyses,
// and the session lifecycle. All mutation goes through store methods; the
// HTTP layer only reads and calls them.
package repository

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
	"github.com/rahmasleam/Neux-Mena-V5/internal/seed"
)

// Store is the single source of truth for content and session state. It is
// in-memory by design; only the local-fallback user record survives restarts.
type Store struct {
	mu sync.RWMutex

	latestNews  []model.NewsItem
	startupNews []model.NewsItem
	events      []model.EventItem
	podcasts    []model.PodcastItem
	newsletters []model.NewsletterItem
	market      []model.MarketMetric
	partners    []model.PartnerItem
	resources   []model.ResourceItem
	industry    model.IndustryData
	dailyTrend  *model.TrendAnalysis

	state         model.SessionState
	user          *model.User
	favorites     map[string]struct{}
	savedChats    []model.SavedChat
	savedAnalyses []model.PodcastAnalysis

	adminEmail string
	fallback   FallbackStore
}

// New builds a store seeded with the static catalogs. fallback may be nil,
// in which case the local-fallback record is not persisted.
func New(adminEmail string, fallback FallbackStore) *Store {
	if fallback == nil {
		fallback = &MemoryFallbackStore{}
	}
	return &Store{
		latestNews:  seed.LatestNews(),
		startupNews: seed.StartupNews(),
		events:      seed.Events(),
		podcasts:    seed.Podcasts(),
		newsletters: seed.Newsletters(),
		market:      seed.MarketMetrics(),
		partners:    seed.Partners(),
		resources:   seed.Resources(),
		industry:    seed.Industry(),
		state:       model.SessionAuthenticating,
		favorites:   make(map[string]struct{}),
		adminEmail:  adminEmail,
		fallback:    fallback,
	}
}

func copySlice[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func updateByKey[T any](list []T, key string, keyOf func(T) string, item T) bool {
	for i := range list {
		if keyOf(list[i]) == key {
			list[i] = item
			return true
		}
	}
	return false
}

func deleteByKey[T any](list []T, key string, keyOf func(T) string) ([]T, bool) {
	for i := range list {
		if keyOf(list[i]) == key {
			return append(list[:i:i], list[i+1:]...), true
		}
	}
	return list, false
}

// ---- news feeds -----------------------------------------------------------

// Feed returns the news collection for "latest" or "startup".
func (s *Store) Feed(category string) ([]model.NewsItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch category {
	case model.CategoryLatest:
		return copySlice(s.latestNews), nil
	case model.CategoryStartup:
		return copySlice(s.startupNews), nil
	default:
		return nil, fmt.Errorf("unknown news category %q", category)
	}
}

// FeedURLs returns the set of source URLs currently held for a category.
// The refresh pipeline seeds its dedup set from this.
func (s *Store) FeedURLs(category string) map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var list []model.NewsItem
	if category == model.CategoryStartup {
		list = s.startupNews
	} else {
		list = s.latestNews
	}

	urls := make(map[string]struct{}, len(list))
	for _, item := range list {
		urls[item.URL] = struct{}{}
	}
	return urls
}

// PrependNews merges freshly accepted items newest-first into a feed.
func (s *Store) PrependNews(category string, items []model.NewsItem) {
	if len(items) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if category == model.CategoryStartup {
		s.startupNews = append(copySlice(items), s.startupNews...)
	} else {
		s.latestNews = append(copySlice(items), s.latestNews...)
	}
}

func (s *Store) AddNews(category string, item model.NewsItem) model.NewsItem {
	item.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	if category == model.CategoryStartup {
		s.startupNews = append([]model.NewsItem{item}, s.startupNews...)
	} else {
		s.latestNews = append([]model.NewsItem{item}, s.latestNews...)
	}
	return item
}

func (s *Store) UpdateNews(category string, item model.NewsItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	newsID := func(n model.NewsItem) string { return n.ID }
	if category == model.CategoryStartup {
		return updateByKey(s.startupNews, item.ID, newsID, item)
	}
	return updateByKey(s.latestNews, item.ID, newsID, item)
}

func (s *Store) DeleteNews(category, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	newsID := func(n model.NewsItem) string { return n.ID }
	var ok bool
	if category == model.CategoryStartup {
		s.startupNews, ok = deleteByKey(s.startupNews, id, newsID)
	} else {
		s.latestNews, ok = deleteByKey(s.latestNews, id, newsID)
	}
	return ok
}

// ---- events ---------------------------------------------------------------

func (s *Store) Events() []model.EventItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.events)
}

func (s *Store) AddEvent(item model.EventItem) model.EventItem {
	item.ID = uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append([]model.EventItem{item}, s.events...)
	return item
}

func (s *Store) UpdateEvent(item model.EventItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateByKey(s.events, item.ID, func(e model.EventItem) string { return e.ID }, item)
}

func (s *Store) DeleteEvent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ok bool
	s.events, ok = deleteByKey(s.events, id, func(e model.EventItem) string { return e.ID })
	return ok
}

// ---- podcasts -------------------------------------------------------------

func (s *Store) Podcasts() []model.PodcastItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.podcasts)
}

func (s *Store) AddPodcast(item model.PodcastItem) model.PodcastItem {
	item.ID = uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.podcasts = append([]model.PodcastItem{item}, s.podcasts...)
	return item
}

func (s *Store) UpdatePodcast(item model.PodcastItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateByKey(s.podcasts, item.ID, func(p model.PodcastItem) string { return p.ID }, item)
}

func (s *Store) DeletePodcast(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ok bool
	s.podcasts, ok = deleteByKey(s.podcasts, id, func(p model.PodcastItem) string { return p.ID })
	return ok
}

// ---- newsletters ----------------------------------------------------------

func (s *Store) Newsletters() []model.NewsletterItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.newsletters)
}

func (s *Store) AddNewsletter(item model.NewsletterItem) model.NewsletterItem {
	item.ID = uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newsletters = append([]model.NewsletterItem{item}, s.newsletters...)
	return item
}

func (s *Store) UpdateNewsletter(item model.NewsletterItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateByKey(s.newsletters, item.ID, func(n model.NewsletterItem) string { return n.ID }, item)
}

func (s *Store) DeleteNewsletter(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ok bool
	s.newsletters, ok = deleteByKey(s.newsletters, id, func(n model.NewsletterItem) string { return n.ID })
	return ok
}

// ---- market metrics (keyed by name, no id field) --------------------------

func (s *Store) MarketMetrics() []model.MarketMetric {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.market)
}

func (s *Store) AddMetric(item model.MarketMetric) model.MarketMetric {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.market = append([]model.MarketMetric{item}, s.market...)
	return item
}

func (s *Store) UpdateMetric(item model.MarketMetric) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateByKey(s.market, item.Name, func(m model.MarketMetric) string { return m.Name }, item)
}

func (s *Store) DeleteMetric(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ok bool
	s.market, ok = deleteByKey(s.market, name, func(m model.MarketMetric) string { return m.Name })
	return ok
}

// ---- partners -------------------------------------------------------------

func (s *Store) Partners() []model.PartnerItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.partners)
}

func (s *Store) AddPartner(item model.PartnerItem) model.PartnerItem {
	item.ID = uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partners = append([]model.PartnerItem{item}, s.partners...)
	return item
}

func (s *Store) UpdatePartner(item model.PartnerItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateByKey(s.partners, item.ID, func(p model.PartnerItem) string { return p.ID }, item)
}

func (s *Store) DeletePartner(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ok bool
	s.partners, ok = deleteByKey(s.partners, id, func(p model.PartnerItem) string { return p.ID })
	return ok
}

// ---- resources ------------------------------------------------------------

func (s *Store) Resources() []model.ResourceItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.resources)
}

// ResourcesByIDs filters the catalog to the given identities, preserving
// catalog order.
func (s *Store) ResourcesByIDs(ids []string) []model.ResourceItem {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.ResourceItem
	for _, r := range s.resources {
		if _, ok := wanted[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) AddResource(item model.ResourceItem) model.ResourceItem {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources = append([]model.ResourceItem{item}, s.resources...)
	return item
}

func (s *Store) DeleteResource(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ok bool
	s.resources, ok = deleteByKey(s.resources, id, func(r model.ResourceItem) string { return r.ID })
	return ok
}

// ---- industry, trends, lookup ---------------------------------------------

func (s *Store) Industry() model.IndustryData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.industry
}

func (s *Store) DailyTrend() *model.TrendAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dailyTrend
}

func (s *Store) SetDailyTrend(t *model.TrendAnalysis) {
	if t == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dailyTrend = t
}

// ItemByID scans every identity-bearing collection, first match wins.
func (s *Store) ItemByID(id string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.latestNews {
		if n.ID == id {
			return n, true
		}
	}
	for _, n := range s.startupNews {
		if n.ID == id {
			return n, true
		}
	}
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	for _, p := range s.podcasts {
		if p.ID == id {
			return p, true
		}
	}
	for _, n := range s.newsletters {
		if n.ID == id {
			return n, true
		}
	}
	for _, p := range s.partners {
		if p.ID == id {
			return p, true
		}
	}
	for _, r := range s.resources {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}
