// Package pipeline implements the feed refresh cycle: pick a bounded random
// sample of monitored sources, scrape each through the AI gateway under a
// fixed pacing interval, dedupe candidates by URL, merge survivors into the
// store and, for the latest feed, synthesize the daily trend digest.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/rahmasleam/Neux-Mena-V5/internal/config"
	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
	"github.com/rahmasleam/Neux-Mena-V5/pkg/llm"
)

// ErrInFlight reports that a refresh cycle for the category is already
// running. Overlapping cycles would race on the dedup set, so the second
// caller backs off.
var ErrInFlight = errors.New("refresh already in flight for this category")

// Store is the slice of the state store the pipeline mutates.
type Store interface {
	ResourcesByIDs(ids []string) []model.ResourceItem
	FeedURLs(category string) map[string]struct{}
	PrependNews(category string, items []model.NewsItem)
	SetDailyTrend(t *model.TrendAnalysis)
}

type Refresher struct {
	store   Store
	scraper llm.Scraper
	trends  llm.TrendAnalyzer
	cfg     config.RefreshConfig
	limiter *rate.Limiter

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewRefresher(store Store, scraper llm.Scraper, trends llm.TrendAnalyzer, cfg config.RefreshConfig) *Refresher {
	limiter := rate.NewLimiter(rate.Every(cfg.Interval), 1)
	// Start drained so the first gateway call also waits out the interval.
	limiter.Allow()

	return &Refresher{
		store:    store,
		scraper:  scraper,
		trends:   trends,
		cfg:      cfg,
		limiter:  limiter,
		inFlight: make(map[string]bool),
	}
}

// Refresh runs one cycle for "latest" or "startup" and returns the number
// of accepted items. A failing source is skipped, never fatal.
func (r *Refresher) Refresh(ctx context.Context, category string) (int, error) {
	allowed, ok := r.cfg.AllowLists[category]
	if !ok {
		return 0, fmt.Errorf("no refresh targets for category %q", category)
	}

	if !r.acquire(category) {
		return 0, ErrInFlight
	}
	defer r.release(category)

	return r.run(ctx, category, allowed)
}

// Start acquires the category guard synchronously and runs the cycle in the
// background, so a caller can distinguish "started" from "already running"
// without waiting for the scrape.
func (r *Refresher) Start(ctx context.Context, category string) error {
	allowed, ok := r.cfg.AllowLists[category]
	if !ok {
		return fmt.Errorf("no refresh targets for category %q", category)
	}

	if !r.acquire(category) {
		return ErrInFlight
	}

	go func() {
		defer r.release(category)
		if _, err := r.run(ctx, category, allowed); err != nil {
			slog.Error("background refresh aborted", "category", category, "error", err)
		}
	}()
	return nil
}

func (r *Refresher) run(ctx context.Context, category string, allowed []string) (int, error) {
	sources := r.store.ResourcesByIDs(allowed)
	rand.Shuffle(len(sources), func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})
	if len(sources) > r.cfg.MaxSources {
		sources = sources[:r.cfg.MaxSources]
	}

	seen := r.store.FeedURLs(category)
	var accepted []model.NewsItem

	for _, src := range sources {
		if err := r.limiter.Wait(ctx); err != nil {
			return len(accepted), err
		}

		articles, err := r.scraper.ScrapeNewest(ctx, src.URL, src.Name)
		if err != nil {
			slog.Warn("skipping source after scrape failure", "source", src.Name, "error", err)
			continue
		}

		for _, art := range articles {
			item, ok := r.buildItem(category, src, art, seen)
			if !ok {
				continue
			}
			seen[item.URL] = struct{}{}
			accepted = append(accepted, item)
		}
	}

	if len(accepted) == 0 {
		slog.Info("refresh cycle accepted no items", "category", category)
		return 0, nil
	}

	r.store.PrependNews(category, accepted)
	slog.Info("refresh cycle merged items", "category", category, "accepted", len(accepted))

	if category == model.CategoryLatest {
		r.synthesizeTrends(ctx, accepted)
	}

	return len(accepted), nil
}

// buildItem turns a scraped candidate into a store item, or rejects it when
// its URL is already present for this category.
func (r *Refresher) buildItem(category string, src model.ResourceItem, art llm.ScrapedArticle, seen map[string]struct{}) (model.NewsItem, bool) {
	url := art.URL
	if url == "" {
		url = src.URL
	}
	if _, dup := seen[url]; dup {
		return model.NewsItem{}, false
	}

	date := art.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	itemCategory := "Tech"
	if category == model.CategoryStartup {
		itemCategory = "Startup"
	}

	return model.NewsItem{
		ID:          newItemID(),
		Title:       art.Title,
		Description: art.Summary,
		Source:      src.Name,
		URL:         url,
		Date:        date,
		Region:      r.region(src.ID),
		Category:    itemCategory,
		Sector:      "General",
		ImageURL:    fmt.Sprintf("https://picsum.photos/800/400?random=%d", rand.IntN(10000)),
		Tags:        []string{"Daily Update", "AI Analysis"},
	}, true
}

// region classifies a source as Egyptian by id substring, otherwise Global.
func (r *Refresher) region(sourceID string) string {
	for _, marker := range r.cfg.EgyptIDs {
		if strings.Contains(sourceID, marker) {
			return model.RegionEgypt
		}
	}
	return model.RegionGlobal
}

// synthesizeTrends analyzes exactly the newly accepted items, after one more
// pacing wait. A nil result keeps the previous digest.
func (r *Refresher) synthesizeTrends(ctx context.Context, items []model.NewsItem) {
	if err := r.limiter.Wait(ctx); err != nil {
		return
	}

	inputs := make([]llm.TrendInput, len(items))
	for i, item := range items {
		inputs[i] = llm.TrendInput{Title: item.Title, Description: item.Description}
	}

	result := r.trends.AnalyzeTrends(ctx, inputs)
	if result == nil {
		slog.Warn("trend synthesis returned nothing, keeping previous digest")
		return
	}

	trend := &model.TrendAnalysis{
		Date:             result.Date,
		ExecutiveSummary: result.ExecutiveSummary,
		Topics:           make([]model.TrendTopic, len(result.Topics)),
	}
	for i, topic := range result.Topics {
		trend.Topics[i] = model.TrendTopic(topic)
	}
	r.store.SetDailyTrend(trend)
}

func newItemID() string {
	return "n_" + uuid.NewString()
}

func (r *Refresher) acquire(category string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight[category] {
		return false
	}
	r.inFlight[category] = true
	return true
}

func (r *Refresher) release(category string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inFlight, category)
}
