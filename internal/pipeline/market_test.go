package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
	"github.com/rahmasleam/Neux-Mena-V5/pkg/market"
)

type fakeQuotes struct {
	quotes map[string]market.Quote
	err    error
}

func (f *fakeQuotes) Quote(_ context.Context, symbol string) (market.Quote, error) {
	if f.err != nil {
		return market.Quote{}, f.err
	}
	q, ok := f.quotes[symbol]
	if !ok {
		return market.Quote{}, errors.New("unknown symbol")
	}
	return q, nil
}

func TestMarketRefreshUpdatesMappedMetrics(t *testing.T) {
	store := newStore(t)
	quotes := &fakeQuotes{quotes: map[string]market.Quote{
		"BINANCE:BTCUSDT": {Value: 70250.5, Change: 2.4},
		"QQQ":             {Value: 485.1, Change: -0.6},
	}}
	m := NewMarketRefresher(store, quotes, map[string]string{
		"Bitcoin": "BINANCE:BTCUSDT",
		"NASDAQ":  "QQQ",
	})

	updated := m.Refresh(context.Background())
	assert.Equal(t, updated, 2)

	byName := make(map[string]model.MarketMetric)
	for _, metric := range store.MarketMetrics() {
		byName[metric.Name] = metric
	}
	assert.Equal(t, byName["Bitcoin"].Value, 70250.5)
	assert.Equal(t, byName["Bitcoin"].Trend, "up")
	assert.Equal(t, byName["NASDAQ"].Change, -0.6)
	assert.Equal(t, byName["NASDAQ"].Trend, "down")
	// Unmapped metrics keep their seeded values.
	assert.Equal(t, byName["EGX 30"].Value, 28500.45)
}

func TestMarketRefreshKeepsStaleOnFailure(t *testing.T) {
	store := newStore(t)
	before := store.MarketMetrics()

	m := NewMarketRefresher(store, &fakeQuotes{err: errors.New("rate limited")}, nil)
	updated := m.Refresh(context.Background())
	assert.Equal(t, updated, 0)
	assert.Equal(t, store.MarketMetrics(), before)
}

func TestTrendFor(t *testing.T) {
	assert.Equal(t, trendFor(1.5), "up")
	assert.Equal(t, trendFor(-0.1), "down")
	assert.Equal(t, trendFor(0), "neutral")
}
