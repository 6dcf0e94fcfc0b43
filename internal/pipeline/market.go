package pipeline

import (
	"context"
	"log/slog"

	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
	"github.com/rahmasleam/Neux-Mena-V5/pkg/market"
)

// DefaultSymbols maps tracked metric names to Finnhub symbols. Indices that
// Finnhub only exposes on paid plans are proxied by liquid ETFs.
var DefaultSymbols = map[string]string{
	"NASDAQ":   "QQQ",
	"S&P 500":  "SPY",
	"Bitcoin":  "BINANCE:BTCUSDT",
	"Ethereum": "BINANCE:ETHUSDT",
	"Solana":   "BINANCE:SOLUSDT",
}

type QuoteClient interface {
	Quote(ctx context.Context, symbol string) (market.Quote, error)
}

type MarketStore interface {
	MarketMetrics() []model.MarketMetric
	UpdateMetric(item model.MarketMetric) bool
}

// MarketRefresher overwrites the seeded metric values with live quotes.
// Metrics without a symbol mapping (local indices, currency pairs) keep
// their current values.
type MarketRefresher struct {
	store   MarketStore
	quotes  QuoteClient
	symbols map[string]string
}

func NewMarketRefresher(store MarketStore, quotes QuoteClient, symbols map[string]string) *MarketRefresher {
	if symbols == nil {
		symbols = DefaultSymbols
	}
	return &MarketRefresher{store: store, quotes: quotes, symbols: symbols}
}

// Refresh updates every mapped metric and returns how many took a new value.
// A failed quote leaves that metric untouched.
func (m *MarketRefresher) Refresh(ctx context.Context) int {
	updated := 0
	for _, metric := range m.store.MarketMetrics() {
		symbol, ok := m.symbols[metric.Name]
		if !ok {
			continue
		}

		quote, err := m.quotes.Quote(ctx, symbol)
		if err != nil {
			slog.Warn("keeping stale metric after quote failure", "metric", metric.Name, "symbol", symbol, "error", err)
			continue
		}

		metric.Value = quote.Value
		metric.Change = quote.Change
		metric.Trend = trendFor(quote.Change)
		if m.store.UpdateMetric(metric) {
			updated++
		}
	}
	return updated
}

func trendFor(change float64) string {
	switch {
	case change > 0:
		return "up"
	case change < 0:
		return "down"
	default:
		return "neutral"
	}
}
