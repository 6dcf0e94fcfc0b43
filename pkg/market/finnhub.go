// Package market fetches live quotes for the tracked market metrics.
package market

import (
	"context"
	"fmt"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// Quote is one live reading for a tracked symbol. Change is the percent
// move since the previous close.
type Quote struct {
	Value  float64
	Change float64
}

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Quote(ctx context.Context, symbol string) (Quote, error) {
	res, _, err := c.client.Quote(ctx).Symbol(symbol).Execute()
	if err != nil {
		return Quote{}, err
	}

	var q Quote
	if res.C != nil {
		q.Value = float64(*res.C)
	}
	if res.Dp != nil {
		q.Change = float64(*res.Dp)
	}
	if q.Value == 0 {
		return Quote{}, fmt.Errorf("no quote data for %s", symbol)
	}
	return q, nil
}
