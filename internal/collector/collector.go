// Package collector fetches daily price history and turns it into an
// indicator series. All remote I/O lives here; the calculator and strategy
// packages never perform it.
package collector

import (
	"context"
	"errors"
	"fmt"
	"log"

	"SignalScout/internal/calculator"
	"SignalScout/internal/model"
)

// Collector orchestrates data fetching and indicator computation for one
// ticker at a time. It holds no per-ticker state and is safe to use from
// concurrent workers.
type Collector struct {
	Fetcher  Fetcher
	Cache    *BarCache // optional
	Period   string
	Interval string
}

// NewCollector creates a new Collector. cache may be nil.
func NewCollector(fetcher Fetcher, cache *BarCache, period, interval string) *Collector {
	return &Collector{Fetcher: fetcher, Cache: cache, Period: period, Interval: interval}
}

// Collect fetches the ticker's daily closes and computes all indicators.
// When a cache is configured, a successful fetch refreshes it and a failed
// fetch falls back to the last cached series. A NoDataError from the source
// is passed through unwrapped so callers can classify it.
func (c *Collector) Collect(ctx context.Context, ticker string) ([]model.IndicatorRow, error) {
	points, err := c.Fetcher.FetchDailySeries(ctx, ticker, c.Period, c.Interval)
	if err != nil {
		var nd *NoDataError
		if errors.As(err, &nd) || c.Cache == nil {
			return nil, err
		}
		cached, cacheErr := c.Cache.Get(ticker)
		if cacheErr != nil {
			return nil, fmt.Errorf("fetch daily series: %w", err)
		}
		log.Printf("[WARN] fetch %s failed (%v), using %d cached bars", ticker, err, len(cached))
		points = cached
	} else if c.Cache != nil {
		if err := c.Cache.Put(ticker, points); err != nil {
			log.Printf("[WARN] cache %s: %v", ticker, err)
		}
	}

	return calculator.Enrich(points), nil
}
