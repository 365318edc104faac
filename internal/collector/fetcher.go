package collector

import (
	"context"
	"fmt"

	"SignalScout/internal/model"
)

// Fetcher defines the interface for fetching daily price history.
// period and interval use the source's notation (e.g. "6mo", "1d").
type Fetcher interface {
	FetchDailySeries(ctx context.Context, ticker, period, interval string) ([]model.PricePoint, error)
	Name() string
}

// NoDataError indicates the source returned an empty series or an all-missing
// close column for a ticker. It is terminal for that ticker only.
type NoDataError struct {
	Ticker string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data for ticker %s: is it delisted or incorrect?", e.Ticker)
}
