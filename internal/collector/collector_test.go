package collector

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"SignalScout/internal/model"
)

func fixedPoints(n int) []model.PricePoint {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, n)
	for i := range points {
		points[i] = model.PricePoint{Time: start.AddDate(0, 0, i), Close: 100 + float64(i)}
	}
	return points
}

func TestCollect_AlignedRows(t *testing.T) {
	points := fixedPoints(60)
	col := NewCollector(&MockFetcher{Points: points}, nil, "6mo", "1d")

	rows, err := col.Collect(context.Background(), "TEST")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(rows) != len(points) {
		t.Fatalf("expected %d rows, got %d", len(points), len(rows))
	}
	if !rows[0].Time.Equal(points[0].Time) {
		t.Error("rows must be index aligned with the fetched series")
	}
}

func TestCollect_NoDataPassesThrough(t *testing.T) {
	col := NewCollector(&MockFetcher{Err: &NoDataError{Ticker: "ZZZZ"}}, nil, "6mo", "1d")

	_, err := col.Collect(context.Background(), "ZZZZ")
	var nd *NoDataError
	if !errors.As(err, &nd) {
		t.Fatalf("expected NoDataError, got %v", err)
	}
	if nd.Ticker != "ZZZZ" {
		t.Errorf("expected ticker ZZZZ in error, got %q", nd.Ticker)
	}
}

func TestCollect_CacheFallback(t *testing.T) {
	cache, err := NewBarCache(filepath.Join(t.TempDir(), "bars.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer cache.Close()

	points := fixedPoints(40)

	// First run populates the cache.
	col := NewCollector(&MockFetcher{Points: points}, cache, "6mo", "1d")
	if _, err := col.Collect(context.Background(), "AAPL"); err != nil {
		t.Fatalf("first collect: %v", err)
	}

	// Second run: source down, cache serves.
	col = NewCollector(&MockFetcher{Err: fmt.Errorf("connection refused")}, cache, "6mo", "1d")
	rows, err := col.Collect(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("expected cache fallback, got error: %v", err)
	}
	if len(rows) != len(points) {
		t.Fatalf("expected %d cached rows, got %d", len(points), len(rows))
	}
}

func TestCollect_NoDataSkipsCacheFallback(t *testing.T) {
	cache, err := NewBarCache(filepath.Join(t.TempDir(), "bars.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer cache.Close()
	if err := cache.Put("GONE", fixedPoints(10)); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	// A NoDataError is a statement about the ticker, not about connectivity:
	// stale cached bars must not mask it.
	col := NewCollector(&MockFetcher{Err: &NoDataError{Ticker: "GONE"}}, cache, "6mo", "1d")
	_, err = col.Collect(context.Background(), "GONE")
	var nd *NoDataError
	if !errors.As(err, &nd) {
		t.Fatalf("expected NoDataError, got %v", err)
	}
}

func TestBarCache_RoundTrip(t *testing.T) {
	cache, err := NewBarCache(filepath.Join(t.TempDir(), "bars.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer cache.Close()

	points := fixedPoints(5)
	if err := cache.Put("MSFT", points); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := cache.Get("MSFT")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != len(points) {
		t.Fatalf("expected %d points, got %d", len(points), len(got))
	}
	for i := range got {
		if got[i].Close != points[i].Close || !got[i].Time.Equal(points[i].Time) {
			t.Errorf("point %d: got %+v, want %+v", i, got[i], points[i])
		}
	}

	// Put replaces, never appends.
	if err := cache.Put("MSFT", fixedPoints(3)); err != nil {
		t.Fatalf("second put: %v", err)
	}
	got, err = cache.Get("MSFT")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected replacement with 3 points, got %d", len(got))
	}
}

func TestBarCache_MissingTicker(t *testing.T) {
	cache, err := NewBarCache(filepath.Join(t.TempDir(), "bars.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer cache.Close()

	_, err = cache.Get("NOPE")
	var nd *NoDataError
	if !errors.As(err, &nd) {
		t.Fatalf("expected NoDataError for empty cache, got %v", err)
	}
}
