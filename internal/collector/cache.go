package collector

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"SignalScout/internal/model"

	_ "modernc.org/sqlite"
)

// BarCache persists fetched daily closes to a SQLite database so a run can
// fall back to the last good series when the remote source is unreachable.
type BarCache struct {
	db *sql.DB
	mu sync.Mutex
}

// NewBarCache opens (or creates) the SQLite database and runs migrations.
func NewBarCache(dbPath string) (*BarCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &BarCache{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] bar cache opened: %s", dbPath)
	return c, nil
}

func (c *BarCache) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS daily_bars (
			ticker     TEXT NOT NULL,
			timestamp  INTEGER NOT NULL,
			close      REAL NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (ticker, timestamp)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bars_ticker ON daily_bars(ticker)`,
	}
	for _, s := range stmts {
		if _, err := c.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// Put replaces the cached series for a ticker.
func (c *BarCache) Put(ticker string, points []model.PricePoint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM daily_bars WHERE ticker = ?`, ticker); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear old bars: %w", err)
	}
	now := time.Now().Unix()
	for _, p := range points {
		if _, err := tx.Exec(
			`INSERT INTO daily_bars (ticker, timestamp, close, fetched_at) VALUES (?,?,?,?)`,
			ticker, p.Time.Unix(), p.Close, now,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert bar: %w", err)
		}
	}
	return tx.Commit()
}

// Get returns the cached series for a ticker in chronological order.
// An empty result is reported as a NoDataError.
func (c *BarCache) Get(ticker string) ([]model.PricePoint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows, err := c.db.Query(
		`SELECT timestamp, close FROM daily_bars WHERE ticker = ? ORDER BY timestamp`, ticker)
	if err != nil {
		return nil, fmt.Errorf("query bars: %w", err)
	}
	defer rows.Close()

	var points []model.PricePoint
	for rows.Next() {
		var ts int64
		var closePx float64
		if err := rows.Scan(&ts, &closePx); err != nil {
			return nil, fmt.Errorf("scan bar: %w", err)
		}
		points = append(points, model.PricePoint{Time: time.Unix(ts, 0), Close: closePx})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, &NoDataError{Ticker: ticker}
	}
	return points, nil
}

func (c *BarCache) Close() error {
	log.Println("[INFO] closing bar cache")
	return c.db.Close()
}
