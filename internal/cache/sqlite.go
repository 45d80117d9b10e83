package cache

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"HexOracle/internal/collector"
	"HexOracle/internal/model"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// freshnessSlack tolerates weekends and holidays when deciding whether the
// cached tail of a range is recent enough to skip a refetch.
const freshnessSlack = 4 * 24 * time.Hour

// SQLiteCache wraps a Fetcher and caches daily bars in a SQLite database,
// so repeated readings over the same window do not hit the collaborator
// again. Only collaborator data is cached; divination results are never
// stored.
type SQLiteCache struct {
	db    *sql.DB
	inner collector.Fetcher
	mu    sync.Mutex
	log   zerolog.Logger
}

// NewSQLiteCache opens (or creates) the database, runs migrations, and
// wraps the given fetcher.
func NewSQLiteCache(dbPath string, inner collector.Fetcher, log zerolog.Logger) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &SQLiteCache{db: db, inner: inner, log: log}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("bar cache opened")
	return c, nil
}

func (c *SQLiteCache) migrate() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS daily_bars (
		symbol TEXT NOT NULL,
		date   TEXT NOT NULL,
		open   REAL NOT NULL,
		close  REAL NOT NULL,
		PRIMARY KEY (symbol, date)
	)`)
	return err
}

func (c *SQLiteCache) Name() string { return c.inner.Name() + "+cache" }

// FetchDailyBars serves the range from cache when the cached rows span the
// whole requested range; otherwise it delegates to the wrapped fetcher and
// stores what came back. Daily bars are immutable once a session has
// closed, so cached rows never expire.
func (c *SQLiteCache) FetchDailyBars(ctx context.Context, symbol string, start, end time.Time) ([]model.Bar, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cached, err := c.load(ctx, symbol, start, end)
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("cache read failed, delegating")
	} else if c.covers(cached, start, end) {
		c.log.Debug().Str("symbol", symbol).Int("bars", len(cached)).Msg("cache hit")
		return cached, nil
	}

	bars, err := c.inner.FetchDailyBars(ctx, symbol, start, end)
	if err != nil {
		return nil, err
	}
	if err := c.store(ctx, symbol, bars); err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("cache write failed")
	}
	return bars, nil
}

// covers reports whether cached rows span the whole requested range,
// allowing slack for non-trading days at both ends. A cached subset that
// starts later than the caller asked for must not be served: downstream
// derivations run over the entire returned sample, so a silently narrowed
// range would change their result. Ranges ending in the future are
// measured against now.
func (c *SQLiteCache) covers(bars []model.Bar, start, end time.Time) bool {
	if len(bars) == 0 {
		return false
	}
	oldest := bars[0].Date
	if oldest.After(start.Add(freshnessSlack)) {
		return false
	}
	horizon := end
	if now := time.Now(); horizon.After(now) {
		horizon = now
	}
	newest := bars[len(bars)-1].Date
	return !newest.Before(horizon.Add(-freshnessSlack))
}

func (c *SQLiteCache) load(ctx context.Context, symbol string, start, end time.Time) ([]model.Bar, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT date, open, close FROM daily_bars
		 WHERE symbol = ? AND date >= ? AND date <= ?
		 ORDER BY date ASC`,
		symbol, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bars []model.Bar
	for rows.Next() {
		var dateStr string
		var b model.Bar
		if err := rows.Scan(&dateStr, &b.Open, &b.Close); err != nil {
			return nil, err
		}
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt date %q: %w", dateStr, err)
		}
		b.Date = d
		bars = append(bars, b)
	}
	return bars, rows.Err()
}

func (c *SQLiteCache) store(ctx context.Context, symbol string, bars []model.Bar) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, b := range bars {
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO daily_bars (symbol, date, open, close) VALUES (?,?,?,?)`,
			symbol, b.Date.Format("2006-01-02"), b.Open, b.Close); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (c *SQLiteCache) Close() error {
	c.log.Info().Msg("closing bar cache")
	return c.db.Close()
}
