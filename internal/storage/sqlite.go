// Package storage provides the persistent backing stores for cached sitting dates.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const dayLayout = "2006-01-02"

// SQLiteStorage caches sitting dates in a SQLite database.
// Entries older than the TTL are treated as missing.
type SQLiteStorage struct {
	db     *sql.DB
	now    func() time.Time
	dbPath string
	ttl    time.Duration
}

// NewSQLiteStorage creates a new SQLite storage instance.
// A zero ttl keeps entries forever.
func NewSQLiteStorage(dbPath string, ttl time.Duration) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// GetSittingDate returns the cached sitting date for day.
func (s *SQLiteStorage) GetSittingDate(ctx context.Context, day time.Time) (time.Time, bool, error) {
	if err := validateContext(ctx); err != nil {
		return time.Time{}, false, err
	}

	var sitting string
	var cachedAt time.Time
	err := s.db.QueryRowContext(ctx,
		`SELECT sitting_date, cached_at FROM sitting_dates WHERE day = ?`,
		day.Format(dayLayout),
	).Scan(&sitting, &cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to query sitting date: %w", err)
	}

	if s.ttl > 0 && s.now().Sub(cachedAt) > s.ttl {
		return time.Time{}, false, nil
	}

	parsed, err := time.Parse(dayLayout, sitting)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: sitting date %q", ErrInvalidDate, sitting)
	}

	return parsed, true, nil
}

// SaveSittingDate stores the sitting date for day, replacing any previous entry.
func (s *SQLiteStorage) SaveSittingDate(ctx context.Context, day, sitting time.Time) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDates(day, sitting); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sitting_dates (day, sitting_date, cached_at)
		VALUES (?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			sitting_date = excluded.sitting_date,
			cached_at = excluded.cached_at`,
		day.Format(dayLayout), sitting.Format(dayLayout), s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save sitting date: %w", err)
	}

	return nil
}

// ClearSittingDates removes every cached entry.
func (s *SQLiteStorage) ClearSittingDates(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sitting_dates`); err != nil {
		return fmt.Errorf("failed to clear sitting dates: %w", err)
	}
	return nil
}

// CountSittingDates returns how many entries are cached, expired or not.
func (s *SQLiteStorage) CountSittingDates(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sitting_dates`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count sitting dates: %w", err)
	}
	return n, nil
}
