// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/papers-index/internal/model"
)

// SittingDateResolver maps a calendar date to the nearest Commons sitting
// date on or after it. Implementations must return the same answer for the
// same input.
type SittingDateResolver interface {
	SittingDate(ctx context.Context, day time.Time) (time.Time, error)
}

// DateStore is the backing store for cached sitting dates.
type DateStore interface {
	// GetSittingDate returns the cached sitting date for day, if present.
	GetSittingDate(ctx context.Context, day time.Time) (time.Time, bool, error)
	// SaveSittingDate records the sitting date for day.
	SaveSittingDate(ctx context.Context, day, sitting time.Time) error
	// ClearSittingDates removes every cached entry.
	ClearSittingDates(ctx context.Context) error
	Close() error
}

// SessionResolver turns a session code such as "2017-19" into the date range
// papers should be requested for.
type SessionResolver interface {
	SessionDates(ctx context.Context, code string) (DateRange, error)
}

// RecordFetcher downloads raw paper records for a date range, oldest first.
type RecordFetcher interface {
	FetchRange(ctx context.Context, dates DateRange) ([]model.RawRecord, error)
}

// DateRange represents a time period with start and end dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days returns every calendar day in the range, inclusive.
func (r DateRange) Days() []time.Time {
	if r.End.Before(r.Start) {
		return nil
	}
	start := truncateDay(r.Start)
	end := truncateDay(r.End)
	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// BuildStats summarises one index build.
type BuildStats struct {
	Records    int
	Papers     int
	SideTitles int
	Groups     int
	Entries    int
}
