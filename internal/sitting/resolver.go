// Package sitting resolves calendar days to Commons sitting days through a cache.
package sitting

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Veraticus/papers-index/internal/service"
	"golang.org/x/sync/singleflight"
)

// CachedResolver answers from the store when it can and asks the remote
// resolver otherwise. Store failures are logged and never fail a lookup.
//
// A day the remote fails for is remembered for the life of the resolver and
// answered with the same error. Failures are never written to the store.
type CachedResolver struct {
	remote   service.SittingDateResolver
	store    service.DateStore
	failed   map[string]error
	inflight singleflight.Group
	mu       sync.Mutex
	hits     int
	misses   int
}

// NewCachedResolver wraps remote with store. A nil store means an in-memory one.
func NewCachedResolver(remote service.SittingDateResolver, store service.DateStore) *CachedResolver {
	if store == nil {
		store = NewMemoryStore()
	}
	return &CachedResolver{remote: remote, store: store, failed: make(map[string]error)}
}

// SittingDate returns the first sitting day on or after day.
func (r *CachedResolver) SittingDate(ctx context.Context, day time.Time) (time.Time, error) {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	key := day.Format(dayLayout)

	if err := r.failure(key); err != nil {
		return time.Time{}, err
	}

	sitting, ok, err := r.store.GetSittingDate(ctx, day)
	if err != nil {
		slog.Warn("Sitting date cache read failed", "day", key, "error", err)
	}
	if ok {
		r.count(true)
		return sitting, nil
	}

	v, err, _ := r.inflight.Do(key, func() (any, error) {
		if err := r.failure(key); err != nil {
			return time.Time{}, err
		}
		// another caller may have filled the store meanwhile
		if sitting, ok, _ := r.store.GetSittingDate(ctx, day); ok {
			r.count(true)
			return sitting, nil
		}
		r.count(false)

		sitting, err := r.remote.SittingDate(ctx, day)
		if err != nil {
			if ctx.Err() == nil {
				r.recordFailure(key, err)
			}
			return time.Time{}, err
		}

		if err := r.store.SaveSittingDate(ctx, day, sitting); err != nil {
			slog.Warn("Sitting date cache write failed", "day", key, "error", err)
		}
		return sitting, nil
	})
	if err != nil {
		return time.Time{}, err
	}
	return v.(time.Time), nil
}

func (r *CachedResolver) failure(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed[key]
}

func (r *CachedResolver) recordFailure(key string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed[key] = err
	slog.Warn("Could not resolve sitting date, dates on this day will be left empty", "day", key, "error", err)
}

func (r *CachedResolver) count(hit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if hit {
		r.hits++
	} else {
		r.misses++
	}
}

// Stats returns cache hits and misses so far.
func (r *CachedResolver) Stats() (hits, misses int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hits, r.misses
}
