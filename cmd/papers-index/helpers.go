package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/Veraticus/papers-index/internal/calendar"
	"github.com/Veraticus/papers-index/internal/cli"
	"github.com/Veraticus/papers-index/internal/config"
	"github.com/Veraticus/papers-index/internal/index"
	"github.com/Veraticus/papers-index/internal/model"
	"github.com/Veraticus/papers-index/internal/output"
	"github.com/Veraticus/papers-index/internal/service"
	"github.com/Veraticus/papers-index/internal/sitting"
	"github.com/Veraticus/papers-index/internal/storage"
	"github.com/spf13/viper"
)

// loadConfig reads the resolved settings from viper.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// initDateStore opens the configured sitting date cache.
func initDateStore(ctx context.Context, cfg *config.Config) (service.DateStore, error) {
	switch cfg.CacheBackend {
	case config.CacheMemory:
		return sitting.NewMemoryStore(), nil

	case config.CacheRedis:
		store, err := storage.NewRedisStore(ctx, cfg.RedisAddr, cfg.CacheTTL)
		if err != nil {
			return nil, err
		}
		return store, nil

	default:
		store, err := storage.NewSQLiteStorage(cfg.CachePath, cfg.CacheTTL)
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return store, nil
	}
}

func newCalendarClient(cfg *config.Config) *calendar.Client {
	return calendar.NewClient(cfg.CalendarURL,
		calendar.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
}

// buildAndWrite runs the index pipeline over records and writes the result.
// A nil resolver leaves dates as they appear in the feed.
func buildAndWrite(ctx context.Context, records []model.RawRecord, resolver service.SittingDateResolver, target string) error {
	builder := index.NewBuilder(index.NewNormalizer(resolver), index.NewClassifier())
	doc, stats := builder.Build(ctx, records)

	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := output.WriteFile(target, doc)
	if err != nil {
		return err
	}

	rows := []cli.Row{
		{Label: "Records", Value: stats.Records},
		{Label: "Papers", Value: stats.Papers},
		{Label: "Side titles", Value: stats.SideTitles},
		{Label: "Groups", Value: stats.Groups},
		{Label: "Entries", Value: stats.Entries},
	}
	if cached, ok := resolver.(*sitting.CachedResolver); ok {
		hits, misses := cached.Stats()
		rows = append(rows, cli.Row{Label: "Date lookups", Value: fmt.Sprintf("%d cached, %d fetched", hits, misses)})
	}
	rows = append(rows, cli.Row{Label: "Output", Value: path})

	if _, err := fmt.Fprintln(os.Stdout, cli.RenderBox("Papers index", cli.RenderRows(rows))); err != nil {
		slog.Warn("Failed to write summary", "error", err)
	}
	fmt.Println(cli.FormatSuccess("Created: " + path))

	return nil
}
