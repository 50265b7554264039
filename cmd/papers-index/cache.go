package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/papers-index/internal/cli"
	"github.com/Veraticus/papers-index/internal/config"
	"github.com/spf13/cobra"
)

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the sitting date cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached sitting date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initDateStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.ClearSittingDates(cmd.Context()); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Cleared %s sitting date cache", cfg.CacheBackend)))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show how many sitting dates are cached",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initDateStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			counter, ok := store.(interface {
				CountSittingDates(ctx context.Context) (int, error)
			})
			if !ok {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("The %s cache cannot report its size", cfg.CacheBackend)))
				return nil
			}

			n, err := counter.CountSittingDates(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatTitle("Sitting date cache"))
			fmt.Println(cli.RenderRows(statsRows(cfg, n)))
			return nil
		},
	})

	return cmd
}

func statsRows(cfg *config.Config, entries int) []cli.Row {
	rows := []cli.Row{{Label: "Backend", Value: cfg.CacheBackend}}
	switch cfg.CacheBackend {
	case config.CacheSQLite:
		rows = append(rows, cli.Row{Label: "Path", Value: cfg.CachePath})
	case config.CacheRedis:
		rows = append(rows, cli.Row{Label: "Address", Value: cfg.RedisAddr})
	}
	return append(rows,
		cli.Row{Label: "Entries", Value: entries},
		cli.Row{Label: "TTL", Value: cfg.CacheTTL})
}
