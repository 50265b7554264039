package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/Veraticus/papers-index/internal/cli"
	"github.com/Veraticus/papers-index/internal/common"
	"github.com/Veraticus/papers-index/internal/config"
	"github.com/Veraticus/papers-index/internal/model"
	"github.com/Veraticus/papers-index/internal/paperslaid"
	"github.com/Veraticus/papers-index/internal/service"
	"github.com/Veraticus/papers-index/internal/sitting"
	"github.com/spf13/cobra"
)

func fromAPICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-api SESSION",
		Short: "Create the papers index by downloading a session's papers",
		Long: `Create the papers index XML by querying the papers-laid API.

SESSION is a parliamentary session entered in the form YYYY-YY, for
example 2017-19. For a list of parliamentary sessions check:
https://whatson-api.parliament.uk/calendar/sessions/list.json

The downloaded XML is saved next to the output as
as_downloaded_papers_SESSION.xml unless --discard-raw-xml is given.`,
		Args: cobra.ExactArgs(1),
		RunE: runFromAPI,
	}

	cmd.Flags().StringP("output", "o", "", "directory or file path for the output XML")
	cmd.Flags().Bool("discard-raw-xml", false, "do not save the downloaded XML")
	cmd.Flags().Int("workers", 0, "days to download at once (default from config)")

	return cmd
}

// apiDeps are the remote services from-api talks to.
type apiDeps struct {
	sessions service.SessionResolver
	sittings service.SittingDateResolver
	// fetcher is built once the number of days to download is known.
	fetcher func(days int) service.RecordFetcher
}

func newAPIDeps(cfg *config.Config, workers int) apiDeps {
	cal := newCalendarClient(cfg)
	return apiDeps{
		sessions: cal,
		sittings: cal,
		fetcher: func(days int) service.RecordFetcher {
			bar := cli.NewProgressBar(os.Stderr, days, "Downloading papers...")
			return paperslaid.NewClient(cfg.PapersURL,
				paperslaid.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
				paperslaid.WithWorkers(workers),
				paperslaid.WithProgress(cli.Step(bar)))
		},
	}
}

func runFromAPI(cmd *cobra.Command, args []string) error {
	session := args[0]
	outputPath, _ := cmd.Flags().GetString("output")
	discardRaw, _ := cmd.Flags().GetBool("discard-raw-xml")
	workers, _ := cmd.Flags().GetInt("workers")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if outputPath == "" {
		outputPath = cfg.OutputPath
	}
	if workers <= 0 {
		workers = cfg.Workers
	}

	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx := interrupts.HandleInterrupts(cmd.Context(), "Nothing was written.")
	defer interrupts.Stop()

	deps := newAPIDeps(cfg, workers)

	dates, err := deps.sessions.SessionDates(ctx, session)
	if errors.Is(err, common.ErrSessionNotFound) {
		return common.NewUserError(
			fmt.Sprintf("Dates for session %s could not be found. Check %s/sessions/list.json", session, cfg.CalendarURL), err)
	}
	if err != nil {
		return common.NewUserError("Could not get session data from the calendar API", err)
	}

	days := dates.Days()
	slog.Info("Getting data from papers laid",
		"session", session,
		"from", dates.Start.Format("2006-01-02"),
		"to", dates.End.Format("2006-01-02"),
		"days", len(days))

	records, err := deps.fetcher(len(days)).FetchRange(ctx, dates)
	if err != nil {
		if interrupts.WasInterrupted() {
			return ctx.Err()
		}
		return common.NewUserError(
			"Could not get XML from the papers laid API. Check that you are connected to the parliament network", err)
	}

	if !discardRaw {
		rawPath := config.SiblingPath(outputPath, fmt.Sprintf(config.DefaultRawTemplate, session))
		if err := saveRaw(rawPath, records); err != nil {
			return err
		}
		fmt.Println(cli.FormatInfo("Downloaded: " + rawPath))
	}

	store, err := initDateStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open sitting date cache: %w", err)
	}
	defer func() { _ = store.Close() }()

	resolver := sitting.NewCachedResolver(deps.sittings, store)
	return buildAndWrite(ctx, records, resolver, outputPath)
}

func saveRaw(path string, records []model.RawRecord) error {
	f, err := os.Create(path) // #nosec G304 -- path is built from user supplied output location
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := paperslaid.WriteRaw(f, records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
