package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/papers-index/internal/common"
	"github.com/Veraticus/papers-index/internal/paperslaid"
	"github.com/Veraticus/papers-index/internal/service"
	"github.com/Veraticus/papers-index/internal/sitting"
	"github.com/spf13/cobra"
)

func fromFileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-file INPUT",
		Short: "Create the papers index from a papers-laid XML file",
		Long: `Create the papers index XML from a raw papers-laid XML file already on
your computer, such as one saved by from-api.

If you do not have a raw XML file, use from-api instead.`,
		Args: cobra.ExactArgs(1),
		RunE: runFromFile,
	}

	cmd.Flags().StringP("output", "o", "", "directory or file path for the output XML")
	cmd.Flags().Bool("no-sitting-dates", false, "use laid dates as given instead of moving them to sitting days")

	return cmd
}

func runFromFile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	outputPath, _ := cmd.Flags().GetString("output")
	noSitting, _ := cmd.Flags().GetBool("no-sitting-dates")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if outputPath == "" {
		outputPath = cfg.OutputPath
	}

	f, err := os.Open(args[0])
	if err != nil {
		return common.NewUserError(fmt.Sprintf("Cannot open %s", args[0]), err)
	}
	defer func() { _ = f.Close() }()

	records, err := paperslaid.ParseDailyPapers(f)
	if err != nil {
		return common.NewUserError(fmt.Sprintf("%s is not a papers-laid XML file", args[0]), err)
	}
	slog.Info("Read papers file", "path", args[0], "papers", len(records))

	var resolver service.SittingDateResolver
	if !noSitting {
		store, err := initDateStore(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to open sitting date cache: %w", err)
		}
		defer func() { _ = store.Close() }()
		resolver = sitting.NewCachedResolver(newCalendarClient(cfg), store)
	}

	return buildAndWrite(ctx, records, resolver, outputPath)
}
