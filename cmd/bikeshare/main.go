package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"bikeshare/internal/config"
	"bikeshare/internal/console"
	"bikeshare/internal/dataprocessing"
	apperrors "bikeshare/internal/errors"
	"bikeshare/internal/infrastructure"
)

// app bundles the long-lived pieces of the interactive session.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	collector *console.Collector
	renderer  *console.Renderer
	pager     *console.Pager
	processor *dataprocessing.Processor
	analyzer  *dataprocessing.Analyzer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	logger.Info("Starting bikeshare analysis",
		slog.String("version", config.AppVersion),
		slog.String("data_dir", cfg.Data.Dir),
		slog.Any("cities", cfg.CityKeys()))

	a := &app{
		cfg:       cfg,
		logger:    logger,
		collector: console.NewCollector(os.Stdin, os.Stdout, logger),
		renderer:  console.NewRenderer(os.Stdout),
		pager:     console.NewPager(os.Stdout, cfg.Display.PageSize),
		processor: dataprocessing.NewProcessor(cfg, logger),
		analyzer:  dataprocessing.NewAnalyzer(logger, dataprocessing.AnalyzerConfig{}),
	}

	if err := a.run(); err != nil {
		logger.Error("Session ended with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run drives the interactive loop: collect filters, load, report,
// page, restart. Load errors report a message and fall through to the
// restart prompt; only input stream failures end the session.
func (a *app) run() error {
	for {
		ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

		if err := a.analyze(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}
			return err
		}

		fmt.Println("\n==================================================")
		again, err := a.collector.Confirm("Would you like to restart? Enter yes or no: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}
			return err
		}
		if !again {
			fmt.Println("\nThank you for using the Bikeshare Data Analysis tool!")
			fmt.Println("==================================================")
			return nil
		}
	}
}

// analyze runs a single pass over one city dataset.
func (a *app) analyze(ctx context.Context) error {
	filter, err := a.collector.CollectFilters(a.cfg.CityKeys())
	if err != nil {
		return err
	}

	fmt.Printf("\nLoading data for %s...\n", filter.City)
	ds, err := a.processor.Load(ctx, filter)
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to load data",
			slog.String("city", filter.City),
			slog.String("error", err.Error()))
		switch apperrors.TypeOf(err) {
		case apperrors.ErrTypeNotFound:
			fmt.Println("\nData file for this city was not found. Please try again.")
		case apperrors.ErrTypeNoData, apperrors.ErrTypeParsing:
			fmt.Println("\nThe data file could not be read. Please try again.")
		default:
			fmt.Println("\nFailed to load data. Please try again.")
		}
		return nil
	}

	fmt.Printf("Data loaded: %d records found\n", ds.Len())
	if ds.SourceRows != ds.Len() {
		fmt.Printf("Filtered from %d total records.\n", ds.SourceRows)
	}

	if ds.Empty() {
		fmt.Println("\nNo data available for the selected filters.")
		fmt.Println("Please try different filter options.")
		return nil
	}

	start := time.Now()
	a.renderer.RenderTime(a.analyzer.TimeStats(ctx, ds), time.Since(start))

	start = time.Now()
	a.renderer.RenderStations(a.analyzer.StationStats(ctx, ds), time.Since(start))

	start = time.Now()
	a.renderer.RenderDuration(a.analyzer.DurationStats(ctx, ds), time.Since(start))

	start = time.Now()
	a.renderer.RenderUsers(a.analyzer.UserStats(ctx, ds), time.Since(start))

	return a.pager.Run(ds, a.collector.Confirm)
}
