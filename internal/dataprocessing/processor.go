package dataprocessing

import (
	"context"
	"log/slog"
	"strings"

	"bikeshare/internal/config"
	"bikeshare/internal/errors"
	"bikeshare/internal/files"
	"bikeshare/pkg/contracts/domain"
)

// Processor loads a city dataset and applies the user-selected filters.
// It is the single entry point between the interactive loop and the
// parsing, filtering and outlier-removal stages.
type Processor struct {
	cities    map[string]string
	discovery *files.Discovery
	outliers  config.OutlierConfig
	logger    *slog.Logger
}

// NewProcessor creates a processor for the configured cities.
func NewProcessor(cfg *config.Config, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cities:    cfg.Data.Cities,
		discovery: files.NewDiscovery(cfg.Data.Dir),
		outliers:  cfg.Outliers,
		logger:    logger,
	}
}

// Load reads the data file for the filtered city, drops rows with
// invalid start times, applies the month and day filters, and
// optionally strips trip-duration outliers. An empty result is not an
// error; reporters guard against it.
func (p *Processor) Load(ctx context.Context, filter domain.Filter) (*domain.Dataset, error) {
	fileName, ok := p.cities[filter.City]
	if !ok {
		return nil, errors.NewNotFoundError("city " + filter.City)
	}

	path, err := p.discovery.Resolve(fileName)
	if err != nil {
		p.logger.ErrorContext(ctx, "data file missing",
			slog.String("city", filter.City),
			slog.String("file", fileName),
			slog.Any("available", p.discovery.ListDatasets()))
		return nil, err
	}

	ds, err := ParseFile(path, p.logger)
	if err != nil {
		return nil, err
	}
	ds.City = filter.City

	before := ds.Len()
	applyMonthFilter(ds, filter.Month)
	applyDayFilter(ds, filter.Day)

	removed := 0
	if filter.Outliers != domain.OutlierNone && filter.Outliers != "" {
		removed = RemoveOutliers(ds, filter.Outliers, p.outliers, p.logger)
	}

	p.logger.InfoContext(ctx, "dataset loaded",
		slog.String("city", filter.City),
		slog.String("month", filter.Month),
		slog.String("day", filter.Day),
		slog.String("outliers", string(filter.Outliers)),
		slog.Int("parsed_rows", before),
		slog.Int("outliers_removed", removed),
		slog.Int("rows", ds.Len()))

	return ds, nil
}

// applyMonthFilter keeps rows whose derived month matches the filter.
// The wildcard "all" and unknown month names leave the dataset untouched.
func applyMonthFilter(ds *domain.Dataset, month string) {
	if month == "" || month == domain.FilterAll {
		return
	}
	index := domain.MonthIndex(month)
	if index == 0 {
		return
	}
	keepRecords(ds, func(r domain.TripRecord) bool {
		return r.Month == index
	})
}

// applyDayFilter keeps rows whose derived weekday matches the filter.
func applyDayFilter(ds *domain.Dataset, day string) {
	if day == "" || day == domain.FilterAll {
		return
	}
	want := strings.ToLower(day)
	keepRecords(ds, func(r domain.TripRecord) bool {
		return r.Weekday == want
	})
}

// keepRecords filters the record slice in place
func keepRecords(ds *domain.Dataset, keep func(domain.TripRecord) bool) {
	kept := ds.Records[:0]
	for _, r := range ds.Records {
		if keep(r) {
			kept = append(kept, r)
		}
	}
	ds.Records = kept
}
