package dataprocessing

import (
	"log/slog"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"bikeshare/internal/config"
	"bikeshare/pkg/contracts/domain"
)

// RemoveOutliers strips trip-duration outliers from the dataset using
// the requested method and returns how many rows were removed. The
// step is skipped, with a log entry, when the duration column is
// absent, all-missing, or constant. Rows with a missing duration are
// removed along with the outliers, mirroring the bound comparisons.
func RemoveOutliers(ds *domain.Dataset, method domain.OutlierMethod, cfg config.OutlierConfig, logger *slog.Logger) int {
	if logger == nil {
		logger = slog.Default()
	}
	if ds.Empty() {
		return 0
	}
	if !ds.HasDuration {
		logger.Warn("outlier removal skipped: trip duration column absent",
			slog.String("city", ds.City))
		return 0
	}

	durations := ds.Durations()
	if len(durations) == 0 {
		logger.Warn("outlier removal skipped: trip duration all missing",
			slog.String("city", ds.City))
		return 0
	}

	sorted := append([]float64(nil), durations...)
	sort.Float64s(sorted)
	sample := stats.Sample{Xs: sorted, Sorted: true}

	var keep func(domain.TripRecord) bool
	switch method {
	case domain.OutlierIQR:
		q1 := sample.Quantile(0.25)
		q3 := sample.Quantile(0.75)
		iqr := q3 - q1
		if iqr == 0 {
			logger.Info("outlier removal skipped: constant trip duration",
				slog.String("city", ds.City))
			return 0
		}
		lower := q1 - cfg.IQRMultiplier*iqr
		upper := q3 + cfg.IQRMultiplier*iqr
		keep = func(r domain.TripRecord) bool {
			return r.HasDuration() && r.Duration >= lower && r.Duration <= upper
		}
		logger.Debug("removing IQR outliers",
			slog.Float64("q1", q1),
			slog.Float64("q3", q3),
			slog.Float64("lower", lower),
			slog.Float64("upper", upper))

	case domain.OutlierZScore:
		mean := sample.Mean()
		stddev := sample.StdDev()
		if stddev == 0 {
			logger.Info("outlier removal skipped: constant trip duration",
				slog.String("city", ds.City))
			return 0
		}
		limit := cfg.ZScoreLimit
		keep = func(r domain.TripRecord) bool {
			if !r.HasDuration() {
				return false
			}
			z := (r.Duration - mean) / stddev
			if z < 0 {
				z = -z
			}
			return z < limit
		}
		logger.Debug("removing z-score outliers",
			slog.Float64("mean", mean),
			slog.Float64("stddev", stddev),
			slog.Float64("limit", limit))

	default:
		return 0
	}

	before := ds.Len()
	keepRecords(ds, keep)
	removed := before - ds.Len()

	if removed > 0 {
		logger.Info("removed trip duration outliers",
			slog.String("city", ds.City),
			slog.String("method", string(method)),
			slog.Int("removed", removed))
	}
	return removed
}
