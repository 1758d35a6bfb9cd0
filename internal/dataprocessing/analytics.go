package dataprocessing

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/aclements/go-moremath/stats"

	"bikeshare/pkg/contracts/domain"
)

// Analyzer computes the four statistic categories over a loaded
// dataset. Every method is a stateless aggregation that yields a
// zero-row report for an empty dataset and skips statistics whose
// backing column is absent.
type Analyzer struct {
	logger      *slog.Logger
	currentYear int
}

// AnalyzerConfig holds configuration options for the Analyzer.
type AnalyzerConfig struct {
	// CurrentYear overrides the year ages are derived against.
	// Zero means the wall-clock year.
	CurrentYear int
}

// NewAnalyzer creates a new analyzer with the given configuration.
func NewAnalyzer(logger *slog.Logger, cfg AnalyzerConfig) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	year := cfg.CurrentYear
	if year == 0 {
		year = time.Now().Year()
	}
	return &Analyzer{logger: logger, currentYear: year}
}

// TimeStats computes the most frequent month, weekday and start hour.
func (a *Analyzer) TimeStats(ctx context.Context, ds *domain.Dataset) TimeStats {
	result := TimeStats{Rows: ds.Len()}
	if ds.Empty() {
		return result
	}

	months := make(map[int]int)
	weekdays := make(map[string]int)
	hours := make(map[int]int)
	for _, r := range ds.Records {
		months[r.Month]++
		weekdays[r.Weekday]++
		hours[r.Hour]++
	}

	if month, count := intMode(months); count > 0 {
		result.Month = ValueCount{Value: domain.MonthName(month), Count: count}
	}
	value, count := stringMode(weekdays)
	result.Weekday = ValueCount{Value: value, Count: count}
	result.Hour, result.HourCount = intMode(hours)

	a.logger.DebugContext(ctx, "computed time stats",
		slog.String("month", result.Month.Value),
		slog.String("weekday", result.Weekday.Value),
		slog.Int("hour", result.Hour))
	return result
}

// StationStats computes the most frequent start station, end station
// and start-to-end trip, each with its occurrence count.
func (a *Analyzer) StationStats(ctx context.Context, ds *domain.Dataset) StationStats {
	result := StationStats{Rows: ds.Len()}
	if ds.Empty() || !ds.HasStations {
		return result
	}

	starts := make(map[string]int)
	ends := make(map[string]int)
	trips := make(map[string]int)
	for _, r := range ds.Records {
		if r.StartStation != "" {
			starts[r.StartStation]++
		}
		if r.EndStation != "" {
			ends[r.EndStation]++
		}
		if r.StartStation != "" && r.EndStation != "" {
			trips[r.StartStation+" → "+r.EndStation]++
		}
	}

	value, count := stringMode(starts)
	result.Start = ValueCount{Value: value, Count: count}
	value, count = stringMode(ends)
	result.End = ValueCount{Value: value, Count: count}
	value, count = stringMode(trips)
	result.Trip = ValueCount{Value: value, Count: count}

	a.logger.DebugContext(ctx, "computed station stats",
		slog.String("start", result.Start.Value),
		slog.String("end", result.End.Value))
	return result
}

// DurationStats computes sum, mean and order statistics of the trip
// duration column, in seconds.
func (a *Analyzer) DurationStats(ctx context.Context, ds *domain.Dataset) DurationStats {
	result := DurationStats{Rows: ds.Len()}
	if ds.Empty() || !ds.HasDuration {
		return result
	}

	durations := ds.Durations()
	if len(durations) == 0 {
		return result
	}
	sort.Float64s(durations)
	sample := stats.Sample{Xs: durations, Sorted: true}

	result.Samples = len(durations)
	result.Total = sample.Sum()
	result.Mean = sample.Mean()
	result.Min = durations[0]
	result.Max = durations[len(durations)-1]
	result.Median = sample.Quantile(0.5)

	a.logger.DebugContext(ctx, "computed duration stats",
		slog.Int("samples", result.Samples),
		slog.Float64("total", result.Total),
		slog.Float64("mean", result.Mean))
	return result
}

// UserStats computes user type and gender frequencies plus birth year
// extremes, with ages derived against the analyzer's reference year.
func (a *Analyzer) UserStats(ctx context.Context, ds *domain.Dataset) UserStats {
	result := UserStats{Rows: ds.Len(), ReferenceYear: a.currentYear}
	if ds.Empty() {
		return result
	}
	result.HasGender = ds.HasGender
	result.HasBirthYear = ds.HasBirthYear

	if ds.HasUserType {
		types := make(map[string]int)
		for _, r := range ds.Records {
			if r.UserType != "" {
				types[r.UserType]++
			}
		}
		result.UserTypes = sortedCounts(types)
	}

	if ds.HasGender {
		genders := make(map[string]int)
		for _, r := range ds.Records {
			if r.Gender != "" {
				genders[r.Gender]++
			}
		}
		result.Genders = sortedCounts(genders)
	}

	if ds.HasBirthYear {
		years := make(map[int]int)
		for _, r := range ds.Records {
			if r.BirthYear > 0 {
				years[r.BirthYear]++
			}
		}
		if len(years) > 0 {
			result.CommonYear, result.CommonYearCount = intMode(years)
			for year := range years {
				if result.EarliestYear == 0 || year < result.EarliestYear {
					result.EarliestYear = year
				}
				if year > result.RecentYear {
					result.RecentYear = year
				}
			}
		}
	}

	a.logger.DebugContext(ctx, "computed user stats",
		slog.Int("user_types", len(result.UserTypes)),
		slog.Int("genders", len(result.Genders)),
		slog.Int("common_year", result.CommonYear))
	return result
}

// stringMode returns the most frequent key; ties break toward the
// lexicographically smaller value, matching a sorted mode.
func stringMode(counts map[string]int) (string, int) {
	var best string
	bestCount := 0
	for value, count := range counts {
		if count > bestCount || (count == bestCount && value < best) {
			best, bestCount = value, count
		}
	}
	return best, bestCount
}

// intMode returns the most frequent key; ties break toward the
// smaller value.
func intMode(counts map[int]int) (int, int) {
	best := 0
	bestCount := 0
	for value, count := range counts {
		if count > bestCount || (count == bestCount && value < best) {
			best, bestCount = value, count
		}
	}
	return best, bestCount
}

// sortedCounts flattens a frequency map, highest count first; ties
// order lexicographically.
func sortedCounts(counts map[string]int) []ValueCount {
	out := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		out = append(out, ValueCount{Value: value, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}
