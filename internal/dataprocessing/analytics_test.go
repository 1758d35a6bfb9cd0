package dataprocessing

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/pkg/contracts/domain"
)

// statDataset is a small fixture with hand-computable statistics.
func statDataset() *domain.Dataset {
	return &domain.Dataset{
		City:         "testville",
		HasDuration:  true,
		HasStations:  true,
		HasUserType:  true,
		HasGender:    true,
		HasBirthYear: true,
		Records: []domain.TripRecord{
			{Month: 6, Weekday: "monday", Hour: 8, Duration: 100, StartStation: "A", EndStation: "X", UserType: "Subscriber", Gender: "Male", BirthYear: 1990},
			{Month: 6, Weekday: "monday", Hour: 17, Duration: 200, StartStation: "A", EndStation: "Y", UserType: "Subscriber", Gender: "Female", BirthYear: 1990},
			{Month: 6, Weekday: "tuesday", Hour: 17, Duration: 300, StartStation: "A", EndStation: "X", UserType: "Subscriber", Gender: "Male", BirthYear: 1985},
			{Month: 5, Weekday: "sunday", Hour: 17, Duration: 400, StartStation: "B", EndStation: "X", UserType: "Customer", Gender: "Male"},
			{Month: 5, Weekday: "monday", Hour: 9, Duration: 500, StartStation: "B", EndStation: "Y", UserType: "Customer", Gender: "", BirthYear: 2000},
		},
	}
}

func testAnalyzer() *Analyzer {
	return NewAnalyzer(slog.Default(), AnalyzerConfig{CurrentYear: 2024})
}

func TestAnalyzer_TimeStats(t *testing.T) {
	s := testAnalyzer().TimeStats(context.Background(), statDataset())

	assert.Equal(t, 5, s.Rows)
	assert.Equal(t, ValueCount{Value: "june", Count: 3}, s.Month)
	assert.Equal(t, ValueCount{Value: "monday", Count: 3}, s.Weekday)
	assert.Equal(t, 17, s.Hour)
	assert.Equal(t, 3, s.HourCount)
}

func TestAnalyzer_StationStats(t *testing.T) {
	s := testAnalyzer().StationStats(context.Background(), statDataset())

	assert.Equal(t, ValueCount{Value: "A", Count: 3}, s.Start)
	assert.Equal(t, ValueCount{Value: "X", Count: 3}, s.End)
	assert.Equal(t, ValueCount{Value: "A → X", Count: 2}, s.Trip)
}

func TestAnalyzer_DurationStats(t *testing.T) {
	s := testAnalyzer().DurationStats(context.Background(), statDataset())

	assert.Equal(t, 5, s.Samples)
	assert.InDelta(t, 1500.0, s.Total, 1e-9)
	assert.InDelta(t, 300.0, s.Mean, 1e-9)
	assert.InDelta(t, 100.0, s.Min, 1e-9)
	assert.InDelta(t, 500.0, s.Max, 1e-9)
	assert.InDelta(t, 300.0, s.Median, 1e-9)
}

func TestAnalyzer_UserStats(t *testing.T) {
	s := testAnalyzer().UserStats(context.Background(), statDataset())

	require.Len(t, s.UserTypes, 2)
	assert.Equal(t, ValueCount{Value: "Subscriber", Count: 3}, s.UserTypes[0])
	assert.Equal(t, ValueCount{Value: "Customer", Count: 2}, s.UserTypes[1])

	// The blank gender cell is not counted.
	require.Len(t, s.Genders, 2)
	assert.Equal(t, ValueCount{Value: "Male", Count: 3}, s.Genders[0])
	assert.Equal(t, ValueCount{Value: "Female", Count: 1}, s.Genders[1])

	assert.Equal(t, 1985, s.EarliestYear)
	assert.Equal(t, 2000, s.RecentYear)
	assert.Equal(t, 1990, s.CommonYear)
	assert.Equal(t, 2, s.CommonYearCount)
	assert.Equal(t, 2024, s.ReferenceYear)
}

func TestAnalyzer_EmptyDataset(t *testing.T) {
	analyzer := testAnalyzer()
	ctx := context.Background()
	empty := &domain.Dataset{City: "testville"}

	assert.NotPanics(t, func() {
		times := analyzer.TimeStats(ctx, empty)
		assert.Equal(t, 0, times.Rows)
		assert.False(t, times.Month.Ok())

		stations := analyzer.StationStats(ctx, empty)
		assert.False(t, stations.Start.Ok())

		durations := analyzer.DurationStats(ctx, empty)
		assert.Equal(t, 0, durations.Samples)

		users := analyzer.UserStats(ctx, empty)
		assert.Empty(t, users.UserTypes)
	})

	assert.NotPanics(t, func() {
		var nilDS *domain.Dataset
		assert.Equal(t, 0, analyzer.TimeStats(ctx, nilDS).Rows)
	})
}

func TestAnalyzer_AbsentColumns(t *testing.T) {
	ds := &domain.Dataset{
		City:    "washington",
		Records: []domain.TripRecord{{Month: 1, Weekday: "sunday", Hour: 9}},
	}
	analyzer := testAnalyzer()
	ctx := context.Background()

	stations := analyzer.StationStats(ctx, ds)
	assert.False(t, stations.Start.Ok())

	durations := analyzer.DurationStats(ctx, ds)
	assert.Equal(t, 0, durations.Samples)

	users := analyzer.UserStats(ctx, ds)
	assert.False(t, users.HasGender)
	assert.False(t, users.HasBirthYear)
	assert.Empty(t, users.UserTypes)
}

func TestModeTieBreaks(t *testing.T) {
	value, count := stringMode(map[string]int{"b": 2, "a": 2, "c": 1})
	assert.Equal(t, "a", value, "ties resolve to the smaller value")
	assert.Equal(t, 2, count)

	month, count := intMode(map[int]int{6: 2, 3: 2, 1: 1})
	assert.Equal(t, 3, month)
	assert.Equal(t, 2, count)
}

func TestSortedCounts(t *testing.T) {
	out := sortedCounts(map[string]int{"x": 1, "y": 3, "z": 3})
	require.Len(t, out, 3)
	assert.Equal(t, ValueCount{Value: "y", Count: 3}, out[0])
	assert.Equal(t, ValueCount{Value: "z", Count: 3}, out[1])
	assert.Equal(t, ValueCount{Value: "x", Count: 1}, out[2])
}
