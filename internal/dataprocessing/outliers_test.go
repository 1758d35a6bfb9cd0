package dataprocessing

import (
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"bikeshare/internal/config"
	"bikeshare/pkg/contracts/domain"
)

// durationDataset builds a dataset whose records carry only durations.
func durationDataset(durations ...float64) *domain.Dataset {
	ds := &domain.Dataset{HasDuration: true}
	for _, d := range durations {
		ds.Records = append(ds.Records, domain.TripRecord{Duration: d})
	}
	ds.SourceRows = ds.Len()
	return ds
}

func TestRemoveOutliers_IQR(t *testing.T) {
	// R8 quantiles give Q1=2.92, Q3=8.08 -> bounds [-4.83, 15.83];
	// only 1000 falls outside.
	ds := durationDataset(1, 2, 3, 4, 5, 6, 7, 8, 9, 1000)

	removed := RemoveOutliers(ds, domain.OutlierIQR, config.Default().Outliers, slog.Default())

	assert.Equal(t, 1, removed)
	assert.Equal(t, 9, ds.Len())
	for _, r := range ds.Records {
		assert.LessOrEqual(t, r.Duration, 15.84)
	}
}

func TestRemoveOutliers_ZScore(t *testing.T) {
	durations := make([]float64, 0, 20)
	for i := 0; i < 19; i++ {
		durations = append(durations, 0)
	}
	durations = append(durations, 100) // |z| ≈ 4.25
	ds := durationDataset(durations...)

	removed := RemoveOutliers(ds, domain.OutlierZScore, config.Default().Outliers, slog.Default())

	assert.Equal(t, 1, removed)
	assert.Equal(t, 19, ds.Len())
}

func TestRemoveOutliers_Skipped(t *testing.T) {
	tests := []struct {
		name   string
		ds     *domain.Dataset
		method domain.OutlierMethod
	}{
		{
			name:   "constant column is a no-op under IQR",
			ds:     durationDataset(42, 42, 42, 42, 42),
			method: domain.OutlierIQR,
		},
		{
			name:   "constant column is a no-op under z-score",
			ds:     durationDataset(42, 42, 42, 42, 42),
			method: domain.OutlierZScore,
		},
		{
			name:   "all-missing durations",
			ds:     durationDataset(math.NaN(), math.NaN()),
			method: domain.OutlierIQR,
		},
		{
			name: "duration column absent",
			ds: &domain.Dataset{
				Records: []domain.TripRecord{{Duration: math.NaN()}},
			},
			method: domain.OutlierIQR,
		},
		{
			name:   "method none",
			ds:     durationDataset(1, 2, 3, 1000),
			method: domain.OutlierNone,
		},
		{
			name:   "empty dataset",
			ds:     &domain.Dataset{HasDuration: true},
			method: domain.OutlierIQR,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.ds.Len()
			removed := RemoveOutliers(tt.ds, tt.method, config.Default().Outliers, slog.Default())
			assert.Equal(t, 0, removed)
			assert.Equal(t, before, tt.ds.Len())
		})
	}
}

func TestRemoveOutliers_NeverIncreasesRows(t *testing.T) {
	for _, method := range []domain.OutlierMethod{domain.OutlierIQR, domain.OutlierZScore} {
		ds := durationDataset(5, 10, 15, 20, 25, 30, 10000)
		before := ds.Len()
		RemoveOutliers(ds, method, config.Default().Outliers, slog.Default())
		assert.LessOrEqual(t, ds.Len(), before, "method %s", method)
	}
}

func TestRemoveOutliers_DropsMissingDurations(t *testing.T) {
	ds := durationDataset(1, 2, 3, 4, 5, 6, 7, 8, 9, math.NaN())

	removed := RemoveOutliers(ds, domain.OutlierIQR, config.Default().Outliers, slog.Default())

	assert.Equal(t, 1, removed, "rows without a duration go with the outliers")
	for _, r := range ds.Records {
		assert.True(t, r.HasDuration())
	}
}
