package domain

import (
	"math"
	"time"
)

// TripRecord represents a single bicycle-share trip
type TripRecord struct {
	StartTime    time.Time `json:"start_time"`
	Duration     float64   `json:"duration,omitempty"` // seconds; NaN when missing
	StartStation string    `json:"start_station,omitempty"`
	EndStation   string    `json:"end_station,omitempty"`
	UserType     string    `json:"user_type,omitempty"`
	Gender       string    `json:"gender,omitempty"`     // empty when absent
	BirthYear    int       `json:"birth_year,omitempty"` // 0 when absent

	// Derived from StartTime during parsing.
	Month   int    `json:"month"`       // 1-12
	Weekday string `json:"day_of_week"` // lowercase day name
	Hour    int    `json:"hour"`        // 0-23
}

// HasDuration reports whether the trip carries a usable duration value.
func (r TripRecord) HasDuration() bool {
	return !math.IsNaN(r.Duration)
}

// Dataset is the in-memory trip table for one analysis pass. It is
// discarded when the user restarts; nothing is persisted.
type Dataset struct {
	City    string       `json:"city"`
	Records []TripRecord `json:"records"`

	// Column presence in the source file. Reporters skip statistics
	// whose backing column is absent.
	HasDuration  bool `json:"has_duration"`
	HasStations  bool `json:"has_stations"`
	HasUserType  bool `json:"has_user_type"`
	HasGender    bool `json:"has_gender"`
	HasBirthYear bool `json:"has_birth_year"`

	// SourceRows counts data rows before filtering and outlier removal.
	SourceRows int `json:"source_rows"`
}

// Len returns the current number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Empty reports whether the dataset has no rows left after filtering.
func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// Durations returns the non-missing trip durations in row order.
func (d *Dataset) Durations() []float64 {
	if d == nil {
		return nil
	}
	out := make([]float64, 0, len(d.Records))
	for _, r := range d.Records {
		if r.HasDuration() {
			out = append(out, r.Duration)
		}
	}
	return out
}

// OutlierMethod selects how trip-duration outliers are stripped
type OutlierMethod string

const (
	OutlierNone   OutlierMethod = "none"
	OutlierIQR    OutlierMethod = "iqr"
	OutlierZScore OutlierMethod = "zscore"
)

// FilterAll is the wildcard answer accepted by the month and day prompts.
const FilterAll = "all"

// Filter holds the validated answers collected before a load.
type Filter struct {
	City     string        `json:"city"`
	Month    string        `json:"month"` // month name or FilterAll
	Day      string        `json:"day"`   // weekday name or FilterAll
	Outliers OutlierMethod `json:"outliers"`
}

// Months lists the months covered by the city datasets, in calendar order.
var Months = []string{"january", "february", "march", "april", "may", "june"}

// Weekdays lists the accepted day-of-week answers, Monday first.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// MonthIndex maps a lowercase month name to its calendar number (1-12).
// It returns 0 for names outside the dataset range.
func MonthIndex(name string) int {
	for i, m := range Months {
		if m == name {
			return i + 1
		}
	}
	return 0
}

// MonthName maps a calendar month number to its lowercase name, using
// the full twelve-month calendar so derived month columns outside the
// dataset range still render.
func MonthName(index int) string {
	if index < 1 || index > 12 {
		return ""
	}
	return []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}[index-1]
}
