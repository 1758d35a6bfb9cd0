package dataprocessing

// ValueCount pairs a categorical value with its occurrence count. A
// zero Count marks a statistic whose backing data was unavailable.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Ok reports whether the statistic was computed.
func (v ValueCount) Ok() bool {
	return v.Count > 0
}

// TimeStats describes the most frequent times of travel.
type TimeStats struct {
	Rows      int        `json:"rows"`
	Month     ValueCount `json:"month"`   // lowercase month name
	Weekday   ValueCount `json:"weekday"` // lowercase day name
	Hour      int        `json:"hour"`    // 0-23, valid when HourCount > 0
	HourCount int        `json:"hour_count"`
}

// StationStats describes the most popular stations and trip.
type StationStats struct {
	Rows  int        `json:"rows"`
	Start ValueCount `json:"start"`
	End   ValueCount `json:"end"`
	Trip  ValueCount `json:"trip"` // "start → end"
}

// DurationStats aggregates the trip duration column. All values are
// seconds; Samples counts the rows carrying a usable duration.
type DurationStats struct {
	Rows    int     `json:"rows"`
	Samples int     `json:"samples"`
	Total   float64 `json:"total"`
	Mean    float64 `json:"mean"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Median  float64 `json:"median"`
}

// UserStats describes the rider population.
type UserStats struct {
	Rows      int          `json:"rows"`
	UserTypes []ValueCount `json:"user_types"` // count desc
	HasGender bool         `json:"has_gender"`
	Genders   []ValueCount `json:"genders"` // count desc

	HasBirthYear    bool `json:"has_birth_year"`
	EarliestYear    int  `json:"earliest_year"`
	RecentYear      int  `json:"recent_year"`
	CommonYear      int  `json:"common_year"`
	CommonYearCount int  `json:"common_year_count"`
	// ReferenceYear is the year ages are derived against.
	ReferenceYear int `json:"reference_year"`
}
