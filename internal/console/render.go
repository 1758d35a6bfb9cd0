package console

import (
	"fmt"
	"io"
	"time"

	"bikeshare/internal/dataprocessing"
)

// Renderer prints the computed statistics in the interactive report
// format: a section banner, the statistics, and the elapsed time.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{out: w}
}

func (r *Renderer) section(title string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, banner)
	fmt.Fprintln(r.out, title)
	fmt.Fprintln(r.out, banner)
}

func (r *Renderer) footer(elapsed time.Duration) {
	fmt.Fprintf(r.out, "\nThis took %.4f seconds.\n", elapsed.Seconds())
	fmt.Fprintln(r.out, divider)
}

// RenderTime prints the most frequent times of travel.
func (r *Renderer) RenderTime(s dataprocessing.TimeStats, elapsed time.Duration) {
	if s.Rows == 0 {
		fmt.Fprintln(r.out, "No data available for time statistics.")
		return
	}
	r.section("Calculating The Most Frequent Times of Travel...")

	if s.Month.Ok() {
		fmt.Fprintf(r.out, "Most Common Month: %s (%s trips)\n",
			titleCase(s.Month.Value), formatCount(int64(s.Month.Count)))
	} else {
		fmt.Fprintln(r.out, "No month data available.")
	}

	if s.Weekday.Ok() {
		fmt.Fprintf(r.out, "Most Common Day: %s (%s trips)\n",
			titleCase(s.Weekday.Value), formatCount(int64(s.Weekday.Count)))
	} else {
		fmt.Fprintln(r.out, "No day of week data available.")
	}

	if s.HourCount > 0 {
		fmt.Fprintf(r.out, "Most Common Start Hour: %d:00 (%s, %s trips)\n",
			s.Hour, clockHour(s.Hour), formatCount(int64(s.HourCount)))
	} else {
		fmt.Fprintln(r.out, "No hour data available.")
	}

	r.footer(elapsed)
}

// RenderStations prints the most popular stations and trip.
func (r *Renderer) RenderStations(s dataprocessing.StationStats, elapsed time.Duration) {
	if s.Rows == 0 {
		fmt.Fprintln(r.out, "No data available for station statistics.")
		return
	}
	r.section("Calculating The Most Popular Stations and Trip...")

	if !s.Start.Ok() && !s.End.Ok() && !s.Trip.Ok() {
		fmt.Fprintln(r.out, "Station data not available for this city.")
		r.footer(elapsed)
		return
	}

	if s.Start.Ok() {
		fmt.Fprintf(r.out, "Most Common Start Station: %s (%s trips)\n",
			s.Start.Value, formatCount(int64(s.Start.Count)))
	} else {
		fmt.Fprintln(r.out, "No start station data available.")
	}

	if s.End.Ok() {
		fmt.Fprintf(r.out, "Most Common End Station: %s (%s trips)\n",
			s.End.Value, formatCount(int64(s.End.Count)))
	} else {
		fmt.Fprintln(r.out, "No end station data available.")
	}

	if s.Trip.Ok() {
		fmt.Fprintf(r.out, "Most Common Trip: %s (%s trips)\n",
			s.Trip.Value, formatCount(int64(s.Trip.Count)))
	} else {
		fmt.Fprintln(r.out, "No trip combination data available.")
	}

	r.footer(elapsed)
}

// RenderDuration prints the trip duration aggregates.
func (r *Renderer) RenderDuration(s dataprocessing.DurationStats, elapsed time.Duration) {
	if s.Rows == 0 {
		fmt.Fprintln(r.out, "No data available for trip duration statistics.")
		return
	}
	r.section("Calculating Trip Duration Statistics...")

	if s.Samples == 0 {
		fmt.Fprintln(r.out, "Trip duration data not available for this city.")
		r.footer(elapsed)
		return
	}

	days, hours, minutes := breakdownDHM(s.Total)
	fmt.Fprintf(r.out, "Total Travel Time: %d days, %d hours, %d minutes\n", days, hours, minutes)
	fmt.Fprintf(r.out, "Total Travel Time (seconds): %s\n", formatCount(int64(s.Total)))

	meanMin, meanSec := breakdownMS(s.Mean)
	fmt.Fprintf(r.out, "Average Trip Duration: %d minutes, %d seconds\n", meanMin, meanSec)
	fmt.Fprintf(r.out, "Average Trip Duration (seconds): %.2f\n", s.Mean)

	fmt.Fprintf(r.out, "Shortest Trip (seconds): %s\n", formatCount(int64(s.Min)))
	fmt.Fprintf(r.out, "Longest Trip (seconds): %s\n", formatCount(int64(s.Max)))
	fmt.Fprintf(r.out, "Median Trip (seconds): %.0f\n", s.Median)

	r.footer(elapsed)
}

// RenderUsers prints user type, gender and birth year statistics.
func (r *Renderer) RenderUsers(s dataprocessing.UserStats, elapsed time.Duration) {
	if s.Rows == 0 {
		fmt.Fprintln(r.out, "No data available for user statistics.")
		return
	}
	r.section("Calculating User Statistics...")

	if len(s.UserTypes) > 0 {
		fmt.Fprintln(r.out, "User Type Distribution:")
		for _, vc := range s.UserTypes {
			fmt.Fprintf(r.out, "  %s: %s\n", vc.Value, formatCount(int64(vc.Count)))
		}
	} else {
		fmt.Fprintln(r.out, "User Type data not available for this city.")
	}

	switch {
	case !s.HasGender:
		fmt.Fprintln(r.out, "\nGender data not available for this city.")
	case len(s.Genders) == 0:
		fmt.Fprintln(r.out, "\nNo gender data available.")
	default:
		fmt.Fprintln(r.out, "\nGender Distribution:")
		for _, vc := range s.Genders {
			fmt.Fprintf(r.out, "  %s: %s\n", vc.Value, formatCount(int64(vc.Count)))
		}
	}

	switch {
	case !s.HasBirthYear:
		fmt.Fprintln(r.out, "\nBirth year data not available for this city.")
	case s.CommonYearCount == 0:
		fmt.Fprintln(r.out, "\nNo birth year data available.")
	default:
		fmt.Fprintln(r.out, "\nBirth Year Statistics:")
		fmt.Fprintf(r.out, "  Earliest Birth Year: %d (Age: %d)\n",
			s.EarliestYear, s.ReferenceYear-s.EarliestYear)
		fmt.Fprintf(r.out, "  Most Recent Birth Year: %d (Age: %d)\n",
			s.RecentYear, s.ReferenceYear-s.RecentYear)
		fmt.Fprintf(r.out, "  Most Common Birth Year: %d (Age: %d)\n",
			s.CommonYear, s.ReferenceYear-s.CommonYear)
	}

	r.footer(elapsed)
}
