package console

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"bikeshare/pkg/contracts/domain"
)

// Pager prints successive windows of raw trip rows on repeated
// confirmation. It stops at the end of the table or at the first
// non-affirmative answer.
type Pager struct {
	out      io.Writer
	pageSize int
}

// NewPager creates a pager printing pageSize rows per window.
func NewPager(w io.Writer, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &Pager{out: w, pageSize: pageSize}
}

// Run walks the dataset window by window. confirm is asked before
// every window; the first false answer stops the pager.
func (p *Pager) Run(ds *domain.Dataset, confirm func(prompt string) (bool, error)) error {
	if ds.Empty() {
		fmt.Fprintln(p.out, "No data available to display.")
		return nil
	}

	prompt := fmt.Sprintf("\nWould you like to see %d rows of raw data? Enter yes or no: ", p.pageSize)
	for offset := 0; offset < ds.Len(); offset += p.pageSize {
		more, err := confirm(prompt)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		end := offset + p.pageSize
		if end > ds.Len() {
			end = ds.Len()
		}
		p.printWindow(ds, offset, end)

		prompt = fmt.Sprintf("\nWould you like to see %d more rows? Enter yes or no: ", p.pageSize)
	}

	fmt.Fprintln(p.out, "\nNo more data to display.")
	return nil
}

// printWindow renders rows [start, end) as an aligned table, showing
// only the columns present in the source file.
func (p *Pager) printWindow(ds *domain.Dataset, start, end int) {
	fmt.Fprintln(p.out)
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)

	header := []string{"", "Start Time"}
	if ds.HasDuration {
		header = append(header, "Duration")
	}
	if ds.HasStations {
		header = append(header, "Start Station", "End Station")
	}
	if ds.HasUserType {
		header = append(header, "User Type")
	}
	if ds.HasGender {
		header = append(header, "Gender")
	}
	if ds.HasBirthYear {
		header = append(header, "Birth Year")
	}
	writeRow(w, header)

	for i := start; i < end; i++ {
		r := ds.Records[i]
		row := []string{strconv.Itoa(i), r.StartTime.Format("2006-01-02 15:04:05")}
		if ds.HasDuration {
			row = append(row, formatSeconds(r.Duration))
		}
		if ds.HasStations {
			row = append(row, r.StartStation, r.EndStation)
		}
		if ds.HasUserType {
			row = append(row, r.UserType)
		}
		if ds.HasGender {
			row = append(row, r.Gender)
		}
		if ds.HasBirthYear {
			if r.BirthYear > 0 {
				row = append(row, strconv.Itoa(r.BirthYear))
			} else {
				row = append(row, "")
			}
		}
		writeRow(w, row)
	}

	w.Flush()
}

func writeRow(w *tabwriter.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, f)
	}
	fmt.Fprintln(w)
}

func formatSeconds(d float64) string {
	if math.IsNaN(d) {
		return ""
	}
	return strconv.FormatFloat(d, 'f', -1, 64)
}
