package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"bikeshare/pkg/contracts/domain"
)

// Collector gathers validated answers from the interactive prompts.
// Input is trimmed and lowercased before matching, and every prompt
// repeats until the answer is a member of its valid set.
type Collector struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// NewCollector creates a collector reading from r and prompting on w.
func NewCollector(r io.Reader, w io.Writer, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		in:     bufio.NewScanner(r),
		out:    w,
		logger: logger,
	}
}

// CollectFilters asks for the city, month, day and outlier choices.
// cities is the list of valid city keys.
func (c *Collector) CollectFilters(cities []string) (domain.Filter, error) {
	fmt.Fprintln(c.out, banner)
	fmt.Fprintln(c.out, "Welcome to US Bikeshare Data Analysis!")
	fmt.Fprintln(c.out, banner)

	city, err := c.Choose(
		fmt.Sprintf("\nEnter city (%s): ", titleList(cities)),
		fmt.Sprintf("Invalid city. Please choose from: %s.", titleList(cities)),
		cities,
	)
	if err != nil {
		return domain.Filter{}, err
	}

	months := append(append([]string{}, domain.Months...), domain.FilterAll)
	month, err := c.Choose(
		"\nEnter month (January to June) or 'all' for no filter: ",
		"Invalid month. Please enter a month from January to June, or 'all'.",
		months,
	)
	if err != nil {
		return domain.Filter{}, err
	}

	days := append(append([]string{}, domain.Weekdays...), domain.FilterAll)
	day, err := c.Choose(
		"\nEnter day of week (Monday-Sunday) or 'all' for no filter: ",
		"Invalid day. Please enter a day of the week, or 'all'.",
		days,
	)
	if err != nil {
		return domain.Filter{}, err
	}

	outliers, err := c.collectOutlierMethod()
	if err != nil {
		return domain.Filter{}, err
	}

	fmt.Fprintln(c.out, divider)

	filter := domain.Filter{City: city, Month: month, Day: day, Outliers: outliers}
	c.logger.Debug("collected filters",
		slog.String("city", filter.City),
		slog.String("month", filter.Month),
		slog.String("day", filter.Day),
		slog.String("outliers", string(filter.Outliers)))
	return filter, nil
}

// collectOutlierMethod maps the outlier prompt to a method: a plain
// "yes" selects IQR, "no"/"none" disables the step, and the method
// names select themselves.
func (c *Collector) collectOutlierMethod() (domain.OutlierMethod, error) {
	answer, err := c.Choose(
		"\nRemove outliers from trip duration? (yes/no, or 'iqr'/'zscore'): ",
		"Please answer yes, no, iqr, or zscore.",
		[]string{"yes", "no", "none", "iqr", "zscore"},
	)
	if err != nil {
		return domain.OutlierNone, err
	}
	switch answer {
	case "yes", "iqr":
		return domain.OutlierIQR, nil
	case "zscore":
		return domain.OutlierZScore, nil
	default:
		return domain.OutlierNone, nil
	}
}

// Choose prompts until the normalized answer is one of the valid options.
func (c *Collector) Choose(prompt, errMsg string, valid []string) (string, error) {
	for {
		answer, err := c.ask(prompt)
		if err != nil {
			return "", err
		}
		for _, option := range valid {
			if answer == option {
				return answer, nil
			}
		}
		fmt.Fprintln(c.out, errMsg)
	}
}

// Confirm asks a yes/no question; anything but "yes" is no.
func (c *Collector) Confirm(prompt string) (bool, error) {
	answer, err := c.ask(prompt)
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

// ask prints the prompt and reads one normalized line. io.EOF is
// returned when the input stream ends, which the main loop treats as
// an exit request.
func (c *Collector) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.ToLower(strings.TrimSpace(c.in.Text())), nil
}

// titleList joins values as a display list, title-casing each entry.
func titleList(values []string) string {
	titled := make([]string, len(values))
	for i, v := range values {
		titled[i] = titleCase(v)
	}
	return strings.Join(titled, ", ")
}
