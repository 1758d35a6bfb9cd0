package console

import (
	"fmt"
	"strings"
)

const (
	banner  = "=================================================="
	divider = "--------------------------------------------------"
)

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// formatCount renders an integer with thousands separators.
func formatCount(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return sign + digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String()
}

// clockHour renders an hour of day in 12-hour AM/PM form.
func clockHour(hour int) string {
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%d %s", h12, period)
}

// breakdownDHM splits a duration in seconds into days, hours, minutes.
func breakdownDHM(seconds float64) (days, hours, minutes int) {
	total := int64(seconds)
	days = int(total / (24 * 3600))
	hours = int(total % (24 * 3600) / 3600)
	minutes = int(total % 3600 / 60)
	return days, hours, minutes
}

// breakdownMS splits a duration in seconds into minutes and seconds.
func breakdownMS(seconds float64) (minutes, secs int) {
	total := int64(seconds)
	return int(total / 60), int(total % 60)
}
