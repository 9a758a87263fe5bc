package market

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// DateLayout renders LastUpdated as dd/MM/yyyy.
const DateLayout = "02/01/2006"

// FormatDate formats t with DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatRelative describes t relative to now ("3 days from now").
func FormatRelative(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// Thousands converts a yearly salary to thousands of USD.
func Thousands(v float64) float64 {
	return v / 1000
}

// FormatThousands renders a yearly salary as "$120k".
func FormatThousands(v float64) string {
	return "$" + humanize.FtoaWithDigits(Thousands(v), 1) + "k"
}

// FormatGrowth renders a growth rate as "12.5%".
func FormatGrowth(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}
