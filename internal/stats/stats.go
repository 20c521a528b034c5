// Package stats formats a cyclist's aggregate statistics for display.
// The numbers come precomputed from the user_statistics view; nothing here
// touches storage.
package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-cols/models"
)

// Summary is the input of every card.
type Summary struct {
	ColsClimbed    int
	TotalCols      int
	AscentCount    int
	TotalElevation int
	OutingCount    int
}

// FromStatistics builds a Summary from a view row and the col count.
func FromStatistics(s models.UserStatistics, totalCols int) Summary {
	return Summary{
		ColsClimbed:    s.ColsClimbed,
		TotalCols:      totalCols,
		AscentCount:    s.AscentCount,
		TotalElevation: s.TotalElevation,
		OutingCount:    s.OutingCount,
	}
}

// Percent is round(climbed / total * 100), or 0 when there are no cols.
func (s Summary) Percent() int {
	if s.TotalCols <= 0 {
		return 0
	}
	return int(math.Round(float64(s.ColsClimbed) / float64(s.TotalCols) * 100))
}

// Repeats is the number of ascents beyond the first one of each col.
// Inconsistent inputs may make it negative; it is reported as is.
func (s Summary) Repeats() int {
	return s.AscentCount - s.ColsClimbed
}

// ElevationKm is the cumulative elevation rounded to whole kilometres.
func (s Summary) ElevationKm() int {
	return int(math.Round(float64(s.TotalElevation) / 1000))
}

// Card is one statistics tile.
type Card struct {
	Title    string
	Value    string
	Subtitle string
}

// Cards returns the four dashboard tiles in display order.
func (s Summary) Cards() []Card {
	return []Card{
		{
			Title:    "Cols gravis",
			Value:    fmt.Sprintf("%d / %d", s.ColsClimbed, s.TotalCols),
			Subtitle: fmt.Sprintf("%d%% complétés", s.Percent()),
		},
		{
			Title:    "Nombre de sorties",
			Value:    strconv.Itoa(s.OutingCount),
			Subtitle: "jours de vélo",
		},
		{
			Title:    "Ascensions totales",
			Value:    strconv.Itoa(s.AscentCount),
			Subtitle: fmt.Sprintf("Dont %d répétitions", s.Repeats()),
		},
		{
			Title:    "Dénivelé cumulé",
			Value:    fmt.Sprintf("%d km", s.ElevationKm()),
			Subtitle: GroupThousands(s.TotalElevation) + " mètres",
		},
	}
}

// GroupThousands writes n with a space every three digits: 12345 -> "12 345".
func GroupThousands(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}

// FormatDuration renders an ascent time as "1h 5min" or "42min".
// Missing or zero durations render as "N/A".
func FormatDuration(seconds *int) string {
	if seconds == nil || *seconds <= 0 {
		return "N/A"
	}

	hours := *seconds / 3600
	minutes := (*seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dmin", hours, minutes)
	}
	return fmt.Sprintf("%dmin", minutes)
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatDate renders a date the French long way: "14 juillet 2024".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// FormatSpeed renders an average speed with one decimal, or "" when absent.
func FormatSpeed(kmh *float64) string {
	if kmh == nil {
		return ""
	}
	return fmt.Sprintf("%.1f km/h", *kmh)
}

// DifficultyLabel is the upper-case difficulty, or "N/A" when unknown.
func DifficultyLabel(d *models.Difficulty) string {
	if d == nil || !d.Valid() {
		return "N/A"
	}
	return d.Label()
}
