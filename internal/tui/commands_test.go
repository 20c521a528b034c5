package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendarDay(t *testing.T) {
	paris := time.FixedZone("CEST", 2*60*60)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "just after local midnight keeps the local date",
			now:  time.Date(2026, 7, 14, 0, 30, 0, 0, paris),
			want: time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "late evening",
			now:  time.Date(2026, 7, 14, 23, 45, 0, 0, paris),
			want: time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "utc",
			now:  time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendarDay(tt.now))
		})
	}
}
