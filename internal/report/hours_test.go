package report_test

import (
	"testing"
	"time"

	"optitrack/internal/punch"
	"optitrack/internal/report"

	"github.com/stretchr/testify/assert"
)

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func at(h, m, s int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second)
}

func p(typ string, ts time.Time) punch.Punch {
	return punch.Punch{PunchType: typ, Timestamp: ts}
}

func TestHoursWorked(t *testing.T) {
	dayStart, dayEnd := day, day.Add(24*time.Hour-time.Nanosecond)

	tests := []struct {
		name    string
		punches []punch.Punch
		start   time.Time
		end     time.Time
		want    float64
	}{
		{
			name:  "empty",
			start: dayStart,
			end:   dayEnd,
			want:  0,
		},
		{
			name:    "single pair",
			punches: []punch.Punch{p(punch.TypeIn, at(9, 0, 0)), p(punch.TypeOut, at(17, 0, 0))},
			start:   dayStart,
			end:     dayEnd,
			want:    8,
		},
		{
			name: "two pairs",
			punches: []punch.Punch{
				p(punch.TypeIn, at(9, 0, 0)), p(punch.TypeOut, at(12, 0, 0)),
				p(punch.TypeIn, at(13, 0, 0)), p(punch.TypeOut, at(17, 30, 0)),
			},
			start: dayStart,
			end:   dayEnd,
			want:  7.5,
		},
		{
			name:    "trailing IN ignored",
			punches: []punch.Punch{p(punch.TypeIn, at(9, 0, 0)), p(punch.TypeOut, at(10, 0, 0)), p(punch.TypeIn, at(11, 0, 0))},
			start:   dayStart,
			end:     dayEnd,
			want:    1,
		},
		{
			name:    "orphan OUT ignored",
			punches: []punch.Punch{p(punch.TypeOut, at(8, 0, 0)), p(punch.TypeIn, at(9, 0, 0)), p(punch.TypeOut, at(10, 0, 0))},
			start:   dayStart,
			end:     dayEnd,
			want:    1,
		},
		{
			name:    "last IN wins",
			punches: []punch.Punch{p(punch.TypeIn, at(8, 0, 0)), p(punch.TypeIn, at(9, 0, 0)), p(punch.TypeOut, at(10, 0, 0))},
			start:   dayStart,
			end:     dayEnd,
			want:    1,
		},
		{
			name:    "seconds truncated per interval",
			punches: []punch.Punch{p(punch.TypeIn, at(9, 0, 0)), p(punch.TypeOut, at(9, 30, 59))},
			start:   dayStart,
			end:     dayEnd,
			want:    0.5,
		},
		{
			name:    "IN before window is dropped",
			punches: []punch.Punch{p(punch.TypeIn, at(7, 0, 0)), p(punch.TypeOut, at(10, 0, 0))},
			start:   at(8, 0, 0),
			end:     dayEnd,
			want:    0,
		},
		{
			name:    "bounds inclusive",
			punches: []punch.Punch{p(punch.TypeIn, at(9, 0, 0)), p(punch.TypeOut, at(11, 0, 0))},
			start:   at(9, 0, 0),
			end:     at(11, 0, 0),
			want:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.HoursWorked(tt.punches, tt.start, tt.end))
		})
	}
}

func TestHoursWorked_NotNegative(t *testing.T) {
	punches := []punch.Punch{p(punch.TypeOut, at(1, 0, 0)), p(punch.TypeOut, at(2, 0, 0)), p(punch.TypeIn, at(3, 0, 0))}
	assert.Equal(t, 0.0, report.HoursWorked(punches, day, day.Add(24*time.Hour)))
}

func TestTodayWindow(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)

	start, end := report.TodayWindow(now, loc)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 3, 11, 23, 59, 59, 999999999, loc), end)
}

func TestWeekWindow(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
	}{
		{"monday", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
		{"wednesday", time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2025, 3, 16, 23, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := report.WeekWindow(tt.now, time.UTC)
			assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, time.Date(2025, 3, 16, 23, 59, 59, 999999999, time.UTC), end)
		})
	}
}
