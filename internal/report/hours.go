package report

import (
	"time"

	"optitrack/internal/punch"
)

// HoursWorked sums completed IN→OUT intervals inside [start, end], in whole minutes, as hours.
// punches must be sorted by timestamp ascending. A repeated IN replaces the open one,
// an OUT with nothing open is skipped and a trailing IN contributes nothing.
func HoursWorked(punches []punch.Punch, start, end time.Time) float64 {
	var (
		openIn       *time.Time
		totalMinutes int64
	)

	for _, p := range punches {
		if p.Timestamp.Before(start) || p.Timestamp.After(end) {
			continue
		}

		switch p.PunchType {
		case punch.TypeIn:
			ts := p.Timestamp
			openIn = &ts
		case punch.TypeOut:
			if openIn == nil {
				continue
			}
			totalMinutes += int64(p.Timestamp.Sub(*openIn) / time.Minute)
			openIn = nil
		}
	}

	return float64(totalMinutes) / 60.0
}

// TodayWindow spans the calendar day containing now in loc.
func TodayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, endOfDay(start)
}

// WeekWindow spans Monday 00:00 through Sunday end of the week containing now in loc.
func WeekWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	offset := (int(local.Weekday()) + 6) % 7
	monday := time.Date(local.Year(), local.Month(), local.Day()-offset, 0, 0, 0, 0, loc)
	sunday := monday.AddDate(0, 0, 6)
	return monday, endOfDay(sunday)
}

func endOfDay(dayStart time.Time) time.Time {
	return dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
