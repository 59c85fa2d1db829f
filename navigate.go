package main

import "time"

// shiftDirection moves the filter window backward or forward by one unit of
// the active mode.
type shiftDirection int

const (
	previousPeriod shiftDirection = -1
	nextPeriod     shiftDirection = 1
)

// shiftFilter returns the filter moved by one day, one week, or one month
// depending on the active mode. Unparseable boundaries leave the filter
// untouched.
func shiftFilter(fs filterState, dir shiftDirection) filterState {
	switch fs.mode {
	case dayFilterMode:
		d, ok := parseDate(fs.day)
		if !ok {
			return fs
		}
		fs.day = d.AddDate(0, 0, int(dir)).Format(dateLayout)

	case weekFilterMode:
		start, okStart := parseDate(fs.weekStart)
		end, okEnd := parseDate(fs.weekEnd)
		if !okStart || !okEnd {
			return fs
		}
		// both bounds move in lockstep so the span length is preserved
		fs.weekStart = start.AddDate(0, 0, 7*int(dir)).Format(dateLayout)
		fs.weekEnd = end.AddDate(0, 0, 7*int(dir)).Format(dateLayout)

	case monthFilterMode:
		start, okStart := parseYearMonth(fs.monthStart)
		end, okEnd := parseYearMonth(fs.monthEnd)
		if !okStart || !okEnd {
			return fs
		}
		fs.monthStart = start.AddDate(0, int(dir), 0).Format(yearMonthLayout)
		fs.monthEnd = end.AddDate(0, int(dir), 0).Format(yearMonthLayout)
	}

	return fs
}

// cycleFilterMode moves day -> week -> month -> day, seeding the next mode's
// bounds from the current date so the window stays near where the user was.
func cycleFilterMode(fs filterState, now time.Time) filterState {
	anchor := now
	if d, ok := parseDate(fs.day); ok && fs.mode == dayFilterMode {
		anchor = d
	}
	if s, ok := parseDate(fs.weekStart); ok && fs.mode == weekFilterMode {
		anchor = s
	}

	switch fs.mode {
	case dayFilterMode:
		start, end := weekBounds(anchor)
		fs.mode = weekFilterMode
		fs.weekStart = start.Format(dateLayout)
		fs.weekEnd = end.Format(dateLayout)
	case weekFilterMode:
		fs.mode = monthFilterMode
		fs.monthStart = anchor.Format(yearMonthLayout)
		fs.monthEnd = anchor.Format(yearMonthLayout)
	default:
		fs.mode = dayFilterMode
		fs.day = now.Format(dateLayout)
	}

	return fs
}

// weekBounds returns the Monday-start, Sunday-end week containing t. Sunday
// counts as six days after the preceding Monday regardless of locale.
func weekBounds(t time.Time) (time.Time, time.Time) {
	offset := (int(t.Weekday()) + 6) % 7
	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}
