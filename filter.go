package main

import (
	"fmt"
	"time"

	"github.com/fintrack/fintui/fintrack"
)

const dateLayout = "2006-01-02"
const yearMonthLayout = "2006-01"

// filterState holds the raw filter inputs. Exactly one boundary pair is
// active, selected by mode.
type filterState struct {
	mode       string
	day        string
	weekStart  string
	weekEnd    string
	monthStart string // YYYY-MM
	monthEnd   string // YYYY-MM
}

// defaultFilter starts on the week containing now, Monday through Sunday.
func defaultFilter(now time.Time) filterState {
	start, end := weekBounds(now)
	return filterState{
		mode:      weekFilterMode,
		day:       now.Format(dateLayout),
		weekStart: start.Format(dateLayout),
		weekEnd:   end.Format(dateLayout),
	}
}

// dateRange is a concrete inclusive start/end window resolved from a
// filterState.
type dateRange struct {
	start time.Time
	end   time.Time
}

func (r *dateRange) String() string {
	return fmt.Sprintf("%s - %s", r.start.Format(dateLayout), r.end.Format(dateLayout))
}

func (r *dateRange) startDate() string {
	return r.start.Format(dateLayout)
}

func (r *dateRange) endDate() string {
	return r.end.Format(dateLayout)
}

// apiRange converts the window to query parameters. A nil receiver means no
// active range and sends none.
func (r *dateRange) apiRange() *fintrack.DateRange {
	if r == nil {
		return nil
	}
	return &fintrack.DateRange{Start: r.startDate(), End: r.endDate()}
}

// resolveFilter turns filter inputs into a concrete window. ok is false when
// the active mode's inputs are incomplete; partial ranges are never produced.
func resolveFilter(fs filterState) (dateRange, bool) {
	switch fs.mode {
	case dayFilterMode:
		d, ok := parseDate(fs.day)
		if !ok {
			return dateRange{}, false
		}
		return dateRange{start: d, end: endOfDay(d)}, true

	case weekFilterMode:
		start, okStart := parseDate(fs.weekStart)
		end, okEnd := parseDate(fs.weekEnd)
		if !okStart || !okEnd {
			return dateRange{}, false
		}
		if start.After(end) {
			start, end = end, start
		}
		return dateRange{start: start, end: endOfDay(end)}, true

	case monthFilterMode:
		start, okStart := parseYearMonth(fs.monthStart)
		end, okEnd := parseYearMonth(fs.monthEnd)
		if !okStart || !okEnd {
			return dateRange{}, false
		}
		if start.After(end) {
			start, end = end, start
		}
		// day 0 of the following month is the last day of end's month
		lastDay := time.Date(end.Year(), end.Month()+1, 0, 0, 0, 0, 0, end.Location())
		return dateRange{start: start, end: endOfDay(lastDay)}, true
	}

	return dateRange{}, false
}

// parseDate parses a strict YYYY-MM-DD date at local midnight. Missing or
// zero components invalidate the whole input.
func parseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil || t.Year() == 0 {
		return time.Time{}, false
	}
	return t, true
}

// parseYearMonth parses a strict YYYY-MM value at the first of the month.
func parseYearMonth(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(yearMonthLayout, s, time.Local)
	if err != nil || t.Year() == 0 {
		return time.Time{}, false
	}
	return t, true
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, 1).Add(-time.Second)
}
