package main

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"
)

func TestShiftFilterDay(t *testing.T) {
	tests := []struct {
		name     string
		day      string
		dir      shiftDirection
		expected string
	}{
		{name: "next day", day: "2024-03-15", dir: nextPeriod, expected: "2024-03-16"},
		{name: "previous day", day: "2024-03-15", dir: previousPeriod, expected: "2024-03-14"},
		{name: "across month end", day: "2024-01-31", dir: nextPeriod, expected: "2024-02-01"},
		{name: "across year start", day: "2024-01-01", dir: previousPeriod, expected: "2023-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := shiftFilter(filterState{mode: dayFilterMode, day: tt.day}, tt.dir)
			be.Equal(t, tt.expected, fs.day)
		})
	}
}

func TestShiftFilterWeek(t *testing.T) {
	fs := filterState{mode: weekFilterMode, weekStart: "2024-03-11", weekEnd: "2024-03-17"}

	next := shiftFilter(fs, nextPeriod)
	be.Equal(t, "2024-03-18", next.weekStart)
	be.Equal(t, "2024-03-24", next.weekEnd)

	prev := shiftFilter(fs, previousPeriod)
	be.Equal(t, "2024-03-04", prev.weekStart)
	be.Equal(t, "2024-03-10", prev.weekEnd)
}

func TestShiftFilterMonth(t *testing.T) {
	tests := []struct {
		name          string
		monthStart    string
		monthEnd      string
		dir           shiftDirection
		expectedStart string
		expectedEnd   string
	}{
		{
			name:          "next month",
			monthStart:    "2024-01",
			monthEnd:      "2024-01",
			dir:           nextPeriod,
			expectedStart: "2024-02",
			expectedEnd:   "2024-02",
		},
		{
			name:          "previous month across year",
			monthStart:    "2024-01",
			monthEnd:      "2024-01",
			dir:           previousPeriod,
			expectedStart: "2023-12",
			expectedEnd:   "2023-12",
		},
		{
			name:          "multi month span keeps width",
			monthStart:    "2024-01",
			monthEnd:      "2024-03",
			dir:           nextPeriod,
			expectedStart: "2024-02",
			expectedEnd:   "2024-04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := shiftFilter(filterState{
				mode:       monthFilterMode,
				monthStart: tt.monthStart,
				monthEnd:   tt.monthEnd,
			}, tt.dir)
			be.Equal(t, tt.expectedStart, fs.monthStart)
			be.Equal(t, tt.expectedEnd, fs.monthEnd)
		})
	}
}

func TestShiftFilterUnparseableLeavesFilterUntouched(t *testing.T) {
	fs := filterState{mode: dayFilterMode, day: "garbage"}
	be.Equal(t, fs, shiftFilter(fs, nextPeriod))

	fs = filterState{mode: weekFilterMode, weekStart: "2024-03-11"}
	be.Equal(t, fs, shiftFilter(fs, previousPeriod))
}

func TestCycleFilterMode(t *testing.T) {
	now := time.Date(2024, 3, 13, 12, 0, 0, 0, time.Local)

	day := filterState{mode: dayFilterMode, day: "2024-03-13"}

	week := cycleFilterMode(day, now)
	be.Equal(t, weekFilterMode, week.mode)
	be.Equal(t, "2024-03-11", week.weekStart)
	be.Equal(t, "2024-03-17", week.weekEnd)

	month := cycleFilterMode(week, now)
	be.Equal(t, monthFilterMode, month.mode)
	be.Equal(t, "2024-03", month.monthStart)
	be.Equal(t, "2024-03", month.monthEnd)

	backToDay := cycleFilterMode(month, now)
	be.Equal(t, dayFilterMode, backToDay.mode)
	be.Equal(t, "2024-03-13", backToDay.day)
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "wednesday",
			input:    time.Date(2024, 3, 13, 10, 0, 0, 0, time.Local),
			expected: "2024-03-11",
		},
		{
			name:     "monday is its own start",
			input:    time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
			expected: "2024-03-11",
		},
		{
			name:     "sunday belongs to the preceding monday",
			input:    time.Date(2024, 3, 17, 23, 0, 0, 0, time.Local),
			expected: "2024-03-11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := weekBounds(tt.input)
			be.Equal(t, tt.expected, start.Format(dateLayout))
			be.Equal(t, start.AddDate(0, 0, 6).Format(dateLayout), end.Format(dateLayout))
		})
	}
}
