package main

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"
)

func TestResolveFilterDay(t *testing.T) {
	rng, ok := resolveFilter(filterState{mode: dayFilterMode, day: "2024-03-15"})
	be.True(t, ok)
	be.Equal(t, "2024-03-15", rng.startDate())
	be.Equal(t, "2024-03-15", rng.endDate())
	be.Equal(t, 23, rng.end.Hour())
}

func TestResolveFilterWeek(t *testing.T) {
	tests := []struct {
		name          string
		weekStart     string
		weekEnd       string
		expectedStart string
		expectedEnd   string
	}{
		{
			name:          "normal week",
			weekStart:     "2024-03-11",
			weekEnd:       "2024-03-17",
			expectedStart: "2024-03-11",
			expectedEnd:   "2024-03-17",
		},
		{
			name:          "reversed bounds are swapped",
			weekStart:     "2024-03-17",
			weekEnd:       "2024-03-11",
			expectedStart: "2024-03-11",
			expectedEnd:   "2024-03-17",
		},
		{
			name:          "single day span",
			weekStart:     "2024-03-11",
			weekEnd:       "2024-03-11",
			expectedStart: "2024-03-11",
			expectedEnd:   "2024-03-11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, ok := resolveFilter(filterState{
				mode:      weekFilterMode,
				weekStart: tt.weekStart,
				weekEnd:   tt.weekEnd,
			})
			be.True(t, ok)
			be.Equal(t, tt.expectedStart, rng.startDate())
			be.Equal(t, tt.expectedEnd, rng.endDate())
		})
	}
}

func TestResolveFilterMonth(t *testing.T) {
	tests := []struct {
		name          string
		monthStart    string
		monthEnd      string
		expectedStart string
		expectedEnd   string
	}{
		{
			name:          "single month",
			monthStart:    "2024-02",
			monthEnd:      "2024-02",
			expectedStart: "2024-02-01",
			expectedEnd:   "2024-02-29",
		},
		{
			name:          "multi month span",
			monthStart:    "2024-01",
			monthEnd:      "2024-03",
			expectedStart: "2024-01-01",
			expectedEnd:   "2024-03-31",
		},
		{
			name:          "reversed months are swapped",
			monthStart:    "2024-03",
			monthEnd:      "2024-01",
			expectedStart: "2024-01-01",
			expectedEnd:   "2024-03-31",
		},
		{
			name:          "december end of year",
			monthStart:    "2023-12",
			monthEnd:      "2023-12",
			expectedStart: "2023-12-01",
			expectedEnd:   "2023-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, ok := resolveFilter(filterState{
				mode:       monthFilterMode,
				monthStart: tt.monthStart,
				monthEnd:   tt.monthEnd,
			})
			be.True(t, ok)
			be.Equal(t, tt.expectedStart, rng.startDate())
			be.Equal(t, tt.expectedEnd, rng.endDate())
		})
	}
}

func TestResolveFilterIncomplete(t *testing.T) {
	tests := []struct {
		name   string
		filter filterState
	}{
		{
			name:   "empty day",
			filter: filterState{mode: dayFilterMode},
		},
		{
			name:   "garbage day",
			filter: filterState{mode: dayFilterMode, day: "not-a-date"},
		},
		{
			name:   "week missing end",
			filter: filterState{mode: weekFilterMode, weekStart: "2024-03-11"},
		},
		{
			name:   "month missing start",
			filter: filterState{mode: monthFilterMode, monthEnd: "2024-03"},
		},
		{
			name:   "unknown mode",
			filter: filterState{mode: "year", day: "2024-03-11"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := resolveFilter(tt.filter)
			be.False(t, ok)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "valid date", input: "2024-03-15", valid: true},
		{name: "empty", input: "", valid: false},
		{name: "wrong format", input: "15/03/2024", valid: false},
		{name: "partial", input: "2024-03", valid: false},
		{name: "trailing text", input: "2024-03-15x", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseDate(tt.input)
			be.Equal(t, tt.valid, ok)
		})
	}
}

func TestDefaultFilterIsCurrentWeek(t *testing.T) {
	// a Wednesday
	now := time.Date(2024, 3, 13, 15, 30, 0, 0, time.Local)

	fs := defaultFilter(now)
	be.Equal(t, weekFilterMode, fs.mode)
	be.Equal(t, "2024-03-11", fs.weekStart)
	be.Equal(t, "2024-03-17", fs.weekEnd)
}

func TestDateRangeString(t *testing.T) {
	rng := dateRange{
		start: time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
		end:   time.Date(2024, 3, 17, 23, 59, 59, 0, time.Local),
	}
	be.Equal(t, "2024-03-11 - 2024-03-17", rng.String())
}

func TestAPIRange(t *testing.T) {
	var nilRange *dateRange
	be.Zero(t, nilRange.apiRange())

	rng := dateRange{
		start: time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
		end:   time.Date(2024, 3, 17, 23, 59, 59, 0, time.Local),
	}
	api := rng.apiRange()
	be.Nonzero(t, api)
	be.Equal(t, "2024-03-11", api.Start)
	be.Equal(t, "2024-03-17", api.End)
}
