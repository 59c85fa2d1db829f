package main

import (
	"math"
	"sort"

	"github.com/fintrack/fintui/fintrack"
)

// noCategory is displayed when no spending exists to rank.
const noCategory = "-"

// categoryAggregate is a per-category spending total.
type categoryAggregate struct {
	name  string
	total float64
}

// dayAggregate is a per-day spending total.
type dayAggregate struct {
	day   string
	total float64
}

// spendingSummary holds everything the dashboard derives from a flat expense
// list. Recomputed from scratch on every list change; never cached.
type spendingSummary struct {
	total       float64
	byCategory  []categoryAggregate
	byDay       []dayAggregate
	topCategory string
}

// aggregateExpenses derives display totals from records already filtered by
// the server. byCategory keeps first-encounter order; byDay is sorted
// ascending by date string, which orders correctly for YYYY-MM-DD values.
func aggregateExpenses(records []fintrack.Expense) spendingSummary {
	s := spendingSummary{topCategory: noCategory}

	categoryTotals := make(map[string]float64)
	var categoryOrder []string
	dayTotals := make(map[string]float64)

	for _, r := range records {
		amount := r.Value
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			amount = 0
		}

		s.total += amount

		if _, seen := categoryTotals[r.Category]; !seen {
			categoryOrder = append(categoryOrder, r.Category)
		}
		categoryTotals[r.Category] += amount
		dayTotals[r.Date] += amount
	}

	s.byCategory = make([]categoryAggregate, 0, len(categoryOrder))
	for _, name := range categoryOrder {
		s.byCategory = append(s.byCategory, categoryAggregate{name: name, total: categoryTotals[name]})
	}

	s.byDay = make([]dayAggregate, 0, len(dayTotals))
	for day, total := range dayTotals {
		s.byDay = append(s.byDay, dayAggregate{day: day, total: total})
	}
	sort.Slice(s.byDay, func(i, j int) bool {
		return s.byDay[i].day < s.byDay[j].day
	})

	if top, ok := topCategory(s.byCategory); ok {
		s.topCategory = top
	}

	return s
}

// topCategory ranks categories by total, descending. The sort is stable so
// ties keep their first-encounter order.
func topCategory(byCategory []categoryAggregate) (string, bool) {
	if len(byCategory) == 0 {
		return "", false
	}

	ranked := make([]categoryAggregate, len(byCategory))
	copy(ranked, byCategory)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].total > ranked[j].total
	})

	return ranked[0].name, true
}
