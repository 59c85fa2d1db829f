package main

import "time"

// Filter modes
const (
	dayFilterMode   = "day"
	weekFilterMode  = "week"
	monthFilterMode = "month"
)

const (
	defaultPageSize = 10
	defaultCurrency = "BRL"
	standardMargin  = 2

	apiRequestTimeout = 10 * time.Second

	aiRecommendationTimeout = 30 * time.Second
	anthropicMaxTokens      = 300
	maxConfidenceScore      = 100
)

// Session states
type sessionState int

const (
	loginState sessionState = iota
	overviewState
	expensesState
	addExpenseState
	configView
	loading
	errorState
)

func (ss sessionState) String() string {
	switch ss {
	case loginState:
		return "login"
	case overviewState:
		return "overview"
	case expensesState:
		return "expenses"
	case addExpenseState:
		return "add expense"
	case configView:
		return "configuration"
	case loading:
		return "loading"
	case errorState:
		return "error"
	}

	return "unknown"
}
