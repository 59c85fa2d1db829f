package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		state    sessionState
		expected string
	}{
		{state: loginState, expected: "login"},
		{state: overviewState, expected: "overview"},
		{state: expensesState, expected: "expenses"},
		{state: addExpenseState, expected: "add expense"},
		{state: configView, expected: "configuration"},
		{state: loading, expected: "loading"},
		{state: errorState, expected: "error"},
		{state: sessionState(99), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			be.Equal(t, tt.expected, tt.state.String())
		})
	}
}
