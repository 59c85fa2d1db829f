package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// always check for quit key first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd := handleKeyPress(msg, &m); cmd != nil {
			log.Debug("key press handled, cmd returned")
			return model, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	case dashboardMsg:
		return m.handleDashboard(msg)

	case dashboardErrMsg:
		return m.handleDashboardErr(msg)

	case categoriesMsg:
		return m.handleCategories(msg)

	case loginMsg:
		return m.handleLogin(msg)

	case authErrorMsg:
		return m.handleAuthError(msg)

	case createExpenseMsg:
		return m.handleCreateExpense(msg)

	case deleteExpenseMsg:
		return m.handleDeleteExpense(msg)
	}

	return m.updateSessionState(msg)
}

// updateSessionState routes messages to whichever view is active.
func (m model) updateSessionState(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.sessionState {
	case overviewState:
		var cmd tea.Cmd
		m.overview, cmd = m.overview.Update(msg)
		return m, cmd

	case expensesState:
		return updateExpenses(msg, m)

	case addExpenseState:
		return updateAddExpense(msg, m)

	case loginState:
		return updateLogin(msg, m)

	case configView:
		var cmd tea.Cmd
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd
	}

	return m, nil
}
