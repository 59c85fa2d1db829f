package main

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	overview       key.Binding
	expenses       key.Binding
	config         key.Binding
	nextPeriod     key.Binding
	previousPeriod key.Binding
	switchFilter   key.Binding
	escape         key.Binding
	fullHelp       key.Binding
	quit           key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.overview,
		km.expenses,
		km.switchFilter,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.overview,
			km.expenses,
			km.config,
			km.quit,
			km.fullHelp,
		},
		{
			km.nextPeriod,
			km.previousPeriod,
			km.switchFilter,
		},
	}
}

func initializeKeyMap() keyMap {
	return keyMap{
		overview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overview"),
		),
		expenses: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "expenses"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		nextPeriod: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next period"),
		),
		previousPeriod: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous period"),
		),
		switchFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "switch day/week/month"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "escape"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	k := msg.String()
	log.Debug("key pressed", "key", k)

	// ctrl+c always quits, even from a form
	if k == "ctrl+c" {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.escape) {
		return handleEscape(m)
	}

	if isInputBlocked(m) {
		return m, nil
	}

	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}

	if model, cmd := handleNavigationKeys(msg, m); cmd != nil {
		return model, cmd
	}

	if model, cmd := handleSessionStateKeys(msg, m); cmd != nil {
		return model, cmd
	}

	return m, nil
}

func isInputBlocked(m *model) bool {
	if m.loginForm != nil && m.loginForm.State == huh.StateNormal && m.sessionState == loginState {
		return true
	}

	if m.addExpenseForm != nil && m.addExpenseForm.State == huh.StateNormal && m.sessionState == addExpenseState {
		return true
	}

	if m.sessionState == loading {
		return true
	}

	return false
}

func handleNavigationKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.nextPeriod):
		return applyFilterChange(m, shiftFilter(m.filter, nextPeriod))
	case key.Matches(msg, m.keys.previousPeriod):
		return applyFilterChange(m, shiftFilter(m.filter, previousPeriod))
	case key.Matches(msg, m.keys.switchFilter):
		return switchFilterMode(m)
	}

	return m, nil
}

// applyFilterChange installs new range inputs, re-resolves the active
// window, and refetches. Any range change starts the table over at page 1.
func applyFilterChange(m *model, fs filterState) (tea.Model, tea.Cmd) {
	m.filter = fs
	if rng, ok := resolveFilter(fs); ok {
		m.activeRange = &rng
	} else {
		m.activeRange = nil
	}
	m.pageNumber = 1

	returnTo := m.sessionState
	if returnTo == loading || returnTo == configView {
		returnTo = overviewState
	}

	return m.refetchDashboard(returnTo)
}

func switchFilterMode(m *model) (tea.Model, tea.Cmd) {
	return applyFilterChange(m, cycleFilterMode(m.filter, time.Now()))
}

func handleSessionStateKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.expenses):
		if m.sessionState != expensesState {
			m.previousSessionState = m.sessionState
			m.sessionState = expensesState
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.overview):
		if m.sessionState != overviewState {
			m.previousSessionState = m.sessionState
			m.sessionState = overviewState
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.config):
		if m.sessionState != configView {
			m.previousSessionState = m.sessionState
			m.configView.SetFocus(true)
			m.sessionState = configView
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.fullHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, tea.WindowSize()
	}

	return m, nil
}

// handleEscape steps back toward the overview.
func handleEscape(m *model) (tea.Model, tea.Cmd) {
	switch m.sessionState {
	case addExpenseState:
		log.Debug("handling escape in add expense state")
		m.addExpenseForm.State = huh.StateAborted
		m.previousSessionState = overviewState
		m.sessionState = expensesState
		return m, tea.WindowSize()

	case loginState:
		// nowhere to go back to without a session
		return m, nil

	default:
		m.previousSessionState = m.sessionState
		m.sessionState = overviewState
		return m, tea.WindowSize()
	}
}
