package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/fintrack/fintui/config"
	"github.com/fintrack/fintui/fintrack"
	"github.com/fintrack/fintui/overview"
)

type model struct {
	// loadingSpinner is shown while a dashboard batch is in flight
	loadingSpinner spinner.Model

	keys   keyMap
	help   help.Model
	styles styles
	theme  Theme
	config config.Config

	// ftc is the FinTrack API client
	ftc *fintrack.Client
	// sess owns the token and its persistence
	sess *session

	sessionState         sessionState
	previousSessionState sessionState
	loadingState         loadingState
	errorMsg             string
	statusMsg            string

	// filter holds the raw range inputs; activeRange is the resolved window,
	// nil when the inputs are incomplete
	filter      filterState
	activeRange *dateRange

	// fetchGeneration increases with every dashboard batch; responses from
	// older batches are discarded on receipt
	fetchGeneration int

	cards      *fintrack.CardsSummary
	expenses   []fintrack.Expense
	categories []fintrack.Category
	summary    spendingSummary

	overview   overview.Model
	configView config.Model

	// expenseTable shows one page of the expense list
	expenseTable table.Model
	expenseKeys  expenseTableKeyMap
	pageNumber   int
	pageSize     int

	loginForm      *huh.Form
	addExpenseForm *huh.Form

	width  int
	height int
}

func newModel(cfg config.Config, ftc *fintrack.Client, sess *session) model {
	theme := newTheme(cfg.Colors)

	pageSize := cfg.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	m := model{
		keys:         initializeKeyMap(),
		help:         createHelpModel(theme),
		styles:       createStyles(theme),
		theme:        theme,
		config:       cfg,
		ftc:          ftc,
		sess:         sess,
		loadingState: newLoadingState("dashboard", "categories"),
		filter:       defaultFilter(time.Now()),
		overview:     overview.New(overview.WithCurrency(cfg.Currency)),
		configView:   config.New(),
		expenseTable: newExpenseTable(theme),
		expenseKeys:  newExpenseTableKeyMap(),
		pageNumber:   1,
		pageSize:     pageSize,
		loadingSpinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
		),
	}

	m.configView.SetConfig(cfg)

	if rng, ok := resolveFilter(m.filter); ok {
		m.activeRange = &rng
	}

	if sess.IsAuthenticated() {
		m.sessionState = loading
	} else {
		m.sessionState = loginState
		m.loginForm = newLoginForm()
	}

	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadingSpinner.Tick}

	if m.sessionState == loading {
		cmds = append(cmds, m.getDashboard(m.fetchGeneration), m.getCategories)
	}

	if m.loginForm != nil {
		cmds = append(cmds, m.loginForm.Init())
	}

	return tea.Batch(cmds...)
}

// checkIfLoading keeps the loading state until every pending fetch has
// landed, then returns to the view the user came from.
func (m model) checkIfLoading() sessionState {
	if loaded, _ := m.loadingState.allLoaded(); !loaded {
		return loading
	}

	if m.sessionState == loading && m.previousSessionState != loading {
		return m.previousSessionState
	}

	if m.sessionState == loading {
		return overviewState
	}

	return m.sessionState
}

// rootAction starts the TUI. It is the default command action.
func rootAction(_ context.Context, cfg config.Config, ftc *fintrack.Client, sess *session) error {
	m := newModel(cfg, ftc, sess)
	m.previousSessionState = overviewState

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
