package main

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/fintrack/fintui/fintrack"
	"github.com/fintrack/fintui/overview"
)

// Message types for API responses.
type (
	// dashboardMsg carries one joined fetch batch. No partial batches: if
	// any of the four calls failed, a dashboardErrMsg is sent instead.
	dashboardMsg struct {
		generation int
		cards      *fintrack.CardsSummary
		expenses   []fintrack.Expense
		breakdown  []fintrack.CategorySlice
		days       []fintrack.DayTotal
	}

	dashboardErrMsg struct {
		generation int
		err        error
	}

	categoriesMsg struct {
		categories []fintrack.Category
		err        error
	}

	loginMsg struct {
		token string
		err   error
	}

	createExpenseMsg struct {
		err error
	}

	deleteExpenseMsg struct {
		err error
	}

	// authErrorMsg is sent when any call comes back 401. The session is
	// cleared and the user lands on the login view.
	authErrorMsg struct {
		err error
	}
)

// getDashboard fetches the four dashboard data sets in parallel and joins
// them into a single message tagged with the issuing generation.
func (m model) getDashboard(generation int) tea.Cmd {
	rng := m.activeRange.apiRange()
	ftc := m.ftc

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiRequestTimeout)
		defer cancel()

		var (
			errGroup  errgroup.Group
			cards     *fintrack.CardsSummary
			expenses  []fintrack.Expense
			breakdown []fintrack.CategorySlice
			days      []fintrack.DayTotal
		)

		errGroup.Go(func() error {
			cs, err := ftc.GetCards(ctx, rng)
			if err != nil {
				return err
			}
			cards = cs
			return nil
		})

		errGroup.Go(func() error {
			es, err := ftc.GetExpenses(ctx, rng)
			if err != nil {
				return err
			}
			expenses = es
			return nil
		})

		errGroup.Go(func() error {
			bs, err := ftc.GetCategoryBreakdown(ctx, rng)
			if err != nil {
				return err
			}
			breakdown = bs
			return nil
		})

		errGroup.Go(func() error {
			ds, err := ftc.GetDayBreakdown(ctx, rng)
			if err != nil {
				return err
			}
			days = ds
			return nil
		})

		if err := errGroup.Wait(); err != nil {
			if fintrack.IsAuthError(err) {
				return authErrorMsg{err: err}
			}
			return dashboardErrMsg{generation: generation, err: err}
		}

		return dashboardMsg{
			generation: generation,
			cards:      cards,
			expenses:   expenses,
			breakdown:  breakdown,
			days:       days,
		}
	}
}

func (m model) getCategories() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), apiRequestTimeout)
	defer cancel()

	cs, err := m.ftc.GetCategories(ctx)
	if err != nil {
		if fintrack.IsAuthError(err) {
			return authErrorMsg{err: err}
		}
		return categoriesMsg{err: err}
	}

	return categoriesMsg{categories: cs}
}

func (m model) loginCmd(username, password string) tea.Cmd {
	ftc := m.ftc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiRequestTimeout)
		defer cancel()

		token, err := ftc.Login(ctx, username, password)
		return loginMsg{token: token, err: err}
	}
}

func (m model) createExpense(req fintrack.CreateExpenseRequest) tea.Cmd {
	ftc := m.ftc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiRequestTimeout)
		defer cancel()

		if _, err := ftc.CreateExpense(ctx, req); err != nil {
			if fintrack.IsAuthError(err) {
				return authErrorMsg{err: err}
			}
			return createExpenseMsg{err: err}
		}

		return createExpenseMsg{}
	}
}

func (m model) deleteExpense(id fintrack.FlexID) tea.Cmd {
	ftc := m.ftc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiRequestTimeout)
		defer cancel()

		if err := ftc.DeleteExpense(ctx, id); err != nil {
			if fintrack.IsAuthError(err) {
				return authErrorMsg{err: err}
			}
			return deleteExpenseMsg{err: err}
		}

		return deleteExpenseMsg{}
	}
}

// Message handlers.

func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()

	m.width = msg.Width
	m.height = msg.Height

	takenHeight := 5
	m.overview.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.expenseTable.SetWidth(msg.Width - h)
	m.expenseTable.SetHeight(msg.Height - v - takenHeight - 2)
	m.configView.SetSize(msg.Width-h, msg.Height-v-takenHeight)

	m.help.Width = msg.Width

	if m.addExpenseForm != nil {
		m.addExpenseForm = m.addExpenseForm.WithHeight(msg.Height - takenHeight).WithWidth(msg.Width)
	}

	return m, nil
}

func (m model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.sessionState != loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
	return m, cmd
}

func (m model) handleDashboard(msg dashboardMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.fetchGeneration {
		log.Debug("discarding stale dashboard batch",
			"got", msg.generation, "want", m.fetchGeneration)
		return m, nil
	}

	m.cards = msg.cards
	m.expenses = msg.expenses
	m.summary = aggregateExpenses(msg.expenses)
	m.statusMsg = ""

	m.overview.SetData(overview.Data{
		Cards:     msg.cards,
		Breakdown: msg.breakdown,
		Days:      msg.days,
		Fallback: overview.Summary{
			Total:       m.summary.total,
			TopCategory: m.summary.topCategory,
		},
		ExpenseCount: len(msg.expenses),
		Range:        m.rangeLabel(),
	})

	m.rebuildExpenseTable()

	m.loadingState.set("dashboard")
	m.sessionState = m.checkIfLoading()

	return m, nil
}

func (m model) handleDashboardErr(msg dashboardErrMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.fetchGeneration {
		return m, nil
	}

	log.Error("dashboard fetch failed", "error", msg.err)

	// nothing on screen yet to fall back to
	if m.cards == nil && len(m.expenses) == 0 {
		m.errorMsg = "could not reach the FinTrack API: " + msg.err.Error()
		m.sessionState = errorState
		return m, nil
	}

	// no partial state: the previous data stays on screen
	m.statusMsg = "fetch failed: " + msg.err.Error()
	m.loadingState.set("dashboard")
	m.sessionState = m.checkIfLoading()

	return m, nil
}

// handleCategories marks the fetch finished either way; a failure must not
// leave the loading spinner stuck.
func (m model) handleCategories(msg categoriesMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Error("fetching categories failed", "error", msg.err)
		m.statusMsg = "could not load categories: " + msg.err.Error()
	} else {
		m.categories = msg.categories
	}

	m.loadingState.set("categories")
	m.sessionState = m.checkIfLoading()
	return m, nil
}

func (m model) handleLogin(msg loginMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Error("login failed", "error", msg.err)
		m.loginForm = newLoginForm()
		m.statusMsg = "login failed: " + msg.err.Error()
		m.sessionState = loginState
		return m, m.loginForm.Init()
	}

	m.sess.SetToken(msg.token)
	m.ftc.SetToken(msg.token)
	m.statusMsg = ""
	m.loginForm = nil

	return m.refetchDashboard(overviewState, m.getCategories)
}

func (m model) handleAuthError(msg authErrorMsg) (tea.Model, tea.Cmd) {
	log.Debug("authorization expired", "error", msg.err)

	m.sess.Clear()
	m.ftc.SetToken("")
	// everything fetched under the dead session is stale; the post-login
	// refetch loads both the dashboard and the categories again
	m.loadingState.reset()
	m.loginForm = newLoginForm()
	m.statusMsg = "session expired, log in again"
	m.sessionState = loginState

	return m, m.loginForm.Init()
}

func (m model) handleCreateExpense(msg createExpenseMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.statusMsg = "could not save expense: " + msg.err.Error()
		return m, nil
	}

	m.statusMsg = "expense saved"
	return m.refetchDashboard(expensesState)
}

func (m model) handleDeleteExpense(msg deleteExpenseMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.statusMsg = "could not delete expense: " + msg.err.Error()
		return m, nil
	}

	m.statusMsg = "expense deleted"
	return m.refetchDashboard(expensesState)
}

// refetchDashboard bumps the batch generation, flips into the loading state,
// and issues a fresh fetch. extra commands run alongside the batch.
func (m model) refetchDashboard(returnTo sessionState, extra ...tea.Cmd) (tea.Model, tea.Cmd) {
	m.fetchGeneration++
	m.previousSessionState = returnTo
	m.sessionState = loading
	m.loadingState.unset("dashboard")

	cmds := append([]tea.Cmd{m.getDashboard(m.fetchGeneration), m.loadingSpinner.Tick}, extra...)
	return m, tea.Batch(cmds...)
}

func (m *model) rangeLabel() string {
	if m.activeRange == nil {
		return ""
	}
	return m.activeRange.String()
}
