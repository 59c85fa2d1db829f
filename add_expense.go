package main

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/fintrack/fintui/fintrack"
)

func newAddExpenseForm(categories []fintrack.Category) *huh.Form {
	sorted := make([]fintrack.Category, len(categories))
	copy(sorted, categories)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	categoryOpts := make([]huh.Option[int64], len(sorted))
	for i, c := range sorted {
		categoryOpts[i] = huh.NewOption(c.Name, c.ID)
	}

	today := time.Now().Format(dateLayout)
	nowClock := time.Now().Format("15:04")

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Description("How much was spent").
				Key("amount").
				Placeholder("42.50").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("amount is required")
					}
					v, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return fmt.Errorf("amount must be a valid number")
					}
					if v <= 0 {
						return fmt.Errorf("amount must be positive")
					}
					return nil
				}),

			huh.NewSelect[int64]().
				Title("Category").
				Description("Where the money went").
				Options(categoryOpts...).
				Key("category"),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("Expense date (YYYY-MM-DD)").
				Key("date").
				Value(&today).
				Validate(func(s string) error {
					if _, ok := parseDate(s); !ok {
						return fmt.Errorf("date must be in YYYY-MM-DD format")
					}
					return nil
				}),

			huh.NewInput().
				Title("Time").
				Description("Expense time (HH:MM)").
				Key("time").
				Value(&nowClock).
				Validate(func(s string) error {
					if _, err := time.Parse("15:04", s); err != nil {
						return fmt.Errorf("time must be in HH:MM format")
					}
					return nil
				}),

			huh.NewText().
				Title("Description (Optional)").
				Key("description").
				Placeholder("groceries at the corner market..."),
		),
	)
}

func startAddExpense(m *model) (tea.Model, tea.Cmd) {
	if len(m.categories) == 0 {
		m.statusMsg = "categories not loaded yet"
		return m, nil
	}

	m.addExpenseForm = newAddExpenseForm(m.categories)
	m.previousSessionState = m.sessionState
	m.sessionState = addExpenseState

	return m, tea.Batch(m.addExpenseForm.Init(), tea.WindowSize())
}

func updateAddExpense(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	form, cmd := m.addExpenseForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.addExpenseForm = f
	}

	if m.addExpenseForm.State == huh.StateCompleted {
		req, err := addExpenseRequest(m.addExpenseForm)
		m.sessionState = expensesState
		if err != nil {
			m.statusMsg = err.Error()
			return m, nil
		}
		return m, m.createExpense(req)
	}

	if m.addExpenseForm.State == huh.StateAborted {
		m.sessionState = expensesState
		return m, nil
	}

	return m, cmd
}

func addExpenseRequest(form *huh.Form) (fintrack.CreateExpenseRequest, error) {
	amount, err := strconv.ParseFloat(form.GetString("amount"), 64)
	if err != nil {
		return fintrack.CreateExpenseRequest{}, fmt.Errorf("invalid amount: %w", err)
	}

	categoryID, ok := form.Get("category").(int64)
	if !ok {
		return fintrack.CreateExpenseRequest{}, fmt.Errorf("no category selected")
	}

	return fintrack.CreateExpenseRequest{
		Amount:      amount,
		CategoryID:  categoryID,
		Date:        form.GetString("date"),
		Time:        form.GetString("time"),
		Description: form.GetString("description"),
	}, nil
}

func addExpenseView(m model) string {
	return m.addExpenseForm.View()
}
