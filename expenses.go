package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newExpenseTable(theme Theme) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Category", Width: 20},
			{Title: "Amount", Width: 14},
			{Title: "Description", Width: 40},
		}),
		table.WithFocused(true),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(string(theme.Primary)))
	t.SetStyles(tableStyle)

	return t
}

// rebuildExpenseTable re-slices the current page out of the expense list.
// Called whenever the list, the page number, or the page size changes.
func (m *model) rebuildExpenseTable() {
	p := paginate(len(m.expenses), m.pageNumber, m.pageSize)
	m.pageNumber = p.number

	pageExpenses := pageRows(m.expenses, p)
	rows := make([]table.Row, len(pageExpenses))
	for i, e := range pageExpenses {
		rows[i] = table.Row{
			e.Date,
			e.Category,
			displayAmount(e.Value, m.config.Currency),
			e.Description,
		}
	}

	m.expenseTable.SetRows(rows)
	if m.expenseTable.Cursor() >= len(rows) {
		m.expenseTable.SetCursor(0)
	}
}

type expenseTableKeyMap struct {
	nextPage     key.Binding
	previousPage key.Binding
	growPage     key.Binding
	shrinkPage   key.Binding
	addExpense   key.Binding
	deleteRow    key.Binding
}

func newExpenseTableKeyMap() expenseTableKeyMap {
	return expenseTableKeyMap{
		nextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		previousPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous page"),
		),
		growPage: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "more rows per page"),
		),
		shrinkPage: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer rows per page"),
		),
		addExpense: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add expense"),
		),
		deleteRow: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete expense"),
		),
	}
}

func updateExpenses(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.expenseTable, cmd = m.expenseTable.Update(msg)
		return m, cmd
	}

	keys := m.expenseKeys

	switch {
	case key.Matches(keyMsg, keys.nextPage):
		p := paginate(len(m.expenses), m.pageNumber, m.pageSize)
		if m.pageNumber < p.totalPages {
			m.pageNumber++
			m.rebuildExpenseTable()
		}
		return m, nil

	case key.Matches(keyMsg, keys.previousPage):
		if m.pageNumber > 1 {
			m.pageNumber--
			m.rebuildExpenseTable()
		}
		return m, nil

	case key.Matches(keyMsg, keys.growPage):
		// any page size change starts over at page 1
		m.pageSize += 5
		m.pageNumber = 1
		m.rebuildExpenseTable()
		return m, nil

	case key.Matches(keyMsg, keys.shrinkPage):
		if m.pageSize > 5 {
			m.pageSize -= 5
			m.pageNumber = 1
			m.rebuildExpenseTable()
		}
		return m, nil

	case key.Matches(keyMsg, keys.addExpense):
		return startAddExpense(&m)

	case key.Matches(keyMsg, keys.deleteRow):
		return deleteSelectedExpense(m)
	}

	var cmd tea.Cmd
	m.expenseTable, cmd = m.expenseTable.Update(msg)
	return m, cmd
}

func deleteSelectedExpense(m model) (tea.Model, tea.Cmd) {
	p := paginate(len(m.expenses), m.pageNumber, m.pageSize)
	idx := p.start + m.expenseTable.Cursor()
	if idx < p.start || idx >= p.end {
		return m, nil
	}

	e := m.expenses[idx]
	if e.ID == "" {
		m.statusMsg = "selected expense has no id, cannot delete"
		return m, nil
	}

	return m, m.deleteExpense(e.ID)
}

func expensesView(m model) string {
	p := paginate(len(m.expenses), m.pageNumber, m.pageSize)

	footer := fmt.Sprintf("Showing %d-%d of %d · page %d/%d",
		p.rangeStart, p.rangeEnd, len(m.expenses), p.number, p.totalPages)

	return m.expenseTable.View() + "\n" + m.styles.statusStyle.Render(footer)
}
