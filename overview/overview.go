// Package overview renders the spending dashboard widget.
package overview

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fintrack/fintui/fintrack"
)

var titleCaser = cases.Title(language.English)

const maxBarWidth = 30

// Summary is the locally computed fallback for the summary cards, used when
// the cards endpoint returns nothing usable.
type Summary struct {
	Total       float64
	TopCategory string
}

// Data is everything the dashboard shows for one date range.
type Data struct {
	Cards        *fintrack.CardsSummary
	Breakdown    []fintrack.CategorySlice
	Days         []fintrack.DayTotal
	Fallback     Summary
	ExpenseCount int
	Range        string
}

// Model defines the state for the overview widget.
type Model struct {
	Styles   Styles
	Viewport viewport.Model

	data     Data
	currency string
}

type Styles struct {
	CardStyle     lipgloss.Style
	CardTitle     lipgloss.Style
	SpentStyle    lipgloss.Style
	MutedStyle    lipgloss.Style
	BarStyle      lipgloss.Style
	SectionStyle  lipgloss.Style
	SectionTitle  lipgloss.Style
	CategoryStyle lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		CardStyle:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		CardTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		SpentStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		MutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		BarStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#d29b1d")),
		SectionStyle:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		SectionTitle:  lipgloss.NewStyle().Bold(true),
		CategoryStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#bbbbbb")),
	}
}

type Option func(*Model)

// WithCurrency sets the display currency for all amounts.
func WithCurrency(currency string) Option {
	return func(m *Model) {
		if currency != "" {
			m.currency = currency
		}
	}
}

func New(opts ...Option) Model {
	m := Model{
		Styles:   defaultStyles(),
		Viewport: viewport.New(0, 20),
		currency: "BRL",
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.UpdateViewport()

	return m
}

// SetData replaces the dashboard contents.
func (m *Model) SetData(data Data) {
	m.data = data
	m.UpdateViewport()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
}

func (m *Model) UpdateViewport() {
	mainContent := lipgloss.JoinHorizontal(lipgloss.Top,
		m.breakdownView(),
		m.dailyView(),
	)

	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Top,
			m.cardsView(),
			mainContent,
			m.lastTransactionsView(),
		),
	)
}

// totalSpent prefers the cards endpoint and falls back to the local
// aggregation when the cards came back empty.
func (m *Model) totalSpent() float64 {
	if m.data.Cards != nil && m.data.Cards.TotalExpenses != 0 {
		return m.data.Cards.TotalExpenses
	}
	return m.data.Fallback.Total
}

func (m *Model) topCategory() string {
	if m.data.Cards != nil && m.data.Cards.TopCategory != "" {
		return m.data.Cards.TopCategory
	}
	if m.data.Fallback.TopCategory != "" {
		return m.data.Fallback.TopCategory
	}
	return "-"
}

func (m *Model) display(v float64) string {
	return money.NewFromFloat(v, m.currency).Display()
}

func (m *Model) cardsView() string {
	spent := m.Styles.SpentStyle.Render(m.display(m.totalSpent()))
	top := titleCaser.String(m.topCategory())
	count := fmt.Sprintf("%d", m.data.ExpenseCount)

	cards := []string{
		m.card("Total Spent", spent),
		m.card("Top Category", top),
		m.card("Expenses", count),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m *Model) card(title, value string) string {
	return m.Styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Top,
			m.Styles.CardTitle.Render(title),
			value,
		),
	)
}

func (m *Model) breakdownView() string {
	rows := make([]table.Row, len(m.data.Breakdown))
	for i, slice := range m.data.Breakdown {
		rows[i] = table.Row{
			slice.Name,
			m.display(slice.Value),
			fmt.Sprintf("%.1f%%", slice.Perc),
		}
	}

	return m.Styles.SectionStyle.Render(
		lipgloss.JoinVertical(lipgloss.Top,
			m.Styles.SectionTitle.Render("Spending Breakdown"),
			table.New(
				table.WithColumns([]table.Column{
					{Title: "Category", Width: 20},
					{Title: "Total Spent", Width: 15},
					{Title: "% of Total", Width: 10},
				}),
				table.WithRows(rows),
				table.WithHeight(len(rows)+1),
			).View(),
		),
	)
}

// dailyView draws one bar per day, scaled to the largest day of the range.
func (m *Model) dailyView() string {
	var b strings.Builder

	var maxValue float64
	for _, d := range m.data.Days {
		if d.Value > maxValue {
			maxValue = d.Value
		}
	}

	for i, d := range m.data.Days {
		width := 0
		if maxValue > 0 {
			width = int(d.Value / maxValue * maxBarWidth)
		}
		if d.Value > 0 && width == 0 {
			width = 1
		}

		bar := m.Styles.BarStyle.Render(strings.Repeat("█", width))
		b.WriteString(fmt.Sprintf("%s %s %s", m.Styles.MutedStyle.Render(d.Day), bar, m.display(d.Value)))
		if i < len(m.data.Days)-1 {
			b.WriteString("\n")
		}
	}

	if len(m.data.Days) == 0 {
		b.WriteString(m.Styles.MutedStyle.Render("no spending in this range"))
	}

	return m.Styles.SectionStyle.Render(
		lipgloss.JoinVertical(lipgloss.Top,
			m.Styles.SectionTitle.Render("Daily Spending"),
			b.String(),
		),
	)
}

func (m *Model) lastTransactionsView() string {
	if m.data.Cards == nil || len(m.data.Cards.LastTransactions) == 0 {
		return ""
	}

	var b strings.Builder
	for i, t := range m.data.Cards.LastTransactions {
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s",
			m.Styles.MutedStyle.Render(t.Date),
			t.Name,
			m.Styles.CategoryStyle.Render(t.Category),
			m.display(t.Amount),
		))
		if i < len(m.data.Cards.LastTransactions)-1 {
			b.WriteString("\n")
		}
	}

	return m.Styles.SectionStyle.Render(
		lipgloss.JoinVertical(lipgloss.Top,
			m.Styles.SectionTitle.Render("Last Transactions"),
			b.String(),
		),
	)
}
