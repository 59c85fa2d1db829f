// Package config holds the application configuration and its settings view.
package config

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Colors customizes the theme. Values are hex colors or ANSI codes; empty
// values fall back to the built-in defaults.
type Colors struct {
	Primary       string `toml:"primary"`
	Error         string `toml:"error"`
	Success       string `toml:"success"`
	Warning       string `toml:"warning"`
	Muted         string `toml:"muted"`
	Income        string `toml:"income"`
	Expense       string `toml:"expense"`
	Border        string `toml:"border"`
	Background    string `toml:"background"`
	Text          string `toml:"text"`
	SecondaryText string `toml:"secondary_text"`
}

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug"`
	// BaseURL is the FinTrack API base URL
	BaseURL string `toml:"base_url"`
	// Token is the FinTrack API access token
	Token string `toml:"token"`
	// PageSize is the number of rows per expense table page
	PageSize int `toml:"page_size"`
	// Currency is the display currency code
	Currency string `toml:"currency"`
	// AnthropicAPIKey enables AI category suggestions
	AnthropicAPIKey string `toml:"anthropic_api_key"`
	// Colors overrides theme colors
	Colors Colors `toml:"colors"`
}

// Model represents the config view model.
type Model struct {
	configTable table.Model
}

// New creates a new config view model.
func New() Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 30},
			{Title: "Value", Width: 40},
			{Title: "Description", Width: 50},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color("#ffd644"))

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the config table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the config table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

func maskSensitiveValue(value string) string {
	if value == "" {
		return "(not set)"
	}

	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}

	return value[:4] + strings.Repeat("*", len(value)-4)
}

// SetConfig sets the configuration data for the view.
func (m *Model) SetConfig(config Config) {
	rows := []table.Row{
		{
			"Debug",
			strconv.FormatBool(config.Debug),
			"Enable debug logging",
		},
		{
			"Base URL",
			config.BaseURL,
			"FinTrack API base URL",
		},
		{
			"Token",
			maskSensitiveValue(config.Token),
			"FinTrack API access token",
		},
		{
			"Page Size",
			strconv.Itoa(config.PageSize),
			"Rows per expense table page",
		},
		{
			"Currency",
			config.Currency,
			"Display currency code",
		},
		{
			"Anthropic API Key",
			maskSensitiveValue(config.AnthropicAPIKey),
			"Enables AI category suggestions",
		},
	}

	m.configTable.SetRows(rows)
}

// Init initializes the config view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the config view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the config view.
func (m Model) View() string {
	return m.configTable.View()
}
