package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func newLoginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Key("username").
				Placeholder("username or email").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("username is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Password").
				Key("password").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("password is required")
					}
					return nil
				}),
		),
	)
}

func updateLogin(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	form, cmd := m.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.loginForm = f
	}

	if m.loginForm.State == huh.StateCompleted {
		username := m.loginForm.GetString("username")
		password := m.loginForm.GetString("password")
		return m, m.loginCmd(username, password)
	}

	return m, cmd
}

func loginView(m model) string {
	return m.loginForm.View()
}
