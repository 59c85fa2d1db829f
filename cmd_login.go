package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// loginCmd represents the login command.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to FinTrack",
	Long:  `Authenticate with the FinTrack API and store the access token for later runs.`,
	RunE:  loginRun,
}

// logoutCmd represents the logout command.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of FinTrack",
	Long:  `Drop the stored access token.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		sess.Clear()
		log.Info("Logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringP("username", "u", "", "FinTrack username (required)")
	loginCmd.Flags().StringP("password", "p", "", "FinTrack password (prompted when omitted)")
	_ = loginCmd.MarkFlagRequired("username")
}

func loginRun(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), apiRequestTimeout)
	defer cancel()

	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	if password == "" {
		p, err := promptPassword()
		if err != nil {
			return err
		}
		password = p
	}

	if password == "" {
		return errors.New("password is required")
	}

	token, err := ftc.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	sess.SetToken(token)
	ftc.SetToken(token)

	log.Info("Logged in", "user", username)
	return nil
}

func promptPassword() (string, error) {
	var password string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("could not read password: %w", err)
	}

	return password, nil
}
