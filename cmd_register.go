package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fintrack/fintui/fintrack"
)

const phoneCountryCode = "55"
const phoneLocalDigits = 10

// registerCmd represents the register command.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a FinTrack account",
	Long:  `Create a new FinTrack account. Log in afterwards with 'fintui login'.`,
	RunE:  registerRun,
}

func init() {
	registerCmd.Flags().String("username", "", "Username for the new account (required)")
	registerCmd.Flags().String("password", "", "Password for the new account (prompted when omitted)")
	registerCmd.Flags().String("first-name", "", "First name (required)")
	registerCmd.Flags().String("last-name", "", "Last name (required)")
	registerCmd.Flags().String("birth-date", "", "Birth date (YYYY-MM-DD) (required)")
	registerCmd.Flags().String("phone", "", "Phone number, 10 digits with area code (required)")

	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("first-name")
	_ = registerCmd.MarkFlagRequired("last-name")
	_ = registerCmd.MarkFlagRequired("birth-date")
	_ = registerCmd.MarkFlagRequired("phone")
}

func registerRun(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), apiRequestTimeout)
	defer cancel()

	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")
	birthDate, _ := cmd.Flags().GetString("birth-date")
	phone, _ := cmd.Flags().GetString("phone")

	if _, ok := parseDate(birthDate); !ok {
		return fmt.Errorf("invalid birth date: %s (expected YYYY-MM-DD)", birthDate)
	}

	phoneNumber, err := normalizePhone(phone)
	if err != nil {
		return err
	}

	if password == "" {
		p, promptErr := promptPassword()
		if promptErr != nil {
			return promptErr
		}
		password = p
	}

	req := fintrack.RegisterRequest{
		Username:    username,
		Password:    password,
		FirstName:   firstName,
		LastName:    lastName,
		BirthDate:   birthDate,
		PhoneNumber: phoneNumber,
	}

	if err := ftc.Register(ctx, req); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	log.Info("Account created, log in with 'fintui login'", "user", username)
	return nil
}

// normalizePhone strips formatting characters and prefixes the country code.
// The API expects exactly country code plus ten digits.
func normalizePhone(phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	// tolerate numbers given with the country code already on them
	if len(d) == phoneLocalDigits+len(phoneCountryCode) && strings.HasPrefix(d, phoneCountryCode) {
		d = d[len(phoneCountryCode):]
	}
	if len(d) != phoneLocalDigits {
		return "", fmt.Errorf("invalid phone number: %s (expected %d digits with area code)", phone, phoneLocalDigits)
	}

	return phoneCountryCode + d, nil
}
