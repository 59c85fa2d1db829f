package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fintrack/fintui/config"
	"github.com/fintrack/fintui/fintrack"
)

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Global variables for configuration.
var (
	cfgFile  string
	debug    bool
	token    string
	baseURL  string
	pageSize int
	currency string

	cfg  config.Config
	ftc  *fintrack.Client
	sess *session
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fintui",
	Short: "A terminal UI and CLI for FinTrack",
	Long:  `A terminal-based interface and CLI for tracking your spending with FinTrack.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg = config.Config{
			Debug:           debug,
			BaseURL:         baseURL,
			Token:           token,
			PageSize:        pageSize,
			Currency:        currency,
			AnthropicAPIKey: viper.GetString("anthropic_api_key"),
			Colors:          loadColors(),
		}

		log.SetLevel(log.InfoLevel)
		if cfg.Debug {
			log.SetLevel(log.DebugLevel)
		}

		sess = newSession()

		// explicit token beats the stored session
		if cfg.Token == "" {
			cfg.Token = sess.Token()
		}

		var err error
		ftc, err = fintrack.NewClient(cfg.BaseURL, cfg.Token)
		if err != nil {
			return fmt.Errorf("failed to create FinTrack client: %w", err)
		}

		ftc.HTTP.Transport = newLoggingTransport(ftc.HTTP.Transport, log.Default())

		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		// Start TUI when no subcommands are provided
		return rootAction(c.Context(), cfg, ftc, sess)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is fintui.toml in the config dir)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "the FinTrack API access token")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", fintrack.DefaultBaseURL, "the FinTrack API base URL")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", defaultPageSize, "rows per expense table page")
	rootCmd.PersistentFlags().StringVar(&currency, "currency", defaultCurrency, "display currency code")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("page_size", rootCmd.PersistentFlags().Lookup("page-size"))
	_ = viper.BindPFlag("currency", rootCmd.PersistentFlags().Lookup("currency"))

	// Bind environment variables
	_ = viper.BindEnv("token", "FINTRACK_API_TOKEN")
	_ = viper.BindEnv("base_url", "FINTRACK_BASE_URL")
	_ = viper.BindEnv("anthropic_api_key", "FINTUI_ANTHROPIC_API_KEY")

	// Add subcommands
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(expenseCmd)
	rootCmd.AddCommand(newCategoriesCmd(categoriesGetterFunc(func(ctx context.Context) ([]fintrack.Category, error) {
		return ftc.GetCategories(ctx)
	})))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in multiple locations (in order of precedence)
		viper.AddConfigPath(".")
		viper.SetConfigName("fintui")
		viper.SetConfigType("toml")

		if configDir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(configDir, "fintui"))
		}

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(filepath.Join(home, ".config", "fintui"))
		}

		viper.AddConfigPath("/etc/fintui")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
	} else {
		log.Debug("Using config file", "file", viper.ConfigFileUsed())
	}

	// Update global variables from viper unless the flag was set explicitly
	if !rootCmd.PersistentFlags().Changed("debug") {
		debug = viper.GetBool("debug")
	}
	if !rootCmd.PersistentFlags().Changed("token") {
		token = viper.GetString("token")
	}
	if !rootCmd.PersistentFlags().Changed("base-url") && viper.GetString("base_url") != "" {
		baseURL = viper.GetString("base_url")
	}
	if !rootCmd.PersistentFlags().Changed("page-size") && viper.GetInt("page_size") > 0 {
		pageSize = viper.GetInt("page_size")
	}
	if !rootCmd.PersistentFlags().Changed("currency") && viper.GetString("currency") != "" {
		currency = viper.GetString("currency")
	}
}

func loadColors() config.Colors {
	var colors config.Colors
	if err := viper.UnmarshalKey("colors", &colors); err != nil {
		log.Debug("could not parse colors from config", "error", err)
	}
	return colors
}

// Utility functions for output formatting.
func outputJSON(data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
