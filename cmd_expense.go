package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fintrack/fintui/fintrack"
)

// expenseCmd represents the expense command.
var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Expense management commands",
	Long:  `Commands for listing, adding, and deleting FinTrack expenses.`,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	Long:  `List expenses, optionally restricted to a date range.`,
	RunE:  expenseListRun,
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new expense",
	Long:  `Add a new expense to FinTrack.`,
	RunE:  expenseAddRun,
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense",
	Long:  `Delete an expense by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  expenseDeleteRun,
}

var expenseSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a category for a description",
	Long:  `Ask the AI assistant which category fits an expense description best.`,
	RunE:  expenseSuggestRun,
}

func init() {
	expenseCmd.AddCommand(expenseListCmd)
	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseDeleteCmd)
	expenseCmd.AddCommand(expenseSuggestCmd)

	expenseListCmd.Flags().String("start", "", "Range start date (YYYY-MM-DD)")
	expenseListCmd.Flags().String("end", "", "Range end date (YYYY-MM-DD)")
	expenseListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	expenseAddCmd.Flags().String("amount", "", "Expense amount (required)")
	expenseAddCmd.Flags().Int64("category", 0, "Category ID for the expense (required)")
	expenseAddCmd.Flags().String("date", time.Now().Format(dateLayout), "Expense date (YYYY-MM-DD, defaults to today)")
	expenseAddCmd.Flags().String("time", time.Now().Format("15:04"), "Expense time (HH:MM, defaults to now)")
	expenseAddCmd.Flags().String("description", "", "Description of the expense")
	_ = expenseAddCmd.MarkFlagRequired("amount")
	_ = expenseAddCmd.MarkFlagRequired("category")

	expenseSuggestCmd.Flags().String("description", "", "Expense description to categorize (required)")
	_ = expenseSuggestCmd.MarkFlagRequired("description")
}

func expenseListRun(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), apiRequestTimeout)
	defer cancel()

	outputFormat, _ := cmd.Flags().GetString("output")
	validFormats := []string{tableOutputFormat, jsonOutputFormat}
	if !slices.Contains(validFormats, outputFormat) {
		return fmt.Errorf("invalid output format: %s (must be one of %v)", outputFormat, validFormats)
	}

	rng, err := rangeFromFlags(cmd)
	if err != nil {
		return err
	}

	expenses, err := ftc.GetExpenses(ctx, rng)
	if err != nil {
		return fmt.Errorf("failed to fetch expenses: %w", err)
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(expenses)
	case tableOutputFormat:
		return outputExpensesTable(expenses)
	default:
		return errors.New("unsupported output format")
	}
}

// rangeFromFlags builds a date range from --start/--end. Both must be given
// together; a half-open range would silently mean something else server-side.
func rangeFromFlags(cmd *cobra.Command) (*fintrack.DateRange, error) {
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")

	if start == "" && end == "" {
		return nil, nil
	}

	if start == "" || end == "" {
		return nil, errors.New("--start and --end must be used together")
	}

	startDate, okStart := parseDate(start)
	endDate, okEnd := parseDate(end)
	if !okStart || !okEnd {
		return nil, fmt.Errorf("invalid date range: %s - %s (expected YYYY-MM-DD)", start, end)
	}

	if startDate.After(endDate) {
		startDate, endDate = endDate, startDate
	}

	return &fintrack.DateRange{
		Start: startDate.Format(dateLayout),
		End:   endDate.Format(dateLayout),
	}, nil
}

func outputExpensesTable(expenses []fintrack.Expense) error {
	t := createStyledTable("ID", "DATE", "CATEGORY", "AMOUNT", "DESCRIPTION")

	var total float64
	for _, e := range expenses {
		t.Row(
			e.ID.String(),
			e.Date,
			e.Category,
			displayAmount(e.Value, currency),
			e.Description,
		)
		total += e.Value
	}

	fmt.Println(t)
	fmt.Printf("%d expenses, %s total\n", len(expenses), displayAmount(total, currency))

	return nil
}

func expenseAddRun(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), apiRequestTimeout)
	defer cancel()

	amountStr, _ := cmd.Flags().GetString("amount")
	categoryID, _ := cmd.Flags().GetInt64("category")
	dateStr, _ := cmd.Flags().GetString("date")
	timeStr, _ := cmd.Flags().GetString("time")
	description, _ := cmd.Flags().GetString("description")

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return fmt.Errorf("invalid amount: %s", amountStr)
	}
	if amount <= 0 {
		return fmt.Errorf("amount must be positive: %s", amountStr)
	}

	if _, ok := parseDate(dateStr); !ok {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}

	if _, err := time.Parse("15:04", timeStr); err != nil {
		return fmt.Errorf("invalid time format: %s (expected HH:MM)", timeStr)
	}

	req := fintrack.CreateExpenseRequest{
		Amount:      amount,
		CategoryID:  categoryID,
		Date:        dateStr,
		Time:        timeStr,
		Description: description,
	}

	log.Debug("creating expense", "request", req)

	id, err := ftc.CreateExpense(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	log.Info("Expense created", "id", id.String())
	return nil
}

func expenseDeleteRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), apiRequestTimeout)
	defer cancel()

	id := fintrack.FlexID(args[0])
	if id == "" {
		return errors.New("expense ID is required")
	}

	if err := ftc.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	log.Info("Expense deleted", "id", id.String())
	return nil
}

func expenseSuggestRun(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), aiRecommendationTimeout)
	defer cancel()

	description, _ := cmd.Flags().GetString("description")

	if cfg.AnthropicAPIKey == "" {
		return errors.New("an Anthropic API key is required (set FINTUI_ANTHROPIC_API_KEY " +
			"or anthropic_api_key in the config file)")
	}

	categories, err := ftc.GetCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch categories: %w", err)
	}

	recommender := newCategoryRecommender(newAnthropicProvider(cfg.AnthropicAPIKey))
	rec, err := recommender.Recommend(ctx, description, categories)
	if err != nil {
		return fmt.Errorf("failed to get a suggestion: %w", err)
	}

	t := createStyledTable("CATEGORY", "CONFIDENCE", "REASONING")
	t.Row(rec.CategoryName, fmt.Sprintf("%.0f%%", rec.Confidence), rec.Reasoning)
	fmt.Println(t)

	return nil
}
