package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fintrack/fintui/fintrack"
)

// categoriesGetter defines the interface for fetching categories.
type categoriesGetter interface {
	GetCategories(ctx context.Context) ([]fintrack.Category, error)
}

// categoriesGetterFunc adapts a function to the categoriesGetter interface.
type categoriesGetterFunc func(ctx context.Context) ([]fintrack.Category, error)

func (f categoriesGetterFunc) GetCategories(ctx context.Context) ([]fintrack.Category, error) {
	return f(ctx)
}

// categoriesListCommand encapsulates the dependencies for the categories list command.
type categoriesListCommand struct {
	getter categoriesGetter
}

// newCategoriesCmd creates a new categories command with the provided categoriesGetter.
func newCategoriesCmd(getter categoriesGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Category management commands",
		Long:  `Commands for inspecting FinTrack expense categories.`,
	}

	listCmd := categoriesListCommand{getter: getter}
	categoriesListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Long:  `List all categories with their IDs.`,
		RunE:  listCmd.run,
	}
	categoriesListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	cmd.AddCommand(categoriesListCmd)
	return cmd
}

// run executes the categories list command.
func (c *categoriesListCommand) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), apiRequestTimeout)
	defer cancel()

	outputFormat, _ := cmd.Flags().GetString("output")

	validFormats := []string{tableOutputFormat, jsonOutputFormat}
	if !slices.Contains(validFormats, outputFormat) {
		return fmt.Errorf("invalid output format: %s (must be one of %v)", outputFormat, validFormats)
	}

	categories, err := c.getter.GetCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch categories: %w", err)
	}

	// Sort categories by name for consistent output
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(categories)
	case tableOutputFormat:
		return outputCategoriesTable(categories)
	default:
		return errors.New("unsupported output format")
	}
}

func outputCategoriesTable(categories []fintrack.Category) error {
	t := createStyledTable("ID", "NAME")

	for _, category := range categories {
		t.Row(
			strconv.FormatInt(category.ID, 10),
			category.Name,
		)
	}

	fmt.Println(t)

	return nil
}
