package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fintrack/fintui/fintrack"
)

// AIProvider defines the interface for AI-powered category suggestions.
type AIProvider interface {
	// RecommendCategory returns the best-fitting category for the given
	// expense description, with a 0-100 confidence score.
	RecommendCategory(
		ctx context.Context,
		description string,
		categories []fintrack.Category,
	) (*CategoryRecommendation, error)
}

// CategoryRecommendation represents an AI suggestion for an expense category.
type CategoryRecommendation struct {
	CategoryID   int64   `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Confidence   float64 `json:"confidence"` // 0-100 confidence score
	Reasoning    string  `json:"reasoning"`  // Why this category was suggested
}

// categoryRecommender wraps a provider and validates its inputs.
type categoryRecommender struct {
	provider AIProvider
}

func newCategoryRecommender(provider AIProvider) *categoryRecommender {
	return &categoryRecommender{provider: provider}
}

// Recommend asks the provider for a category suggestion.
func (r *categoryRecommender) Recommend(
	ctx context.Context,
	description string,
	categories []fintrack.Category,
) (*CategoryRecommendation, error) {
	if r.provider == nil {
		return nil, errors.New("no AI provider configured")
	}

	if strings.TrimSpace(description) == "" {
		return nil, errors.New("a description is required for a suggestion")
	}

	if len(categories) == 0 {
		return nil, errors.New("no categories to choose from")
	}

	rec, err := r.provider.RecommendCategory(ctx, description, categories)
	if err != nil {
		log.Error("category suggestion failed", "error", err)
		return nil, err
	}

	log.Debug("category suggestion succeeded",
		"category", rec.CategoryName,
		"confidence", rec.Confidence)

	return rec, nil
}

// formatExpenseForAI formats the expense details for AI analysis.
func formatExpenseForAI(description string) string {
	return fmt.Sprintf("Expense Details:\n- Description: %s", description)
}

// formatCategoriesForAI formats available categories for AI analysis.
func formatCategoriesForAI(categories []fintrack.Category) string {
	var sb strings.Builder
	sb.WriteString("Available Categories:\n")
	for _, cat := range categories {
		fmt.Fprintf(&sb, "- ID: %d, Name: %s\n", cat.ID, cat.Name)
	}
	return sb.String()
}
