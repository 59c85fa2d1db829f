package fintrack

import (
	"context"
	"errors"
	"net/http"
)

// Expense is one row of the expense table, as returned by the API.
type Expense struct {
	Date        string  `json:"expense_date"`
	Category    string  `json:"category_name"`
	Value       float64 `json:"value"`
	Description string  `json:"description,omitempty"`
	ID          FlexID  `json:"id,omitempty"`
}

// LastTransaction is a recent transaction as embedded in the cards summary.
type LastTransaction struct {
	Date     string  `json:"date"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// CardsSummary backs the dashboard summary cards.
type CardsSummary struct {
	TotalExpenses    float64           `json:"total_expenses"`
	TopCategory      string            `json:"top_category"`
	LastTransactions []LastTransaction `json:"last_transactions"`
}

type cardsResponse struct {
	Status statusFlag   `json:"status"`
	Cards  CardsSummary `json:"cards_dict"`
}

// GetCards fetches the summary cards for the given range.
func (c *Client) GetCards(ctx context.Context, rng *DateRange) (*CardsSummary, error) {
	var resp cardsResponse
	if err := c.do(ctx, http.MethodGet, "/expenses/cards", rng.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Cards, nil
}

type expensesResponse struct {
	Status   statusFlag `json:"status"`
	Expenses []Expense  `json:"expenses_list"`
}

// GetExpenses fetches the expense table rows for the given range.
func (c *Client) GetExpenses(ctx context.Context, rng *DateRange) ([]Expense, error) {
	var resp expensesResponse
	if err := c.do(ctx, http.MethodGet, "/expenses/table", rng.values(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Expenses, nil
}

// CategorySlice is one category's share of the spending breakdown.
type CategorySlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Perc  float64 `json:"perc"`
}

type categoryBreakdownResponse struct {
	Status     statusFlag      `json:"status"`
	Categories []CategorySlice `json:"categories_list"`
}

// GetCategoryBreakdown fetches per-category totals for the given range.
func (c *Client) GetCategoryBreakdown(ctx context.Context, rng *DateRange) ([]CategorySlice, error) {
	var resp categoryBreakdownResponse
	if err := c.do(ctx, http.MethodGet, "/expenses/graphic/categories", rng.values(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// DayTotal is one day's total in the daily breakdown.
type DayTotal struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

type dayBreakdownResponse struct {
	Status statusFlag `json:"status"`
	Days   []DayTotal `json:"days_list"`
}

// GetDayBreakdown fetches per-day totals for the given range.
func (c *Client) GetDayBreakdown(ctx context.Context, rng *DateRange) ([]DayTotal, error) {
	var resp dayBreakdownResponse
	if err := c.do(ctx, http.MethodGet, "/expenses/graphic/days", rng.values(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Days, nil
}

// Category is an expense category a new expense can be filed under.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type categoriesResponse struct {
	Status     statusFlag `json:"status"`
	Categories []Category `json:"categories_list"`
}

// GetCategories fetches the available expense categories.
func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	var resp categoriesResponse
	if err := c.do(ctx, http.MethodGet, "/expenses/categories", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// CreateExpenseRequest is the payload for recording a new expense.
type CreateExpenseRequest struct {
	Amount      float64 `json:"amount"`
	CategoryID  int64   `json:"category_id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Description string  `json:"description,omitempty"`
}

type createExpenseResponse struct {
	Status statusFlag `json:"status"`
	ID     FlexID     `json:"id,omitempty"`
}

// CreateExpense records a new expense and returns its ID when the API
// provides one.
func (c *Client) CreateExpense(ctx context.Context, req CreateExpenseRequest) (FlexID, error) {
	var resp createExpenseResponse
	if err := c.do(ctx, http.MethodPost, "/expenses/", nil, req, &resp); err != nil {
		return "", err
	}

	if !bool(resp.Status) {
		return "", errors.New("expense creation rejected by the API")
	}

	return resp.ID, nil
}

type deleteExpenseRequest struct {
	ID FlexID `json:"id"`
}

type deleteExpenseResponse struct {
	Status statusFlag `json:"status"`
}

// DeleteExpense removes the expense with the given ID.
func (c *Client) DeleteExpense(ctx context.Context, id FlexID) error {
	var resp deleteExpenseResponse
	if err := c.do(ctx, http.MethodDelete, "/expenses/", nil, deleteExpenseRequest{ID: id}, &resp); err != nil {
		return err
	}

	if !bool(resp.Status) {
		return errors.New("expense deletion rejected by the API")
	}

	return nil
}
