package fintrack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carlmjohnson/be"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, "test-token")
	be.NilErr(t, err)
	return c
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, http.MethodPost, r.Method)
		be.Equal(t, "/auth/login", r.URL.Path)

		var req map[string]string
		be.NilErr(t, json.NewDecoder(r.Body).Decode(&req))
		be.Equal(t, "alice", req["username"])
		be.Equal(t, "hunter2", req["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "tok-123"}`))
	})

	token, err := c.Login(context.Background(), "alice", "hunter2")
	be.NilErr(t, err)
	be.Equal(t, "tok-123", token)
}

func TestLoginMissingToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.Login(context.Background(), "alice", "hunter2")
	be.Nonzero(t, err)
}

func TestUnauthorizedIsAuthError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "token expired"}`))
	})

	_, err := c.GetCategories(context.Background())
	be.Nonzero(t, err)
	be.True(t, IsAuthError(err))
	be.In(t, "token expired", err.Error())
}

func TestOtherErrorsAreNotAuthErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := c.GetCategories(context.Background())
	be.Nonzero(t, err)
	be.False(t, IsAuthError(err))
}

func TestBearerTokenHeader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": true, "categories_list": []}`))
	})

	_, err := c.GetCategories(context.Background())
	be.NilErr(t, err)
}

func TestGetExpensesSendsRangeParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, "/expenses/table", r.URL.Path)
		be.Equal(t, "2024-03-11", r.URL.Query().Get("dat_start"))
		be.Equal(t, "2024-03-17", r.URL.Query().Get("dat_end"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"expenses_list": [
				{"expense_date": "2024-03-12", "category_name": "Food", "value": 25.5, "id": 7},
				{"expense_date": "2024-03-13", "category_name": "Transport", "value": 10, "id": "abc"}
			]
		}`))
	})

	expenses, err := c.GetExpenses(context.Background(), &DateRange{Start: "2024-03-11", End: "2024-03-17"})
	be.NilErr(t, err)
	be.Equal(t, 2, len(expenses))
	be.Equal(t, "Food", expenses[0].Category)
	be.Equal(t, 25.5, expenses[0].Value)
	be.Equal(t, FlexID("7"), expenses[0].ID)
	be.Equal(t, FlexID("abc"), expenses[1].ID)
}

func TestGetExpensesNilRangeSendsNoParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, "", r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": true, "expenses_list": []}`))
	})

	_, err := c.GetExpenses(context.Background(), nil)
	be.NilErr(t, err)
}

func TestGetCards(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"cards_dict": {
				"total_expenses": 120.5,
				"top_category": "food",
				"last_transactions": [
					{"date": "2024-03-12", "name": "market", "category": "food", "amount": 25.5}
				]
			}
		}`))
	})

	cards, err := c.GetCards(context.Background(), nil)
	be.NilErr(t, err)
	be.Equal(t, 120.5, cards.TotalExpenses)
	be.Equal(t, "food", cards.TopCategory)
	be.Equal(t, 1, len(cards.LastTransactions))
}

func TestCreateExpense(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, http.MethodPost, r.Method)
		be.Equal(t, "/expenses/", r.URL.Path)

		var req CreateExpenseRequest
		be.NilErr(t, json.NewDecoder(r.Body).Decode(&req))
		be.Equal(t, 42.5, req.Amount)
		be.Equal(t, int64(3), req.CategoryID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "success", "id": 99}`))
	})

	id, err := c.CreateExpense(context.Background(), CreateExpenseRequest{
		Amount:     42.5,
		CategoryID: 3,
		Date:       "2024-03-12",
		Time:       "13:30",
	})
	be.NilErr(t, err)
	be.Equal(t, FlexID("99"), id)
}

func TestCreateExpenseRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "error"}`))
	})

	_, err := c.CreateExpense(context.Background(), CreateExpenseRequest{Amount: 1})
	be.Nonzero(t, err)
}

func TestDeleteExpenseSendsIDInBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, http.MethodDelete, r.Method)

		var req map[string]string
		be.NilErr(t, json.NewDecoder(r.Body).Decode(&req))
		be.Equal(t, "99", req["id"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": true}`))
	})

	be.NilErr(t, c.DeleteExpense(context.Background(), FlexID("99")))
}

func TestStatusFlagNormalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "bool true", input: `true`, expected: true},
		{name: "bool false", input: `false`, expected: false},
		{name: "success string", input: `"success"`, expected: true},
		{name: "ok string", input: `"ok"`, expected: true},
		{name: "error string", input: `"error"`, expected: false},
		{name: "fail string", input: `"fail"`, expected: false},
		{name: "empty string", input: `""`, expected: false},
		{name: "mixed case false", input: `"False"`, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s statusFlag
			be.NilErr(t, json.Unmarshal([]byte(tt.input), &s))
			be.Equal(t, tt.expected, bool(s))
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Status: 422, Message: "invalid amount"}
	be.Equal(t, "fintrack: 422: invalid amount", err.Error())

	bare := &APIError{Status: 500}
	be.Equal(t, "fintrack: unexpected status 500", bare.Error())
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	c, err := NewClient("http://example.com/api/", "")
	be.NilErr(t, err)
	be.Equal(t, "http://example.com/api", c.baseURL)
}

func TestRegister(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, "/auth/register", r.URL.Path)

		var req RegisterRequest
		be.NilErr(t, json.NewDecoder(r.Body).Decode(&req))
		be.Equal(t, "5511999999999", req.PhoneNumber)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": true}`))
	})

	err := c.Register(context.Background(), RegisterRequest{
		Username:    "alice",
		Password:    "hunter2",
		FirstName:   "Alice",
		LastName:    "Silva",
		BirthDate:   "1990-01-01",
		PhoneNumber: "5511999999999",
	})
	be.NilErr(t, err)
}
