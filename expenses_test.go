package main

import (
	"fmt"
	"testing"

	"github.com/carlmjohnson/be"

	"github.com/fintrack/fintui/config"
	"github.com/fintrack/fintui/fintrack"
)

func expensesModel(count int) model {
	m := testModel()
	m.theme = newTheme(config.Colors{})
	m.expenseTable = newExpenseTable(m.theme)
	m.sessionState = expensesState

	for i := 0; i < count; i++ {
		m.expenses = append(m.expenses, fintrack.Expense{
			Date:        "2024-03-12",
			Category:    "Food",
			Value:       float64(i + 1),
			Description: fmt.Sprintf("expense %d", i),
			ID:          fintrack.FlexID(fmt.Sprintf("%d", i+1)),
		})
	}
	m.rebuildExpenseTable()

	return m
}

func TestExpensePageNavigation(t *testing.T) {
	m := expensesModel(25)

	resultModel, _ := updateExpenses(keyMsg('l'), m)
	result := resultModel.(model)
	be.Equal(t, 2, result.pageNumber)
	be.Equal(t, 10, len(result.expenseTable.Rows()))

	resultModel, _ = updateExpenses(keyMsg('l'), result)
	result = resultModel.(model)
	be.Equal(t, 3, result.pageNumber)
	be.Equal(t, 5, len(result.expenseTable.Rows()))

	// already on the last page
	resultModel, _ = updateExpenses(keyMsg('l'), result)
	result = resultModel.(model)
	be.Equal(t, 3, result.pageNumber)

	resultModel, _ = updateExpenses(keyMsg('h'), result)
	result = resultModel.(model)
	be.Equal(t, 2, result.pageNumber)
}

func TestExpensePageSizeChangeResetsToFirstPage(t *testing.T) {
	m := expensesModel(25)
	m.pageNumber = 3
	m.rebuildExpenseTable()

	resultModel, _ := updateExpenses(keyMsg('+'), m)
	result := resultModel.(model)
	be.Equal(t, 15, result.pageSize)
	be.Equal(t, 1, result.pageNumber)

	result.pageNumber = 2
	resultModel, _ = updateExpenses(keyMsg('-'), result)
	result = resultModel.(model)
	be.Equal(t, 10, result.pageSize)
	be.Equal(t, 1, result.pageNumber)
}

func TestExpensePageSizeFloor(t *testing.T) {
	m := expensesModel(25)
	m.pageSize = 5
	m.rebuildExpenseTable()

	resultModel, _ := updateExpenses(keyMsg('-'), m)
	result := resultModel.(model)
	be.Equal(t, 5, result.pageSize)
}

func TestDeleteSelectedExpense(t *testing.T) {
	m := expensesModel(3)

	_, cmd := deleteSelectedExpense(m)
	be.Nonzero(t, cmd)
}

func TestDeleteSelectedExpenseWithoutID(t *testing.T) {
	m := expensesModel(1)
	m.expenses[0].ID = ""
	m.rebuildExpenseTable()

	resultModel, cmd := deleteSelectedExpense(m)
	be.Zero(t, cmd)
	be.Nonzero(t, resultModel.(model).statusMsg)
}

func TestDeleteOnEmptyListDoesNothing(t *testing.T) {
	m := expensesModel(0)

	_, cmd := deleteSelectedExpense(m)
	be.Zero(t, cmd)
}

func TestExpensesViewFooter(t *testing.T) {
	m := expensesModel(25)
	m.styles = createStyles(m.theme)
	m.pageNumber = 2
	m.rebuildExpenseTable()

	view := expensesView(m)
	be.In(t, "Showing 11-20 of 25", view)
	be.In(t, "page 2/3", view)
}

func TestExpensesViewEmptyFooter(t *testing.T) {
	m := expensesModel(0)
	m.styles = createStyles(m.theme)

	view := expensesView(m)
	be.In(t, "Showing 0-0 of 0", view)
	be.In(t, "page 1/1", view)
}
