package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel is the display name used when a transaction's category
// is missing or has been deleted
const UncategorizedLabel = "Other"

// SummaryTotals contains the headline numbers for one month
type SummaryTotals struct {
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transaction_count"`
	BudgetCount      int             `json:"budget_count"`
}

// CategoryAmount is one entry of a per-category breakdown. Entries keep the
// order in which their category was first seen while scanning transactions.
type CategoryAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// BudgetComparison contrasts one budget with the actual spending in its month
type BudgetComparison struct {
	Category   string          `json:"category"`
	Budgeted   decimal.Decimal `json:"budgeted"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
}

// DailySpending is the expense total for a single calendar day
type DailySpending struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlySummary is the dashboard aggregation output for one user and month.
// All sections are windowed by the selected month except DailySpending, which
// is a rolling 30-day trend ending today regardless of the month filter.
type MonthlySummary struct {
	Summary            SummaryTotals      `json:"summary"`
	ExpensesByCategory []CategoryAmount   `json:"expenses_by_category"`
	IncomeByCategory   []CategoryAmount   `json:"income_by_category"`
	BudgetComparison   []BudgetComparison `json:"budget_comparison"`
	RecentTransactions []Transaction      `json:"recent_transactions"`
	DailySpending      []DailySpending    `json:"daily_spending"`
}

// CategoryUsage is the per-category expense total reported by the budget
// usage aggregator. Categories without spending in the window are omitted.
type CategoryUsage struct {
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
}
