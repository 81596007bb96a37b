package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	recentTransactionLimit = 5
	dailyTrendDays         = 30
)

type dashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewDashboardService creates a new DashboardServiceInterface instance
func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	metrics MetricsRecorderInterface,
) DashboardServiceInterface {
	return &dashboardService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		metrics:         metrics,
		now:             time.Now,
	}
}

// GetMonthlySummary assembles the full dashboard payload for one user and
// month: headline totals, per-category breakdowns, budget-versus-actual rows,
// the five most recent transactions, and the rolling 30-day spending trend.
func (s *dashboardService) GetMonthlySummary(userID uuid.UUID, month string) (*models.MonthlySummary, error) {
	start := time.Now()

	window, err := models.NewMonthWindow(month)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.ListByUserIDInWindow(userID, window)
	if err != nil {
		slog.Error("failed to load transactions for summary", "user_id", userID, "month", month, "error", err)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	budgets, err := s.budgetRepo.ListByUserIDAndMonth(userID, window.FirstDay())
	if err != nil {
		slog.Error("failed to load budgets for summary", "user_id", userID, "month", month, "error", err)
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	summary := &models.MonthlySummary{
		Summary:            s.buildTotals(transactions, len(budgets)),
		ExpensesByCategory: s.buildCategoryBreakdown(transactions, models.KindExpense),
		IncomeByCategory:   s.buildCategoryBreakdown(transactions, models.KindIncome),
		BudgetComparison:   s.buildBudgetComparison(budgets, transactions),
		RecentTransactions: s.buildRecentTransactions(transactions),
		DailySpending:      s.buildDailySpending(transactions),
	}

	s.metrics.IncrementCounter("dashboard_summary_generated", map[string]string{"month": month})
	s.metrics.RecordProcessingTime("dashboard_summary", time.Since(start))

	return summary, nil
}

// buildTotals sums the month's income and expenses and derives the balance
func (s *dashboardService) buildTotals(transactions []models.Transaction, budgetCount int) models.SummaryTotals {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, tx := range transactions {
		if tx.IsIncome() {
			income = income.Add(tx.Amount)
		} else {
			expenses = expenses.Add(tx.Amount)
		}
	}

	return models.SummaryTotals{
		Income:           income,
		Expenses:         expenses,
		Balance:          income.Sub(expenses),
		TransactionCount: len(transactions),
		BudgetCount:      budgetCount,
	}
}

// buildCategoryBreakdown totals transactions of one kind per category name.
// Entries appear in the order their category was first encountered, and
// transactions without a live category fall under the "Other" label.
func (s *dashboardService) buildCategoryBreakdown(transactions []models.Transaction, kind string) []models.CategoryAmount {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, tx := range transactions {
		if tx.Kind != kind {
			continue
		}
		name := tx.CategoryName(models.UncategorizedLabel)
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] = totals[name].Add(tx.Amount)
	}

	breakdown := make([]models.CategoryAmount, 0, len(order))
	for _, name := range order {
		breakdown = append(breakdown, models.CategoryAmount{
			Name:   name,
			Amount: totals[name],
		})
	}
	return breakdown
}

// buildBudgetComparison pairs each budget with the month's actual spending in
// its category. A zero-amount budget reports 0% usage rather than dividing by
// zero.
func (s *dashboardService) buildBudgetComparison(budgets []models.Budget, transactions []models.Transaction) []models.BudgetComparison {
	spentByCategory := make(map[uuid.UUID]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		spentByCategory[tx.CategoryID] = spentByCategory[tx.CategoryID].Add(tx.Amount)
	}

	comparison := make([]models.BudgetComparison, 0, len(budgets))
	for _, budget := range budgets {
		spent := spentByCategory[budget.CategoryID]

		percentage := 0.0
		if budget.Amount.IsPositive() {
			percentage = spent.Div(budget.Amount).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}

		comparison = append(comparison, models.BudgetComparison{
			Category:   budget.CategoryName(models.UncategorizedLabel),
			Budgeted:   budget.Amount,
			Spent:      spent,
			Remaining:  budget.Amount.Sub(spent),
			Percentage: percentage,
		})
	}
	return comparison
}

// buildRecentTransactions returns up to five transactions ordered newest
// first. The sort is stable so same-day transactions keep their stored order.
func (s *dashboardService) buildRecentTransactions(transactions []models.Transaction) []models.Transaction {
	recent := make([]models.Transaction, len(transactions))
	copy(recent, transactions)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})

	if len(recent) > recentTransactionLimit {
		recent = recent[:recentTransactionLimit]
	}
	return recent
}

// buildDailySpending produces the rolling 30-day expense trend ending today.
// The trend window is independent of the selected month filter, but it totals
// only the transactions already loaded for that month, so days outside the
// selected month always read zero. Every day appears, zero-filled, exactly 30
// entries with today last.
func (s *dashboardService) buildDailySpending(transactions []models.Transaction) []models.DailySpending {
	today := s.now().UTC()

	spentByDate := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		spentByDate[tx.Date] = spentByDate[tx.Date].Add(tx.Amount)
	}

	trend := make([]models.DailySpending, 0, dailyTrendDays)
	for offset := dailyTrendDays - 1; offset >= 0; offset-- {
		date := today.AddDate(0, 0, -offset).Format(models.DateLayout)
		trend = append(trend, models.DailySpending{
			Date:   date,
			Amount: spentByDate[date],
		})
	}
	return trend
}
