package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrBudgetCategoryNotFound = errors.New("budget category not found")

type budgetService struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewBudgetService creates a new BudgetServiceInterface instance
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// UpsertBudget creates or replaces the budget for a (category, month) pair.
// The category must belong to the caller, and the month is normalized to its
// first day before storage so repeated submissions hit the same row.
func (s *budgetService) UpsertBudget(userID, categoryID uuid.UUID, amount decimal.Decimal, month string) (*models.Budget, error) {
	window, err := models.NewMonthWindow(month)
	if err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, models.ErrNegativeAmount
	}

	if _, err := s.categoryRepo.GetByID(categoryID, userID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrBudgetCategoryNotFound
		}
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}

	budget := &models.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Month:      window.FirstDay(),
	}

	stored, err := s.budgetRepo.Upsert(budget)
	if err != nil {
		slog.Error("failed to upsert budget", "user_id", userID, "category_id", categoryID, "error", err)
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	s.metrics.IncrementCounter("budget_upserted", map[string]string{"month": month})
	return stored, nil
}

// ListBudgets returns the caller's budgets for one month in creation order
func (s *budgetService) ListBudgets(userID uuid.UUID, month string) ([]models.Budget, error) {
	window, err := models.NewMonthWindow(month)
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.ListByUserIDAndMonth(userID, window.FirstDay())
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if budgets == nil {
		budgets = []models.Budget{}
	}
	return budgets, nil
}

// DeleteBudget removes one of the caller's budgets
func (s *budgetService) DeleteBudget(id, userID uuid.UUID) error {
	if err := s.budgetRepo.Delete(id, userID); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}

// GetUsage totals the month's expenses per category. Categories with no
// spending in the window are omitted; entries keep the order their category
// was first seen while scanning transactions.
func (s *budgetService) GetUsage(userID uuid.UUID, month string) ([]models.CategoryUsage, error) {
	window, err := models.NewMonthWindow(month)
	if err != nil {
		return nil, err
	}

	expenses, err := s.transactionRepo.ListExpensesInWindow(userID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	totals := make(map[uuid.UUID]decimal.Decimal)
	names := make(map[uuid.UUID]string)
	order := make([]uuid.UUID, 0)

	for _, tx := range expenses {
		if _, seen := totals[tx.CategoryID]; !seen {
			order = append(order, tx.CategoryID)
			names[tx.CategoryID] = tx.CategoryName(models.UncategorizedLabel)
		}
		totals[tx.CategoryID] = totals[tx.CategoryID].Add(tx.Amount)
	}

	usage := make([]models.CategoryUsage, 0, len(order))
	for _, id := range order {
		usage = append(usage, models.CategoryUsage{
			CategoryID:   id,
			CategoryName: names[id],
			TotalSpent:   totals[id],
		})
	}
	return usage, nil
}
