package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrBudgetNotFound = errors.New("budget not found")

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Upsert inserts a budget row or, when one already exists for the same
// (user, category, month), replaces its amount. The stored row is returned,
// so repeated submissions never produce duplicates and the caller always
// sees the canonical row ID.
func (r *budgetRepository) Upsert(budget *models.Budget) (*models.Budget, error) {
	if budget == nil {
		return nil, errors.New("budget cannot be nil")
	}

	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "category_id"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     budget.Amount,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(budget).Error; err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	var stored models.Budget
	if err := r.db.Preload("Category").
		Where("user_id = ? AND category_id = ? AND month = ?",
			budget.UserID, budget.CategoryID, budget.Month).
		First(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to load upserted budget: %w", err)
	}
	return &stored, nil
}

// GetByID retrieves one of the user's budgets by ID
func (r *budgetRepository) GetByID(id, userID uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// ListByUserIDAndMonth retrieves the user's budgets for a first-of-month date
// in creation order with the category preloaded
func (r *budgetRepository) ListByUserIDAndMonth(userID uuid.UUID, month string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Preload("Category").
		Where("user_id = ? AND month = ?", userID, month).
		Order("created_at ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// Delete removes one of the user's budgets. Deleting a row that does not
// exist (or belongs to another user) reports ErrBudgetNotFound.
func (r *budgetRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
