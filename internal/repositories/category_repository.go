package repositories

import (
	"errors"
	"fmt"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category
func (r *categoryRepository) Create(category *models.Category) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves one of the user's categories by ID
func (r *categoryRepository) GetByID(id, userID uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// ListByUserID retrieves all of the user's categories ordered by kind then name
func (r *categoryRepository) ListByUserID(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("user_id = ?", userID).
		Order("kind ASC").
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Delete removes one of the user's categories. Deleting a row that does not
// exist (or belongs to another user) reports ErrCategoryNotFound.
func (r *categoryRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Category{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// CountReferences counts the transactions and budgets that still reference a
// category, used to refuse deleting a category that is in use
func (r *categoryRepository) CountReferences(categoryID, userID uuid.UUID) (int64, error) {
	var transactionCount int64
	if err := r.db.Model(&models.Transaction{}).
		Where("category_id = ? AND user_id = ?", categoryID, userID).
		Count(&transactionCount).Error; err != nil {
		return 0, fmt.Errorf("failed to count transaction references: %w", err)
	}

	var budgetCount int64
	if err := r.db.Model(&models.Budget{}).
		Where("category_id = ? AND user_id = ?", categoryID, userID).
		Count(&budgetCount).Error; err != nil {
		return 0, fmt.Errorf("failed to count budget references: %w", err)
	}

	return transactionCount + budgetCount, nil
}
