package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/repositories"

	"github.com/google/uuid"
)

var ErrCategoryInUse = errors.New("category is referenced by transactions or budgets")

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		metrics:      metrics,
	}
}

// CreateCategory adds a category for the caller
func (s *categoryService) CreateCategory(userID uuid.UUID, name, kind string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.ErrNameRequired
	}
	if !models.IsValidKind(kind) {
		return nil, models.ErrInvalidKind
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Kind:   kind,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		slog.Error("failed to create category", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.metrics.IncrementCounter("category_created", map[string]string{"kind": kind})
	return category, nil
}

// ListCategories returns all of the caller's categories grouped by kind
func (s *categoryService) ListCategories(userID uuid.UUID) ([]models.Category, error) {
	categories, err := s.categoryRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// DeleteCategory removes a category that nothing references. Categories still
// tagged on transactions or budgets report ErrCategoryInUse instead of leaving
// dangling references behind.
func (s *categoryService) DeleteCategory(id, userID uuid.UUID) error {
	references, err := s.categoryRepo.CountReferences(id, userID)
	if err != nil {
		return fmt.Errorf("failed to count category references: %w", err)
	}
	if references > 0 {
		return ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(id, userID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
