package repositories

import (
	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations.
// Every operation is scoped by the owning user ID; a row belonging to another
// user behaves exactly like a missing row.
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id, userID uuid.UUID) (*models.Category, error)
	ListByUserID(userID uuid.UUID) ([]models.Category, error)
	Delete(id, userID uuid.UUID) error
	CountReferences(categoryID, userID uuid.UUID) (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id, userID uuid.UUID) (*models.Transaction, error)
	ListByUserID(userID uuid.UUID) ([]models.Transaction, error)
	ListByUserIDInWindow(userID uuid.UUID, window models.MonthWindow) ([]models.Transaction, error)
	ListExpensesInWindow(userID uuid.UUID, window models.MonthWindow) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id, userID uuid.UUID) error
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Upsert(budget *models.Budget) (*models.Budget, error)
	GetByID(id, userID uuid.UUID) (*models.Budget, error)
	ListByUserIDAndMonth(userID uuid.UUID, month string) ([]models.Budget, error)
	Delete(id, userID uuid.UUID) error
}
