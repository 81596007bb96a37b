package services

import (
	"time"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokenServiceInterface defines JWT issuing and validation operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines password hashing and policy operations
type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hash, password string) error
	ValidatePasswordStrength(password string) error
}

// AuthServiceInterface defines registration and sign-in operations
type AuthServiceInterface interface {
	Register(email, password, displayName string) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	GetUser(userID uuid.UUID) (*models.User, error)
}

// CategoryServiceInterface defines category management operations
type CategoryServiceInterface interface {
	CreateCategory(userID uuid.UUID, name, kind string) (*models.Category, error)
	ListCategories(userID uuid.UUID) ([]models.Category, error)
	DeleteCategory(id, userID uuid.UUID) error
}

// TransactionServiceInterface defines transaction recording and editing operations
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, input TransactionInput) (*models.Transaction, error)
	ListTransactions(userID uuid.UUID, month string) ([]models.Transaction, error)
	UpdateTransaction(id, userID uuid.UUID, input TransactionInput) (*models.Transaction, error)
	DeleteTransaction(id, userID uuid.UUID) error
}

// TransactionInput carries the writable fields of a transaction
type TransactionInput struct {
	Date        string
	Amount      decimal.Decimal
	Kind        string
	CategoryID  uuid.UUID
	Description string
}

// DashboardServiceInterface defines the dashboard aggregation engine
type DashboardServiceInterface interface {
	GetMonthlySummary(userID uuid.UUID, month string) (*models.MonthlySummary, error)
}

// BudgetServiceInterface defines budget upsert, listing, and the usage aggregator
type BudgetServiceInterface interface {
	UpsertBudget(userID, categoryID uuid.UUID, amount decimal.Decimal, month string) (*models.Budget, error)
	ListBudgets(userID uuid.UUID, month string) ([]models.Budget, error)
	DeleteBudget(id, userID uuid.UUID) error
	GetUsage(userID uuid.UUID, month string) ([]models.CategoryUsage, error)
}

// SeedServiceInterface defines demo-data seeding for development environments
type SeedServiceInterface interface {
	SeedDemoData(userID uuid.UUID) (*SeedResult, error)
}

// MetricsRecorderInterface abstracts metric recording so services stay
// testable without a live Prometheus registry
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

// SeedResult reports what demo-data seeding created
type SeedResult struct {
	CategoriesCreated   int `json:"categories_created"`
	TransactionsCreated int `json:"transactions_created"`
	BudgetsCreated      int `json:"budgets_created"`
}
