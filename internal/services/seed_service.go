package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// seedCategory is one default category created for a demo account
type seedCategory struct {
	name string
	kind string
}

var defaultSeedCategories = []seedCategory{
	{"Salary", models.KindIncome},
	{"Freelance", models.KindIncome},
	{"Groceries", models.KindExpense},
	{"Rent", models.KindExpense},
	{"Transport", models.KindExpense},
	{"Entertainment", models.KindExpense},
	{"Utilities", models.KindExpense},
}

const (
	seedTransactionsPerUser = 40
	seedHistoryDays         = 60
)

type seedService struct {
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewSeedService creates a new SeedServiceInterface instance
func NewSeedService(
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	metrics MetricsRecorderInterface,
) SeedServiceInterface {
	return &seedService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		metrics:         metrics,
		now:             time.Now,
	}
}

// SeedDemoData populates a user's account with default categories, two months
// of randomized transactions, and budgets for the current month's expense
// categories. Intended for development environments only; the handler layer
// refuses to expose it elsewhere.
func (s *seedService) SeedDemoData(userID uuid.UUID) (*SeedResult, error) {
	result := &SeedResult{}
	faker := gofakeit.New(0)

	existing, err := s.categoryRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	byName := make(map[string]*models.Category, len(existing))
	for i := range existing {
		byName[existing[i].Name] = &existing[i]
	}

	categories := make([]*models.Category, 0, len(defaultSeedCategories))
	for _, seed := range defaultSeedCategories {
		if cat, ok := byName[seed.name]; ok {
			categories = append(categories, cat)
			continue
		}
		category := &models.Category{
			UserID: userID,
			Name:   seed.name,
			Kind:   seed.kind,
		}
		if err := s.categoryRepo.Create(category); err != nil {
			return nil, fmt.Errorf("failed to seed category %q: %w", seed.name, err)
		}
		categories = append(categories, category)
		result.CategoriesCreated++
	}

	today := s.now().UTC()
	for i := 0; i < seedTransactionsPerUser; i++ {
		category := categories[faker.Number(0, len(categories)-1)]

		var amount decimal.Decimal
		if category.Kind == models.KindIncome {
			amount = decimal.NewFromFloat(faker.Price(500, 5000))
		} else {
			amount = decimal.NewFromFloat(faker.Price(5, 400))
		}

		transaction := &models.Transaction{
			UserID:      userID,
			Date:        today.AddDate(0, 0, -faker.Number(0, seedHistoryDays)).Format(models.DateLayout),
			Amount:      amount,
			Kind:        category.Kind,
			CategoryID:  category.ID,
			Description: faker.ProductName(),
		}
		if err := s.transactionRepo.Create(transaction); err != nil {
			return nil, fmt.Errorf("failed to seed transaction: %w", err)
		}
		result.TransactionsCreated++
	}

	window, err := models.NewMonthWindow(today.Format(models.MonthLayout))
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		if category.Kind != models.KindExpense {
			continue
		}
		budget := &models.Budget{
			UserID:     userID,
			CategoryID: category.ID,
			Amount:     decimal.NewFromFloat(faker.Price(200, 1500)).Round(2),
			Month:      window.FirstDay(),
		}
		if _, err := s.budgetRepo.Upsert(budget); err != nil {
			return nil, fmt.Errorf("failed to seed budget: %w", err)
		}
		result.BudgetsCreated++
	}

	s.metrics.IncrementCounter("demo_data_seeded", nil)
	slog.Info("demo data seeded",
		"user_id", userID,
		"categories", result.CategoriesCreated,
		"transactions", result.TransactionsCreated,
		"budgets", result.BudgetsCreated)

	return result, nil
}
