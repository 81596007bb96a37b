package repositories

import (
	"testing"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/database"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetRepositorySuite defines the test suite for BudgetRepository
type BudgetRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     BudgetRepositoryInterface
	testUser *models.User
	category *models.Category
}

// SetupTest runs before each test in the suite
func (s *BudgetRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetRepository(s.db.DB)

	s.testUser = &models.User{
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		DisplayName:  "Test User",
	}
	s.NoError(s.db.DB.Create(s.testUser).Error)

	s.category = &models.Category{
		UserID: s.testUser.ID,
		Name:   "Groceries",
		Kind:   models.KindExpense,
	}
	s.NoError(s.db.DB.Create(s.category).Error)
}

// TestBudgetRepositorySuite runs the test suite
func TestBudgetRepositorySuite(t *testing.T) {
	suite.Run(t, new(BudgetRepositorySuite))
}

func (s *BudgetRepositorySuite) TestUpsert_CreatesRow() {
	budget := &models.Budget{
		UserID:     s.testUser.ID,
		CategoryID: s.category.ID,
		Amount:     decimal.NewFromInt(300),
		Month:      "2025-03-01",
	}

	stored, err := s.repo.Upsert(budget)
	s.NoError(err)
	s.NotEqual(uuid.Nil, stored.ID)
	s.True(stored.Amount.Equal(decimal.NewFromInt(300)))
	s.Require().NotNil(stored.Category)
	s.Equal("Groceries", stored.Category.Name)
}

func (s *BudgetRepositorySuite) TestUpsert_ReplacesAmountKeepingRowID() {
	first, err := s.repo.Upsert(&models.Budget{
		UserID:     s.testUser.ID,
		CategoryID: s.category.ID,
		Amount:     decimal.NewFromInt(300),
		Month:      "2025-03-01",
	})
	s.Require().NoError(err)

	second, err := s.repo.Upsert(&models.Budget{
		UserID:     s.testUser.ID,
		CategoryID: s.category.ID,
		Amount:     decimal.NewFromInt(450),
		Month:      "2025-03-01",
	})
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID, "repeated upsert must hit the same row")
	s.True(second.Amount.Equal(decimal.NewFromInt(450)))

	budgets, err := s.repo.ListByUserIDAndMonth(s.testUser.ID, "2025-03-01")
	s.NoError(err)
	s.Len(budgets, 1)
}

func (s *BudgetRepositorySuite) TestUpsert_DistinctMonthsAreSeparateRows() {
	_, err := s.repo.Upsert(&models.Budget{
		UserID:     s.testUser.ID,
		CategoryID: s.category.ID,
		Amount:     decimal.NewFromInt(300),
		Month:      "2025-03-01",
	})
	s.Require().NoError(err)

	_, err = s.repo.Upsert(&models.Budget{
		UserID:     s.testUser.ID,
		CategoryID: s.category.ID,
		Amount:     decimal.NewFromInt(350),
		Month:      "2025-04-01",
	})
	s.Require().NoError(err)

	march, err := s.repo.ListByUserIDAndMonth(s.testUser.ID, "2025-03-01")
	s.NoError(err)
	s.Len(march, 1)

	april, err := s.repo.ListByUserIDAndMonth(s.testUser.ID, "2025-04-01")
	s.NoError(err)
	s.Len(april, 1)
}

func (s *BudgetRepositorySuite) TestGetByID_ScopedToOwner() {
	stored, err := s.repo.Upsert(&models.Budget{
		UserID:     s.testUser.ID,
		CategoryID: s.category.ID,
		Amount:     decimal.NewFromInt(300),
		Month:      "2025-03-01",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetByID(stored.ID, uuid.New())
	s.ErrorIs(err, ErrBudgetNotFound)
}

func (s *BudgetRepositorySuite) TestDelete() {
	stored, err := s.repo.Upsert(&models.Budget{
		UserID:     s.testUser.ID,
		CategoryID: s.category.ID,
		Amount:     decimal.NewFromInt(300),
		Month:      "2025-03-01",
	})
	s.Require().NoError(err)

	s.NoError(s.repo.Delete(stored.ID, s.testUser.ID))
	s.ErrorIs(s.repo.Delete(stored.ID, s.testUser.ID), ErrBudgetNotFound)
}
