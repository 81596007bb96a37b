package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/repositories"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/services"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetHandlerSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	budgetService *service_mocks.MockBudgetServiceInterface
	handler       *BudgetHandler
	e             *echo.Echo
	userID        uuid.UUID
	categoryID    uuid.UUID
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerSuite))
}

func (s *BudgetHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.budgetService = service_mocks.NewMockBudgetServiceInterface(s.ctrl)
	s.handler = NewBudgetHandler(s.budgetService)
	s.e = newTestEcho()
	s.userID = uuid.New()
	s.categoryID = uuid.New()
}

func (s *BudgetHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetHandlerSuite) TestUpsert() {
	s.budgetService.EXPECT().
		UpsertBudget(s.userID, s.categoryID, gomock.Any(), "2025-03").
		DoAndReturn(func(userID, categoryID uuid.UUID, amount decimal.Decimal, month string) (*models.Budget, error) {
			s.True(amount.Equal(decimal.NewFromInt(300)))
			return &models.Budget{ID: uuid.New(), UserID: userID, CategoryID: categoryID, Amount: amount, Month: "2025-03-01"}, nil
		})

	body := `{"category_id":"` + s.categoryID.String() + `","amount":"300","month":"2025-03"}`
	c, rec := authedContext(s.e, http.MethodPost, "/api/v1/budgets", body, s.userID)

	s.NoError(s.handler.Upsert(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp models.Budget
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("2025-03-01", resp.Month)
}

func (s *BudgetHandlerSuite) TestUpsert_NegativeAmount() {
	body := `{"category_id":"` + s.categoryID.String() + `","amount":"-300","month":"2025-03"}`
	c, rec := authedContext(s.e, http.MethodPost, "/api/v1/budgets", body, s.userID)

	s.NoError(s.handler.Upsert(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("BUDGET_002", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *BudgetHandlerSuite) TestUpsert_BadMonthFailsValidation() {
	body := `{"category_id":"` + s.categoryID.String() + `","amount":"300","month":"March"}`
	c, _ := authedContext(s.e, http.MethodPost, "/api/v1/budgets", body, s.userID)

	s.Error(s.handler.Upsert(c))
}

func (s *BudgetHandlerSuite) TestUpsert_CategoryNotFound() {
	s.budgetService.EXPECT().
		UpsertBudget(s.userID, s.categoryID, gomock.Any(), "2025-03").
		Return(nil, services.ErrBudgetCategoryNotFound)

	body := `{"category_id":"` + s.categoryID.String() + `","amount":"300","month":"2025-03"}`
	c, rec := authedContext(s.e, http.MethodPost, "/api/v1/budgets", body, s.userID)

	s.NoError(s.handler.Upsert(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CATEGORY_001", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *BudgetHandlerSuite) TestList() {
	s.budgetService.EXPECT().
		ListBudgets(s.userID, "2025-03").
		Return([]models.Budget{{ID: uuid.New(), Month: "2025-03-01"}}, nil)

	c, rec := authedContext(s.e, http.MethodGet, "/api/v1/budgets?month=2025-03", "", s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Budget `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Data, 1)
}

func (s *BudgetHandlerSuite) TestList_MonthRequired() {
	c, rec := authedContext(s.e, http.MethodGet, "/api/v1/budgets", "", s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_005", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *BudgetHandlerSuite) TestDelete() {
	id := uuid.New()
	s.budgetService.EXPECT().DeleteBudget(id, s.userID).Return(nil)

	c, rec := authedContext(s.e, http.MethodDelete, "/api/v1/budgets/"+id.String(), "", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *BudgetHandlerSuite) TestDelete_NotFound() {
	id := uuid.New()
	s.budgetService.EXPECT().DeleteBudget(id, s.userID).Return(repositories.ErrBudgetNotFound)

	c, rec := authedContext(s.e, http.MethodDelete, "/api/v1/budgets/"+id.String(), "", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("BUDGET_001", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *BudgetHandlerSuite) TestUsage() {
	s.budgetService.EXPECT().
		GetUsage(s.userID, "2025-03").
		Return([]models.CategoryUsage{
			{CategoryID: s.categoryID, CategoryName: "Groceries", TotalSpent: decimal.NewFromInt(65)},
		}, nil)

	c, rec := authedContext(s.e, http.MethodGet, "/api/v1/budgets/usage?month=2025-03", "", s.userID)

	s.NoError(s.handler.Usage(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data []models.CategoryUsage `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Data, 1)
	s.Equal("Groceries", resp.Data[0].CategoryName)
}

func (s *BudgetHandlerSuite) TestUsage_InvalidMonth() {
	c, rec := authedContext(s.e, http.MethodGet, "/api/v1/budgets/usage?month=2025-3", "", s.userID)

	s.NoError(s.handler.Usage(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_005", decodeErrorResponse(s.T(), rec).Error.Code)
}
