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

type TransactionHandlerSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	transactionService *service_mocks.MockTransactionServiceInterface
	handler            *TransactionHandler
	e                  *echo.Echo
	userID             uuid.UUID
	categoryID         uuid.UUID
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.transactionService)
	s.e = newTestEcho()
	s.userID = uuid.New()
	s.categoryID = uuid.New()
}

func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerSuite) requestBody() string {
	return `{"date":"2025-03-14","amount":"42.50","type":"expense","category_id":"` +
		s.categoryID.String() + `","description":"weekly shop"}`
}

func (s *TransactionHandlerSuite) TestCreate() {
	s.transactionService.EXPECT().
		CreateTransaction(s.userID, gomock.Any()).
		DoAndReturn(func(userID uuid.UUID, input services.TransactionInput) (*models.Transaction, error) {
			s.Equal("2025-03-14", input.Date)
			s.True(input.Amount.Equal(decimal.NewFromFloat(42.50)))
			s.Equal(models.KindExpense, input.Kind)
			s.Equal(s.categoryID, input.CategoryID)
			return &models.Transaction{ID: uuid.New(), UserID: userID, Date: input.Date}, nil
		})

	c, rec := authedContext(s.e, http.MethodPost, "/api/v1/transactions", s.requestBody(), s.userID)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *TransactionHandlerSuite) TestCreate_NegativeAmount() {
	body := `{"date":"2025-03-14","amount":"-1.00","type":"expense","category_id":"` + s.categoryID.String() + `"}`
	c, rec := authedContext(s.e, http.MethodPost, "/api/v1/transactions", body, s.userID)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("TRANSACTION_002", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *TransactionHandlerSuite) TestCreate_UnparseableAmount() {
	body := `{"date":"2025-03-14","amount":"lots","type":"expense","category_id":"` + s.categoryID.String() + `"}`
	c, rec := authedContext(s.e, http.MethodPost, "/api/v1/transactions", body, s.userID)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("TRANSACTION_002", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *TransactionHandlerSuite) TestCreate_BadDateFailsValidation() {
	body := `{"date":"14/03/2025","amount":"42.50","type":"expense","category_id":"` + s.categoryID.String() + `"}`
	c, _ := authedContext(s.e, http.MethodPost, "/api/v1/transactions", body, s.userID)

	s.Error(s.handler.Create(c))
}

func (s *TransactionHandlerSuite) TestCreate_CategoryNotFound() {
	s.transactionService.EXPECT().
		CreateTransaction(s.userID, gomock.Any()).
		Return(nil, services.ErrTransactionCategoryNotFound)

	c, rec := authedContext(s.e, http.MethodPost, "/api/v1/transactions", s.requestBody(), s.userID)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CATEGORY_001", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *TransactionHandlerSuite) TestCreate_MissingIdentity() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/transactions", s.requestBody())

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *TransactionHandlerSuite) TestList() {
	s.transactionService.EXPECT().
		ListTransactions(s.userID, "2025-03").
		Return([]models.Transaction{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	c, rec := authedContext(s.e, http.MethodGet, "/api/v1/transactions?month=2025-03", "", s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Transaction `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Data, 2)
}

func (s *TransactionHandlerSuite) TestList_NoMonth() {
	s.transactionService.EXPECT().
		ListTransactions(s.userID, "").
		Return([]models.Transaction{}, nil)

	c, rec := authedContext(s.e, http.MethodGet, "/api/v1/transactions", "", s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestList_BadMonth() {
	c, rec := authedContext(s.e, http.MethodGet, "/api/v1/transactions?month=03-2025", "", s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_005", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *TransactionHandlerSuite) TestUpdate() {
	id := uuid.New()
	s.transactionService.EXPECT().
		UpdateTransaction(id, s.userID, gomock.Any()).
		Return(&models.Transaction{ID: id, UserID: s.userID}, nil)

	c, rec := authedContext(s.e, http.MethodPut, "/api/v1/transactions/"+id.String(), s.requestBody(), s.userID)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestUpdate_NotFound() {
	id := uuid.New()
	s.transactionService.EXPECT().
		UpdateTransaction(id, s.userID, gomock.Any()).
		Return(nil, repositories.ErrTransactionNotFound)

	c, rec := authedContext(s.e, http.MethodPut, "/api/v1/transactions/"+id.String(), s.requestBody(), s.userID)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("TRANSACTION_001", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *TransactionHandlerSuite) TestDelete() {
	id := uuid.New()
	s.transactionService.EXPECT().DeleteTransaction(id, s.userID).Return(nil)

	c, rec := authedContext(s.e, http.MethodDelete, "/api/v1/transactions/"+id.String(), "", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *TransactionHandlerSuite) TestDelete_NotFound() {
	id := uuid.New()
	s.transactionService.EXPECT().
		DeleteTransaction(id, s.userID).
		Return(repositories.ErrTransactionNotFound)

	c, rec := authedContext(s.e, http.MethodDelete, "/api/v1/transactions/"+id.String(), "", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
