package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/config"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/services"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DevHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	seedService *service_mocks.MockSeedServiceInterface
	e           *echo.Echo
	userID      uuid.UUID
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerSuite))
}

func (s *DevHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.seedService = service_mocks.NewMockSeedServiceInterface(s.ctrl)
	s.e = newTestEcho()
	s.userID = uuid.New()
}

func (s *DevHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DevHandlerSuite) handlerForEnvironment(environment string) *DevHandler {
	cfg := &config.Config{}
	cfg.Server.Environment = environment
	return NewDevHandler(s.seedService, cfg)
}

func (s *DevHandlerSuite) TestSeedDemoData() {
	handler := s.handlerForEnvironment("development")
	s.seedService.EXPECT().
		SeedDemoData(s.userID).
		Return(&services.SeedResult{CategoriesCreated: 7, TransactionsCreated: 40, BudgetsCreated: 5}, nil)

	c, rec := authedContext(s.e, http.MethodPost, "/api/v1/dev/seed", "", s.userID)

	s.NoError(handler.SeedDemoData(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data services.SeedResult `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(40, resp.Data.TransactionsCreated)
}

func (s *DevHandlerSuite) TestSeedDemoData_RefusedInProduction() {
	handler := s.handlerForEnvironment("production")

	c, rec := authedContext(s.e, http.MethodPost, "/api/v1/dev/seed", "", s.userID)

	s.NoError(handler.SeedDemoData(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("SYSTEM_006", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *DevHandlerSuite) TestSeedDemoData_MissingIdentity() {
	handler := s.handlerForEnvironment("development")

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/dev/seed", "")

	s.NoError(handler.SeedDemoData(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
