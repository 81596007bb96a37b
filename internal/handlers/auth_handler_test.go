package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/dto"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/services"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	e           *echo.Echo
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)
	s.e = newTestEcho()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) TestRegister() {
	user := &models.User{
		ID:          uuid.New(),
		Email:       "alice@example.com",
		DisplayName: "Alice",
		CreatedAt:   time.Now(),
	}
	s.authService.EXPECT().
		Register("alice@example.com", "correct-horse-battery", "Alice").
		Return(user, "signed-token", nil)

	body := `{"email":"alice@example.com","password":"correct-horse-battery","display_name":"Alice"}`
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", body)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("signed-token", resp.AccessToken)
	s.Equal("Bearer", resp.TokenType)
	s.Equal(user.ID.String(), resp.User.ID)
}

func (s *AuthHandlerSuite) TestRegister_EmailTaken() {
	s.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, "", services.ErrEmailTaken)

	body := `{"email":"alice@example.com","password":"correct-horse-battery"}`
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", body)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("AUTH_005", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *AuthHandlerSuite) TestRegister_WeakPassword() {
	s.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, "", services.ErrWeakPassword)

	body := `{"email":"alice@example.com","password":"12345678"}`
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", body)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("AUTH_006", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *AuthHandlerSuite) TestRegister_MalformedBody() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", "not json")

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *AuthHandlerSuite) TestRegister_ShortPasswordFailsValidation() {
	// the DTO enforces min=8 before the service is ever called
	body := `{"email":"alice@example.com","password":"short"}`
	c, _ := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", body)

	s.Error(s.handler.Register(c))
}

func (s *AuthHandlerSuite) TestLogin() {
	user := &models.User{ID: uuid.New(), Email: "alice@example.com"}
	s.authService.EXPECT().
		Login("alice@example.com", "correct-horse-battery").
		Return(user, "signed-token", nil)

	body := `{"email":"alice@example.com","password":"correct-horse-battery"}`
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/login", body)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("signed-token", resp.AccessToken)
}

func (s *AuthHandlerSuite) TestLogin_InvalidCredentials() {
	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, "", services.ErrInvalidCredentials)

	body := `{"email":"alice@example.com","password":"wrong-password"}`
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/login", body)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *AuthHandlerSuite) TestMe() {
	userID := uuid.New()
	s.authService.EXPECT().
		GetUser(userID).
		Return(&models.User{ID: userID, Email: "alice@example.com", DisplayName: "Alice"}, nil)

	c, rec := authedContext(s.e, http.MethodGet, "/api/v1/auth/me", "", userID)

	s.NoError(s.handler.Me(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.UserProfileResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("alice@example.com", resp.Email)
}

func (s *AuthHandlerSuite) TestMe_MissingIdentity() {
	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/auth/me", "")

	s.NoError(s.handler.Me(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *AuthHandlerSuite) TestMe_DeletedAccount() {
	userID := uuid.New()
	s.authService.EXPECT().GetUser(userID).Return(nil, services.ErrUserNotFound)

	c, rec := authedContext(s.e, http.MethodGet, "/api/v1/auth/me", "", userID)

	s.NoError(s.handler.Me(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_004", decodeErrorResponse(s.T(), rec).Error.Code)
}
