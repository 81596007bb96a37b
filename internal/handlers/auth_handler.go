package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/lawyertrader999-svg/personal-finance-app/internal/errors"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/dto"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func userProfile(user *models.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}
}

// Register handles user registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, token, err := h.authService.Register(req.Email, req.Password, req.DisplayName)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return SendError(c, apierrors.AuthEmailTaken)
		}
		if errors.Is(err, services.ErrWeakPassword) {
			return SendError(c, apierrors.AuthWeakPassword)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        userProfile(user),
	})
}

// Login handles user authentication
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return SendError(c, apierrors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        userProfile(user),
	})
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return SendError(c, apierrors.AuthInvalidTokenFormat, apierrors.WithDetails("Token references a deleted account"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, userProfile(user))
}
