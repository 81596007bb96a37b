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

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type authService struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	metrics         MetricsRecorderInterface
}

// NewAuthService creates a new AuthServiceInterface instance
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
) AuthServiceInterface {
	return &authService{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		metrics:         metrics,
	}
}

// Register creates a user account and returns the user with a signed access token
func (s *authService) Register(email, password, displayName string) (*models.User, string, error) {
	email = models.NormalizeEmail(email)

	if err := s.passwordService.ValidatePasswordStrength(password); err != nil {
		return nil, "", err
	}

	exists, err := s.userRepo.EmailExists(email)
	if err != nil {
		slog.Error("failed to check email existence", "error", err)
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, "", ErrEmailTaken
	}

	hash, err := s.passwordService.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(displayName),
	}
	if user.DisplayName == "" {
		user.DisplayName = email
	}

	if err := s.userRepo.Create(user); err != nil {
		slog.Error("failed to create user", "email", email, "error", err)
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, "", err
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "register"})
	slog.Info("user registered", "user_id", user.ID)

	return user, token, nil
}

// Login verifies credentials and returns the user with a signed access token
func (s *authService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
			return nil, "", ErrInvalidCredentials
		}
		slog.Error("failed to look up user for login", "error", err)
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.passwordService.VerifyPassword(user.PasswordHash, password); err != nil {
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, "", err
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login"})
	slog.Info("user logged in", "user_id", user.ID)

	return user, token, nil
}

// GetUser loads the profile of an authenticated user
func (s *authService) GetUser(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
