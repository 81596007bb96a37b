package services

import (
	"errors"
	"fmt"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/config"

	"golang.org/x/crypto/bcrypt"
)

var ErrWeakPassword = errors.New("password does not meet the minimum requirements")

type passwordService struct {
	cost      int
	minLength int
}

// NewPasswordService creates a new PasswordServiceInterface instance
func NewPasswordService(cfg *config.SecurityConfig) PasswordServiceInterface {
	return &passwordService{
		cost:      cfg.BCryptCost,
		minLength: cfg.PasswordMinLength,
	}
}

// HashPassword hashes a plaintext password with bcrypt
func (s *passwordService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a stored bcrypt hash against a plaintext candidate
func (s *passwordService) VerifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidatePasswordStrength enforces the configured minimum password length.
// bcrypt silently truncates past 72 bytes, so longer inputs are rejected.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	if len(password) < s.minLength {
		return ErrWeakPassword
	}
	if len(password) > 72 {
		return ErrWeakPassword
	}
	return nil
}
