package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/config"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrExpiredToken       = errors.New("token has expired")
	ErrInvalidToken       = errors.New("token is invalid")
	ErrInvalidTokenHeader = errors.New("authorization header must use the Bearer scheme")
)

type tokenService struct {
	cfg *config.JWTConfig
}

// NewTokenService creates a new TokenServiceInterface instance
func NewTokenService(cfg *config.JWTConfig) TokenServiceInterface {
	return &tokenService{
		cfg: cfg,
	}
}

// GenerateAccessToken issues an RS256-signed access token for a user
func (s *tokenService) GenerateAccessToken(user *models.User) (string, error) {
	now := time.Now()

	claims := &models.CustomClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.cfg.Issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(s.cfg.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken parses and verifies an access token, returning its claims
func (s *tokenService) ValidateAccessToken(tokenString string) (*models.CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.cfg.PublicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*models.CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractTokenFromHeader pulls the raw token out of an Authorization header
func (s *tokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidTokenHeader
	}
	return parts[1], nil
}
