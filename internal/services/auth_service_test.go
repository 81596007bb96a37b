package services

import (
	"testing"
	"time"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/config"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/repositories"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	userRepo *repository_mocks.MockUserRepositoryInterface
	service  AuthServiceInterface
	password PasswordServiceInterface
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)

	// real password and token services keep the suite honest about hashing
	// and signing, only the repository is mocked
	s.password = NewPasswordService(&config.SecurityConfig{BCryptCost: 4, PasswordMinLength: 8})

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	tokens := NewTokenService(&config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test",
	})

	s.service = NewAuthService(s.userRepo, s.password, tokens, stubMetrics{})
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthServiceTestSuite) TestRegister() {
	s.userRepo.EXPECT().EmailExists("alice@example.com").Return(false, nil)
	s.userRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			user.ID = uuid.New()
			s.Equal("alice@example.com", user.Email)
			s.NotEqual("correct-horse-battery", user.PasswordHash, "password must be stored hashed")
			return nil
		})

	user, token, err := s.service.Register(" Alice@Example.com ", "correct-horse-battery", "Alice")
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.Equal("Alice", user.DisplayName)
}

func (s *AuthServiceTestSuite) TestRegister_EmailTaken() {
	s.userRepo.EXPECT().EmailExists("alice@example.com").Return(true, nil)

	_, _, err := s.service.Register("alice@example.com", "correct-horse-battery", "Alice")
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *AuthServiceTestSuite) TestRegister_WeakPassword() {
	_, _, err := s.service.Register("alice@example.com", "short", "Alice")
	s.ErrorIs(err, ErrWeakPassword)
}

func (s *AuthServiceTestSuite) TestRegister_DisplayNameDefaultsToEmail() {
	s.userRepo.EXPECT().EmailExists("alice@example.com").Return(false, nil)
	s.userRepo.EXPECT().Create(gomock.Any()).Return(nil)

	user, _, err := s.service.Register("alice@example.com", "correct-horse-battery", "  ")
	s.Require().NoError(err)
	s.Equal("alice@example.com", user.DisplayName)
}

func (s *AuthServiceTestSuite) TestLogin() {
	hash, err := s.password.HashPassword("correct-horse-battery")
	s.Require().NoError(err)

	stored := &models.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: hash}
	s.userRepo.EXPECT().GetByEmail("alice@example.com").Return(stored, nil)

	user, token, err := s.service.Login("alice@example.com", "correct-horse-battery")
	s.Require().NoError(err)
	s.Equal(stored.ID, user.ID)
	s.NotEmpty(token)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	hash, err := s.password.HashPassword("correct-horse-battery")
	s.Require().NoError(err)

	s.userRepo.EXPECT().
		GetByEmail("alice@example.com").
		Return(&models.User{ID: uuid.New(), PasswordHash: hash}, nil)

	_, _, err = s.service.Login("alice@example.com", "wrong-password")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	s.userRepo.EXPECT().
		GetByEmail("nobody@example.com").
		Return(nil, repositories.ErrUserNotFound)

	_, _, err := s.service.Login("nobody@example.com", "whatever-password")
	s.ErrorIs(err, ErrInvalidCredentials, "unknown email and wrong password must be indistinguishable")
}

func (s *AuthServiceTestSuite) TestGetUser_NotFound() {
	id := uuid.New()
	s.userRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrUserNotFound)

	_, err := s.service.GetUser(id)
	s.ErrorIs(err, ErrUserNotFound)
}
