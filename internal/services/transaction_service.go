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

var ErrTransactionCategoryNotFound = errors.New("transaction category not found")

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewTransactionService creates a new TransactionServiceInterface instance
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
	}
}

func (s *transactionService) validateInput(userID uuid.UUID, input TransactionInput) error {
	if !models.IsValidDate(input.Date) {
		return models.ErrInvalidDate
	}
	if input.Amount.IsNegative() {
		return models.ErrNegativeAmount
	}
	if !models.IsValidKind(input.Kind) {
		return models.ErrInvalidKind
	}
	if input.CategoryID == uuid.Nil {
		return models.ErrCategoryIDMissing
	}

	if _, err := s.categoryRepo.GetByID(input.CategoryID, userID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrTransactionCategoryNotFound
		}
		return fmt.Errorf("failed to verify category: %w", err)
	}
	return nil
}

// CreateTransaction records a dated income or expense movement for the caller.
// The category must exist and belong to the caller.
func (s *transactionService) CreateTransaction(userID uuid.UUID, input TransactionInput) (*models.Transaction, error) {
	if err := s.validateInput(userID, input); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Date:        input.Date,
		Amount:      input.Amount,
		Kind:        input.Kind,
		CategoryID:  input.CategoryID,
		Description: strings.TrimSpace(input.Description),
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to create transaction", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.metrics.IncrementCounter("transaction_created", map[string]string{"kind": input.Kind})

	return s.transactionRepo.GetByID(transaction.ID, userID)
}

// ListTransactions returns the caller's transactions newest first. A month
// selector narrows the result to that calendar month; an empty selector
// returns everything.
func (s *transactionService) ListTransactions(userID uuid.UUID, month string) ([]models.Transaction, error) {
	var (
		transactions []models.Transaction
		err          error
	)

	if month == "" {
		transactions, err = s.transactionRepo.ListByUserID(userID)
	} else {
		var window models.MonthWindow
		window, err = models.NewMonthWindow(month)
		if err != nil {
			return nil, err
		}
		transactions, err = s.transactionRepo.ListByUserIDInWindow(userID, window)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

// UpdateTransaction replaces the writable fields of one of the caller's
// transactions
func (s *transactionService) UpdateTransaction(id, userID uuid.UUID, input TransactionInput) (*models.Transaction, error) {
	if err := s.validateInput(userID, input); err != nil {
		return nil, err
	}

	existing, err := s.transactionRepo.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}

	existing.Date = input.Date
	existing.Amount = input.Amount
	existing.Kind = input.Kind
	existing.CategoryID = input.CategoryID
	existing.Description = strings.TrimSpace(input.Description)

	if err := s.transactionRepo.Update(existing); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, err
		}
		slog.Error("failed to update transaction", "transaction_id", id, "error", err)
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return s.transactionRepo.GetByID(id, userID)
}

// DeleteTransaction removes one of the caller's transactions
func (s *transactionService) DeleteTransaction(id, userID uuid.UUID) error {
	if err := s.transactionRepo.Delete(id, userID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
