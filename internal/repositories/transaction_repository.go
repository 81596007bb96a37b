package repositories

import (
	"errors"
	"fmt"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves one of the user's transactions by ID
func (r *transactionRepository) GetByID(id, userID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// ListByUserID retrieves all of the user's transactions newest first with the
// category preloaded
func (r *transactionRepository) ListByUserID(userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// ListByUserIDInWindow retrieves the user's transactions inside a month
// window, newest first, with the category preloaded
func (r *transactionRepository) ListByUserIDInWindow(userID uuid.UUID, window models.MonthWindow) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Where("user_id = ? AND date >= ? AND date < ?", userID, window.Start, window.End).
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions in window: %w", err)
	}
	return transactions, nil
}

// ListExpensesInWindow retrieves only the expense transactions inside a month
// window, with the category preloaded
func (r *transactionRepository) ListExpensesInWindow(userID uuid.UUID, window models.MonthWindow) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Where("user_id = ? AND kind = ? AND date >= ? AND date < ?",
			userID, models.KindExpense, window.Start, window.End).
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses in window: %w", err)
	}
	return transactions, nil
}

// Update persists changes to one of the user's transactions
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}

	result := r.db.Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", transaction.ID, transaction.UserID).
		Updates(map[string]interface{}{
			"date":        transaction.Date,
			"amount":      transaction.Amount,
			"kind":        transaction.Kind,
			"category_id": transaction.CategoryID,
			"description": transaction.Description,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes one of the user's transactions. Deleting a row that does not
// exist (or belongs to another user) reports ErrTransactionNotFound.
func (r *transactionRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
