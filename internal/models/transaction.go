package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DateLayout is the wire and storage format for transaction dates.
// Dates are stored as ISO strings so lexicographic comparison matches
// chronological order.
const DateLayout = "2006-01-02"

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD format")
)

// Transaction represents a single dated monetary movement tagged to one category
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_date" json:"user_id"`
	Date        string          `gorm:"type:varchar(10);not null;index:idx_transactions_user_date" json:"date"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Kind        string          `gorm:"type:varchar(10);not null" json:"type"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrOwnerRequired
	}
	if !IsValidDate(t.Date) {
		return ErrInvalidDate
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if !IsValidKind(t.Kind) {
		return ErrInvalidKind
	}
	if t.CategoryID == uuid.Nil {
		return ErrCategoryIDMissing
	}
	return nil
}

// IsIncome returns true if the transaction adds money
func (t *Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsExpense returns true if the transaction removes money
func (t *Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// CategoryName returns the display name of the associated category, or the
// fallback label when the category is missing
func (t *Transaction) CategoryName(fallback string) string {
	if t.Category == nil || t.Category.Name == "" {
		return fallback
	}
	return t.Category.Name
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidDate checks that a date string is a real calendar date in DateLayout
func IsValidDate(date string) bool {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return parsed.Format(DateLayout) == date
}
