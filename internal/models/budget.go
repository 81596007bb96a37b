package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"time"
)

// Budget represents a planned spending ceiling for one category in one
// calendar month. Month is stored as the first-of-month date (YYYY-MM-01);
// at most one row exists per (user, category, month).
type Budget struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_owner_category_month" json:"user_id"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_owner_category_month" json:"category_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Month      string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_budgets_owner_category_month" json:"month"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return ErrOwnerRequired
	}
	if b.CategoryID == uuid.Nil {
		return ErrCategoryIDMissing
	}
	if b.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if !IsValidDate(b.Month) {
		return ErrInvalidDate
	}
	return nil
}

// CategoryName returns the display name of the associated category, or the
// fallback label when the category is missing
func (b *Budget) CategoryName(fallback string) string {
	if b.Category == nil || b.Category.Name == "" {
		return fallback
	}
	return b.Category.Name
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}
