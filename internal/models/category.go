package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kind is shared by categories and transactions: every monetary movement is
// either money coming in or money going out.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

var (
	ErrInvalidKind       = errors.New("kind must be either income or expense")
	ErrNameRequired      = errors.New("category name is required")
	ErrOwnerRequired     = errors.New("owner user ID is required")
	ErrCategoryIDMissing = errors.New("category ID is required")
)

// Category represents a named income/expense bucket owned by one user
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Kind      string    `gorm:"type:varchar(10);not null" json:"type"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return ErrOwnerRequired
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if !IsValidKind(c.Kind) {
		return ErrInvalidKind
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// IsValidKind checks if the kind is one of the two fixed variants
func IsValidKind(kind string) bool {
	switch kind {
	case KindIncome, KindExpense:
		return true
	default:
		return false
	}
}
