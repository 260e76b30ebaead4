package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a named pot that expenses are recorded against and that funds
// are transferred between.
type Account struct {
	Base
	Name      string          `gorm:"not null;uniqueIndex" json:"name"`
	Balance   decimal.Decimal `gorm:"type:numeric;not null" json:"balance"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relationships
	Expenses []Expense `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"expenses,omitempty"`
}
