package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// MoneyScale is the number of decimal places stored for amounts, balances and limits.
const MoneyScale = 4

// FitsMoneyScale reports whether d is stored without rounding. Trailing zeros
// past the scale are fine.
func FitsMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyScale))
}

// OperationType classifies both transactions and categories.
type OperationType string

const (
	Income  OperationType = "INCOME"
	Expense OperationType = "EXPENSE"
)

// IsValid reports whether t is one of the known operation types.
func (t OperationType) IsValid() bool {
	return t == Income || t == Expense
}
