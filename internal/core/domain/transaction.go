package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense posted against one account.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Amount        decimal.Decimal `json:"amount"`        // Always positive
	Date          time.Time       `json:"date"`          // Second precision
	Description   string          `json:"description"`
	Type          OperationType   `json:"type"`
	UserID        string          `json:"userID"`
	AccountID     string          `json:"accountID"`
	CategoryID    string          `json:"categoryID"`
}

// SignedAmount returns the effect of the transaction on its account balance.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}
