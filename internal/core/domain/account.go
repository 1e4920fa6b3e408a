package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines what kind of money holder an account is.
type AccountType string

const (
	Cash    AccountType = "CASH"
	Card    AccountType = "CARD"
	Deposit AccountType = "DEPOSIT"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Cash, Card, Deposit:
		return true
	}
	return false
}

// Account represents a user's money holder.
// Balance is mutated only by the transaction engine.
type Account struct {
	AccountID   string          `json:"accountID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`    // Owner, FK -> users.user_id
	Name        string          `json:"name"`
	Currency    string          `json:"currency"`
	AccountType AccountType     `json:"accountType"` // CASH, CARD or DEPOSIT
	Balance     decimal.Decimal `json:"balance"`
	AuditFields
}

// CanWithdraw reports whether the balance covers amount.
func (a Account) CanWithdraw(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// AccountFilter holds the optional predicates of an account search.
// UserEmail is mandatory; the balance bounds are inclusive. A non-empty OwnerID
// restricts the result to that user's accounts.
type AccountFilter struct {
	UserEmail  string
	MinBalance *decimal.Decimal
	MaxBalance *decimal.Decimal
	OwnerID    string
}
