package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors the account_type column.
type AccountType string

// Account is a row of the accounts table.
type Account struct {
	AccountID   string          `db:"account_id"`
	UserID      string          `db:"user_id"`
	Name        string          `db:"name"`
	Currency    string          `db:"currency"`
	AccountType AccountType     `db:"account_type"`
	Balance     decimal.Decimal `db:"balance"`
	AuditFields
}
