package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"date"`
	Description   sql.NullString  `db:"description"`
	Type          string          `db:"type"`
	UserID        string          `db:"user_id"`
	AccountID     string          `db:"account_id"`
	CategoryID    string          `db:"category_id"`
}
