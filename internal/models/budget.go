package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a row of the budgets table. Period columns are DATE.
type Budget struct {
	BudgetID    string          `db:"budget_id"`
	Name        string          `db:"name"`
	AmountLimit decimal.Decimal `db:"amount_limit"`
	PeriodStart time.Time       `db:"period_start"`
	PeriodEnd   time.Time       `db:"period_end"`
	UserID      string          `db:"user_id"`
	CategoryID  string          `db:"category_id"`
}
