package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget caps spending in one category over an inclusive date period.
type Budget struct {
	BudgetID    string          `json:"budgetID"`
	Name        string          `json:"name"`
	AmountLimit decimal.Decimal `json:"amountLimit"`
	PeriodStart time.Time       `json:"periodStart"` // date only
	PeriodEnd   time.Time       `json:"periodEnd"`   // date only, inclusive
	UserID      string          `json:"userID"`
	CategoryID  string          `json:"categoryID"`
}

// Range returns [PeriodStart 00:00:00, PeriodEnd 23:59:59] in the dates' location.
func (b Budget) Range() (time.Time, time.Time) {
	sy, sm, sd := b.PeriodStart.Date()
	ey, em, ed := b.PeriodEnd.Date()
	start := time.Date(sy, sm, sd, 0, 0, 0, 0, b.PeriodStart.Location())
	end := time.Date(ey, em, ed, 23, 59, 59, 0, b.PeriodEnd.Location())
	return start, end
}

// IsExceeded reports whether spent strictly exceeds the limit.
func (b Budget) IsExceeded(spent decimal.Decimal) bool {
	return spent.GreaterThan(b.AmountLimit)
}

// BudgetStatus pairs a budget with its evaluation.
type BudgetStatus struct {
	Budget     Budget          `json:"budget"`
	Spent      decimal.Decimal `json:"spent"`
	IsExceeded bool            `json:"isExceeded"`
}
