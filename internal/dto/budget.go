package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of budget period dates.
const DateLayout = "2006-01-02"

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	AmountLimit decimal.Decimal `json:"amountLimit"`
	PeriodStart string          `json:"periodStart" binding:"required,datetime=2006-01-02"`
	PeriodEnd   string          `json:"periodEnd" binding:"required,datetime=2006-01-02"`
	CategoryID  string          `json:"categoryID" binding:"required"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID    string          `json:"budgetID"`
	Name        string          `json:"name"`
	AmountLimit decimal.Decimal `json:"amountLimit"`
	PeriodStart string          `json:"periodStart"`
	PeriodEnd   string          `json:"periodEnd"`
	UserID      string          `json:"userID"`
	CategoryID  string          `json:"categoryID"`
}

// BudgetStatusResponse reports whether a budget is exceeded.
type BudgetStatusResponse struct {
	Budget     BudgetResponse  `json:"budget"`
	Spent      decimal.Decimal `json:"spent"`
	IsExceeded bool            `json:"isExceeded"`
}

// ListBudgetsResponse wraps a list of budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:    b.BudgetID,
		Name:        b.Name,
		AmountLimit: b.AmountLimit,
		PeriodStart: b.PeriodStart.Format(DateLayout),
		PeriodEnd:   b.PeriodEnd.Format(DateLayout),
		UserID:      b.UserID,
		CategoryID:  b.CategoryID,
	}
}

func ToListBudgetsResponse(budgets []domain.Budget) ListBudgetsResponse {
	res := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		res[i] = ToBudgetResponse(&b)
	}
	return ListBudgetsResponse{Budgets: res}
}

func ToBudgetStatusResponse(s *domain.BudgetStatus) BudgetStatusResponse {
	return BudgetStatusResponse{
		Budget:     ToBudgetResponse(&s.Budget),
		Spent:      s.Spent,
		IsExceeded: s.IsExceeded,
	}
}

// ParseDate parses a budget period date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
