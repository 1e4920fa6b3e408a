package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// BudgetSvcFacade defines budget operations. Budgets owned by another user are reported as not found.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error)
	GetBudgetByID(ctx context.Context, budgetID string, userID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)
	// IsBudgetExceeded reports whether the spending in the budget's category and period is above its limit.
	IsBudgetExceeded(ctx context.Context, budgetID string, userID string) (bool, error)
	GetBudgetStatus(ctx context.Context, budgetID string, userID string) (*domain.BudgetStatus, error)
}
