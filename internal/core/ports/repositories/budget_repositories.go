package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// BudgetRepositoryFacade defines persistence for budgets. Budgets are never updated.
type BudgetRepositoryFacade interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)
	ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error)
}
