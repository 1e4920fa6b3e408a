package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var minBudgetLimit = decimal.RequireFromString("0.01")

type budgetService struct {
	BaseService
	budgetRepo   portsrepo.BudgetRepositoryFacade
	txnRepo      portsrepo.TransactionReader
	categoryRepo portsrepo.CategoryReader
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, txnRepo portsrepo.TransactionReader, categoryRepo portsrepo.CategoryReader) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:   budgetRepo,
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if req.AmountLimit.LessThan(minBudgetLimit) {
		return nil, apperrors.NewValidationError("amountLimit must be at least 0.01")
	}
	if !domain.FitsMoneyScale(req.AmountLimit) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("amountLimit must have at most %d decimal places", domain.MoneyScale))
	}
	start, err := dto.ParseDate(req.PeriodStart)
	if err != nil {
		return nil, apperrors.NewValidationError("periodStart must be a YYYY-MM-DD date")
	}
	end, err := dto.ParseDate(req.PeriodEnd)
	if err != nil {
		return nil, apperrors.NewValidationError("periodEnd must be a YYYY-MM-DD date")
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationError("periodEnd must not be before periodStart")
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		Name:        name,
		AmountLimit: req.AmountLimit,
		PeriodStart: start,
		PeriodEnd:   end,
		UserID:      userID,
		CategoryID:  req.CategoryID,
	}
	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	s.LogInfo(ctx, "Budget created", slog.String("budget_id", budget.BudgetID))
	return &budget, nil
}

// GetBudgetByID returns the budget if userID owns it. Other users' budgets are not found.
func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID string, userID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	if budget.UserID != userID {
		return nil, apperrors.NewNotFoundError("budget", budgetID)
	}
	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

func (s *budgetService) IsBudgetExceeded(ctx context.Context, budgetID string, userID string) (bool, error) {
	status, err := s.GetBudgetStatus(ctx, budgetID, userID)
	if err != nil {
		return false, err
	}
	return status.IsExceeded, nil
}

// GetBudgetStatus sums every transaction of the budget's user and category within the
// budget period. INCOME and EXPENSE amounts both count towards the total.
func (s *budgetService) GetBudgetStatus(ctx context.Context, budgetID string, userID string) (*domain.BudgetStatus, error) {
	budget, err := s.GetBudgetByID(ctx, budgetID, userID)
	if err != nil {
		return nil, err
	}

	start, end := budget.Range()
	txns, err := s.txnRepo.FindTransactionsByUserAndCategoryAndDateBetween(ctx, budget.UserID, budget.CategoryID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate budget %s: %w", budgetID, err)
	}

	spent := decimal.Zero
	for _, t := range txns {
		spent = spent.Add(t.Amount)
	}

	return &domain.BudgetStatus{
		Budget:     *budget,
		Spent:      spent,
		IsExceeded: budget.IsExceeded(spent),
	}, nil
}
