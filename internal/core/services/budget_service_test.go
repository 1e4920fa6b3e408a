package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	budgetRepo   *MockBudgetRepository
	txnRepo      *MockTransactionReader
	categoryRepo *MockCategoryRepository
	service      portssvc.BudgetSvcFacade
	budget       domain.Budget
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.budgetRepo = new(MockBudgetRepository)
	suite.txnRepo = new(MockTransactionReader)
	suite.categoryRepo = new(MockCategoryRepository)
	suite.service = services.NewBudgetService(suite.budgetRepo, suite.txnRepo, suite.categoryRepo)
	suite.budget = domain.Budget{
		BudgetID:    "b-1",
		Name:        "Groceries",
		AmountLimit: decimal.RequireFromString("500"),
		PeriodStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		UserID:      "user-1",
		CategoryID:  "cat-food",
	}
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

func txnOf(amount string, typ domain.OperationType) domain.Transaction {
	return domain.Transaction{Amount: decimal.RequireFromString(amount), Type: typ}
}

func (suite *BudgetServiceTestSuite) expectWindow(txns []domain.Transaction) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
	suite.txnRepo.On("FindTransactionsByUserAndCategoryAndDateBetween", mock.Anything, "user-1", "cat-food", start, end).
		Return(txns, nil).Once()
}

func (suite *BudgetServiceTestSuite) TestIsBudgetExceeded_OverLimit() {
	ctx := context.Background()
	suite.budgetRepo.On("FindBudgetByID", ctx, "b-1").Return(&suite.budget, nil).Once()
	suite.expectWindow([]domain.Transaction{txnOf("350", domain.Expense), txnOf("250", domain.Expense)})

	exceeded, err := suite.service.IsBudgetExceeded(ctx, "b-1", "user-1")

	suite.Require().NoError(err)
	suite.True(exceeded)
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestIsBudgetExceeded_NoTransactions() {
	ctx := context.Background()
	suite.budgetRepo.On("FindBudgetByID", ctx, "b-1").Return(&suite.budget, nil).Once()
	suite.expectWindow(nil)

	exceeded, err := suite.service.IsBudgetExceeded(ctx, "b-1", "user-1")

	suite.Require().NoError(err)
	suite.False(exceeded)
}

func (suite *BudgetServiceTestSuite) TestIsBudgetExceeded_ExactlyAtLimitIsNotExceeded() {
	ctx := context.Background()
	suite.budgetRepo.On("FindBudgetByID", ctx, "b-1").Return(&suite.budget, nil).Once()
	suite.expectWindow([]domain.Transaction{txnOf("500.00", domain.Expense)})

	exceeded, err := suite.service.IsBudgetExceeded(ctx, "b-1", "user-1")

	suite.Require().NoError(err)
	suite.False(exceeded)
}

func (suite *BudgetServiceTestSuite) TestGetBudgetStatus_SumsRegardlessOfType() {
	ctx := context.Background()
	suite.budgetRepo.On("FindBudgetByID", ctx, "b-1").Return(&suite.budget, nil).Once()
	suite.expectWindow([]domain.Transaction{txnOf("300", domain.Expense), txnOf("250", domain.Income)})

	status, err := suite.service.GetBudgetStatus(ctx, "b-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal("550", status.Spent.String())
	suite.True(status.IsExceeded)
	suite.Equal("b-1", status.Budget.BudgetID)
}

func (suite *BudgetServiceTestSuite) TestIsBudgetExceeded_NotFound() {
	ctx := context.Background()
	suite.budgetRepo.On("FindBudgetByID", ctx, "missing").Return(nil, apperrors.NewNotFoundError("budget", "missing")).Once()

	_, err := suite.service.IsBudgetExceeded(ctx, "missing", "user-1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BudgetServiceTestSuite) TestIsBudgetExceeded_ForeignBudgetIsNotFound() {
	ctx := context.Background()
	suite.budgetRepo.On("FindBudgetByID", ctx, "b-1").Return(&suite.budget, nil).Once()

	_, err := suite.service.IsBudgetExceeded(ctx, "b-1", "user-2")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.txnRepo.AssertNotCalled(suite.T(), "FindTransactionsByUserAndCategoryAndDateBetween",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestIsBudgetExceeded_StoreError() {
	ctx := context.Background()
	suite.budgetRepo.On("FindBudgetByID", ctx, "b-1").Return(&suite.budget, nil).Once()
	suite.txnRepo.On("FindTransactionsByUserAndCategoryAndDateBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db down")).Once()

	_, err := suite.service.IsBudgetExceeded(ctx, "b-1", "user-1")
	suite.ErrorContains(err, "db down")
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Name:        " Groceries ",
		AmountLimit: decimal.RequireFromString("500"),
		PeriodStart: "2024-03-01",
		PeriodEnd:   "2024-03-31",
		CategoryID:  "cat-food",
	}
	suite.categoryRepo.On("FindCategoryByID", ctx, "cat-food").Return(&domain.Category{CategoryID: "cat-food"}, nil).Once()
	suite.budgetRepo.On("SaveBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.Name == "Groceries" && b.UserID == "user-1" && b.PeriodEnd.Day() == 31
	})).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(budget.BudgetID)
	suite.budgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_Validation() {
	ctx := context.Background()
	valid := dto.CreateBudgetRequest{
		Name:        "Fun",
		AmountLimit: decimal.RequireFromString("10"),
		PeriodStart: "2024-03-01",
		PeriodEnd:   "2024-03-31",
		CategoryID:  "cat-food",
	}
	cases := map[string]func(r *dto.CreateBudgetRequest){
		"blank name":       func(r *dto.CreateBudgetRequest) { r.Name = "  " },
		"zero limit":       func(r *dto.CreateBudgetRequest) { r.AmountLimit = decimal.Zero },
		"tiny limit":       func(r *dto.CreateBudgetRequest) { r.AmountLimit = decimal.RequireFromString("0.001") },
		"sub-scale limit":  func(r *dto.CreateBudgetRequest) { r.AmountLimit = decimal.RequireFromString("10.00001") },
		"bad start":        func(r *dto.CreateBudgetRequest) { r.PeriodStart = "03/01/2024" },
		"end before start": func(r *dto.CreateBudgetRequest) { r.PeriodEnd = "2024-02-28" },
	}
	for name, mutate := range cases {
		suite.Run(name, func() {
			req := valid
			mutate(&req)
			_, err := suite.service.CreateBudget(ctx, req, "user-1")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.budgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_UnknownCategory() {
	ctx := context.Background()
	suite.categoryRepo.On("FindCategoryByID", ctx, "nope").Return(nil, apperrors.NewNotFoundError("category", "nope")).Once()

	_, err := suite.service.CreateBudget(ctx, dto.CreateBudgetRequest{
		Name:        "x",
		AmountLimit: decimal.RequireFromString("1"),
		PeriodStart: "2024-01-01",
		PeriodEnd:   "2024-01-01",
		CategoryID:  "nope",
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}
