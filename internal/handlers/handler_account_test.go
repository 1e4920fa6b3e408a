package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountHandlerTestSuite struct {
	apiSuite
}

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) TestCreateAccount_Success() {
	userID := uuid.NewString()
	created := &domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      userID,
		Name:        "Wallet",
		Currency:    "EUR",
		AccountType: domain.Cash,
		Balance:     decimal.RequireFromString("1000.00"),
	}
	s.accounts.On("CreateAccount", mock.Anything,
		mock.MatchedBy(func(r dto.CreateAccountRequest) bool {
			return r.Name == "Wallet" && r.InitialBalance.Equal(decimal.NewFromInt(1000))
		}),
		userID,
	).Return(created, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"name":           "Wallet",
		"currency":       "EUR",
		"accountType":    "CASH",
		"initialBalance": "1000.00",
	}, userID)

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var body dto.AccountResponse
	s.decode(w, &body)
	s.Equal(created.AccountID, body.AccountID)
	s.True(body.Balance.Equal(decimal.NewFromInt(1000)))
}

func (s *AccountHandlerTestSuite) TestCreateAccount_RejectsUnknownType() {
	w := s.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"name":        "Wallet",
		"currency":    "EUR",
		"accountType": "CRYPTO",
	}, uuid.NewString())

	s.errorBody(w, http.StatusBadRequest)
}

func (s *AccountHandlerTestSuite) TestRequiresToken() {
	w := s.do(http.MethodGet, "/api/v1/accounts", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	userID := uuid.NewString()
	s.accounts.On("GetAccountByID", mock.Anything, "acc-1", userID).
		Return(nil, apperrors.NewNotFoundError("account", "acc-1")).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts/acc-1", nil, userID)

	body := s.errorBody(w, http.StatusNotFound)
	s.Equal("/api/v1/accounts/acc-1", body.Path)
	s.Contains(body.Error, "acc-1")
}

func (s *AccountHandlerTestSuite) TestListAccounts_ServiceFailureHidesCause() {
	userID := uuid.NewString()
	s.accounts.On("ListAccounts", mock.Anything, userID).
		Return(nil, errors.New("connection refused on 10.0.0.7")).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts", nil, userID)

	body := s.errorBody(w, http.StatusInternalServerError)
	s.NotContains(body.Error, "10.0.0.7")
}

func (s *AccountHandlerTestSuite) TestSearchAccounts_ParsesBounds() {
	lo := decimal.RequireFromString("100")
	hi := decimal.RequireFromString("250.50")
	userID := uuid.NewString()
	s.accounts.On("SearchAccounts", mock.Anything, mock.MatchedBy(func(f domain.AccountFilter) bool {
		return f.UserEmail == "ann@example.com" &&
			f.MinBalance != nil && f.MinBalance.Equal(lo) &&
			f.MaxBalance != nil && f.MaxBalance.Equal(hi)
	}), userID).Return([]domain.Account{{AccountID: "a1", Balance: decimal.NewFromInt(120)}}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts/search?userEmail=ann@example.com&minBalance=100&maxBalance=250.50", nil, userID)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var body dto.ListAccountsResponse
	s.decode(w, &body)
	s.Require().Len(body.Accounts, 1)
	s.Equal("a1", body.Accounts[0].AccountID)
}

func (s *AccountHandlerTestSuite) TestSearchAccounts_OmittedBoundsAreNil() {
	s.accounts.On("SearchAccounts", mock.Anything, mock.MatchedBy(func(f domain.AccountFilter) bool {
		return f.MinBalance == nil && f.MaxBalance == nil
	}), mock.Anything).Return(nil, apperrors.NewNotFoundError("accounts", "ann@example.com")).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts/search?userEmail=ann@example.com", nil, uuid.NewString())

	s.errorBody(w, http.StatusNotFound)
}

func (s *AccountHandlerTestSuite) TestSearchAccounts_MalformedBound() {
	w := s.do(http.MethodGet, "/api/v1/accounts/search?userEmail=ann@example.com&minBalance=lots", nil, uuid.NewString())

	body := s.errorBody(w, http.StatusBadRequest)
	s.Contains(body.Error, "minBalance")
	s.accounts.AssertNotCalled(s.T(), "SearchAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountHandlerTestSuite) TestSearchAccounts_OtherUsersEmailIsNotFound() {
	callerID := uuid.NewString()
	s.accounts.On("SearchAccounts", mock.Anything, mock.MatchedBy(func(f domain.AccountFilter) bool {
		return f.UserEmail == "victim@example.com"
	}), callerID).Return(nil, apperrors.NewNotFoundError("accounts", "matching victim@example.com")).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts/search?userEmail=victim@example.com", nil, callerID)

	body := s.errorBody(w, http.StatusNotFound)
	s.NotContains(w.Body.String(), "balance")
	s.Contains(body.Error, "not found")
}

func (s *AccountHandlerTestSuite) TestSearchAccounts_EmailRequired() {
	w := s.do(http.MethodGet, "/api/v1/accounts/search", nil, uuid.NewString())
	s.errorBody(w, http.StatusBadRequest)
}

func (s *AccountHandlerTestSuite) TestListTransactionsByAccount_Success() {
	accountID := uuid.NewString()
	userID := uuid.NewString()
	next := "opaque"
	page := &dto.ListTransactionsResponse{
		Transactions: []dto.TransactionResponse{
			{TransactionID: uuid.NewString(), AccountID: accountID, Amount: decimal.NewFromInt(100), Type: domain.Income, Date: time.Now().UTC()},
			{TransactionID: uuid.NewString(), AccountID: accountID, Amount: decimal.NewFromInt(50), Type: domain.Expense, Date: time.Now().UTC().Add(-time.Hour)},
		},
		NextToken: &next,
	}
	s.transactions.On("ListTransactionsByAccount", mock.Anything, accountID, userID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 2 && p.NextToken != nil && *p.NextToken == "prev"
		}),
	).Return(page, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts/"+accountID+"/transactions?limit=2&nextToken=prev", nil, userID)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var body dto.ListTransactionsResponse
	s.decode(w, &body)
	s.Len(body.Transactions, 2)
	s.Require().NotNil(body.NextToken)
	s.Equal("opaque", *body.NextToken)
}

func (s *AccountHandlerTestSuite) TestListTransactionsByAccount_LimitOutOfRange() {
	w := s.do(http.MethodGet, "/api/v1/accounts/a1/transactions?limit=500", nil, uuid.NewString())
	s.errorBody(w, http.StatusBadRequest)
}
