package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required,max=100"`
	Currency       string             `json:"currency" binding:"required,len=3"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=CASH CARD DEPOSIT"`
	InitialBalance decimal.Decimal    `json:"initialBalance"` // Optional, defaults to zero
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string             `json:"accountID"`
	UserID      string             `json:"userID"`
	Name        string             `json:"name"`
	Currency    string             `json:"currency"`
	AccountType domain.AccountType `json:"accountType"`
	Balance     decimal.Decimal    `json:"balance"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// SearchAccountsParams defines the query string of an account search.
// Balance bounds are parsed by the handler so malformed numbers surface as validation errors.
type SearchAccountsParams struct {
	UserEmail  string  `form:"userEmail" binding:"required"`
	MinBalance *string `form:"minBalance"`
	MaxBalance *string `form:"maxBalance"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		UserID:      acc.UserID,
		Name:        acc.Name,
		Currency:    acc.Currency,
		AccountType: acc.AccountType,
		Balance:     acc.Balance,
		CreatedAt:   acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to ListAccountsResponse
func ToListAccountResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return ListAccountsResponse{Accounts: res}
}
