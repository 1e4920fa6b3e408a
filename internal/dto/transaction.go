package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to post an income or expense.
// Amount positivity is enforced by the transaction engine.
type CreateTransactionRequest struct {
	AccountID   string               `json:"accountID" binding:"required"`
	CategoryID  string               `json:"categoryID" binding:"required"`
	Amount      decimal.Decimal      `json:"amount"`
	Description string               `json:"description" binding:"max=500"`
	Type        domain.OperationType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string               `json:"transactionID"`
	AccountID     string               `json:"accountID"`
	CategoryID    string               `json:"categoryID"`
	UserID        string               `json:"userID"`
	Amount        decimal.Decimal      `json:"amount"`
	Type          domain.OperationType `json:"type"`
	Description   string               `json:"description"`
	Date          time.Time            `json:"date"`
}

// ListTransactionsParams defines query parameters for listing an account's transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		CategoryID:    txn.CategoryID,
		UserID:        txn.UserID,
		Amount:        txn.Amount,
		Type:          txn.Type,
		Description:   txn.Description,
		Date:          txn.Date,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
