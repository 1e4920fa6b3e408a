package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// TransactionWriterSvc creates and deletes transactions while keeping account balances consistent.
type TransactionWriterSvc interface {
	// CreateTransaction posts an income or expense and adjusts the account balance atomically.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and reverses its balance effect atomically.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
}

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, accountID string, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionWriterSvc
	TransactionReaderSvc
}
