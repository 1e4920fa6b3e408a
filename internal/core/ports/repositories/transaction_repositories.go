package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccountID retrieves a page of an account's transactions, newest first.
	// The returned token is nil when there are no more pages.
	ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListAllTransactions retrieves every persisted transaction.
	ListAllTransactions(ctx context.Context) ([]domain.Transaction, error)

	// FindTransactionsByUserAndCategoryAndDateBetween returns the transactions of a user in a
	// category whose date lies in [start, end].
	FindTransactionsByUserAndCategoryAndDateBetween(ctx context.Context, userID, categoryID string, start, end time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations that must run inside a database transaction
type TransactionWriter interface {
	// SaveTransactionInTx inserts a transaction row.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// FindTransactionByIDForUpdate selects a transaction and locks its row until tx ends.
	FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error)

	// DeleteTransactionInTx removes a transaction row.
	DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
