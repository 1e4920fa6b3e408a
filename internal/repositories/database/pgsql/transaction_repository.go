package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/SscSPs/finance_tracker/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, amount, date, description, type, user_id, account_id, category_id`

// PgxTransactionRepository implements the transaction repository using pgx.
type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Amount,
		&m.Date,
		&m.Description,
		&m.Type,
		&m.UserID,
		&m.AccountID,
		&m.CategoryID,
	)
	return m, err
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()
	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// SaveTransactionInTx inserts a transaction within the given database transaction.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := tx.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		m.TransactionID,
		m.Amount,
		m.Date,
		m.Description,
		m.Type,
		m.UserID,
		m.AccountID,
		m.CategoryID,
	)
	if err != nil {
		return translateWriteError(err, "save transaction "+m.TransactionID)
	}
	return nil
}

// FindTransactionByIDForUpdate retrieves a transaction and locks its row for the rest of tx.
func (r *PgxTransactionRepository) FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 FOR UPDATE;`
	m, err := scanTransaction(tx.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction", transactionID)
		}
		return nil, fmt.Errorf("failed to lock transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// DeleteTransactionInTx removes a transaction within the given database transaction.
func (r *PgxTransactionRepository) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction", transactionID)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction", transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByAccountID pages through an account's transactions, newest first,
// using (date, transaction_id) as the keyset.
func (r *PgxTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	var where whereBuilder
	where.add("account_id = $%d", accountID)
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError(err.Error())
		}
		where.args = append(where.args, lastDate, lastID)
		where.clauses = append(where.clauses, fmt.Sprintf("(date, transaction_id) < ($%d, $%d)", len(where.args)-1, len(where.args)))
	}
	where.args = append(where.args, limit+1)
	query := `SELECT ` + transactionColumns + ` FROM transactions` + where.sql() +
		fmt.Sprintf(` ORDER BY date DESC, transaction_id DESC LIMIT $%d;`, len(where.args))

	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		encoded := pagination.EncodeToken(last.Date, last.TransactionID)
		token = &encoded
	}
	return txns, token, nil
}

// ListAllTransactions retrieves every persisted transaction.
func (r *PgxTransactionRepository) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY date, transaction_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	return collectTransactions(rows)
}

// FindTransactionsByUserAndCategoryAndDateBetween returns the transactions of a user in a
// category dated within [start, end].
func (r *PgxTransactionRepository) FindTransactionsByUserAndCategoryAndDateBetween(ctx context.Context, userID, categoryID string, start, end time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE user_id = $1 AND category_id = $2 AND date BETWEEN $3 AND $4
		ORDER BY date, transaction_id;`
	rows, err := r.Pool.Query(ctx, query, userID, categoryID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions of user %s in category %s: %w", userID, categoryID, err)
	}
	return collectTransactions(rows)
}
