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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const accountColumns = `a.account_id, a.user_id, a.name, a.currency, a.account_type, a.balance,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by`

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.Name,
		&m.Currency,
		&m.AccountType,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	defer rows.Close()
	accounts := make([]domain.Account, 0)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, user_id, name, currency, account_type, balance,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.Name,
		m.Currency,
		m.AccountType,
		m.Balance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "save account "+m.AccountID)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts a WHERE a.account_id = $1;`
	m, err := scanAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account", accountID)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountByIDForUpdate retrieves an account and locks its row for the rest of tx.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts a WHERE a.account_id = $1 FOR UPDATE;`
	m, err := scanAccount(tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account", accountID)
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccountsByUser retrieves all accounts of a user.
func (r *PgxAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts a WHERE a.user_id = $1 ORDER BY a.name, a.account_id;`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %s: %w", userID, err)
	}
	return collectAccounts(rows)
}

// SearchAccounts returns the accounts of the user with the given email, optionally
// restricted to an inclusive balance range and to a single owner.
func (r *PgxAccountRepository) SearchAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	var where whereBuilder
	where.add("LOWER(u.email) = LOWER($%d)", filter.UserEmail)
	if filter.MinBalance != nil {
		where.add("a.balance >= $%d", *filter.MinBalance)
	}
	if filter.MaxBalance != nil {
		where.add("a.balance <= $%d", *filter.MaxBalance)
	}
	if filter.OwnerID != "" {
		where.add("a.user_id = $%d", filter.OwnerID)
	}

	query := `SELECT ` + accountColumns + ` FROM accounts a JOIN users u ON u.user_id = a.user_id` +
		where.sql() + ` ORDER BY a.name, a.account_id;`
	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}
	return collectAccounts(rows)
}

// UpdateAccountBalanceInTx stores a new balance within the given transaction.
func (r *PgxAccountRepository) UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	tag, err := tx.Exec(ctx, query, accountID, balance, now, userID)
	if err != nil {
		return translateWriteError(err, "update balance of account "+accountID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account", accountID)
	}
	return nil
}
