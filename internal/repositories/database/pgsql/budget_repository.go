package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetColumns = `budget_id, name, amount_limit, period_start, period_end, user_id, category_id`

type PgxBudgetRepository struct {
	pool *pgxpool.Pool
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{pool: pool}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(&m.BudgetID, &m.Name, &m.AmountLimit, &m.PeriodStart, &m.PeriodEnd, &m.UserID, &m.CategoryID)
	return m, err
}

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO budgets (`+budgetColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		m.BudgetID, m.Name, m.AmountLimit, m.PeriodStart, m.PeriodEnd, m.UserID, m.CategoryID,
	)
	if err != nil {
		return translateWriteError(err, "save budget "+m.BudgetID)
	}
	return nil
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`
	m, err := scanBudget(r.pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("budget", budgetID)
		}
		return nil, fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}
	budget := mapping.ToDomainBudget(m)
	return &budget, nil
}

func (r *PgxBudgetRepository) ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 ORDER BY period_start DESC, name;`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for user %s: %w", userID, err)
	}
	defer rows.Close()

	budgets := make([]domain.Budget, 0)
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, mapping.ToDomainBudget(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}
	return budgets, nil
}
