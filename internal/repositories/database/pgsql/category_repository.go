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

const categoryColumns = `category_id, name, description, type, color_code`

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{pool: pool}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(&m.CategoryID, &m.Name, &m.Description, &m.Type, &m.ColorCode)
	return m, err
}

func (r *PgxCategoryRepository) queryCategories(ctx context.Context, query string, args ...any) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, mapping.ToDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO categories (`+categoryColumns+`)
		VALUES ($1, $2, $3, $4, $5);`,
		m.CategoryID, m.Name, m.Description, m.Type, m.ColorCode,
	)
	if err != nil {
		return translateWriteError(err, "save category "+m.Name)
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`
	m, err := scanCategory(r.pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("category", categoryID)
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	category := mapping.ToDomainCategory(m)
	return &category, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return r.queryCategories(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name, category_id;`)
}

// SearchCategories matches type exactly, color code case-insensitively and name by
// case-insensitive substring.
func (r *PgxCategoryRepository) SearchCategories(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error) {
	var where whereBuilder
	if filter.Type != nil {
		where.add("type = $%d", string(*filter.Type))
	}
	if filter.ColorCode != nil {
		where.add("LOWER(color_code) = LOWER($%d)", *filter.ColorCode)
	}
	if filter.NamePart != nil {
		where.add("name ILIKE '%%' || $%d || '%%'", escapeLike(*filter.NamePart))
	}
	query := `SELECT ` + categoryColumns + ` FROM categories` + where.sql() + ` ORDER BY name, category_id;`
	return r.queryCategories(ctx, query, where.args...)
}
