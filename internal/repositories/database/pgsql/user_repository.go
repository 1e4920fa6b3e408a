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

// Roles are aggregated so that one row carries a whole user.
const userSelect = `
	SELECT u.user_id, u.username, u.email, u.password_hash, u.auth_provider, u.provider_user_id,
		u.registration_date,
		COALESCE(array_agg(r.role ORDER BY r.role) FILTER (WHERE r.role IS NOT NULL), '{}') AS roles
	FROM users u
	LEFT JOIN user_roles r ON r.user_id = u.user_id`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.PasswordHash,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.RegistrationDate,
		&m.Roles,
	)
	return m, err
}

// SaveUser inserts the user row and its roles in one transaction.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO users (user_id, username, email, password_hash, auth_provider, provider_user_id, registration_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		m.UserID,
		m.Username,
		m.Email,
		m.PasswordHash,
		m.AuthProvider,
		m.ProviderUserID,
		m.RegistrationDate,
	)
	if err != nil {
		return translateWriteError(err, "save user "+m.Username)
	}

	batch := &pgx.Batch{}
	for _, role := range m.Roles {
		batch.Queue(`INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING;`, m.UserID, role)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return translateWriteError(err, "save roles of user "+m.Username)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxUserRepository) findOne(ctx context.Context, column, value string) (*domain.User, error) {
	query := userSelect + ` WHERE u.` + column + ` = $1 GROUP BY u.user_id;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user", value)
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", column, err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user_id", userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username", username)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email", email)
}

// FindUsers retrieves a page of users ordered by registration date.
func (r *PgxUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	query := userSelect + `
		GROUP BY u.user_id
		ORDER BY u.registration_date, u.user_id
		LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0, limit)
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, mapping.ToDomainUser(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// CountUsers returns the number of registered users.
func (r *PgxUserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
