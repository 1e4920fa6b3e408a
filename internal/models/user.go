package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table. Roles live in user_roles.
type User struct {
	UserID           string         `db:"user_id"`
	Username         string         `db:"username"`
	Email            string         `db:"email"`
	PasswordHash     sql.NullString `db:"password_hash"` // NULL for OAuth-only users
	AuthProvider     string         `db:"auth_provider"`
	ProviderUserID   sql.NullString `db:"provider_user_id"`
	RegistrationDate time.Time      `db:"registration_date"`
	Roles            []string       `db:"roles"` // aggregated from user_roles
}
