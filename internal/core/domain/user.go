package domain

import "time"

// Role is an authorization role granted to a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// AuthProvider identifies how a user signs in.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a user of the application in the domain.
type User struct {
	UserID           string       `json:"userID"` // Primary Key (UUID)
	Username         string       `json:"username"`
	Email            string       `json:"email"`
	PasswordHash     string       `json:"-"`
	AuthProvider     AuthProvider `json:"authProvider"`
	ProviderUserID   string       `json:"-"`
	RegistrationDate time.Time    `json:"registrationDate"`
	Roles            []Role       `json:"roles"`
}

// HasRole reports whether the user was granted role.
func (u User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
