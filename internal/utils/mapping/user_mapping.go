package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	roles := make([]string, len(d.Roles))
	for i, r := range d.Roles {
		roles[i] = string(r)
	}
	return models.User{
		UserID:           d.UserID,
		Username:         d.Username,
		Email:            d.Email,
		PasswordHash:     toNullString(d.PasswordHash),
		AuthProvider:     string(d.AuthProvider),
		ProviderUserID:   toNullString(d.ProviderUserID),
		RegistrationDate: d.RegistrationDate,
		Roles:            roles,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	roles := make([]domain.Role, len(m.Roles))
	for i, r := range m.Roles {
		roles[i] = domain.Role(r)
	}
	return domain.User{
		UserID:           m.UserID,
		Username:         m.Username,
		Email:            m.Email,
		PasswordHash:     fromNullString(m.PasswordHash),
		AuthProvider:     domain.AuthProvider(m.AuthProvider),
		ProviderUserID:   fromNullString(m.ProviderUserID),
		RegistrationDate: m.RegistrationDate,
		Roles:            roles,
	}
}
