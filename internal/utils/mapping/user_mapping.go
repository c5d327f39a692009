package mapping

import (
	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	"github.com/kyawswarhtun/currency_exchange_app/internal/models"
)

// ToModelUser converts a domain user for DB storage.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Phone:        d.Phone,
		PasswordHash: d.PasswordHash,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Role:         string(d.Role),
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a users row to the domain representation.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Role:         domain.UserRole(m.Role),
		Status:       domain.UserStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
