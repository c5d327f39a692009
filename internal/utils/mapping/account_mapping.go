package mapping

import (
	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	"github.com/kyawswarhtun/currency_exchange_app/internal/models"
)

// ToModelAccount converts a domain account for DB storage.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		UserID:      d.UserID,
		Name:        d.Name,
		Currency:    string(d.Currency),
		Balance:     d.Balance,
		Status:      models.AccountStatus(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts an accounts row to the domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		UserID:      m.UserID,
		Name:        m.Name,
		Currency:    domain.Currency(m.Currency),
		Balance:     m.Balance,
		Status:      domain.AccountStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
