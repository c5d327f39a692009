package mapping

import (
	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	"github.com/kyawswarhtun/currency_exchange_app/internal/models"
)

// ToModelExchangeRate converts a domain exchange rate for DB storage.
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID: d.ExchangeRateID,
		Currency:       string(d.Currency),
		Rate:           d.Rate,
		RateFromMMK:    d.RateFromMMK,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts an exchange_rates row to the domain representation.
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: m.ExchangeRateID,
		Currency:       domain.Currency(m.Currency),
		Rate:           m.Rate,
		RateFromMMK:    m.RateFromMMK,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
