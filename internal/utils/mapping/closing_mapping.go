package mapping

import (
	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	"github.com/kyawswarhtun/currency_exchange_app/internal/models"
)

// ToModelDailyClosing converts a domain daily closing for DB storage.
func ToModelDailyClosing(d domain.DailyClosing) models.DailyClosing {
	return models.DailyClosing{
		ClosingID:         d.ClosingID,
		AccountID:         d.AccountID,
		ClosingDate:       d.ClosingDate,
		SystemBalance:     d.SystemBalance,
		ActualCashBalance: d.ActualCashBalance,
		Difference:        d.Difference,
		ProfitPerDayMMK:   d.ProfitPerDayMMK,
		Note:              d.Note,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDailyClosing converts a daily_closings row to the domain representation.
func ToDomainDailyClosing(m models.DailyClosing) domain.DailyClosing {
	return domain.DailyClosing{
		ClosingID:         m.ClosingID,
		AccountID:         m.AccountID,
		ClosingDate:       m.ClosingDate,
		SystemBalance:     m.SystemBalance,
		ActualCashBalance: m.ActualCashBalance,
		Difference:        m.Difference,
		ProfitPerDayMMK:   m.ProfitPerDayMMK,
		Note:              m.Note,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
