package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/apperrors"
	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/services"
	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
)

// exchangeRateServiceImpl implements the ExchangeRateSvcFacade interface
type exchangeRateServiceImpl struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
}

// NewExchangeRateServiceImpl creates a new rate service
func NewExchangeRateServiceImpl(repo portsrepo.ExchangeRateRepositoryFacade) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateServiceImpl{rateRepo: repo}
}

// Ensure exchangeRateServiceImpl implements the ExchangeRateSvcFacade interface
var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateServiceImpl)(nil)

func (s *exchangeRateServiceImpl) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	stored, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, err
	}

	// The base currency is pinned to 1 and never stored; prepend a synthetic
	// row so the table the caller sees is complete.
	rates := make([]domain.ExchangeRate, 0, len(stored)+1)
	rates = append(rates, domain.ExchangeRate{
		Currency:    domain.BaseCurrency,
		Rate:        decimal.NewFromInt(1),
		RateFromMMK: decimal.NewFromInt(1),
	})
	for _, r := range stored {
		if r.Currency == domain.BaseCurrency {
			continue
		}
		rates = append(rates, r)
	}
	return rates, nil
}

func (s *exchangeRateServiceImpl) GetRateToMMK(ctx context.Context, currency domain.Currency) (decimal.Decimal, error) {
	if currency == domain.BaseCurrency {
		return decimal.NewFromInt(1), nil
	}
	if !domain.IsSupportedCurrency(string(currency)) {
		return decimal.Zero, apperrors.NewValidationError("unsupported currency " + string(currency))
	}

	rate, err := s.rateRepo.FindRateByCurrency(ctx, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No stored rate: fall back to face value so valuations degrade
			// instead of blocking the ledger.
			s.LogDebug(ctx, "No stored rate, defaulting to 1",
				slog.String("currency", string(currency)))
			return decimal.NewFromInt(1), nil
		}
		s.LogError(ctx, err, "Failed to fetch exchange rate",
			slog.String("currency", string(currency)))
		return decimal.Zero, err
	}
	return rate.Rate, nil
}

func (s *exchangeRateServiceImpl) RatesToMMK(ctx context.Context) (map[domain.Currency]decimal.Decimal, error) {
	rates, err := s.ListRates(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[domain.Currency]decimal.Decimal, len(rates))
	for _, r := range rates {
		m[r.Currency] = r.Rate
	}
	return m, nil
}

func (s *exchangeRateServiceImpl) RatesFromMMK(ctx context.Context) (map[domain.Currency]decimal.Decimal, error) {
	rates, err := s.ListRates(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[domain.Currency]decimal.Decimal, len(rates))
	for _, r := range rates {
		m[r.Currency] = r.RateFromMMK
	}
	return m, nil
}

func (s *exchangeRateServiceImpl) ConvertToMMK(ctx context.Context, amount decimal.Decimal, currency domain.Currency) (decimal.Decimal, error) {
	if currency == domain.BaseCurrency {
		return amount, nil
	}
	rate, err := s.GetRateToMMK(ctx, currency)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}

func (s *exchangeRateServiceImpl) UpdateRate(ctx context.Context, req dto.UpdateRateRequest, updaterUserID string) (*domain.ExchangeRate, error) {
	rate, err := s.buildRate(req, updaterUserID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.rateRepo.UpsertRate(ctx, *rate); err != nil {
		s.LogError(ctx, err, "Failed to upsert exchange rate",
			slog.String("currency", string(rate.Currency)))
		return nil, err
	}

	s.LogInfo(ctx, "Exchange rate updated",
		slog.String("currency", string(rate.Currency)),
		slog.String("rate", rate.Rate.String()))
	return rate, nil
}

func (s *exchangeRateServiceImpl) UpdateRates(ctx context.Context, req dto.BulkUpdateRatesRequest, updaterUserID string) ([]domain.ExchangeRate, error) {
	now := time.Now()
	rates := make([]domain.ExchangeRate, 0, len(req.Rates))
	seen := make(map[domain.Currency]struct{}, len(req.Rates))
	for _, entry := range req.Rates {
		// The base currency is pinned to 1; a bulk feed that includes it is
		// applied without that entry rather than rejected outright.
		if entry.Currency == domain.BaseCurrency {
			continue
		}
		if _, dup := seen[entry.Currency]; dup {
			return nil, apperrors.NewValidationError("duplicate currency " + string(entry.Currency) + " in bulk update")
		}
		seen[entry.Currency] = struct{}{}

		rate, err := s.buildRate(entry, updaterUserID, now)
		if err != nil {
			return nil, err
		}
		rates = append(rates, *rate)
	}
	if len(rates) == 0 {
		return rates, nil
	}

	if err := s.rateRepo.UpsertRates(ctx, rates); err != nil {
		s.LogError(ctx, err, "Failed to bulk upsert exchange rates",
			slog.Int("count", len(rates)))
		return nil, err
	}

	s.LogInfo(ctx, "Exchange rates updated", slog.Int("count", len(rates)))
	return rates, nil
}

// buildRate validates one rate entry and materializes the row to store.
func (s *exchangeRateServiceImpl) buildRate(req dto.UpdateRateRequest, updaterUserID string, now time.Time) (*domain.ExchangeRate, error) {
	if !domain.IsSupportedCurrency(string(req.Currency)) {
		return nil, apperrors.NewValidationError("unsupported currency " + string(req.Currency))
	}
	if req.Currency == domain.BaseCurrency {
		return nil, apperrors.NewValidationError("the base currency rate is fixed at 1 and cannot be set")
	}
	if req.Rate.LessThanOrEqual(decimal.Zero) || req.RateFromMMK.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("exchange rates must be positive")
	}

	return &domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		Currency:       req.Currency,
		Rate:           req.Rate,
		RateFromMMK:    req.RateFromMMK,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}, nil
}
