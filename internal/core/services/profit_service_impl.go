package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/apperrors"
	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/services"
	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
)

// profitServiceImpl implements the ProfitSvcFacade interface
type profitServiceImpl struct {
	BaseService
	profitRepo  portsrepo.ProfitRepositoryFacade
	accountRepo portsrepo.AccountReader
	rateService portssvc.ExchangeRateReaderSvc
}

// NewProfitServiceImpl creates a new profit service
func NewProfitServiceImpl(profitRepo portsrepo.ProfitRepositoryFacade, accountRepo portsrepo.AccountReader, rateService portssvc.ExchangeRateReaderSvc) portssvc.ProfitSvcFacade {
	return &profitServiceImpl{
		profitRepo:  profitRepo,
		accountRepo: accountRepo,
		rateService: rateService,
	}
}

// Ensure profitServiceImpl implements the ProfitSvcFacade interface
var _ portssvc.ProfitSvcFacade = (*profitServiceImpl)(nil)

func (s *profitServiceImpl) CalculateDailyProfit(ctx context.Context, accountID string, day time.Time, requestingUserID string) (*dto.ProfitResponse, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != requestingUserID {
		return nil, apperrors.NewNotFoundError("account " + accountID + " not found")
	}

	start, end := dayBounds(day)
	brokered, exchange, cross, err := s.profitParts(ctx, accountID, start, end)
	if err != nil {
		return nil, err
	}

	return &dto.ProfitResponse{
		AccountID:      accountID,
		Date:           start,
		BrokeredProfit: brokered,
		ExchangeProfit: exchange,
		CrossProfit:    cross,
		TotalProfitMMK: brokered.Add(exchange).Add(cross),
	}, nil
}

func (s *profitServiceImpl) CalculateProfitRange(ctx context.Context, accountID string, from, to time.Time, requestingUserID string) (*dto.ProfitRangeResponse, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != requestingUserID {
		return nil, apperrors.NewNotFoundError("account " + accountID + " not found")
	}

	first, _ := dayBounds(from)
	last, _ := dayBounds(to)
	if last.Before(first) {
		return nil, apperrors.NewValidationError("range end precedes range start")
	}

	resp := &dto.ProfitRangeResponse{
		AccountID:      accountID,
		From:           first,
		To:             last,
		TotalProfitMMK: decimal.Zero,
	}
	// One daily evaluation per calendar day; ranges here span days, not years.
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		profit, err := s.DailyProfitMMK(ctx, accountID, day)
		if err != nil {
			return nil, err
		}
		resp.Days = append(resp.Days, dto.ProfitDay{Date: day, ProfitMMK: profit})
		resp.TotalProfitMMK = resp.TotalProfitMMK.Add(profit)
	}
	return resp, nil
}

func (s *profitServiceImpl) DailyProfitMMK(ctx context.Context, accountID string, day time.Time) (decimal.Decimal, error) {
	start, end := dayBounds(day)
	brokered, exchange, cross, err := s.profitParts(ctx, accountID, start, end)
	if err != nil {
		return decimal.Zero, err
	}
	return brokered.Add(exchange).Add(cross), nil
}

// profitParts evaluates the three profit sources for one account and window.
func (s *profitServiceImpl) profitParts(ctx context.Context, accountID string, start, end time.Time) (brokered, exchange, cross decimal.Decimal, err error) {
	brokered, err = s.profitRepo.SumBrokeredProfit(ctx, accountID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum brokered profit",
			slog.String("account_id", accountID))
		return decimal.Zero, decimal.Zero, decimal.Zero, err
	}

	legs, err := s.profitRepo.ListExchangeLegs(ctx, accountID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange legs",
			slog.String("account_id", accountID))
		return decimal.Zero, decimal.Zero, decimal.Zero, err
	}

	// Standard exchanges are repriced at current rates: the value received
	// minus the value given away, both expressed in MMK today. A currency with
	// no stored rate values at face.
	exchange = decimal.Zero
	rateCache := make(map[domain.Currency]decimal.Decimal)
	rateOf := func(c domain.Currency) (decimal.Decimal, error) {
		if r, ok := rateCache[c]; ok {
			return r, nil
		}
		r, err := s.rateService.GetRateToMMK(ctx, c)
		if err != nil {
			return decimal.Zero, err
		}
		rateCache[c] = r
		return r, nil
	}
	for _, leg := range legs {
		rateIn, err := rateOf(leg.ToCurrency)
		if err != nil {
			return decimal.Zero, decimal.Zero, decimal.Zero, err
		}
		rateOut, err := rateOf(leg.FromCurrency)
		if err != nil {
			return decimal.Zero, decimal.Zero, decimal.Zero, err
		}
		exchange = exchange.Add(leg.AmountIn.Mul(rateIn)).Sub(leg.AmountOut.Mul(rateOut))
	}

	spreads, err := s.profitRepo.ListCrossSpreads(ctx, accountID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cross spreads",
			slog.String("account_id", accountID))
		return decimal.Zero, decimal.Zero, decimal.Zero, err
	}

	// Cross profit is the recorded spread, not a repricing: what the customer
	// paid per unit minus what the supplier charged.
	cross = decimal.Zero
	for _, sp := range spreads {
		cross = cross.Add(sp.ForeignAmount.Mul(sp.CustomerRate.Sub(sp.SupplierRate)))
	}

	return brokered, exchange, cross, nil
}

// dayBounds returns the inclusive bounds of the local calendar day containing t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Local().Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
