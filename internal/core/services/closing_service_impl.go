package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kyawswarhtun/currency_exchange_app/internal/apperrors"
	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/services"
	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
)

// closingServiceImpl implements the ClosingSvcFacade interface
type closingServiceImpl struct {
	BaseService
	closingRepo   portsrepo.ClosingRepositoryFacade
	accountRepo   portsrepo.AccountReader
	profitService portssvc.ProfitSvcFacade
}

// NewClosingServiceImpl creates a new closing service
func NewClosingServiceImpl(closingRepo portsrepo.ClosingRepositoryFacade, accountRepo portsrepo.AccountReader, profitService portssvc.ProfitSvcFacade) portssvc.ClosingSvcFacade {
	return &closingServiceImpl{
		closingRepo:   closingRepo,
		accountRepo:   accountRepo,
		profitService: profitService,
	}
}

// Ensure closingServiceImpl implements the ClosingSvcFacade interface
var _ portssvc.ClosingSvcFacade = (*closingServiceImpl)(nil)

func (s *closingServiceImpl) CreateClosing(ctx context.Context, req dto.CreateClosingRequest, creatorUserID string) (*domain.DailyClosing, error) {
	if req.ActualCashBalance.IsNegative() {
		return nil, apperrors.NewValidationError("actual cash balance cannot be negative")
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != creatorUserID {
		return nil, apperrors.NewForbiddenError("account " + req.AccountID + " does not belong to the requesting user")
	}
	if account.Status == domain.AccountDeleted {
		return nil, apperrors.NewValidationError("cannot close a deleted account")
	}

	now := time.Now()
	existing, err := s.closingRepo.FindClosingForDay(ctx, req.AccountID, now)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing closing",
			slog.String("account_id", req.AccountID))
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyClosed
	}

	profit, err := s.profitService.DailyProfitMMK(ctx, req.AccountID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute daily profit for closing",
			slog.String("account_id", req.AccountID))
		return nil, err
	}

	closingDay, _ := dayBounds(now)
	closing := domain.DailyClosing{
		ClosingID:         uuid.NewString(),
		AccountID:         req.AccountID,
		ClosingDate:       closingDay,
		SystemBalance:     account.Balance,
		ActualCashBalance: req.ActualCashBalance,
		Difference:        req.ActualCashBalance.Sub(account.Balance),
		ProfitPerDayMMK:   profit,
		Note:              req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.closingRepo.SaveClosing(ctx, closing); err != nil {
		s.LogError(ctx, err, "Failed to save daily closing",
			slog.String("account_id", req.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account closed for the day",
		slog.String("account_id", req.AccountID),
		slog.String("difference", closing.Difference.String()))
	return &closing, nil
}

func (s *closingServiceImpl) ListClosings(ctx context.Context, requestingUserID string, params dto.ListClosingsParams) (*dto.ListClosingsResponse, error) {
	limit := params.Limit
	if limit < 1 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	closings, total, err := s.closingRepo.ListClosingsByUser(ctx, requestingUserID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list closings")
		return nil, err
	}

	resp := dto.ToListClosingsResponse(closings, total)
	return &resp, nil
}
