package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/apperrors"
	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/services"
	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
)

// transactionServiceImpl implements the TransactionSvcFacade interface
type transactionServiceImpl struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	supplierRepo portsrepo.SupplierReader
}

// NewTransactionServiceImpl creates a new transaction service
func NewTransactionServiceImpl(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, supplierRepo portsrepo.SupplierReader) portssvc.TransactionSvcFacade {
	return &transactionServiceImpl{
		txnRepo:      txnRepo,
		accountRepo:  accountRepo,
		supplierRepo: supplierRepo,
	}
}

// Ensure transactionServiceImpl implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionServiceImpl)(nil)

func (s *transactionServiceImpl) CreateExchange(ctx context.Context, req dto.CreateExchangeRequest, creatorUserID string) (*domain.ExchangeTransaction, error) {
	if req.FromAccountID == req.ToAccountID {
		return nil, apperrors.NewValidationError("source and destination accounts must differ")
	}
	if req.AmountOut.LessThanOrEqual(decimal.Zero) || req.AmountIn.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("amounts must be positive")
	}
	if req.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("exchange rate must be positive")
	}

	from, err := s.ownedActiveAccount(ctx, req.FromAccountID, creatorUserID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedActiveAccount(ctx, req.ToAccountID, creatorUserID); err != nil {
		return nil, err
	}

	// Early sufficiency check for a fast failure. The repository re-checks on
	// locked rows before applying, which is the authoritative check.
	if from.Balance.LessThan(req.AmountOut) {
		return nil, apperrors.NewInsufficientFundsError("account " + from.Name + " (" + from.AccountID + ")")
	}

	now := time.Now()
	txn := domain.ExchangeTransaction{
		TransactionID: uuid.NewString(),
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		AmountOut:     req.AmountOut,
		AmountIn:      req.AmountIn,
		ExchangeRate:  req.ExchangeRate,
		CustomerName:  req.CustomerName,
		Note:          req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	balanceChanges := map[string]decimal.Decimal{
		req.FromAccountID: req.AmountOut.Neg(),
		req.ToAccountID:   req.AmountIn,
	}

	if err := s.txnRepo.SaveExchange(ctx, txn, balanceChanges); err != nil {
		s.LogError(ctx, err, "Failed to save exchange",
			slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Exchange executed",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("from_account", req.FromAccountID),
		slog.String("to_account", req.ToAccountID))
	return &txn, nil
}

func (s *transactionServiceImpl) CreateCrossExchange(ctx context.Context, req dto.CreateCrossExchangeRequest, creatorUserID string) (*domain.CrossTransaction, error) {
	direction := domain.CrossDirection(req.Direction)
	if direction != domain.ForeignToHeld && direction != domain.HeldToForeign {
		return nil, apperrors.NewValidationError("invalid cross direction " + req.Direction)
	}
	if req.BridgeAccountID == req.TargetAccountID {
		return nil, apperrors.NewValidationError("bridge and target accounts must differ")
	}
	if req.ForeignAmount.LessThanOrEqual(decimal.Zero) ||
		req.BridgeAmount.LessThanOrEqual(decimal.Zero) ||
		req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("amounts must be positive")
	}
	if req.SupplierRate.LessThanOrEqual(decimal.Zero) || req.CustomerRate.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("rates must be positive")
	}
	if !domain.IsSupportedCurrency(string(req.ForeignCurrency)) {
		return nil, apperrors.NewValidationError("unsupported currency " + string(req.ForeignCurrency))
	}

	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	bridge, err := s.ownedActiveAccount(ctx, req.BridgeAccountID, creatorUserID)
	if err != nil {
		return nil, err
	}
	if bridge.Currency != domain.BaseCurrency {
		return nil, apperrors.NewValidationError("bridge account must be denominated in " + string(domain.BaseCurrency))
	}
	target, err := s.ownedActiveAccount(ctx, req.TargetAccountID, creatorUserID)
	if err != nil {
		return nil, err
	}

	// The paying side depends on direction: FOREIGN_TO_HELD pays out of the
	// target account, HELD_TO_FOREIGN pays out of the bridge account.
	var balanceChanges map[string]decimal.Decimal
	switch direction {
	case domain.ForeignToHeld:
		if target.Balance.LessThan(req.TargetAmount) {
			return nil, apperrors.NewInsufficientFundsError("account " + target.Name + " (" + target.AccountID + ")")
		}
		balanceChanges = map[string]decimal.Decimal{
			req.TargetAccountID: req.TargetAmount.Neg(),
			req.BridgeAccountID: req.BridgeAmount,
		}
	case domain.HeldToForeign:
		if bridge.Balance.LessThan(req.BridgeAmount) {
			return nil, apperrors.NewInsufficientFundsError("account " + bridge.Name + " (" + bridge.AccountID + ")")
		}
		balanceChanges = map[string]decimal.Decimal{
			req.BridgeAccountID: req.BridgeAmount.Neg(),
			req.TargetAccountID: req.TargetAmount,
		}
	}

	now := time.Now()
	txn := domain.CrossTransaction{
		TransactionID:   uuid.NewString(),
		SupplierID:      req.SupplierID,
		ForeignCurrency: req.ForeignCurrency,
		ForeignAmount:   req.ForeignAmount,
		BridgeAccountID: req.BridgeAccountID,
		BridgeAmount:    req.BridgeAmount,
		SupplierRate:    req.SupplierRate,
		TargetAccountID: req.TargetAccountID,
		TargetAmount:    req.TargetAmount,
		CustomerRate:    req.CustomerRate,
		Direction:       direction,
		Note:            req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.txnRepo.SaveCrossExchange(ctx, txn, balanceChanges); err != nil {
		s.LogError(ctx, err, "Failed to save cross exchange",
			slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Cross exchange executed",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("supplier_id", req.SupplierID),
		slog.String("direction", req.Direction))
	return &txn, nil
}

func (s *transactionServiceImpl) GetTransaction(ctx context.Context, kind domain.TransactionKind, transactionID string, requestingUserID string) (*domain.LedgerRecord, error) {
	switch kind {
	case domain.KindStandard:
		txn, ownerUserID, err := s.txnRepo.FindExchangeByID(ctx, transactionID)
		if err != nil {
			return nil, err
		}
		if ownerUserID != requestingUserID {
			// Another user's record is indistinguishable from a missing one.
			return nil, apperrors.NewNotFoundError("transaction " + transactionID + " not found")
		}
		return &domain.LedgerRecord{Kind: domain.KindStandard, Exchange: txn}, nil
	case domain.KindCross:
		txn, ownerUserID, err := s.txnRepo.FindCrossByID(ctx, transactionID)
		if err != nil {
			return nil, err
		}
		if ownerUserID != requestingUserID {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID + " not found")
		}
		return &domain.LedgerRecord{Kind: domain.KindCross, Cross: txn}, nil
	default:
		return nil, apperrors.NewValidationError("unknown transaction kind " + string(kind))
	}
}

func (s *transactionServiceImpl) ListHistory(ctx context.Context, requestingUserID string, params dto.ListHistoryParams) (*dto.ListHistoryResponse, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 20
	}

	// Fetch enough of each kind to fill the requested page after merging.
	fetch := limit * page
	exchanges, err := s.txnRepo.ListExchangesByUser(ctx, requestingUserID, fetch)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchanges")
		return nil, err
	}
	crosses, err := s.txnRepo.ListCrossByUser(ctx, requestingUserID, fetch)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cross exchanges")
		return nil, err
	}

	merged := make([]domain.LedgerRecord, 0, len(exchanges)+len(crosses))
	for i := range exchanges {
		merged = append(merged, domain.LedgerRecord{Kind: domain.KindStandard, Exchange: &exchanges[i]})
	}
	for i := range crosses {
		merged = append(merged, domain.LedgerRecord{Kind: domain.KindCross, Cross: &crosses[i]})
	}

	sort.Slice(merged, func(i, j int) bool {
		ti, tj := merged[i].OccurredAt(), merged[j].OccurredAt()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return merged[i].RecordID() > merged[j].RecordID()
	})

	total := len(merged)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	items := make([]dto.HistoryItemResponse, 0, end-start)
	for _, rec := range merged[start:end] {
		items = append(items, dto.ToHistoryItemResponse(rec))
	}

	return &dto.ListHistoryResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// ownedActiveAccount fetches an account and enforces that it belongs to the
// user and can transact.
func (s *transactionServiceImpl) ownedActiveAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != userID {
		return nil, apperrors.NewForbiddenError("account " + accountID + " does not belong to the requesting user")
	}
	if account.Status != domain.AccountActive {
		return nil, apperrors.NewValidationError("account " + accountID + " is not active")
	}
	return account, nil
}
