package services

import (
	"context"
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

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountServiceImpl creates a new account service
func NewAccountServiceImpl(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountServiceImpl{accountRepo: repo}
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if !domain.IsSupportedCurrency(string(req.Currency)) {
		return nil, apperrors.NewValidationError("unsupported currency " + string(req.Currency))
	}

	balance := decimal.Zero
	if req.InitialBalance != nil {
		if req.InitialBalance.IsNegative() {
			return nil, apperrors.NewValidationError("initial balance cannot be negative")
		}
		balance = *req.InitialBalance
	}

	now := time.Now()
	account := domain.Account{
		AccountID: uuid.NewString(),
		UserID:    creatorUserID,
		Name:      req.Name,
		Currency:  req.Currency,
		Balance:   balance,
		Status:    domain.AccountActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("currency", string(account.Currency)))
	return &account, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, accountID string, requestingUserID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != requestingUserID {
		// Hide other users' accounts rather than confirming they exist.
		return nil, apperrors.NewNotFoundError("account " + accountID + " not found")
	}
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context, requestingUserID string, params dto.ListAccountsParams) ([]domain.Account, error) {
	if params.Currency != "" {
		if !domain.IsSupportedCurrency(params.Currency) {
			return nil, apperrors.NewValidationError("unsupported currency " + params.Currency)
		}
		return s.accountRepo.FindAccountsByUserAndCurrency(ctx, requestingUserID, domain.Currency(params.Currency))
	}
	return s.accountRepo.FindAccountsByUser(ctx, requestingUserID)
}

func (s *accountServiceImpl) GetTotalBalance(ctx context.Context, requestingUserID string, currency domain.Currency) (decimal.Decimal, error) {
	if !domain.IsSupportedCurrency(string(currency)) {
		return decimal.Zero, apperrors.NewValidationError("unsupported currency " + string(currency))
	}

	accounts, err := s.accountRepo.FindAccountsByUserAndCurrency(ctx, requestingUserID, currency)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for balance total",
			slog.String("currency", string(currency)))
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}
	return total, nil
}

func (s *accountServiceImpl) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID, requestingUserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Status != nil {
		account.Status = domain.AccountStatus(*req.Status)
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = requestingUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountServiceImpl) DeactivateAccount(ctx context.Context, accountID string, requestingUserID string) error {
	account, err := s.GetAccountByID(ctx, accountID, requestingUserID)
	if err != nil {
		return err
	}

	account.Status = domain.AccountDeleted
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = requestingUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account",
			slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}
