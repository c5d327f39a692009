package services

import (
	"context"
	"time"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	portssvc "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/services"
	"github.com/kyawswarhtun/currency_exchange_app/internal/utils"
)

// tokenServiceImpl implements the TokenSvcFacade interface
type tokenServiceImpl struct {
	BaseService
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewTokenServiceImpl creates a new token service
func NewTokenServiceImpl(jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.TokenSvcFacade {
	return &tokenServiceImpl{
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

// Ensure tokenServiceImpl implements the TokenSvcFacade interface
var _ portssvc.TokenSvcFacade = (*tokenServiceImpl)(nil)

func (s *tokenServiceImpl) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.jwtExpiry)
	token, err := utils.GenerateJWT(user.UserID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
