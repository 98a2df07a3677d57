package services

import (
	"context"
	"time"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/platform/config"
	"github.com/nanduks/driver_logistics_app/internal/utils"
)

// tokenService implements TokenSvcFacade. Tokens are stateless: verification
// is signature plus expiry only, there is no revocation list.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new signed session token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, user.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// ValidateAccessToken verifies a session token and returns its claims.
func (s *tokenService) ValidateAccessToken(ctx context.Context, tokenString string) (*portssvc.TokenClaims, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret, s.cfg.JWTIssuer)
	if err != nil {
		return nil, err
	}
	return &portssvc.TokenClaims{UserID: claims.Subject, Email: claims.Email}, nil
}
