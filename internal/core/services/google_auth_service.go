package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/nanduks/driver_logistics_app/internal/apperrors"
	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/platform/config"
	"github.com/nanduks/driver_logistics_app/internal/utils"
)

// googleAuthService implements GoogleAuthSvcFacade.
type googleAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
	// validator is swappable so tests can avoid Google's JWKS endpoint.
	validate func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// NewGoogleAuthService creates a new instance of googleAuthService.
func NewGoogleAuthService(cfg *config.Config) portssvc.GoogleAuthSvcFacade {
	return &googleAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
}

var _ portssvc.GoogleAuthSvcFacade = (*googleAuthService)(nil)

// VerifyIDToken validates a Google ID token's signature, expiry and audience.
// The audience check against the configured client ID is security-critical:
// a token minted for another application must never authenticate here.
func (s *googleAuthService) VerifyIDToken(ctx context.Context, idTokenString string) (*domain.GoogleUserInfo, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := s.validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExternalTokenInvalid, err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	if email == "" || payload.Subject == "" {
		return nil, fmt.Errorf("%w: essential claims missing", apperrors.ErrExternalTokenInvalid)
	}

	return &domain.GoogleUserInfo{
		GoogleID:   payload.Subject,
		Email:      email,
		Name:       name,
		PictureURL: picture,
	}, nil
}

// ExchangeCodeForIDToken exchanges an OAuth authorization code for the ID
// token embedded in Google's token response.
func (s *googleAuthService) ExchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	idTokenString, ok := token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		return "", fmt.Errorf("%w: id_token missing from token response", apperrors.ErrExternalTokenInvalid)
	}
	return idTokenString, nil
}

// GenerateStateString creates a secure random string used as a CSRF token for
// the redirect flow.
func (s *googleAuthService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
func (s *googleAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}
