package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"github.com/nanduks/driver_logistics_app/internal/apperrors"
	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	"github.com/nanduks/driver_logistics_app/internal/platform/config"
)

func newTestGoogleService(clientID string, validate func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)) *googleAuthService {
	cfg := &config.Config{GoogleClientID: clientID}
	svc := NewGoogleAuthService(cfg).(*googleAuthService)
	if validate != nil {
		svc.validate = validate
	}
	return svc
}

func TestVerifyIDToken_Success(t *testing.T) {
	var gotAudience string
	svc := newTestGoogleService("client-id-1", func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		return &idtoken.Payload{
			Subject: "google-sub-1",
			Claims: map[string]any{
				"email":   "driver@example.com",
				"name":    "Driver One",
				"picture": "https://img.example.com/p.jpg",
			},
		}, nil
	})

	info, err := svc.VerifyIDToken(context.Background(), "some-id-token")

	require.NoError(t, err)
	assert.Equal(t, "client-id-1", gotAudience, "audience must be the configured client ID")
	assert.Equal(t, "google-sub-1", info.GoogleID)
	assert.Equal(t, "driver@example.com", info.Email)
	assert.Equal(t, "Driver One", info.Name)
	assert.Equal(t, "https://img.example.com/p.jpg", info.PictureURL)
}

func TestVerifyIDToken_ValidationFailure(t *testing.T) {
	svc := newTestGoogleService("client-id-1", func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: audience provided does not match aud claim")
	})

	info, err := svc.VerifyIDToken(context.Background(), "token-for-another-app")

	require.Error(t, err)
	assert.Nil(t, info)
	assert.ErrorIs(t, err, apperrors.ErrExternalTokenInvalid)
}

func TestVerifyIDToken_MissingEssentialClaims(t *testing.T) {
	svc := newTestGoogleService("client-id-1", func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "sub", Claims: map[string]any{}}, nil
	})

	_, err := svc.VerifyIDToken(context.Background(), "token-without-email")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrExternalTokenInvalid)
}

func TestVerifyIDToken_UnconfiguredClientID(t *testing.T) {
	svc := newTestGoogleService("", nil)

	_, err := svc.VerifyIDToken(context.Background(), "any-token")

	require.Error(t, err)
}

func TestTokenService_RoundTrip(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:         "round-trip-secret",
		JWTExpiryDuration: 168 * time.Hour,
		JWTIssuer:         "dla-backend",
	}
	svc := NewTokenService(cfg)
	user := &domain.User{UserID: uuid.NewString(), Email: "driver@example.com"}

	token, expiry, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), expiry, time.Minute)

	claims, err := svc.ValidateAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuing := NewTokenService(&config.Config{JWTSecret: "secret-a", JWTExpiryDuration: time.Hour})
	verifying := NewTokenService(&config.Config{JWTSecret: "secret-b", JWTExpiryDuration: time.Hour})
	user := &domain.User{UserID: uuid.NewString(), Email: "driver@example.com"}

	token, _, err := issuing.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)

	_, err = verifying.ValidateAccessToken(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
