package services

import (
	"context"
	"time"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	"github.com/nanduks/driver_logistics_app/internal/dto"
)

// TokenClaims is the decoded content of a session token.
type TokenClaims struct {
	UserID string
	Email  string
}

// TokenSvcFacade defines the interface for session-token management.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed token for the user along with its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAccessToken verifies signature and expiry and returns the claims.
	// Fails with apperrors.ErrTokenExpired or apperrors.ErrTokenInvalid.
	ValidateAccessToken(ctx context.Context, tokenString string) (*TokenClaims, error)
}

// GoogleAuthSvcFacade defines the interface for Google identity verification.
type GoogleAuthSvcFacade interface {
	// VerifyIDToken validates signature, expiry and audience of a Google ID
	// token. Any validation failure maps to apperrors.ErrExternalTokenInvalid.
	VerifyIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error)

	// ExchangeCodeForIDToken exchanges an OAuth authorization code for the ID
	// token embedded in Google's token response.
	ExchangeCodeForIDToken(ctx context.Context, code string) (string, error)

	// GenerateStateString creates a CSRF state token for the redirect flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
}

// AuthSvcFacade sequences hashing, token issuance and store mutations into
// the account flows.
type AuthSvcFacade interface {
	// Register creates a user plus their initial session-log row atomically
	// and returns the user with a fresh token.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error)

	// Login authenticates local credentials and returns the user with a fresh
	// token. Unknown email and wrong password return the same error.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)

	// GoogleLogin verifies a Google ID token and creates or patches the
	// account. The boolean reports whether the account was created.
	GoogleLogin(ctx context.Context, req dto.GoogleLoginRequest) (*domain.User, string, bool, error)

	// ChangePassword replaces the bearer's password hash transactionally.
	ChangePassword(ctx context.Context, userID string, newPassword string) error

	// Logout removes all session-log rows for the user and returns the count.
	// Idempotent; a second call reports zero removals.
	Logout(ctx context.Context, userID string) (int64, error)
}

// Credentials is the union of what the two fixed auth strategies consume.
type Credentials struct {
	Email       string
	Password    string
	BearerToken string
}

// AuthStrategy resolves one kind of client credential to a user. Exactly two
// implementations exist (local password, bearer token); the HTTP layer picks
// one by name, no dynamic registry.
type AuthStrategy interface {
	Name() string
	Authenticate(ctx context.Context, creds Credentials) (*domain.User, error)
}
