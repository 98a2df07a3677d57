package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nanduks/driver_logistics_app/internal/apperrors"
	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	portsrepo "github.com/nanduks/driver_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/dto"
	"github.com/nanduks/driver_logistics_app/internal/middleware"
	"github.com/nanduks/driver_logistics_app/internal/platform/config"
	"github.com/nanduks/driver_logistics_app/internal/utils"
)

// Profile placeholders for accounts created without caller-supplied values,
// matching what the mobile client expects.
const placeholderRegion = "NA"

// authService sequences the hasher, token issuer, Google verifier and store
// into the account flows. No cross-request state lives here; uniqueness
// constraints in the store are the sole defence against creation races.
type authService struct {
	userRepo    portsrepo.UserRepositoryFacade
	sessionRepo portsrepo.SessionLogRepository
	tokenSvc    portssvc.TokenSvcFacade
	googleSvc   portssvc.GoogleAuthSvcFacade
	local       portssvc.AuthStrategy
	hashParams  utils.Argon2Params
}

// NewAuthService creates a new instance of authService.
func NewAuthService(
	cfg *config.Config,
	userRepo portsrepo.UserRepositoryFacade,
	sessionRepo portsrepo.SessionLogRepository,
	tokenSvc portssvc.TokenSvcFacade,
	googleSvc portssvc.GoogleAuthSvcFacade,
) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokenSvc:    tokenSvc,
		googleSvc:   googleSvc,
		local:       NewLocalStrategy(userRepo),
		hashParams: utils.Argon2Params{
			MemoryKiB:   cfg.ArgonMemoryKiB,
			Time:        cfg.ArgonTime,
			Parallelism: cfg.ArgonParallelism,
		},
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates the user and their first session-log row in a single
// transaction, then issues a token. A duplicate email loses the race at the
// store's uniqueness constraint and surfaces as ErrDuplicate, never a crash.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Username == "" || req.Password == "" {
		return nil, "", apperrors.NewBadRequestError("email, username and password are required")
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, "", apperrors.NewConflictError("email already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check email existence", slog.String("error", err.Error()))
		return nil, "", apperrors.NewInternalServerError("failed to register user")
	}

	hash, err := utils.HashPassword(req.Password, s.hashParams)
	if err != nil {
		logger.Error("Password hashing failed", slog.String("error", err.Error()))
		return nil, "", apperrors.NewInternalServerError("failed to register user")
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Username,
		Email:        email,
		PasswordHash: &hash,
		Role:         domain.RoleDriver,
		Status:       domain.StatusActive,
		State:        placeholderRegion,
		District:     placeholderRegion,
		Availability: domain.AvailabilityAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	log := domain.SessionLog{
		LogID:     uuid.NewString(),
		UserID:    user.UserID,
		Activity:  domain.ActivityRegistered,
		FCMToken:  req.FCMToken,
		Timestamp: now,
	}

	if err := s.userRepo.CreateUserWithLog(ctx, user, log); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a concurrent registration race for the same email.
			return nil, "", apperrors.NewConflictError("email already exists")
		}
		logger.Error("Failed to create user", slog.String("error", err.Error()))
		return nil, "", apperrors.NewInternalServerError("failed to register user")
	}

	token, _, err := s.tokenSvc.GenerateAccessToken(ctx, &user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, "", apperrors.NewInternalServerError("failed to generate token")
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &user, token, nil
}

// Login authenticates local credentials through the local strategy and
// attaches the session side effects: token issuance, the online flag and the
// push-token log row.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.local.Authenticate(ctx, portssvc.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, "", err
	}

	token, _, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, "", apperrors.NewInternalServerError("failed to generate token")
	}

	if err := s.userRepo.SetOnline(ctx, user.UserID, true); err != nil {
		logger.Warn("Failed to mark user online", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
	}

	if req.FCMToken != nil && *req.FCMToken != "" {
		if err := s.sessionRepo.UpsertLogForUser(ctx, user.UserID, domain.ActivityLogin, req.FCMToken); err != nil {
			logger.Warn("Failed to upsert session log", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		}
	}

	return user, token, nil
}

// GoogleLogin verifies the external token, then creates the account or
// merge-patches the existing one. Role is never modified through this path.
func (s *authService) GoogleLogin(ctx context.Context, req dto.GoogleLoginRequest) (*domain.User, string, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	info, err := s.googleSvc.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		return nil, "", false, err
	}

	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(info.Email))
	switch {
	case err == nil:
		user = s.patchGoogleUser(user, info, req)
		if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
			logger.Error("Failed to update user from Google sign-in", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
			return nil, "", false, apperrors.NewInternalServerError("failed to sign in")
		}

		token, _, err := s.tokenSvc.GenerateAccessToken(ctx, user)
		if err != nil {
			return nil, "", false, apperrors.NewInternalServerError("failed to generate token")
		}

		if req.FCMToken != nil && *req.FCMToken != "" {
			if err := s.sessionRepo.UpsertLogForUser(ctx, user.UserID, domain.ActivityLogin, req.FCMToken); err != nil {
				logger.Warn("Failed to upsert session log", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
			}
		}
		return user, token, false, nil

	case errors.Is(err, apperrors.ErrNotFound):
		created := s.newGoogleUser(info, req)
		log := domain.SessionLog{
			LogID:     uuid.NewString(),
			UserID:    created.UserID,
			Activity:  domain.ActivityRegistered,
			FCMToken:  req.FCMToken,
			Timestamp: created.CreatedAt,
		}
		if err := s.userRepo.CreateUserWithLog(ctx, created, log); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return nil, "", false, apperrors.NewConflictError("account already exists")
			}
			logger.Error("Failed to create user from Google sign-in", slog.String("error", err.Error()))
			return nil, "", false, apperrors.NewInternalServerError("failed to sign in")
		}

		token, _, err := s.tokenSvc.GenerateAccessToken(ctx, &created)
		if err != nil {
			return nil, "", false, apperrors.NewInternalServerError("failed to generate token")
		}
		logger.Info("User created via Google sign-in", slog.String("user_id", created.UserID))
		return &created, token, true, nil

	default:
		logger.Error("Failed to look up user for Google sign-in", slog.String("error", err.Error()))
		return nil, "", false, apperrors.NewInternalServerError("failed to sign in")
	}
}

// newGoogleUser seeds a fresh account from verified claims plus caller
// defaults, with neutral placeholders for whatever the caller omitted.
func (s *authService) newGoogleUser(info *domain.GoogleUserInfo, req dto.GoogleLoginRequest) domain.User {
	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		GoogleID:     &info.GoogleID,
		Name:         info.Name,
		Email:        strings.ToLower(info.Email),
		Role:         domain.RoleDriver,
		Status:       domain.StatusActive,
		State:        placeholderRegion,
		District:     placeholderRegion,
		Availability: domain.AvailabilityAvailable,
		Age:          req.Age,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if info.PictureURL != "" {
		user.ProfileImageURL = &info.PictureURL
	}
	if req.State != "" {
		user.State = req.State
	}
	if req.District != "" {
		user.District = req.District
	}
	if req.FCMToken != nil && *req.FCMToken != "" {
		user.FCMToken = req.FCMToken
	}
	return user
}

// patchGoogleUser applies merge-patch semantics to an existing account: the
// Google identity link and picture refresh, caller-supplied non-empty fields
// apply, absent input never clobbers stored values. Role is left untouched.
func (s *authService) patchGoogleUser(user *domain.User, info *domain.GoogleUserInfo, req dto.GoogleLoginRequest) *domain.User {
	user.GoogleID = &info.GoogleID
	if info.PictureURL != "" {
		user.ProfileImageURL = &info.PictureURL
	}
	if req.Age > 0 {
		user.Age = req.Age
	}
	if req.State != "" {
		user.State = req.State
	}
	if req.District != "" {
		user.District = req.District
	}
	if req.Latitude != 0 {
		user.Latitude = req.Latitude
	}
	if req.Longitude != 0 {
		user.Longitude = req.Longitude
	}
	if req.FCMToken != nil && *req.FCMToken != "" {
		user.FCMToken = req.FCMToken
	}
	user.UpdatedAt = time.Now()
	return user
}

// ChangePassword hashes and persists the replacement password. The token was
// already verified by the middleware; an account deleted since then surfaces
// as ErrNotFound.
func (s *authService) ChangePassword(ctx context.Context, userID string, newPassword string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if newPassword == "" {
		return apperrors.NewBadRequestError("new password is required")
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("user not found")
		}
		logger.Error("Failed to look up user for password change", slog.String("error", err.Error()))
		return apperrors.NewInternalServerError("failed to change password")
	}

	hash, err := utils.HashPassword(newPassword, s.hashParams)
	if err != nil {
		logger.Error("Password hashing failed", slog.String("error", err.Error()), slog.String("user_id", userID))
		return apperrors.NewInternalServerError("failed to change password")
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("user not found")
		}
		logger.Error("Failed to persist new password", slog.String("error", err.Error()), slog.String("user_id", userID))
		return apperrors.NewInternalServerError("failed to change password")
	}
	return nil
}

// Logout removes every session-log row for the user. Calling it again is a
// success that reports zero removals.
func (s *authService) Logout(ctx context.Context, userID string) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	removed, err := s.sessionRepo.DeleteLogsForUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to delete session logs", slog.String("error", err.Error()), slog.String("user_id", userID))
		return 0, apperrors.NewInternalServerError("failed to log out")
	}

	if err := s.userRepo.SetOnline(ctx, userID, false); err != nil {
		logger.Warn("Failed to mark user offline", slog.String("error", err.Error()), slog.String("user_id", userID))
	}
	return removed, nil
}

// localStrategy authenticates an email/password pair against the user store.
// Unknown email, missing local password and wrong password all resolve to the
// same ErrInvalidCredentials so callers cannot enumerate accounts.
type localStrategy struct {
	userRepo portsrepo.UserReader
}

// NewLocalStrategy returns the local-credential verification strategy.
func NewLocalStrategy(userRepo portsrepo.UserReader) portssvc.AuthStrategy {
	return &localStrategy{userRepo: userRepo}
}

func (s *localStrategy) Name() string { return "local" }

func (s *localStrategy) Authenticate(ctx context.Context, creds portssvc.Credentials) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	email := strings.ToLower(strings.TrimSpace(creds.Email))
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return nil, apperrors.NewInternalServerError("failed to log in")
	}

	if !user.HasPassword() {
		// Google-only account; no local credential to match.
		return nil, apperrors.ErrInvalidCredentials
	}

	ok, err := utils.CheckPasswordHash(creds.Password, *user.PasswordHash)
	if err != nil {
		logger.Error("Stored password digest unreadable", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, apperrors.NewInternalServerError("failed to log in")
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// bearerStrategy authenticates a session token and resolves it to the user.
type bearerStrategy struct {
	tokenSvc portssvc.TokenSvcFacade
	userRepo portsrepo.UserReader
}

// NewBearerStrategy returns the bearer-token verification strategy.
func NewBearerStrategy(tokenSvc portssvc.TokenSvcFacade, userRepo portsrepo.UserReader) portssvc.AuthStrategy {
	return &bearerStrategy{tokenSvc: tokenSvc, userRepo: userRepo}
}

func (s *bearerStrategy) Name() string { return "bearer" }

func (s *bearerStrategy) Authenticate(ctx context.Context, creds portssvc.Credentials) (*domain.User, error) {
	claims, err := s.tokenSvc.ValidateAccessToken(ctx, creds.BearerToken)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("resolving token subject: %w", err)
	}
	return user, nil
}
