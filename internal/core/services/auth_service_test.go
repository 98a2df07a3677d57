package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nanduks/driver_logistics_app/internal/apperrors"
	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/core/services"
	"github.com/nanduks/driver_logistics_app/internal/dto"
	"github.com/nanduks/driver_logistics_app/internal/platform/config"
	"github.com/nanduks/driver_logistics_app/internal/utils"
)

// Reduced hashing cost so the suite stays fast; production floors are enforced
// at config load, not here.
var testConfig = &config.Config{
	JWTSecret:         "test-secret",
	JWTExpiryDuration: 168 * time.Hour,
	JWTIssuer:         "dla-backend",
	ArgonMemoryKiB:    16 * 1024,
	ArgonTime:         1,
	ArgonParallelism:  1,
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn      func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn   func(ctx context.Context, email string) (*domain.User, error)
	CreateUserWithLogFn func(ctx context.Context, user domain.User, log domain.SessionLog) error
	UpdateUserFn        func(ctx context.Context, user domain.User) error
	UpdatePasswordFn    func(ctx context.Context, userID string, passwordHash string) error
	SetOnlineFn         func(ctx context.Context, userID string, online bool) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CreateUserWithLog(ctx context.Context, user domain.User, log domain.SessionLog) error {
	if m.CreateUserWithLogFn != nil {
		return m.CreateUserWithLogFn(ctx, user, log)
	}
	args := m.Called(ctx, user, log)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, userID, passwordHash)
	}
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) SetOnline(ctx context.Context, userID string, online bool) error {
	if m.SetOnlineFn != nil {
		return m.SetOnlineFn(ctx, userID, online)
	}
	args := m.Called(ctx, userID, online)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateDriverAssignmentInTx(ctx context.Context, tx pgx.Tx, driverID string, currentOrderID *string, availability domain.Availability, completedDelta int) error {
	args := m.Called(ctx, tx, driverID, currentOrderID, availability, completedDelta)
	return args.Error(0)
}

// --- Mock SessionLogRepository ---
type MockSessionLogRepository struct {
	mock.Mock
	DeleteLogsForUserFn func(ctx context.Context, userID string) (int64, error)
}


func (m *MockSessionLogRepository) UpsertLogForUser(ctx context.Context, userID string, activity string, fcmToken *string) error {
	args := m.Called(ctx, userID, activity, fcmToken)
	return args.Error(0)
}

func (m *MockSessionLogRepository) DeleteLogsForUser(ctx context.Context, userID string) (int64, error) {
	if m.DeleteLogsForUserFn != nil {
		return m.DeleteLogsForUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateAccessToken(ctx context.Context, tokenString string) (*portssvc.TokenClaims, error) {
	args := m.Called(ctx, tokenString)
	var claims *portssvc.TokenClaims
	if args.Get(0) != nil {
		claims = args.Get(0).(*portssvc.TokenClaims)
	}
	return claims, args.Error(1)
}

// --- Mock GoogleAuthService ---
type MockGoogleAuthService struct {
	mock.Mock
}

func (m *MockGoogleAuthService) VerifyIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, idToken)
	var info *domain.GoogleUserInfo
	if args.Get(0) != nil {
		info = args.Get(0).(*domain.GoogleUserInfo)
	}
	return info, args.Error(1)
}

func (m *MockGoogleAuthService) ExchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockSessionRepo *MockSessionLogRepository
	mockTokenSvc    *MockTokenService
	mockGoogleSvc   *MockGoogleAuthService
	service         portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockSessionRepo = new(MockSessionLogRepository)
	suite.mockTokenSvc = new(MockTokenService)
	suite.mockGoogleSvc = new(MockGoogleAuthService)
	suite.service = services.NewAuthService(testConfig, suite.mockUserRepo, suite.mockSessionRepo, suite.mockTokenSvc, suite.mockGoogleSvc)
}

// --- Register Tests ---

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "Driver@Example.com", Username: "driver one", Password: "secret123"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "driver@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("CreateUserWithLog", ctx,
		mock.MatchedBy(func(user domain.User) bool {
			return user.Email == "driver@example.com" &&
				user.Role == domain.RoleDriver &&
				user.State == "NA" &&
				user.PasswordHash != nil && *user.PasswordHash != req.Password
		}),
		mock.MatchedBy(func(log domain.SessionLog) bool {
			return log.Activity == domain.ActivityRegistered && log.UserID != ""
		}),
	).Return(nil).Once()
	suite.mockTokenSvc.On("GenerateAccessToken", ctx, mock.AnythingOfType("*domain.User")).Return("tok-123", time.Now().Add(168*time.Hour), nil).Once()

	user, token, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("tok-123", token)
	suite.Equal("driver@example.com", user.Email)
	suite.NotEmpty(user.UserID)
	suite.Require().NotNil(user.PasswordHash)
	ok, hashErr := utils.CheckPasswordHash(req.Password, *user.PasswordHash)
	suite.Require().NoError(hashErr)
	suite.True(ok)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockTokenSvc.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_EmailAlreadyExists() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Email: "taken@example.com"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "taken@example.com").Return(existing, nil).Once()

	user, token, err := suite.service.Register(ctx, dto.RegisterRequest{Email: "taken@example.com", Username: "x", Password: "secret123"})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_LosesCreationRace() {
	// The pre-check misses a concurrent insert; the store's uniqueness
	// constraint is the arbiter and the result is still a duplicate error.
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "race@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("CreateUserWithLog", ctx, mock.AnythingOfType("domain.User"), mock.AnythingOfType("domain.SessionLog")).
		Return(apperrors.ErrDuplicate).Once()

	user, token, err := suite.service.Register(ctx, dto.RegisterRequest{Email: "race@example.com", Username: "x", Password: "secret123"})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Login Tests ---

func (suite *AuthServiceTestSuite) localUser(email, password string) *domain.User {
	hash, err := utils.HashPassword(password, utils.Argon2Params{MemoryKiB: 16 * 1024, Time: 1, Parallelism: 1})
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: &hash,
		Role:         domain.RoleDriver,
		Status:       domain.StatusActive,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	user := suite.localUser("driver@example.com", "secret123")
	fcm := "fcm-token-1"

	suite.mockUserRepo.On("FindUserByEmail", ctx, "driver@example.com").Return(user, nil).Once()
	suite.mockTokenSvc.On("GenerateAccessToken", ctx, user).Return("tok-456", time.Now().Add(time.Hour), nil).Once()
	suite.mockUserRepo.On("SetOnline", ctx, user.UserID, true).Return(nil).Once()
	suite.mockSessionRepo.On("UpsertLogForUser", ctx, user.UserID, domain.ActivityLogin, &fcm).Return(nil).Once()

	got, token, err := suite.service.Login(ctx, dto.LoginRequest{Email: "driver@example.com", Password: "secret123", FCMToken: &fcm})

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.Equal("tok-456", token)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmailAndWrongPasswordCollapse() {
	ctx := context.Background()
	user := suite.localUser("known@example.com", "rightpass")

	suite.mockUserRepo.On("FindUserByEmail", ctx, "unknown@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "known@example.com").Return(user, nil).Once()

	_, _, errUnknown := suite.service.Login(ctx, dto.LoginRequest{Email: "unknown@example.com", Password: "whatever"})
	_, _, errWrongPass := suite.service.Login(ctx, dto.LoginRequest{Email: "known@example.com", Password: "wrongpass"})

	suite.Require().Error(errUnknown)
	suite.Require().Error(errWrongPass)
	suite.ErrorIs(errUnknown, apperrors.ErrInvalidCredentials)
	suite.ErrorIs(errWrongPass, apperrors.ErrInvalidCredentials)
	// Indistinguishable: same error value for both failure modes.
	suite.Equal(errUnknown, errWrongPass)
}

func (suite *AuthServiceTestSuite) TestLogin_GoogleOnlyAccount() {
	ctx := context.Background()
	googleID := "google-sub-1"
	user := &domain.User{UserID: uuid.NewString(), Email: "g@example.com", GoogleID: &googleID}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "g@example.com").Return(user, nil).Once()

	_, _, err := suite.service.Login(ctx, dto.LoginRequest{Email: "g@example.com", Password: "anything"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// --- GoogleLogin Tests ---

func (suite *AuthServiceTestSuite) TestGoogleLogin_CreatesUser() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{GoogleID: "sub-1", Email: "New@Example.com", Name: "New Driver", PictureURL: "https://img"}

	suite.mockGoogleSvc.On("VerifyIDToken", ctx, "id-token").Return(info, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("CreateUserWithLog", ctx,
		mock.MatchedBy(func(user domain.User) bool {
			return user.Email == "new@example.com" &&
				user.Role == domain.RoleDriver &&
				user.GoogleID != nil && *user.GoogleID == "sub-1" &&
				user.PasswordHash == nil &&
				user.State == "Kerala"
		}),
		mock.AnythingOfType("domain.SessionLog"),
	).Return(nil).Once()
	suite.mockTokenSvc.On("GenerateAccessToken", ctx, mock.AnythingOfType("*domain.User")).Return("tok-g", time.Now().Add(time.Hour), nil).Once()

	user, token, created, err := suite.service.GoogleLogin(ctx, dto.GoogleLoginRequest{IDToken: "id-token", State: "Kerala"})

	suite.Require().NoError(err)
	suite.True(created)
	suite.Equal("tok-g", token)
	suite.Equal("New Driver", user.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockGoogleSvc.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestGoogleLogin_PatchesExistingWithoutTouchingRole() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{GoogleID: "sub-2", Email: "admin@example.com", Name: "Someone Else"}
	existing := &domain.User{
		UserID:   uuid.NewString(),
		Email:    "admin@example.com",
		Name:     "The Admin",
		Role:     domain.RoleAdmin,
		State:    "Karnataka",
		District: "Bengaluru",
	}

	suite.mockGoogleSvc.On("VerifyIDToken", ctx, "id-token").Return(info, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "admin@example.com").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		// Role survives, absent fields keep stored values, identity link lands.
		return user.Role == domain.RoleAdmin &&
			user.State == "Karnataka" &&
			user.District == "Bengaluru" &&
			user.GoogleID != nil && *user.GoogleID == "sub-2"
	})).Return(nil).Once()
	suite.mockTokenSvc.On("GenerateAccessToken", ctx, mock.AnythingOfType("*domain.User")).Return("tok-p", time.Now().Add(time.Hour), nil).Once()

	user, token, created, err := suite.service.GoogleLogin(ctx, dto.GoogleLoginRequest{IDToken: "id-token"})

	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal("tok-p", token)
	suite.Equal(domain.RoleAdmin, user.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestGoogleLogin_AppliesCallerFieldsToExisting() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{GoogleID: "sub-3", Email: "d@example.com"}
	existing := &domain.User{UserID: uuid.NewString(), Email: "d@example.com", Role: domain.RoleDriver, State: "NA", District: "NA"}

	suite.mockGoogleSvc.On("VerifyIDToken", ctx, "id-token").Return(info, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "d@example.com").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.State == "Kerala" && user.District == "Kochi" && user.Age == 31
	})).Return(nil).Once()
	suite.mockTokenSvc.On("GenerateAccessToken", ctx, mock.AnythingOfType("*domain.User")).Return("tok", time.Now().Add(time.Hour), nil).Once()

	_, _, created, err := suite.service.GoogleLogin(ctx, dto.GoogleLoginRequest{IDToken: "id-token", State: "Kerala", District: "Kochi", Age: 31})

	suite.Require().NoError(err)
	suite.False(created)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestGoogleLogin_RecordsPushTokenForExistingUser() {
	ctx := context.Background()
	fcm := "device-push-token"
	info := &domain.GoogleUserInfo{GoogleID: "sub-4", Email: "e@example.com"}
	existing := &domain.User{UserID: uuid.NewString(), Email: "e@example.com", Role: domain.RoleDriver, State: "NA", District: "NA"}

	suite.mockGoogleSvc.On("VerifyIDToken", ctx, "id-token").Return(info, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "e@example.com").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.FCMToken != nil && *user.FCMToken == fcm
	})).Return(nil).Once()
	suite.mockTokenSvc.On("GenerateAccessToken", ctx, mock.AnythingOfType("*domain.User")).Return("tok", time.Now().Add(time.Hour), nil).Once()
	suite.mockSessionRepo.On("UpsertLogForUser", ctx, existing.UserID, domain.ActivityLogin, &fcm).Return(nil).Once()

	_, _, created, err := suite.service.GoogleLogin(ctx, dto.GoogleLoginRequest{IDToken: "id-token", FCMToken: &fcm})

	suite.Require().NoError(err)
	suite.False(created)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestGoogleLogin_InvalidToken() {
	ctx := context.Background()

	suite.mockGoogleSvc.On("VerifyIDToken", ctx, "bad-token").Return(nil, apperrors.ErrExternalTokenInvalid).Once()

	user, token, created, err := suite.service.GoogleLogin(ctx, dto.GoogleLoginRequest{IDToken: "bad-token"})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.Empty(token)
	suite.False(created)
	suite.ErrorIs(err, apperrors.ErrExternalTokenInvalid)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail")
}

// --- ChangePassword Tests ---

func (suite *AuthServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockUserRepo.On("UpdatePassword", ctx, userID, mock.MatchedBy(func(hash string) bool {
		ok, err := utils.CheckPasswordHash("newsecret", hash)
		return err == nil && ok
	})).Return(nil).Once()

	err := suite.service.ChangePassword(ctx, userID, "newsecret")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestChangePassword_UserNotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ChangePassword(ctx, userID, "newsecret")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword")
}

// --- Logout Tests ---

func (suite *AuthServiceTestSuite) TestLogout_ReportsRemovedCountAndIsIdempotent() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockSessionRepo.On("DeleteLogsForUser", ctx, userID).Return(int64(2), nil).Once()
	suite.mockSessionRepo.On("DeleteLogsForUser", ctx, userID).Return(int64(0), nil).Once()
	suite.mockUserRepo.On("SetOnline", ctx, userID, false).Return(nil).Twice()

	removed, err := suite.service.Logout(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), removed)

	removed, err = suite.service.Logout(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), removed)

	suite.mockSessionRepo.AssertExpectations(suite.T())
}

// --- Local strategy tests ---

func (suite *AuthServiceTestSuite) TestLocalStrategy_VerifiesCredentials() {
	ctx := context.Background()
	user := suite.localUser("driver@example.com", "secret123")
	strategy := services.NewLocalStrategy(suite.mockUserRepo)

	suite.mockUserRepo.On("FindUserByEmail", ctx, "driver@example.com").Return(user, nil).Once()

	got, err := strategy.Authenticate(ctx, portssvc.Credentials{Email: "Driver@Example.com ", Password: "secret123"})

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.Equal("local", strategy.Name())
}

func (suite *AuthServiceTestSuite) TestLocalStrategy_CollapsesFailures() {
	ctx := context.Background()
	user := suite.localUser("driver@example.com", "secret123")
	strategy := services.NewLocalStrategy(suite.mockUserRepo)

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "driver@example.com").Return(user, nil).Once()

	_, errUnknown := strategy.Authenticate(ctx, portssvc.Credentials{Email: "nobody@example.com", Password: "secret123"})
	_, errWrongPass := strategy.Authenticate(ctx, portssvc.Credentials{Email: "driver@example.com", Password: "wrong"})

	suite.Require().Error(errUnknown)
	suite.Require().Error(errWrongPass)
	suite.ErrorIs(errUnknown, apperrors.ErrInvalidCredentials)
	suite.Equal(errUnknown, errWrongPass)
}

// --- Bearer strategy tests ---

func (suite *AuthServiceTestSuite) TestBearerStrategy_ResolvesUser() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Email: "d@example.com"}
	strategy := services.NewBearerStrategy(suite.mockTokenSvc, suite.mockUserRepo)

	suite.mockTokenSvc.On("ValidateAccessToken", ctx, "tok").Return(&portssvc.TokenClaims{UserID: userID, Email: "d@example.com"}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	got, err := strategy.Authenticate(ctx, portssvc.Credentials{BearerToken: "tok"})

	suite.Require().NoError(err)
	suite.Equal(userID, got.UserID)
	suite.Equal("bearer", strategy.Name())
}

func (suite *AuthServiceTestSuite) TestBearerStrategy_ExpiredToken() {
	ctx := context.Background()
	strategy := services.NewBearerStrategy(suite.mockTokenSvc, suite.mockUserRepo)

	suite.mockTokenSvc.On("ValidateAccessToken", ctx, "old").Return(nil, apperrors.ErrTokenExpired).Once()

	_, err := strategy.Authenticate(ctx, portssvc.Credentials{BearerToken: "old"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTokenExpired)
}

func (suite *AuthServiceTestSuite) TestBearerStrategy_DeletedUser() {
	ctx := context.Background()
	userID := uuid.NewString()
	strategy := services.NewBearerStrategy(suite.mockTokenSvc, suite.mockUserRepo)

	suite.mockTokenSvc.On("ValidateAccessToken", ctx, "tok").Return(&portssvc.TokenClaims{UserID: userID}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := strategy.Authenticate(ctx, portssvc.Credentials{BearerToken: "tok"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTokenInvalid)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
