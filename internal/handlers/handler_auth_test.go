package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nanduks/driver_logistics_app/internal/apperrors"
	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/dto"
	"github.com/nanduks/driver_logistics_app/internal/handlers"
	"github.com/nanduks/driver_logistics_app/internal/platform/config"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.String(1), args.Error(2)
}

func (m *MockAuthService) GoogleLogin(ctx context.Context, req dto.GoogleLoginRequest) (*domain.User, string, bool, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.String(1), args.Bool(2), args.Error(3)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID string, newPassword string) error {
	args := m.Called(ctx, userID, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) Logout(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock GoogleAuthService ---
type MockGoogleService struct {
	mock.Mock
}

var _ portssvc.GoogleAuthSvcFacade = (*MockGoogleService)(nil)

func (m *MockGoogleService) VerifyIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, idToken)
	var info *domain.GoogleUserInfo
	if args.Get(0) != nil {
		info = args.Get(0).(*domain.GoogleUserInfo)
	}
	return info, args.Error(1)
}

func (m *MockGoogleService) ExchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleService) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}

// fakeBearerStrategy resolves any token to the fixed user, standing in for the
// real token verification behind the auth middleware.
type fakeBearerStrategy struct {
	user *domain.User
}

func (s *fakeBearerStrategy) Name() string { return "bearer" }

func (s *fakeBearerStrategy) Authenticate(_ context.Context, creds portssvc.Credentials) (*domain.User, error) {
	if creds.BearerToken == "" {
		return nil, apperrors.ErrTokenInvalid
	}
	return s.user, nil
}

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockAuthSvc   *MockAuthService
	mockGoogleSvc *MockGoogleService
	sessionUser   *domain.User
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockAuthSvc = new(MockAuthService)
	suite.mockGoogleSvc = new(MockGoogleService)
	suite.sessionUser = &domain.User{UserID: uuid.NewString(), Email: "driver@example.com", Role: domain.RoleDriver}

	cfg := &config.Config{IsProduction: true, Port: "8080"}
	services := &portssvc.ServiceContainer{
		Auth:       suite.mockAuthSvc,
		GoogleAuth: suite.mockGoogleSvc,
	}
	handlers.RegisterRoutes(suite.router, cfg, services, &fakeBearerStrategy{user: suite.sessionUser})
}

func (suite *AuthHandlerTestSuite) postJSON(url string, body any, bearer string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{Email: "new@example.com", Username: "newdriver", Password: "secret123"}
	user := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockAuthSvc.On("Register", mock.Anything, req).Return(user, "tok-123", nil).Once()

	w := suite.postJSON("/api/v1/auth/register", req, "")

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("tok-123", w.Header().Get("X-Auth-Token"))

	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("tok-123", resp.Token)
	suite.mockAuthSvc.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	req := dto.RegisterRequest{Email: "taken@example.com", Username: "x", Password: "secret123"}

	suite.mockAuthSvc.On("Register", mock.Anything, req).
		Return(nil, "", apperrors.NewConflictError("email already exists")).Once()

	w := suite.postJSON("/api/v1/auth/register", req, "")

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "email already exists")
}

func (suite *AuthHandlerTestSuite) TestRegister_InvalidBody() {
	w := suite.postJSON("/api/v1/auth/register", gin.H{"email": "not-an-email", "password": "x"}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAuthSvc.AssertNotCalled(suite.T(), "Register")
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	req := dto.LoginRequest{Email: "driver@example.com", Password: "secret123"}
	user := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockAuthSvc.On("Login", mock.Anything, req).Return(user, "tok-456", nil).Once()

	w := suite.postJSON("/api/v1/auth/login", req, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("tok-456", w.Header().Get("X-Auth-Token"))
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	req := dto.LoginRequest{Email: "driver@example.com", Password: "wrong"}

	suite.mockAuthSvc.On("Login", mock.Anything, req).
		Return(nil, "", apperrors.ErrInvalidCredentials).Once()

	w := suite.postJSON("/api/v1/auth/login", req, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid email or password")
}

func (suite *AuthHandlerTestSuite) TestGoogleLogin_NewAccountReturns201() {
	req := dto.GoogleLoginRequest{IDToken: "google-id-token"}
	user := &domain.User{UserID: uuid.NewString(), Email: "new@example.com"}

	suite.mockAuthSvc.On("GoogleLogin", mock.Anything, req).Return(user, "tok-g", true, nil).Once()

	w := suite.postJSON("/api/v1/auth/google", req, "")

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("tok-g", w.Header().Get("X-Auth-Token"))
}

func (suite *AuthHandlerTestSuite) TestGoogleLogin_ExistingAccountReturns200() {
	req := dto.GoogleLoginRequest{IDToken: "google-id-token"}
	user := &domain.User{UserID: uuid.NewString(), Email: "existing@example.com"}

	suite.mockAuthSvc.On("GoogleLogin", mock.Anything, req).Return(user, "tok-g", false, nil).Once()

	w := suite.postJSON("/api/v1/auth/google", req, "")

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AuthHandlerTestSuite) TestGoogleLogin_InvalidToken() {
	req := dto.GoogleLoginRequest{IDToken: "bad"}

	suite.mockAuthSvc.On("GoogleLogin", mock.Anything, req).
		Return(nil, "", false, apperrors.ErrExternalTokenInvalid).Once()

	w := suite.postJSON("/api/v1/auth/google", req, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogout_ReportsRemovedCount() {
	suite.mockAuthSvc.On("Logout", mock.Anything, suite.sessionUser.UserID).Return(int64(3), nil).Once()

	w := suite.postJSON("/api/v1/auth/logout", gin.H{}, "session-token")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LogoutResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(3), resp.Removed)
	suite.mockAuthSvc.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogout_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAuthSvc.AssertNotCalled(suite.T(), "Logout")
}

func (suite *AuthHandlerTestSuite) TestChangePassword_Success() {
	suite.mockAuthSvc.On("ChangePassword", mock.Anything, suite.sessionUser.UserID, "newsecret").Return(nil).Once()

	w := suite.postJSON("/api/v1/auth/change-password", dto.ChangePasswordRequest{NewPassword: "newsecret"}, "session-token")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAuthSvc.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestAssignOrder_DriverRoleRejectedAtTransport() {
	w := suite.postJSON("/api/v1/orders/assign", dto.AssignOrderRequest{}, "session-token")

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "Admin access required")
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
