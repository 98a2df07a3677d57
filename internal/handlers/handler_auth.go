package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/dto"
	"github.com/nanduks/driver_logistics_app/internal/middleware"
)

// authTokenHeader carries the session token out-of-band so mobile clients can
// store it without parsing the body.
const authTokenHeader = "X-Auth-Token"

// authHandler handles account registration and session lifecycle requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes. Login and
// register share an in-memory IP rate limit of 5 requests per minute.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", limitMiddleware, h.register)
		auth.POST("/login", limitMiddleware, h.login)
	}
}

// registerSessionRoutes sets up the bearer-protected session routes.
func registerSessionRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	auth := rg.Group("/auth")
	{
		auth.POST("/change-password", h.changePassword)
		auth.POST("/logout", h.logout)
	}
}

// register godoc
// @Summary Register a new driver account
// @Description Creates a local account with email and password and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.Header(authTokenHeader, token)
	c.JSON(http.StatusCreated, dto.AuthResponse{Message: "User registered successfully", Token: token})
}

// login godoc
// @Summary Log in with email and password
// @Description Authenticates local credentials and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid email or password"
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.Header(authTokenHeader, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Message: "Login successful", Token: token})
}

// changePassword godoc
// @Summary Change the bearer's password
// @Description Replaces the authenticated user's password.
// @Tags auth
// @Accept json
// @Produce json
// @Param change body dto.ChangePasswordRequest true "New password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *authHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req.NewPassword); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Password changed", slog.String("user_id", userID))
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// logout godoc
// @Summary Log out
// @Description Removes all of the user's session-log rows and marks them offline. Idempotent.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LogoutResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	removed, err := h.authService.Logout(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("User logged out", slog.String("user_id", userID), slog.Int64("sessions_removed", removed))
	c.JSON(http.StatusOK, dto.LogoutResponse{Removed: removed})
}
