package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/dto"
	"github.com/nanduks/driver_logistics_app/internal/middleware"
)

// googleAuthHandler handles Google sign-in requests. The mobile client sends
// an ID token directly; the web client goes through the authorization-code
// exchange first.
type googleAuthHandler struct {
	authService   portssvc.AuthSvcFacade
	googleService portssvc.GoogleAuthSvcFacade
}

func newGoogleAuthHandler(as portssvc.AuthSvcFacade, gs portssvc.GoogleAuthSvcFacade) *googleAuthHandler {
	return &googleAuthHandler{authService: as, googleService: gs}
}

// registerGoogleAuthRoutes sets up the public Google sign-in routes.
func registerGoogleAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newGoogleAuthHandler(services.Auth, services.GoogleAuth)

	google := r.Group("/api/v1/auth/google")
	{
		google.POST("", h.googleLogin)
		google.POST("/exchange-code", h.exchangeCode)
		google.GET("/login-url", h.loginURL)
	}
}

// googleLogin godoc
// @Summary Sign in with a Google ID token
// @Description Verifies the ID token and creates or updates the account. Returns 201 when the account was created, 200 otherwise.
// @Tags oauth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID token plus optional profile defaults"
// @Success 200 {object} dto.AuthResponse
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "ID token failed verification"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [post]
func (h *googleAuthHandler) googleLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, token, created, err := h.authService.GoogleLogin(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	status := http.StatusOK
	message := "Login successful"
	if created {
		status = http.StatusCreated
		message = "User registered successfully"
	}

	logger.Info("Google sign-in completed",
		slog.String("user_id", user.UserID),
		slog.Bool("created", created))
	c.Header(authTokenHeader, token)
	c.JSON(status, dto.AuthResponse{Message: message, Token: token})
}

// exchangeCode godoc
// @Summary Exchange an authorization code for a session
// @Description Exchanges the Google OAuth authorization code for an ID token, then completes the normal Google sign-in.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *googleAuthHandler) exchangeCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	idToken, err := h.googleService.ExchangeCodeForIDToken(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	user, token, created, err := h.authService.GoogleLogin(c.Request.Context(), dto.GoogleLoginRequest{IDToken: idToken})
	if err != nil {
		respondError(c, logger, err)
		return
	}

	status := http.StatusOK
	message := "Login successful"
	if created {
		status = http.StatusCreated
		message = "User registered successfully"
	}

	logger.Info("Google code exchange completed",
		slog.String("user_id", user.UserID),
		slog.Bool("created", created))
	c.Header(authTokenHeader, token)
	c.JSON(status, dto.AuthResponse{Message: message, Token: token})
}

// loginURL godoc
// @Summary Get the Google login redirect URL
// @Description Returns the Google consent-screen URL with a fresh CSRF state token.
// @Tags oauth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login-url [get]
func (h *googleAuthHandler) loginURL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondError(c, logger, err)
		return
	}

	url := h.googleService.GetGoogleLoginURL(c.Request.Context(), state)
	c.JSON(http.StatusOK, gin.H{"url": url, "state": state})
}
