package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk-platform/ticket-service/internal/audit"
	"github.com/helpdesk-platform/ticket-service/internal/metrics"
	"github.com/helpdesk-platform/ticket-service/internal/middleware"
	"github.com/helpdesk-platform/ticket-service/internal/models"
	"github.com/helpdesk-platform/ticket-service/internal/repository"
	"github.com/helpdesk-platform/ticket-service/internal/service"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService   service.AuthService
	cookies       *CookieHelper
	actionLogRepo repository.ActionLogRepository
	metrics       *metrics.Metrics
	tokenExpiry   time.Duration
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, cookies *CookieHelper, actionLogRepo repository.ActionLogRepository, m *metrics.Metrics, tokenExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		cookies:       cookies,
		actionLogRepo: actionLogRepo,
		metrics:       m,
		tokenExpiry:   tokenExpiry,
	}
}

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a new user
// @Description Create a user with the default role and internal sector, set the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} models.UserView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			RespondError(c, http.StatusConflict, "email already registered")
		case errors.Is(err, service.ErrSeedMissing):
			LogAndRespondError(c, http.StatusInternalServerError, err, "registration failed")
		default:
			LogAndRespondError(c, http.StatusInternalServerError, err, "registration failed")
		}
		return
	}

	h.metrics.Registrations.Inc()
	audit.LogAction(c.Request.Context(), h.actionLogRepo, models.ActionRegister, &user.ID, map[string]interface{}{
		"username": user.Username,
	})

	h.cookies.SetSessionCookie(c, token, h.tokenExpiry)
	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary User login
// @Description Verify credentials and set a session cookie carrying role and sector claims
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} models.UserView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.metrics.LoginFailures.Inc()
		audit.LogAction(c.Request.Context(), h.actionLogRepo, models.ActionLoginFailure, nil, map[string]interface{}{
			"email": req.Email,
		})
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			RespondError(c, http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrInvalidPassword):
			RespondError(c, http.StatusUnauthorized, "invalid password")
		default:
			LogAndRespondError(c, http.StatusInternalServerError, err, "login failed")
		}
		return
	}

	h.metrics.LoginSuccesses.Inc()
	audit.LogAction(c.Request.Context(), h.actionLogRepo, models.ActionLoginSuccess, &result.User.ID, map[string]interface{}{
		"username": result.User.Username,
	})

	h.cookies.SetSessionCookie(c, result.Token, h.tokenExpiry)
	c.JSON(http.StatusOK, result.User)
}

// Logout godoc
// @Summary User logout
// @Description Clear the session cookie. Succeeds whether or not a session is present.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	audit.LogAction(c.Request.Context(), h.actionLogRepo, models.ActionLogout, nil, nil)

	h.cookies.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Profile godoc
// @Summary Current user profile
// @Description Return the authenticated user's safe projection
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// token outlived the user record
			RespondError(c, http.StatusNotFound, "user not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Verify godoc
// @Summary Verify the session token
// @Description Return the decoded session claims without touching the store
// @Tags auth
// @Produce json
// @Success 200 {object} service.SessionClaims
// @Failure 401 {object} map[string]string
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	c.JSON(http.StatusOK, claims)
}
