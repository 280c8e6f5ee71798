package handler

import (
	"context"
	"fmt"
	"net/http"

	"auction-gateway/internal/auctionerrors"
	model "auction-gateway/internal/models"
	"auction-gateway/internal/session"
	"auction-gateway/services/auction/helpers"
	"auction-gateway/utils"

	"github.com/gin-gonic/gin"
)

var errNotAuthenticated = fmt.Errorf("handler: %w", auctionerrors.ErrNotAuthenticated)

type SessionManagerInterface interface {
	Login(ctx context.Context, creds model.LoginCredentials) (model.AuthUser, error)
	Register(ctx context.Context, data model.RegisterData) (model.AuthUser, error)
	Logout(ctx context.Context) error
	CreateAPIKey(ctx context.Context) error
	EnsureAPIKey(ctx context.Context) error
	RefreshProfile(ctx context.Context)
	Snapshot() session.Snapshot
}

type AuthHandler struct {
	session SessionManagerInterface
}

func NewAuthHandler(session SessionManagerInterface) *AuthHandler {
	return &AuthHandler{session: session}
}

// LoginHandler handles POST /auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.session.Login(c.Request.Context(), model.LoginCredentials{Email: req.Email, Password: req.Password})
	if err != nil {
		helpers.RespondError(c, "LoginHandler", "login failed", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, h.session.Snapshot(), "logged in successfully")
	helpers.LogSuccess("LoginHandler", "logged in successfully", map[string]any{"user": user.Name})
}

// RegisterHandler handles POST /auth/register
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.session.Register(c.Request.Context(), req.ToModel())
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", "registration failed", err, map[string]any{"name": req.Name})
		return
	}

	message := "registered successfully"
	if user.AccessToken == "" {
		message = "registered successfully, please log in"
	}
	utils.JSONResponse(c, http.StatusCreated, h.session.Snapshot(), message)
	helpers.LogSuccess("RegisterHandler", message, map[string]any{"user": user.Name})
}

// LogoutHandler handles POST /auth/logout
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.session.Logout(c.Request.Context()); err != nil {
		helpers.RespondError(c, "LogoutHandler", "logout failed", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, h.session.Snapshot(), "logged out successfully")
	helpers.LogSuccess("LogoutHandler", "logged out successfully", nil)
}

// CreateAPIKeyHandler handles POST /auth/api-key
func (h *AuthHandler) CreateAPIKeyHandler(c *gin.Context) {
	if err := h.session.CreateAPIKey(c.Request.Context()); err != nil {
		helpers.RespondError(c, "CreateAPIKeyHandler", "api key creation failed", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, h.session.Snapshot(), "api key created successfully")
	helpers.LogSuccess("CreateAPIKeyHandler", "api key created successfully", nil)
}

// SessionHandler handles GET /auth/session
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.session.Snapshot(), "session retrieved successfully")
}

// RefreshHandler handles POST /auth/refresh
func (h *AuthHandler) RefreshHandler(c *gin.Context) {
	snap := h.session.Snapshot()
	if !snap.Authenticated {
		utils.JSONError(c, http.StatusUnauthorized, errNotAuthenticated, "not authenticated")
		return
	}

	if !snap.HasAPIKey {
		if err := h.session.EnsureAPIKey(c.Request.Context()); err != nil {
			utils.Warn("RefreshHandler: api key still missing", map[string]any{"error": err.Error()})
		}
	}
	h.session.RefreshProfile(c.Request.Context())
	utils.JSONResponse(c, http.StatusOK, h.session.Snapshot(), "profile refreshed")
}
