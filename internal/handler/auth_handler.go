package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahmasleam/Neux-Mena-V5/internal/auth"
	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	ResetPassword(ctx context.Context, email string) error
	Logout(ctx context.Context)
}

// SessionStore exposes the session view of the state store.
type SessionStore interface {
	SessionState() model.SessionState
	CurrentUser() *model.User
	IsAdmin() bool
}

type AuthHandler struct {
	service AuthService
	session SessionStore
}

func NewAuthHandler(service AuthService, session SessionStore) *AuthHandler {
	return &AuthHandler{service: service, session: session}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login rejected", "email", req.Email, "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, h.sessionBody(user))
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, auth.ErrProviderUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Registration is currently unavailable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, h.sessionBody(user))
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, auth.ErrProviderUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Password reset is currently unavailable"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// GetSession reports the current session so the client can restore state
// on load.
func (h *AuthHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionBody(h.session.CurrentUser()))
}

func (h *AuthHandler) sessionBody(user *model.User) gin.H {
	return gin.H{
		"state":   h.session.SessionState(),
		"user":    user,
		"isAdmin": h.session.IsAdmin(),
	}
}
