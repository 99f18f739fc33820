// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"opticode_backend/internal/feature/auth/domain/entity"
	"opticode_backend/internal/feature/auth/transport/http/dto"
	"opticode_backend/internal/feature/auth/usecase"
	jwtmw "opticode_backend/internal/platform/jwt"
)

// AuthUsecase defines the auth operations consumed by this handler.
// Following Go convention, the interface is defined by the consumer (handler)
// rather than the provider (usecase).
type AuthUsecase interface {
	// Register creates a new account and returns a signed token for it.
	Register(ctx context.Context, name, email, password string) (string, *entity.User, error)
	// Login authenticates a user and returns a signed token on success.
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	// CurrentUser returns the account behind an authenticated identity.
	CurrentUser(ctx context.Context, id string) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/register.
// Malformed JSON degrades to empty fields, which the usecase rejects.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	_ = c.ShouldBindJSON(&req)

	token, user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are all required"})
		case errors.Is(err, usecase.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("registration conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, gin.H{"error": "An account with that email already exists"})
		default:
			slog.Error("registration failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account"})
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": dto.UserResponseFromEntity(user)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	_ = c.ShouldBindJSON(&req)

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCredentialsRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			// Do not reveal whether the email exists.
			slog.Warn("login failed", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		default:
			slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not log in"})
		}
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"token": token, "user": dto.UserResponseFromEntity(user)})
}

// Me handles GET /api/auth/me. It requires the auth middleware upstream.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		slog.Error("current user lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.UserResponseFromEntity(user)})
}
