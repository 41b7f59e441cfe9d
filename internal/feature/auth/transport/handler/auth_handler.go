// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"college_backend/internal/feature/auth/transport/http/dto"
	"college_backend/internal/feature/auth/usecase"
	"college_backend/internal/platform/identity"
)

// AuthUsecase defines the authentication operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Login authenticates a user and returns a fresh session token on success.
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles the login API endpoint.
// - binds the request JSON to LoginReq, 400 on validation errors
// - 404 when no user exists for the email
// - 401 when the password does not match
// - 200 with token and public user fields on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			slog.Warn("login for unknown email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, gin.H{"error": "User with that email does not exist"})
		case errors.Is(err, usecase.ErrInvalidPassword):
			slog.Warn("login with invalid password", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		default:
			slog.Error("login failed", "error", err, "email", req.Email)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResp{
		Message: "Login successful",
		Token:   res.Token,
		User:    dto.UserProfileFromEntity(res.User),
	})
}

// Me handles the self-profile endpoint. The route sits behind the
// Authenticated guard, so the resolved identity is always present here.
func (h *AuthHandler) Me(c *gin.Context) {
	user := identity.CurrentUser(c)
	if user == nil {
		// Unreachable behind the guard; kept as a hard stop.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.UserProfileFromEntity(user))
}
