// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/auth/domain/entity"
	"jobboard_backend/internal/feature/auth/transport/http/dto"
	jwtmw "jobboard_backend/internal/platform/jwt"
)

// AuthUsecase defines the authentication operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and returns it with a signed token.
	Register(ctx context.Context, name, email, password string) (*entity.User, string, error)
	// Login authenticates a user and returns it with a signed token.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// UpdateProfile replaces the user's profile fields and refreshes the token.
	UpdateProfile(ctx context.Context, userID uint, name, lastName, email, location string) (*entity.User, string, error)
}

// AuthHandler handles HTTP requests for registration, login and profile
// updates. It depends on the AuthUsecase interface and speaks JSON.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the user registration endpoint.
// - binds and validates the request JSON (400 on failure)
// - 400 on duplicate email, naming the field
// - 201 with user summary and token on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		api.ValidationError(c, err)
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		api.Error(c, err)
		return
	}

	slog.Info("user registered", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewAuthResponse(user, token))
}

// Login handles the user login endpoint.
// - binds and validates the request JSON (400 on failure)
// - 401 with a generic message on bad credentials
// - 200 with user and token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		api.ValidationError(c, err)
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// The mapped message stays generic so accounts cannot be enumerated.
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		api.Error(c, err)
		return
	}

	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewAuthResponse(user, token))
}

// UpdateUser handles the authenticated profile update endpoint.
// The response carries a refreshed token because the email claim may have
// changed.
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update-user validation failed", "error", err, "remote_addr", c.ClientIP())
		api.ValidationError(c, err)
		return
	}

	user, token, err := h.auth.UpdateProfile(c.Request.Context(), userID, req.Name, req.LastName, req.Email, req.Location)
	if err != nil {
		slog.Warn("update-user failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
		api.Error(c, err)
		return
	}

	slog.Info("user profile updated", "user_id", userID)
	c.JSON(http.StatusOK, dto.NewAuthResponse(user, token))
}
