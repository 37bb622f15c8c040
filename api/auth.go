// ABOUTME: Authentication endpoints for register and login
// ABOUTME: Both return the user plus bearer token the session store persists
package api

import (
	"context"
	"net/http"

	"github.com/kindredhq/kindred/models"
)

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account and returns the authenticated state.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (models.AuthState, error) {
	return call[models.AuthState](ctx, c, http.MethodPost, "/api/auth/register", req, "Registration failed")
}

// Login exchanges credentials for the authenticated state.
func (c *Client) Login(ctx context.Context, req LoginRequest) (models.AuthState, error) {
	return call[models.AuthState](ctx, c, http.MethodPost, "/api/auth/login", req, "Login failed")
}
