package api

import (
	"context"
	"net/http"

	"github.com/sugarstack/sweetshop-cli/internal/models"
	"github.com/sugarstack/sweetshop-cli/internal/models/dto"
)

// Me resolves the current session from the ambient credential.
func (c *Client) Me(ctx context.Context) (models.Identity, error) {
	var identity models.Identity
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &identity); err != nil {
		return models.Identity{}, err
	}
	return identity, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, creds dto.LoginRequest) (models.Identity, error) {
	var identity models.Identity
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", creds, &identity); err != nil {
		return models.Identity{}, err
	}
	return identity, nil
}

// Register creates an account. A success response establishes the session
// directly, so this doubles as a login.
func (c *Client) Register(ctx context.Context, creds dto.RegisterRequest) (models.Identity, error) {
	var identity models.Identity
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", creds, &identity); err != nil {
		return models.Identity{}, err
	}
	return identity, nil
}

// Logout ends the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", struct{}{}, nil)
}
