package gateway

import (
	"context"
	"net/http"

	"rota-console/internal/domain"
)

func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResult, error) {
	var out domain.LoginResult
	err := c.doJSON(ctx, "auth.login", http.MethodPost, "/auth/login", nil, req, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, req domain.RegisterUser) (domain.UserProfile, error) {
	var out domain.UserProfile
	err := c.doJSON(ctx, "auth.register", http.MethodPost, "/auth/register", nil, req, &out)
	return out, err
}

func (c *Client) ChangePassword(ctx context.Context, req domain.ChangePassword) error {
	return c.doJSON(ctx, "auth.change_password", http.MethodPost, "/auth/change-password", nil, req, nil)
}

func (c *Client) Me(ctx context.Context) (domain.UserProfile, error) {
	var out domain.UserProfile
	err := c.doJSON(ctx, "auth.me", http.MethodGet, "/auth/me", nil, nil, &out)
	return out, err
}
