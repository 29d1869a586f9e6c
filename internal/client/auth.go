package client

import (
	"context"
	"net/http"

	"biodata-api/internal/policy"
	"biodata-api/internal/transport/dto"
)

// Register creates an account and keeps the returned token for later calls.
func (c *Client) Register(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	req := dto.RegisterRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Login exchanges credentials for a token and keeps it for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Logout revokes the current token on the server and forgets it locally.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

func (c *Client) Me(ctx context.Context) (*dto.MeResponse, error) {
	var out dto.MeResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Policy fetches the server's access table.
func (c *Client) Policy(ctx context.Context) (*dto.PolicyResponse, error) {
	var out dto.PolicyResponse
	if err := c.do(ctx, http.MethodGet, "/api/policy", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Viewer describes the current session for page guards. Without a token, or
// when the server rejects it, the viewer is a guest.
func (c *Client) Viewer(ctx context.Context) (policy.Viewer, error) {
	if c.token == "" {
		return policy.Guest, nil
	}
	me, err := c.Me(ctx)
	if err != nil {
		if IsStatus(err, http.StatusUnauthorized) {
			return policy.Guest, nil
		}
		return policy.Guest, err
	}
	return policy.Viewer{Authenticated: true, Role: me.Role}, nil
}

// Guard evaluates a browser page for the current session.
func (c *Client) Guard(ctx context.Context, path string) (policy.Decision, error) {
	v, err := c.Viewer(ctx)
	if err != nil {
		return policy.Decision{}, err
	}
	return policy.EvaluatePage(v, path), nil
}
