package api

import (
	"context"

	"github.com/nextboard/boardcli/internal/client/models"
)

// Login exchanges credentials for an access/refresh token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	var out models.TokenPair
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.Post(ctx, loginPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account and returns its profile.
func (c *Client) Register(ctx context.Context, email, password string) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	req := models.RegisterRequest{Email: email, Password: password}
	if err := c.Post(ctx, registerPath, req, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Refresh exchanges a refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	req := models.RefreshRequest{RefreshToken: refreshToken}
	if err := c.Post(ctx, refreshPath, req, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}
