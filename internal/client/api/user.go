package api

import (
	"context"

	"github.com/nextboard/boardcli/internal/client/models"
)

// GetProfile returns the current user's profile.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.Get(ctx, "/api/v1/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// GetPlan returns the current user's plan, or nil if none is assigned.
func (c *Client) GetPlan(ctx context.Context) (*models.Plan, error) {
	var out struct {
		Plan *models.Plan `json:"plan"`
	}
	if err := c.Get(ctx, "/api/v1/me/plan", nil, &out); err != nil {
		return nil, err
	}
	return out.Plan, nil
}

// GetNodes returns the nodes visible to the current user.
func (c *Client) GetNodes(ctx context.Context) ([]models.Node, error) {
	var out struct {
		Nodes []models.Node `json:"nodes"`
	}
	if err := c.Get(ctx, "/api/v1/me/nodes", nil, &out); err != nil {
		return nil, err
	}
	return out.Nodes, nil
}

// GetUsage returns the current-period usage snapshot.
func (c *Client) GetUsage(ctx context.Context) (*models.Usage, error) {
	var out struct {
		Usage models.Usage `json:"usage"`
	}
	if err := c.Get(ctx, "/api/v1/me/usage", nil, &out); err != nil {
		return nil, err
	}
	return &out.Usage, nil
}

// GenerateTelegramLink issues a one-time token that associates a Telegram
// chat with the current account.
func (c *Client) GenerateTelegramLink(ctx context.Context) (string, error) {
	var out struct {
		LinkToken string `json:"link_token"`
	}
	if err := c.Post(ctx, "/api/v1/me/telegram/link", nil, &out); err != nil {
		return "", err
	}
	return out.LinkToken, nil
}
