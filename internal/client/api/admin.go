package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nextboard/boardcli/internal/client/models"
)

// Admin endpoint wrappers. List calls return one server page; create, update
// and delete never touch cached state, so callers are expected to re-fetch the
// current page afterwards.

func pageQuery(page, limit int) url.Values {
	return url.Values{
		"page":  []string{strconv.Itoa(page)},
		"limit": []string{strconv.Itoa(limit)},
	}
}

// Users

func (c *Client) ListUsers(ctx context.Context, page, limit int) (*models.Paginated[models.User], error) {
	var out models.Paginated[models.User]
	if err := c.Get(ctx, "/api/v1/admin/users", pageQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.Post(ctx, "/api/v1/admin/users", req, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.Put(ctx, fmt.Sprintf("/api/v1/admin/users/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/api/v1/admin/users/%d", id))
}

// Nodes

func (c *Client) ListNodes(ctx context.Context, page, limit int) (*models.Paginated[models.Node], error) {
	var out models.Paginated[models.Node]
	if err := c.Get(ctx, "/api/v1/admin/nodes", pageQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateNode(ctx context.Context, req models.CreateNodeRequest) (*models.Node, error) {
	var out struct {
		Node models.Node `json:"node"`
	}
	if err := c.Post(ctx, "/api/v1/admin/nodes", req, &out); err != nil {
		return nil, err
	}
	return &out.Node, nil
}

func (c *Client) UpdateNode(ctx context.Context, id int64, req models.UpdateNodeRequest) (*models.Node, error) {
	var out struct {
		Node models.Node `json:"node"`
	}
	if err := c.Put(ctx, fmt.Sprintf("/api/v1/admin/nodes/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out.Node, nil
}

func (c *Client) DeleteNode(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/api/v1/admin/nodes/%d", id))
}

// AssignNodeLabels replaces the node's label associations with labelIDs.
func (c *Client) AssignNodeLabels(ctx context.Context, id int64, labelIDs []int64) error {
	body := map[string][]int64{"label_ids": labelIDs}
	return c.Post(ctx, fmt.Sprintf("/api/v1/admin/nodes/%d/labels", id), body, nil)
}

// Plans

func (c *Client) ListPlans(ctx context.Context, page, limit int) (*models.Paginated[models.Plan], error) {
	var out models.Paginated[models.Plan]
	if err := c.Get(ctx, "/api/v1/admin/plans", pageQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePlan(ctx context.Context, req models.CreatePlanRequest) (*models.Plan, error) {
	var out struct {
		Plan models.Plan `json:"plan"`
	}
	if err := c.Post(ctx, "/api/v1/admin/plans", req, &out); err != nil {
		return nil, err
	}
	return &out.Plan, nil
}

func (c *Client) UpdatePlan(ctx context.Context, id int64, req models.UpdatePlanRequest) (*models.Plan, error) {
	var out struct {
		Plan models.Plan `json:"plan"`
	}
	if err := c.Put(ctx, fmt.Sprintf("/api/v1/admin/plans/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out.Plan, nil
}

func (c *Client) DeletePlan(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/api/v1/admin/plans/%d", id))
}

// AssignPlanLabels replaces the plan's label associations with labelIDs.
func (c *Client) AssignPlanLabels(ctx context.Context, id int64, labelIDs []int64) error {
	body := map[string][]int64{"label_ids": labelIDs}
	return c.Post(ctx, fmt.Sprintf("/api/v1/admin/plans/%d/labels", id), body, nil)
}

// Labels

func (c *Client) ListLabels(ctx context.Context, page, limit int) (*models.Paginated[models.Label], error) {
	var out models.Paginated[models.Label]
	if err := c.Get(ctx, "/api/v1/admin/labels", pageQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateLabel(ctx context.Context, req models.CreateLabelRequest) (*models.Label, error) {
	var out struct {
		Label models.Label `json:"label"`
	}
	if err := c.Post(ctx, "/api/v1/admin/labels", req, &out); err != nil {
		return nil, err
	}
	return &out.Label, nil
}

func (c *Client) UpdateLabel(ctx context.Context, id int64, req models.UpdateLabelRequest) (*models.Label, error) {
	var out struct {
		Label models.Label `json:"label"`
	}
	if err := c.Put(ctx, fmt.Sprintf("/api/v1/admin/labels/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out.Label, nil
}

func (c *Client) DeleteLabel(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/api/v1/admin/labels/%d", id))
}
