package models

import "encoding/json"

// Request DTOs for the board API. Optional update fields are pointers so that
// omitted fields are left out of the JSON body and the server keeps the
// current value.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	PlanID   *int64 `json:"plan_id,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

type UpdateUserRequest struct {
	Email  *string `json:"email,omitempty"`
	PlanID *int64  `json:"plan_id,omitempty"`
	Banned *bool   `json:"banned,omitempty"`
}

type CreateNodeRequest struct {
	Name           string          `json:"name"`
	NodeType       string          `json:"node_type"`
	Host           string          `json:"host"`
	Port           uint16          `json:"port"`
	ProtocolConfig json.RawMessage `json:"protocol_config,omitempty"`
	NodeMultiplier float64         `json:"node_multiplier"`
	LabelIDs       []int64         `json:"label_ids,omitempty"`
}

type UpdateNodeRequest struct {
	Name           *string         `json:"name,omitempty"`
	NodeType       *string         `json:"node_type,omitempty"`
	Host           *string         `json:"host,omitempty"`
	Port           *uint16         `json:"port,omitempty"`
	ProtocolConfig json.RawMessage `json:"protocol_config,omitempty"`
	NodeMultiplier *float64        `json:"node_multiplier,omitempty"`
	Status         *NodeStatus     `json:"status,omitempty"`
}

type CreatePlanRequest struct {
	Name           string      `json:"name"`
	QuotaBytes     uint64      `json:"quota_bytes"`
	ResetPeriod    ResetPeriod `json:"reset_period"`
	BaseMultiplier float64     `json:"base_multiplier"`
	LabelIDs       []int64     `json:"label_ids,omitempty"`
}

type UpdatePlanRequest struct {
	Name           *string      `json:"name,omitempty"`
	QuotaBytes     *uint64      `json:"quota_bytes,omitempty"`
	ResetPeriod    *ResetPeriod `json:"reset_period,omitempty"`
	BaseMultiplier *float64     `json:"base_multiplier,omitempty"`
}

type CreateLabelRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier"`
}

type UpdateLabelRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Multiplier  *float64 `json:"multiplier,omitempty"`
}
