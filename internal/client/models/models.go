// Package models defines client-side projections of the board server's
// records. The server is authoritative; these types only mirror what it
// returns and are replaced wholesale on every successful re-fetch.
package models

import (
	"encoding/json"
	"time"
)

// Role of an account as reported by the server.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ResetPeriod is the cadence at which a plan's usage counter zeros.
// "none" means the quota never resets automatically.
type ResetPeriod string

const (
	ResetNone    ResetPeriod = "none"
	ResetDaily   ResetPeriod = "daily"
	ResetWeekly  ResetPeriod = "weekly"
	ResetMonthly ResetPeriod = "monthly"
	ResetYearly  ResetPeriod = "yearly"
)

// NodeStatus marks whether a node currently accepts traffic.
type NodeStatus string

const (
	NodeActive   NodeStatus = "active"
	NodeInactive NodeStatus = "inactive"
)

// User is the profile of an account.
type User struct {
	ID               int64      `json:"id"`
	Email            string     `json:"email"`
	Role             Role       `json:"role"`
	PlanID           *int64     `json:"plan_id"`
	TelegramChatID   *int64     `json:"telegram_chat_id"`
	TelegramLinkedAt *time.Time `json:"telegram_linked_at"`
	CreatedAt        time.Time  `json:"created_at"`
}

// Label is a tag attachable to both nodes and plans. Its multiplier composes
// multiplicatively with node and plan multipliers on the server side; the
// client only displays and submits label associations.
type Label struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier"`
}

// Plan describes a subscription plan. QuotaBytes is the total allowance per
// reset period; BaseMultiplier scales billable traffic computed against it.
type Plan struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	QuotaBytes     uint64      `json:"quota_bytes"`
	ResetPeriod    ResetPeriod `json:"reset_period"`
	BaseMultiplier float64     `json:"base_multiplier"`
	Labels         []Label     `json:"labels"`
	CreatedAt      time.Time   `json:"created_at"`
}

// Node is a proxy node. ProtocolConfig is an opaque key-value document whose
// schema depends on NodeType; the client passes it through untouched.
type Node struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	NodeType       string          `json:"node_type"`
	Host           string          `json:"host"`
	Port           uint16          `json:"port"`
	NodeMultiplier float64         `json:"node_multiplier"`
	Status         NodeStatus      `json:"status"`
	Labels         []Label         `json:"labels"`
	ProtocolConfig json.RawMessage `json:"protocol_config,omitempty"`
}

// Usage is the current-period traffic snapshot. Billable bytes are derived
// server-side from real bytes scaled by applicable multipliers; the client
// never recomputes them, only percentages from them.
type Usage struct {
	RealBytesUp       uint64    `json:"real_bytes_up"`
	RealBytesDown     uint64    `json:"real_bytes_down"`
	BillableBytesUp   uint64    `json:"billable_bytes_up"`
	BillableBytesDown uint64    `json:"billable_bytes_down"`
	PeriodStart       time.Time `json:"period_start"`
	PeriodEnd         time.Time `json:"period_end"`
}

// Pagination describes the server's view of a paginated listing.
// Invariant (server-enforced): Pages == ceil(Total/Limit).
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// Paginated is one page of an admin collection.
type Paginated[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// TokenPair is the result of a successful credential exchange.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
