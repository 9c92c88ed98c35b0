// Package stores holds the client-side read-through caches mirroring server
// responses. Fetches record failures in the store's own error field and never
// propagate them; views render from snapshots and surface the message as a
// notice.
package stores

import (
	"context"
	"errors"
	"sync"

	"github.com/nextboard/boardcli/internal/client/api"
	"github.com/nextboard/boardcli/internal/client/models"
	"github.com/nextboard/boardcli/internal/logging"
)

// UserAPI is the slice of the API client the user store consumes.
type UserAPI interface {
	GetProfile(ctx context.Context) (*models.User, error)
	GetPlan(ctx context.Context) (*models.Plan, error)
	GetNodes(ctx context.Context) ([]models.Node, error)
	GetUsage(ctx context.Context) (*models.Usage, error)
}

// UserSnapshot is a point-in-time copy of the user store's cached state.
type UserSnapshot struct {
	Profile *models.User
	Plan    *models.Plan
	Nodes   []models.Node
	Usage   *models.Usage
	Loading bool
	Err     string
}

// UserStore caches the current user's profile, plan, node list and usage
// snapshot. Each is independently fetchable, so a failure in one (say, usage
// unavailable) does not block the others.
type UserStore struct {
	api UserAPI
	log logging.Logger

	mu      sync.Mutex
	profile *models.User
	plan    *models.Plan
	nodes   []models.Node
	usage   *models.Usage
	loading bool
	err     string
}

func NewUserStore(api UserAPI, log logging.Logger) *UserStore {
	return &UserStore{api: api, log: log}
}

// failureMessage extracts the server's human-readable message when present.
func failureMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func (s *UserStore) recordErr(ctx context.Context, err error, fallback string) {
	msg := failureMessage(err, fallback)
	s.log.Warn(ctx, fallback, "err", err)
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
}

func (s *UserStore) FetchProfile(ctx context.Context) {
	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		s.recordErr(ctx, err, "failed to fetch profile")
		return
	}
	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
}

func (s *UserStore) FetchPlan(ctx context.Context) {
	plan, err := s.api.GetPlan(ctx)
	if err != nil {
		s.recordErr(ctx, err, "failed to fetch plan")
		return
	}
	s.mu.Lock()
	s.plan = plan
	s.mu.Unlock()
}

func (s *UserStore) FetchNodes(ctx context.Context) {
	nodes, err := s.api.GetNodes(ctx)
	if err != nil {
		s.recordErr(ctx, err, "failed to fetch nodes")
		return
	}
	s.mu.Lock()
	s.nodes = nodes
	s.mu.Unlock()
}

func (s *UserStore) FetchUsage(ctx context.Context) {
	usage, err := s.api.GetUsage(ctx)
	if err != nil {
		s.recordErr(ctx, err, "failed to fetch usage")
		return
	}
	s.mu.Lock()
	s.usage = usage
	s.mu.Unlock()
}

// FetchAll runs all four fetchers concurrently and holds the aggregate
// loading flag until every one has settled, success or failure. Total latency
// is bounded by the slowest single call, not the sum.
func (s *UserStore) FetchAll(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	var wg sync.WaitGroup
	for _, fetch := range []func(context.Context){
		s.FetchProfile,
		s.FetchPlan,
		s.FetchNodes,
		s.FetchUsage,
	} {
		wg.Add(1)
		go func(fetch func(context.Context)) {
			defer wg.Done()
			fetch(ctx)
		}(fetch)
	}
	wg.Wait()

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// Snapshot returns a copy of the cached state for rendering.
func (s *UserStore) Snapshot() UserSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return UserSnapshot{
		Profile: s.profile,
		Plan:    s.plan,
		Nodes:   s.nodes,
		Usage:   s.usage,
		Loading: s.loading,
		Err:     s.err,
	}
}
