package stores

import (
	"context"
	"sync"

	"github.com/nextboard/boardcli/internal/client/models"
	"github.com/nextboard/boardcli/internal/logging"
)

// Default page sizes used by the views.
const (
	DefaultPageLimit  = 20
	DefaultLabelLimit = 100
)

// AdminAPI is the slice of the API client the admin store consumes.
type AdminAPI interface {
	ListUsers(ctx context.Context, page, limit int) (*models.Paginated[models.User], error)
	ListNodes(ctx context.Context, page, limit int) (*models.Paginated[models.Node], error)
	ListPlans(ctx context.Context, page, limit int) (*models.Paginated[models.Plan], error)
	ListLabels(ctx context.Context, page, limit int) (*models.Paginated[models.Label], error)
}

// AdminStore caches the four paginated admin collections. Each fetcher
// replaces its collection wholesale on success; cached rows are never patched
// locally after a mutation. Callers re-invoke the fetcher for the current
// page after any mutating admin call, so the displayed page always reflects a
// real server read.
type AdminStore struct {
	api AdminAPI
	log logging.Logger

	mu      sync.Mutex
	users   *models.Paginated[models.User]
	nodes   *models.Paginated[models.Node]
	plans   *models.Paginated[models.Plan]
	labels  *models.Paginated[models.Label]
	loading bool
	err     string
}

func NewAdminStore(api AdminAPI, log logging.Logger) *AdminStore {
	return &AdminStore{api: api, log: log}
}

func (s *AdminStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *AdminStore) finish(ctx context.Context, err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = failureMessage(err, fallback)
		s.log.Warn(ctx, fallback, "err", err)
	}
}

func (s *AdminStore) FetchUsers(ctx context.Context, page, limit int) {
	s.begin()
	users, err := s.api.ListUsers(ctx, page, limit)
	if err == nil {
		s.mu.Lock()
		s.users = users
		s.mu.Unlock()
	}
	s.finish(ctx, err, "failed to fetch users")
}

func (s *AdminStore) FetchNodes(ctx context.Context, page, limit int) {
	s.begin()
	nodes, err := s.api.ListNodes(ctx, page, limit)
	if err == nil {
		s.mu.Lock()
		s.nodes = nodes
		s.mu.Unlock()
	}
	s.finish(ctx, err, "failed to fetch nodes")
}

func (s *AdminStore) FetchPlans(ctx context.Context, page, limit int) {
	s.begin()
	plans, err := s.api.ListPlans(ctx, page, limit)
	if err == nil {
		s.mu.Lock()
		s.plans = plans
		s.mu.Unlock()
	}
	s.finish(ctx, err, "failed to fetch plans")
}

func (s *AdminStore) FetchLabels(ctx context.Context, page, limit int) {
	s.begin()
	labels, err := s.api.ListLabels(ctx, page, limit)
	if err == nil {
		s.mu.Lock()
		s.labels = labels
		s.mu.Unlock()
	}
	s.finish(ctx, err, "failed to fetch labels")
}

func (s *AdminStore) Users() *models.Paginated[models.User] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users
}

func (s *AdminStore) Nodes() *models.Paginated[models.Node] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nodes
}

func (s *AdminStore) Plans() *models.Paginated[models.Plan] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plans
}

func (s *AdminStore) Labels() *models.Paginated[models.Label] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.labels
}

func (s *AdminStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
