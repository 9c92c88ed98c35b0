package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nextboard/boardcli/internal/client/api"
	"github.com/nextboard/boardcli/internal/client/models"
)

// fakeAdminAPI simulates the server's pagination: pages == ceil(total/limit),
// out-of-range pages return an empty data array.
type fakeAdminAPI struct {
	totalUsers int

	UsersErr error

	LastPage  int
	LastLimit int
}

func paginate[T any](all []T, page, limit int) *models.Paginated[T] {
	pages := (len(all) + limit - 1) / limit
	start := (page - 1) * limit
	end := start + limit
	data := []T{}
	if start < len(all) {
		if end > len(all) {
			end = len(all)
		}
		data = all[start:end]
	}
	return &models.Paginated[T]{
		Data: data,
		Pagination: models.Pagination{
			Total: int64(len(all)),
			Page:  page,
			Limit: limit,
			Pages: pages,
		},
	}
}

func (f *fakeAdminAPI) ListUsers(ctx context.Context, page, limit int) (*models.Paginated[models.User], error) {
	f.LastPage, f.LastLimit = page, limit
	if f.UsersErr != nil {
		return nil, f.UsersErr
	}
	all := make([]models.User, f.totalUsers)
	for i := range all {
		all[i] = models.User{ID: int64(i + 1)}
	}
	return paginate(all, page, limit), nil
}

func (f *fakeAdminAPI) ListNodes(ctx context.Context, page, limit int) (*models.Paginated[models.Node], error) {
	return paginate([]models.Node{{ID: 1}}, page, limit), nil
}

func (f *fakeAdminAPI) ListPlans(ctx context.Context, page, limit int) (*models.Paginated[models.Plan], error) {
	return paginate([]models.Plan{{ID: 1}}, page, limit), nil
}

func (f *fakeAdminAPI) ListLabels(ctx context.Context, page, limit int) (*models.Paginated[models.Label], error) {
	return paginate([]models.Label{{ID: 1}}, page, limit), nil
}

func TestFetchUsersReplacesCollectionWholesale(t *testing.T) {
	fake := &fakeAdminAPI{totalUsers: 45}
	s := NewAdminStore(fake, testLogger())

	s.FetchUsers(context.Background(), 2, 20)

	page := s.Users()
	require.NotNil(t, page)
	require.Len(t, page.Data, 20)
	require.Equal(t, int64(45), page.Pagination.Total)
	require.Equal(t, 3, page.Pagination.Pages)
	require.Equal(t, int64(21), page.Data[0].ID)
	require.Empty(t, s.Err())
}

func TestFetchUsersEmptyPage(t *testing.T) {
	fake := &fakeAdminAPI{totalUsers: 45}
	s := NewAdminStore(fake, testLogger())

	// Page 4 of 3 is server-defined to be empty; the client must cache the
	// empty page without complaint.
	s.FetchUsers(context.Background(), 4, 20)

	page := s.Users()
	require.NotNil(t, page)
	require.Empty(t, page.Data)
	require.Equal(t, 3, page.Pagination.Pages)
	require.Empty(t, s.Err())
}

func TestFetchUsersRecordsFailure(t *testing.T) {
	fake := &fakeAdminAPI{
		UsersErr: &api.Error{Kind: api.KindServer, Code: "INTERNAL_ERROR", Message: "db down", Status: 500},
	}
	s := NewAdminStore(fake, testLogger())

	s.FetchUsers(context.Background(), 1, 20)

	require.Nil(t, s.Users())
	require.Equal(t, "db down", s.Err())
}

func TestFailureDoesNotClobberPreviousPage(t *testing.T) {
	fake := &fakeAdminAPI{totalUsers: 5}
	s := NewAdminStore(fake, testLogger())

	s.FetchUsers(context.Background(), 1, 20)
	require.NotNil(t, s.Users())

	fake.UsersErr = &api.Error{Kind: api.KindNetwork, Code: "NETWORK_ERROR", Message: "offline"}
	s.FetchUsers(context.Background(), 1, 20)

	// The stale page stays renderable; only the error field changes.
	require.NotNil(t, s.Users())
	require.Equal(t, "offline", s.Err())
}

func TestOtherCollections(t *testing.T) {
	fake := &fakeAdminAPI{}
	s := NewAdminStore(fake, testLogger())
	ctx := context.Background()

	s.FetchNodes(ctx, 1, DefaultPageLimit)
	s.FetchPlans(ctx, 1, DefaultPageLimit)
	s.FetchLabels(ctx, 1, DefaultLabelLimit)

	require.Len(t, s.Nodes().Data, 1)
	require.Len(t, s.Plans().Data, 1)
	require.Len(t, s.Labels().Data, 1)
	require.Equal(t, DefaultLabelLimit, s.Labels().Pagination.Limit)
}
