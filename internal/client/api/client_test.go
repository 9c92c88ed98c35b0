package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nextboard/boardcli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeSession implements Session for transport tests. Refresh swaps the
// token after an optional delay; loggedOut records a failed exchange.
type fakeSession struct {
	mu        sync.Mutex
	token     string
	next      string
	delay     time.Duration
	refreshes atomic.Int64
	fail      bool
	loggedOut bool
}

func (f *fakeSession) AccessToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeSession) RefreshAccessToken(ctx context.Context) error {
	f.refreshes.Add(1)
	time.Sleep(f.delay)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		// The real store clears itself before returning the error.
		f.token = ""
		f.loggedOut = true
		return &Error{Kind: KindAuth, Code: "INVALID_REFRESH_TOKEN", Message: "refresh token expired", Status: 401}
	}
	f.token = f.next
	return nil
}

func TestGetDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/me", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":7,"email":"a@b.c"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, testLogger())

	var out struct {
		User struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, c.Get(context.Background(), "/api/v1/me", nil, &out))
	require.Equal(t, int64(7), out.User.ID)
	require.Equal(t, "a@b.c", out.User.Email)
}

func TestErrorEnvelopeSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"INVALID_REQUEST","message":"email is required"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, testLogger())

	err := c.Post(context.Background(), "/api/v1/admin/users", map[string]string{}, nil)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, KindValidation, apiErr.Kind)
	require.Equal(t, "INVALID_REQUEST", apiErr.Code)
	require.Equal(t, "email is required", apiErr.Message)
}

func TestQueryParamsSerialized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "20", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, testLogger())
	q := url.Values{"page": []string{"2"}, "limit": []string{"20"}}
	require.NoError(t, c.Get(context.Background(), "/api/v1/admin/users", q, nil))
}

func TestConcurrent401sShareOneRefresh(t *testing.T) {
	sess := &fakeSession{token: "stale", next: "fresh", delay: 200 * time.Millisecond}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":"TOKEN_EXPIRED","message":"token expired"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, testLogger())
	c.Bind(sess)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = c.Get(context.Background(), "/api/v1/me/usage", nil, nil)
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	// Both callers awaited the same in-flight exchange.
	require.Equal(t, int64(1), sess.refreshes.Load())
}

func TestRefreshFailurePropagatesOriginal401(t *testing.T) {
	sess := &fakeSession{token: "stale", fail: true}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"TOKEN_EXPIRED","message":"token expired"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, testLogger())
	c.Bind(sess)

	err := c.Get(context.Background(), "/api/v1/me", nil, nil)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, KindAuth, apiErr.Kind)
	require.Equal(t, "TOKEN_EXPIRED", apiErr.Code)
	require.True(t, sess.loggedOut)
	require.Equal(t, int64(1), sess.refreshes.Load())
}

func TestAuthEndpointsSkipRefresh(t *testing.T) {
	sess := &fakeSession{token: "stale"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"INVALID_CREDENTIALS","message":"invalid email or password"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, testLogger())
	c.Bind(sess)

	_, err := c.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)
	// A 401 from the login call itself never triggers the refresh path.
	require.Equal(t, int64(0), sess.refreshes.Load())
}

func TestNetworkFailureKind(t *testing.T) {
	c := New("http://127.0.0.1:1", 500*time.Millisecond, testLogger())
	err := c.Get(context.Background(), "/api/v1/me", nil, nil)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, KindNetwork, apiErr.Kind)
}
