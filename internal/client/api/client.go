// Package api implements the typed REST client for the board server.
//
// Every call attaches the session's bearer token when one is present. A 401
// on anything but the auth endpoints suspends the failed call, runs the
// session's refresh exchange exactly once (shared across concurrent callers
// via a singleflight group), and retries the original request with the new
// token. A failed refresh clears the session; the original 401 then
// propagates to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/nextboard/boardcli/internal/logging"
)

const (
	loginPath    = "/api/v1/auth/login"
	registerPath = "/api/v1/auth/register"
	refreshPath  = "/api/v1/auth/refresh"
)

// Session is the token source the client is bound to. The auth session store
// implements it. RefreshAccessToken must clear the session itself before
// returning an error, so the client never has to.
type Session interface {
	AccessToken() string
	RefreshAccessToken(ctx context.Context) error
}

// Client performs JSON-over-HTTP calls against a single base URL.
type Client struct {
	baseURL string
	http    *http.Client
	session Session
	log     logging.Logger

	// refresh de-duplicates concurrent token refreshes: the first 401
	// triggers the exchange, everyone else awaits the same outcome.
	refresh singleflight.Group
}

func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: trimTrailingSlash(baseURL),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Bind attaches the session after construction. The session needs the client
// for its own login/refresh calls, so the two are wired in two steps.
func (c *Client) Bind(s Session) {
	c.session = s
}

func trimTrailingSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.call(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.call(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	return c.call(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil, nil)
}

// call runs one request and applies the refresh-then-retry policy on 401.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	err := c.do(ctx, method, path, query, body, out)
	if err == nil {
		return nil
	}

	apiErr, ok := err.(*Error)
	if !ok || apiErr.Status != http.StatusUnauthorized {
		return err
	}
	if isAuthPath(path) || c.session == nil {
		return err
	}

	// Share a single in-flight refresh across all concurrent 401s.
	if _, refreshErr, _ := c.refresh.Do("refresh", func() (any, error) {
		return nil, c.session.RefreshAccessToken(ctx)
	}); refreshErr != nil {
		// The session store already cleared itself; surface the original
		// authorization failure, not the refresh error.
		c.log.Warn(ctx, "token refresh failed, session cleared", "err", refreshErr)
		return err
	}

	return c.do(ctx, method, path, query, body, out)
}

func isAuthPath(path string) bool {
	return path == loginPath || path == refreshPath || path == registerPath
}

// do performs one HTTP round trip and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return err
		}
		reqBody = buf
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		if token := c.session.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return newNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return newNetworkError(err)
	}

	if resp.StatusCode >= 400 {
		return newStatusError(resp.StatusCode, payload)
	}
	if out == nil || len(payload) == 0 {
		return nil
	}
	return json.Unmarshal(payload, out)
}
