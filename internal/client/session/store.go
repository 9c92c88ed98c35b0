// Package session owns the access/refresh token pair and the current-user
// identity. The store is an explicitly constructed object: it hydrates from
// the credentials database at startup and is passed to the API client as its
// token source, never accessed as an ambient singleton.
package session

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/nextboard/boardcli/internal/client/models"
	"github.com/nextboard/boardcli/internal/dbx"
	"github.com/nextboard/boardcli/internal/logging"
)

// Fixed keys in the credentials table; the only durable client state.
const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// ErrNoRefreshToken is returned by RefreshAccessToken when no refresh token
// is cached. Session state is left untouched in that case.
var ErrNoRefreshToken = errors.New("no refresh token available")

// AuthAPI is the slice of the API client the store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetProfile(ctx context.Context) (*models.User, error)
}

// Store is the auth session store.
type Store struct {
	api AuthAPI
	db  *sql.DB
	log logging.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	user         *models.User
}

// NewStore builds a Store hydrated from the credentials database, so a
// previously logged-in user stays authenticated across restarts.
func NewStore(ctx context.Context, api AuthAPI, db *sql.DB, log logging.Logger) (*Store, error) {
	s := &Store{api: api, db: db, log: log}

	repo := NewSQLiteRepository(db)
	access, err := repo.Get(ctx, accessTokenKey)
	if err != nil {
		return nil, err
	}
	refresh, err := repo.Get(ctx, refreshTokenKey)
	if err != nil {
		return nil, err
	}
	s.accessToken = access
	s.refreshToken = refresh
	return s, nil
}

// AccessToken returns the current access token, or "" when unauthenticated.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

// IsAuthenticated reports whether an access token is present.
func (s *Store) IsAuthenticated() bool {
	return s.AccessToken() != ""
}

// User returns the cached profile, or nil before the first successful fetch.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Login exchanges credentials for a token pair, persists both tokens in one
// transaction, then eagerly fetches the profile. On failure the session stays
// unauthenticated and the server error propagates.
func (s *Store) Login(ctx context.Context, email, password string) error {
	pair, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := s.saveTokens(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return err
	}

	s.mu.Lock()
	s.accessToken = pair.AccessToken
	s.refreshToken = pair.RefreshToken
	s.mu.Unlock()

	s.FetchUser(ctx)
	return nil
}

// saveTokens writes both tokens in a single transaction so durable storage
// never holds half a pair.
func (s *Store) saveTokens(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, accessTokenKey, access); err != nil {
			return err
		}
		return repo.Set(ctx, refreshTokenKey, refresh)
	})
}

// Logout clears tokens from memory and durable storage. It requires no
// network call to succeed; a storage failure is logged and the in-memory
// session is cleared regardless.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.accessToken = ""
	s.refreshToken = ""
	s.user = nil
	s.mu.Unlock()

	if err := NewSQLiteRepository(s.db).Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear stored credentials", "err", err)
	}
}

// RefreshAccessToken exchanges the cached refresh token for a new access
// token. With no cached token it fails fast with ErrNoRefreshToken and leaves
// state unchanged. Any exchange failure logs the session out before the error
// propagates: a failed refresh never leaves a half-valid session.
func (s *Store) RefreshAccessToken(ctx context.Context) error {
	s.mu.Lock()
	refresh := s.refreshToken
	s.mu.Unlock()

	if refresh == "" {
		return ErrNoRefreshToken
	}

	access, err := s.api.Refresh(ctx, refresh)
	if err != nil {
		s.Logout(ctx)
		return err
	}

	if err := NewSQLiteRepository(s.db).Set(ctx, accessTokenKey, access); err != nil {
		s.log.Warn(ctx, "failed to persist refreshed access token", "err", err)
	}

	s.mu.Lock()
	s.accessToken = access
	s.mu.Unlock()
	return nil
}

// FetchUser refreshes the cached profile. Failures are logged, not surfaced,
// and never alter authentication state; an expired token here is handled by
// the API client's 401 path, not treated as a logout trigger.
func (s *Store) FetchUser(ctx context.Context) {
	user, err := s.api.GetProfile(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to fetch user profile", "err", err)
		return
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}
