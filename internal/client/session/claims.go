package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is what the client can read out of an access token for display
// purposes. The parse is unverified: only the server validates signatures,
// the client just shows the subject and expiry.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

var errNoAccessToken = errors.New("no access token")

// Claims decodes the current access token's registered claims.
func (s *Store) Claims() (*TokenClaims, error) {
	token := s.AccessToken()
	if token == "" {
		return nil, errNoAccessToken
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}

	out := &TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
