// Package credential provides the bearer token used against the issue
// tracker. The token is pre-issued; it is set once at startup and only read
// afterwards.
package credential

import (
	"errors"
	"strings"

	"golang.org/x/oauth2"
)

// ErrMissingToken is returned when no personal access token is configured.
var ErrMissingToken = errors.New("personal access token is empty")

// Provider hands out the bearer credential.
type Provider interface {
	oauth2.TokenSource
}

// Static returns a Provider that always yields the given personal access
// token as a Bearer token.
func Static(pat string) (Provider, error) {
	pat = strings.TrimSpace(pat)
	if pat == "" {
		return nil, ErrMissingToken
	}
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: pat,
		TokenType:   "Bearer",
	}), nil
}
