package zoomauth

import (
	"errors"
	"fmt"
)

// TokenSet is the result of a successful token exchange or refresh.
//
// The library does not persist tokens; after a refresh the previous
// refresh token is invalid, so callers must store the returned one or
// lose the ability to refresh again.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope,omitempty"`
}

// AuthError is an error reported by the authorization server, either in a
// token endpoint response or as error/error_description parameters on the
// redirect. Callers should prompt for re-authorization instead of
// retrying: authorization codes are single-use.
type AuthError struct {
	// Code is the OAuth2 error code, e.g. "invalid_grant" or
	// "access_denied".
	Code string

	// Description is the provider's human-readable description, if any.
	Description string

	// StatusCode is the HTTP status of the token endpoint response.
	// Zero for errors delivered on the redirect.
	StatusCode int
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("authorization failed: %s: %s", e.Code, e.Description)
	}
	return fmt.Sprintf("authorization failed: %s", e.Code)
}

// ErrCallbackTimeout is returned when no OAuth redirect arrives within the
// callback server's configured window.
var ErrCallbackTimeout = errors.New("timed out waiting for OAuth callback")
