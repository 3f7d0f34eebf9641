package zoomauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	// AuthorizeURL is Zoom's OAuth2 authorization endpoint.
	AuthorizeURL = "https://zoom.us/oauth/authorize"

	// TokenURL is Zoom's OAuth2 token endpoint.
	TokenURL = "https://zoom.us/oauth/token"

	// EnvClientID and EnvClientSecret name the environment variables the
	// CLI falls back to for app credentials.
	EnvClientID     = "ZOOM_CLIENT_ID"
	EnvClientSecret = "ZOOM_CLIENT_SECRET"
)

// Config holds the OAuth2 app credentials for the authorization-code flow.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string

	// endpoint overrides the Zoom endpoints. Used by tests.
	endpoint *oauth2.Endpoint
}

func (c Config) oauthConfig() *oauth2.Config {
	endpoint := oauth2.Endpoint{
		AuthURL:  AuthorizeURL,
		TokenURL: TokenURL,
		// Zoom authenticates the client with HTTP Basic auth.
		AuthStyle: oauth2.AuthStyleInHeader,
	}
	if c.endpoint != nil {
		endpoint = *c.endpoint
	}

	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURI,
		Endpoint:     endpoint,
	}
}

// NewState returns a fresh random value for the OAuth2 state parameter.
func NewState() string {
	return uuid.NewString()
}

// AuthCodeURL returns the URL the user must visit to grant consent. The
// provider echoes state back on the redirect, where the callback server
// verifies it.
func (c Config) AuthCodeURL(state string) string {
	return c.oauthConfig().AuthCodeURL(state)
}

// Exchange trades an authorization code for a TokenSet with a single
// Basic-authenticated POST to the token endpoint.
//
// Codes are single-use: a failed exchange is never retried because the
// code is already spent. Provider rejections surface as *AuthError,
// transport failures as plain wrapped errors.
func (c Config) Exchange(ctx context.Context, code string) (*TokenSet, error) {
	if code == "" {
		return nil, fmt.Errorf("authorization code cannot be empty")
	}

	token, err := c.oauthConfig().Exchange(ctx, code)
	if err != nil {
		return nil, wrapTokenError(err)
	}
	return newTokenSet(token), nil
}

// Refresh obtains a fresh TokenSet using a refresh token.
//
// Zoom rotates refresh tokens: the one submitted here is invalid as soon
// as the call succeeds. Persist TokenSet.RefreshToken from the result or
// future refreshes will fail.
func (c Config) Refresh(ctx context.Context, refreshToken string) (*TokenSet, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token cannot be empty")
	}

	source := c.oauthConfig().TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, wrapTokenError(err)
	}

	set := newTokenSet(token)
	if set.RefreshToken == "" {
		// TokenSource keeps the old refresh token when the provider does
		// not rotate; carry it so callers always get a usable pair.
		set.RefreshToken = refreshToken
	}
	return set, nil
}

func newTokenSet(token *oauth2.Token) *TokenSet {
	set := &TokenSet{
		AccessToken:  token.AccessToken,
		TokenType:    strings.ToLower(token.TokenType),
		RefreshToken: token.RefreshToken,
		ExpiresIn:    token.ExpiresIn,
	}
	if set.TokenType == "" {
		set.TokenType = "bearer"
	}
	if set.ExpiresIn == 0 && !token.Expiry.IsZero() {
		set.ExpiresIn = int64(time.Until(token.Expiry).Round(time.Second).Seconds())
	}
	if scope, ok := token.Extra("scope").(string); ok {
		set.Scope = scope
	}
	return set
}

// wrapTokenError turns provider rejections into *AuthError and leaves
// transport failures untouched.
func wrapTokenError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if !errors.As(err, &retrieveErr) {
		return fmt.Errorf("token request failed: %w", err)
	}

	authErr := &AuthError{
		Code:        retrieveErr.ErrorCode,
		Description: retrieveErr.ErrorDescription,
	}
	if retrieveErr.Response != nil {
		authErr.StatusCode = retrieveErr.Response.StatusCode
	}
	if authErr.Code == "" {
		authErr.Code = "invalid_response"
		authErr.Description = strings.TrimSpace(string(retrieveErr.Body))
	}
	return authErr
}
