package zoomauth

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freePort reserves an ephemeral port and releases it for the wizard to
// bind.
func freePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return port
}

// redirectingBrowser simulates the user granting consent: it reads the
// redirect URI and state out of the authorization URL and calls the
// callback listener the way the provider would.
func redirectingBrowser(t *testing.T, code string) func(string) error {
	t.Helper()
	return func(authURL string) error {
		u, err := url.Parse(authURL)
		require.NoError(t, err)

		redirectURI := u.Query().Get("redirect_uri")
		state := u.Query().Get("state")
		require.NotEmpty(t, redirectURI)
		require.NotEmpty(t, state)

		go func() {
			resp, err := http.Get(fmt.Sprintf("%s?code=%s&state=%s", redirectURI, code, state))
			if err == nil {
				resp.Body.Close()
			}
		}()
		return nil
	}
}

func TestRunWizardExchangesTokens(t *testing.T) {
	t.Setenv(EnvClientID, "")
	t.Setenv(EnvClientSecret, "")

	_, cfg := newTokenEndpoint(t)
	cfg.RedirectURI = ""

	var out bytes.Buffer
	result, err := RunWizard(context.Background(), WizardOptions{
		Config:      cfg,
		Port:        freePort(t),
		Timeout:     5 * time.Second,
		Input:       strings.NewReader(""),
		Output:      &out,
		OpenBrowser: redirectingBrowser(t, "valid-code"),
	})
	require.NoError(t, err)

	assert.Equal(t, "valid-code", result.Code)
	require.NotNil(t, result.Tokens)
	assert.Equal(t, "access-1", result.Tokens.AccessToken)
	assert.Equal(t, "refresh-1", result.Tokens.RefreshToken)
	assert.Contains(t, out.String(), "Visit the following URL")
}

func TestRunWizardCodeOnlyWithoutSecret(t *testing.T) {
	t.Setenv(EnvClientID, "")
	t.Setenv(EnvClientSecret, "")

	var out bytes.Buffer
	result, err := RunWizard(context.Background(), WizardOptions{
		Config: Config{ClientID: "client-id"},
		Port:   freePort(t),
		// Empty line for the client secret prompt.
		Input:       strings.NewReader("\n"),
		Output:      &out,
		Timeout:     5 * time.Second,
		OpenBrowser: redirectingBrowser(t, "bare-code"),
	})
	require.NoError(t, err)

	assert.Equal(t, "bare-code", result.Code)
	assert.Nil(t, result.Tokens, "no exchange without a client secret")
}

func TestRunWizardPromptsForCredentials(t *testing.T) {
	t.Setenv(EnvClientID, "")
	t.Setenv(EnvClientSecret, "")

	_, cfg := newTokenEndpoint(t)
	endpoint := cfg.endpoint

	var out bytes.Buffer
	result, err := RunWizard(context.Background(), WizardOptions{
		Config:      Config{endpoint: endpoint},
		Port:        freePort(t),
		Timeout:     5 * time.Second,
		Input:       strings.NewReader("client-id\nclient-secret\n"),
		Output:      &out,
		OpenBrowser: redirectingBrowser(t, "valid-code"),
	})
	require.NoError(t, err)

	require.NotNil(t, result.Tokens)
	assert.Equal(t, "access-1", result.Tokens.AccessToken)
	assert.Contains(t, out.String(), "Client ID: ")
	assert.Contains(t, out.String(), "Client Secret")
}

func TestRunWizardCredentialsFromEnvironment(t *testing.T) {
	t.Setenv(EnvClientID, "client-id")
	t.Setenv(EnvClientSecret, "client-secret")

	_, cfg := newTokenEndpoint(t)
	endpoint := cfg.endpoint

	result, err := RunWizard(context.Background(), WizardOptions{
		Config:      Config{endpoint: endpoint},
		Port:        freePort(t),
		Timeout:     5 * time.Second,
		Input:       strings.NewReader(""),
		Output:      &bytes.Buffer{},
		OpenBrowser: redirectingBrowser(t, "valid-code"),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Tokens)
}

func TestRunWizardTimeout(t *testing.T) {
	t.Setenv(EnvClientID, "")
	t.Setenv(EnvClientSecret, "")

	_, err := RunWizard(context.Background(), WizardOptions{
		Config:      Config{ClientID: "client-id", ClientSecret: "client-secret"},
		Port:        freePort(t),
		Timeout:     200 * time.Millisecond,
		Input:       strings.NewReader(""),
		Output:      &bytes.Buffer{},
		OpenBrowser: func(string) error { return nil }, // nobody grants consent
	})
	require.ErrorIs(t, err, ErrCallbackTimeout)
}

func TestRunWizardDeniedConsent(t *testing.T) {
	t.Setenv(EnvClientID, "")
	t.Setenv(EnvClientSecret, "")

	openBrowser := func(authURL string) error {
		u, err := url.Parse(authURL)
		require.NoError(t, err)
		redirectURI := u.Query().Get("redirect_uri")
		state := u.Query().Get("state")
		go func() {
			resp, err := http.Get(redirectURI + "?error=access_denied&state=" + state)
			if err == nil {
				resp.Body.Close()
			}
		}()
		return nil
	}

	_, err := RunWizard(context.Background(), WizardOptions{
		Config:      Config{ClientID: "client-id", ClientSecret: "client-secret"},
		Port:        freePort(t),
		Timeout:     5 * time.Second,
		Input:       strings.NewReader(""),
		Output:      &bytes.Buffer{},
		OpenBrowser: openBrowser,
	})
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "access_denied", authErr.Code)
}

func TestRunWizardMissingClientID(t *testing.T) {
	t.Setenv(EnvClientID, "")
	t.Setenv(EnvClientSecret, "")

	_, err := RunWizard(context.Background(), WizardOptions{
		Port:    freePort(t),
		Input:   strings.NewReader("\n\n"),
		Output:  &bytes.Buffer{},
		Timeout: time.Second,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client id is required")
}
