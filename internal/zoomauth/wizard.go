package zoomauth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/teemow/zoomctl/internal/logging"
)

const (
	defaultWizardPort    = 3000
	defaultWizardTimeout = 5 * time.Minute
)

// WizardOptions configure the interactive authorization wizard.
type WizardOptions struct {
	// Config carries client id, secret and redirect URI. Missing
	// credentials are read from ZOOM_CLIENT_ID / ZOOM_CLIENT_SECRET, then
	// prompted for on Input.
	Config Config

	// Port for the local callback listener. Defaults to 3000.
	Port int

	// Timeout for the callback to arrive. Defaults to 5 minutes.
	Timeout time.Duration

	// Input and Output for interactive prompts. Default to stdin/stdout.
	Input  io.Reader
	Output io.Writer

	// OpenBrowser opens the authorization URL. Defaults to launching the
	// platform browser; the URL is always printed as a fallback.
	OpenBrowser func(url string) error

	Logger *slog.Logger
}

// WizardResult is the outcome of a wizard run.
type WizardResult struct {
	// Code is the captured authorization code.
	Code string

	// Tokens is the exchanged token set. Nil when no client secret was
	// supplied, in which case only the code is returned.
	Tokens *TokenSet
}

// RunWizard walks a user through the OAuth2 authorization-code flow:
// it prompts for missing credentials, starts the local callback listener,
// directs the user's browser to Zoom's consent page, waits for the
// redirect and exchanges the captured code for tokens.
func RunWizard(ctx context.Context, opts WizardOptions) (*WizardResult, error) {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Port == 0 {
		opts.Port = defaultWizardPort
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultWizardTimeout
	}
	if opts.OpenBrowser == nil {
		opts.OpenBrowser = openBrowser
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg := opts.Config
	reader := bufio.NewReader(opts.Input)

	if cfg.ClientID == "" {
		cfg.ClientID = os.Getenv(EnvClientID)
	}
	if cfg.ClientSecret == "" {
		cfg.ClientSecret = os.Getenv(EnvClientSecret)
	}
	if cfg.ClientID == "" {
		fmt.Fprintln(opts.Output, "Welcome to the interactive Zoom authorization wizard!")
		fmt.Fprintln(opts.Output)
		var err error
		cfg.ClientID, err = prompt(reader, opts.Output, "Client ID: ")
		if err != nil {
			return nil, err
		}
	}
	if cfg.ClientSecret == "" {
		var err error
		cfg.ClientSecret, err = prompt(reader, opts.Output, "Client Secret (leave empty to only capture the code): ")
		if err != nil {
			return nil, err
		}
	}
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("client id is required")
	}

	callbackPath := DefaultCallbackPath
	if cfg.RedirectURI != "" {
		u, err := url.Parse(cfg.RedirectURI)
		if err != nil {
			return nil, fmt.Errorf("invalid redirect URI: %w", err)
		}
		if u.Path != "" {
			callbackPath = u.Path
		}
	}

	state := NewState()
	server, err := NewCallbackServer(fmt.Sprintf("127.0.0.1:%d", opts.Port), callbackPath, state)
	if err != nil {
		return nil, err
	}
	// Wait closes the server on every path; this covers early returns.
	defer server.Close()

	if cfg.RedirectURI == "" {
		cfg.RedirectURI = fmt.Sprintf("http://localhost:%d%s", opts.Port, callbackPath)
	}

	authURL := cfg.AuthCodeURL(state)
	fmt.Fprintln(opts.Output, "Visit the following URL to authorize the application:")
	fmt.Fprintln(opts.Output)
	fmt.Fprintf(opts.Output, "  %s\n", authURL)
	fmt.Fprintln(opts.Output)

	if err := opts.OpenBrowser(authURL); err != nil {
		logger.Warn("could not open browser, please open the URL manually",
			logging.Err(err))
	}

	fmt.Fprintf(opts.Output, "Waiting for the OAuth callback on %s ...\n", server.RedirectURI())

	code, err := server.Wait(ctx, opts.Timeout)
	if err != nil {
		return nil, err
	}

	result := &WizardResult{Code: code}
	if cfg.ClientSecret == "" {
		return result, nil
	}

	tokens, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}
	result.Tokens = tokens
	return result, nil
}

func prompt(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return "", nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
