package zoomauth

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/teemow/zoomctl/internal/logging"
)

// DefaultCallbackPath is the redirect path registered for the Zoom app
// when none is configured.
const DefaultCallbackPath = "/integrations/zoom"

// callbackResult carries the outcome of the one redirect the server
// accepts.
type callbackResult struct {
	code string
	err  error
}

// CallbackServer captures the authorization code from the provider's
// redirect to localhost.
//
// It accepts exactly one callback request. Wait releases the listening
// port on every exit path (redirect received, timeout, cancellation), so
// repeated wizard runs never leak sockets.
type CallbackServer struct {
	listener net.Listener
	server   *http.Server
	results  chan callbackResult
	state    string
	path     string
	logger   *slog.Logger

	closeOnce sync.Once
	closeErr  error
}

// NewCallbackServer binds a listener on addr (for example "127.0.0.1:3000",
// or port 0 for an ephemeral port) and starts serving the redirect path.
// A non-empty state is required to match on the redirect; mismatches are
// rejected.
func NewCallbackServer(addr, path, state string) (*CallbackServer, error) {
	if path == "" {
		path = DefaultCallbackPath
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to bind callback listener on %s: %w", addr, err)
	}

	s := &CallbackServer{
		listener: listener,
		results:  make(chan callbackResult, 1),
		state:    state,
		path:     path,
		logger:   slog.Default(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+path, s.handleRedirect)
	s.server = &http.Server{Handler: mux}

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			select {
			case s.results <- callbackResult{err: err}:
			default:
			}
		}
	}()

	s.logger.Info("callback server listening",
		logging.Service("zoomauth"),
		slog.String("url", s.RedirectURI()))

	return s, nil
}

// Addr returns the bound listener address, including the resolved port
// when the server was started with port 0.
func (s *CallbackServer) Addr() string {
	return s.listener.Addr().String()
}

// RedirectURI returns the redirect URI served by this listener.
func (s *CallbackServer) RedirectURI() string {
	return "http://" + s.Addr() + s.path
}

// Wait blocks until the provider redirects back, the timeout elapses, or
// ctx is cancelled, and returns the captured authorization code. The
// listener is closed before Wait returns, whatever the outcome.
func (s *CallbackServer) Wait(ctx context.Context, timeout time.Duration) (string, error) {
	defer s.Close()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-s.results:
		return result.code, result.err
	case <-timer.C:
		return "", ErrCallbackTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close shuts the listener down. Safe to call more than once; Wait calls
// it on every path.
func (s *CallbackServer) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.server.Close()
	})
	return s.closeErr
}

func (s *CallbackServer) handleRedirect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var result callbackResult
	switch {
	case query.Get("error") != "":
		result.err = &AuthError{
			Code:        query.Get("error"),
			Description: query.Get("error_description"),
		}
	case s.state != "" && query.Get("state") != s.state:
		result.err = &AuthError{
			Code:        "invalid_state",
			Description: "state parameter in callback does not match the authorization request",
		}
	case query.Get("code") == "":
		result.err = &AuthError{
			Code:        "invalid_request",
			Description: "authorization code missing in callback request",
		}
	default:
		result.code = query.Get("code")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if result.err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "<html><body><p>Authorization failed: %s. You can close this page.</p></body></html>",
			html.EscapeString(result.err.Error()))
	} else {
		fmt.Fprint(w, "<html><body><p>Authorization complete. You can close this page.</p></body></html>")
	}

	// Only the first callback counts; late arrivals race against Close.
	select {
	case s.results <- result:
	default:
	}
}
