// Package logging provides structured logging utilities for the zoomctl application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "meetings.list")
//	logger.Info("listing meetings",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Debug("client created",
//	    slog.String("token", logging.SanitizeToken(token)))
//
// Access tokens and refresh tokens are never logged directly; only their
// length is recorded via SanitizeToken.
package logging
