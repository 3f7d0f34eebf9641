// Package zoomauth implements the OAuth2 authorization-code flow for the
// Zoom API.
//
// The flow has three pieces:
//
//   - Config.Exchange and Config.Refresh talk to the token endpoint with
//     HTTP Basic client authentication and return a TokenSet.
//   - CallbackServer runs a short-lived localhost listener that captures
//     the authorization code from the provider's redirect, then releases
//     its port.
//   - RunWizard ties both together into the interactive flow used by
//     `zoomctl authorize`.
//
// Zoom rotates refresh tokens on every refresh. The token returned by
// Refresh invalidates the one that was submitted, so callers must persist
// the new pair immediately.
package zoomauth
