// Package cmd implements the command-line interface for zoomctl.
//
// This package provides the following commands:
//   - authorize: Run the interactive OAuth wizard to obtain tokens
//   - refresh: Exchange a refresh token for a new token pair
//   - meetings: List, inspect, create and delete meetings
//   - registrants: Manage meeting registrants
//   - users: List and delete account users
//   - version: Display version information
package cmd
