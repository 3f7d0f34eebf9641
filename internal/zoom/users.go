package zoom

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListUsers returns all users on the account with the given status
// ("active", "inactive" or "pending"), following next_page_token until
// the listing is exhausted.
func (c *Client) ListUsers(ctx context.Context, status string) ([]User, error) {
	var all []User
	pageToken := ""
	for {
		query := url.Values{}
		if status != "" {
			query.Set("status", status)
		}
		if pageToken != "" {
			query.Set("next_page_token", pageToken)
		}

		var page userList
		if err := c.do(ctx, http.MethodGet, "/users", query, nil, &page); err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		all = append(all, page.Users...)

		if page.NextPageToken == "" {
			return all, nil
		}
		pageToken = page.NextPageToken
	}
}

// GetUser retrieves a user by ID or email address.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, nil, &u); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// DeleteUser permanently removes a user from the account.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	query := url.Values{}
	query.Set("action", "delete")
	if err := c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(userID), query, nil, nil); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
