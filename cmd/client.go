package cmd

import (
	"fmt"
	"os"

	"github.com/teemow/zoomctl/internal/zoom"
	"github.com/teemow/zoomctl/internal/zoomauth"
)

// newZoomClient builds an API client from the first available token:
// the --token flag, ZOOM_ACCESS_TOKEN, then the saved token file.
func newZoomClient() (*zoom.Client, error) {
	token := apiToken
	if token == "" {
		token = os.Getenv(zoom.EnvAccessToken)
	}
	if token == "" {
		if set, err := zoomauth.LoadTokens(); err == nil {
			token = set.AccessToken
		}
	}
	if token == "" {
		return nil, fmt.Errorf("no access token available: pass --token, set %s, or run 'zoomctl authorize --save'", zoom.EnvAccessToken)
	}
	return zoom.NewClient(token)
}
