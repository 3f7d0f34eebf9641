package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/zoomctl/internal/zoomauth"
)

func newRefreshCmd() *cobra.Command {
	var (
		clientID     string
		clientSecret string
		refreshToken string
		save         bool
	)

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Exchange a refresh token for a new token pair",
		Long: `Obtain a fresh access token using a refresh token.

Zoom rotates refresh tokens: the submitted token becomes invalid the moment
the refresh succeeds. Use --save to persist the new pair to the zoomctl
token file, or store the printed refresh token yourself.

Without --refresh-token the token saved by 'zoomctl authorize --save' is
used, and the rotated pair is written back automatically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clientID == "" {
				clientID = os.Getenv(zoomauth.EnvClientID)
			}
			if clientSecret == "" {
				clientSecret = os.Getenv(zoomauth.EnvClientSecret)
			}
			if clientID == "" || clientSecret == "" {
				return fmt.Errorf("client credentials required: pass --client-id/--client-secret or set %s and %s",
					zoomauth.EnvClientID, zoomauth.EnvClientSecret)
			}

			fromFile := false
			if refreshToken == "" {
				saved, err := zoomauth.LoadTokens()
				if err != nil {
					return fmt.Errorf("no refresh token: pass --refresh-token or run 'zoomctl authorize --save' first: %w", err)
				}
				refreshToken = saved.RefreshToken
				fromFile = true
			}

			cfg := zoomauth.Config{ClientID: clientID, ClientSecret: clientSecret}
			tokens, err := cfg.Refresh(cmd.Context(), refreshToken)
			if err != nil {
				return fmt.Errorf("refresh failed: %w", err)
			}

			printTokens(tokens)

			if save || fromFile {
				if err := zoomauth.SaveTokens(tokens); err != nil {
					return fmt.Errorf("failed to save rotated tokens: %w", err)
				}
				path, _ := zoomauth.TokenFilePath()
				fmt.Printf("Tokens saved to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "Zoom app client ID (default: ZOOM_CLIENT_ID)")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "Zoom app client secret (default: ZOOM_CLIENT_SECRET)")
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "Refresh token to exchange (default: the saved token file)")
	cmd.Flags().BoolVar(&save, "save", false, "Save the rotated tokens to the zoomctl token file")

	return cmd
}
