package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/zoomctl/internal/zoomauth"
)

func newAuthorizeCmd() *cobra.Command {
	var (
		clientID     string
		clientSecret string
		redirectURI  string
		port         int
		timeout      time.Duration
		save         bool
	)

	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Run the interactive OAuth authorization wizard",
		Long: `Walk through the Zoom OAuth2 authorization-code flow.

The wizard starts a short-lived HTTP listener on localhost, opens the Zoom
consent page in your browser, captures the authorization code from the
redirect and exchanges it for access and refresh tokens.

Client credentials come from the flags below, or from the ZOOM_CLIENT_ID
and ZOOM_CLIENT_SECRET environment variables. When no client secret is
available the wizard only prints the captured authorization code.

The redirect URI (default http://localhost:<port>/integrations/zoom) must
be registered in your Zoom app settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := zoomauth.RunWizard(cmd.Context(), zoomauth.WizardOptions{
				Config: zoomauth.Config{
					ClientID:     clientID,
					ClientSecret: clientSecret,
					RedirectURI:  redirectURI,
				},
				Port:    port,
				Timeout: timeout,
			})
			if err != nil {
				return fmt.Errorf("authorization failed: %w", err)
			}

			if result.Tokens == nil {
				fmt.Printf("Authorization code: %s\n", result.Code)
				fmt.Println("No client secret supplied; exchange the code yourself before it expires.")
				return nil
			}

			printTokens(result.Tokens)

			if save {
				if err := zoomauth.SaveTokens(result.Tokens); err != nil {
					return fmt.Errorf("failed to save tokens: %w", err)
				}
				path, _ := zoomauth.TokenFilePath()
				fmt.Printf("Tokens saved to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "Zoom app client ID (default: ZOOM_CLIENT_ID)")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "Zoom app client secret (default: ZOOM_CLIENT_SECRET)")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "Redirect URI registered for the app (default: http://localhost:<port>/integrations/zoom)")
	cmd.Flags().IntVar(&port, "port", 3000, "Port for the local callback listener")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "How long to wait for the OAuth callback")
	cmd.Flags().BoolVar(&save, "save", false, "Save the tokens to the zoomctl token file")

	return cmd
}

func printTokens(set *zoomauth.TokenSet) {
	fmt.Printf("Access token:  %s\n", set.AccessToken)
	fmt.Printf("Refresh token: %s\n", set.RefreshToken)
	fmt.Printf("Token type:    %s\n", set.TokenType)
	fmt.Printf("Expires in:    %ds\n", set.ExpiresIn)
	if set.Scope != "" {
		fmt.Printf("Scope:         %s\n", set.Scope)
	}
}
