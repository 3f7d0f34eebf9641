package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/teemow/zoomctl/internal/logging"
)

var (
	logLevel  string
	logFormat string
	apiToken  string
)

// rootCmd represents the base command for the zoomctl application
var rootCmd = &cobra.Command{
	Use:   "zoomctl",
	Short: "Zoom API client and OAuth authorization helper",
	Long: `zoomctl is a convenience client for the Zoom REST API.

It manages meetings, registrants and users from the command line, and ships
an interactive OAuth wizard that captures the authorization code on a local
callback listener and exchanges it for access and refresh tokens.

Credentials are read from flags, the environment (ZOOM_ACCESS_TOKEN,
ZOOM_CLIENT_ID, ZOOM_CLIENT_SECRET) or an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(os.Stderr, logLevel, logFormat)
	},
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "zoomctl version %s\n" .Version}}`)

	// A missing .env file is fine; explicit environment always wins.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "Zoom access token (defaults to ZOOM_ACCESS_TOKEN or the saved token file)")

	rootCmd.AddCommand(newAuthorizeCmd())
	rootCmd.AddCommand(newRefreshCmd())
	rootCmd.AddCommand(newMeetingsCmd())
	rootCmd.AddCommand(newRegistrantsCmd())
	rootCmd.AddCommand(newUsersCmd())
	rootCmd.AddCommand(newVersionCmd())
}
