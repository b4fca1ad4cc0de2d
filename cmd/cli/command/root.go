package command

// root.go defines the root command for the cineverse cli.
// global flags live here.

import (
	"fmt"
	"os"

	"cineverse/cmd/cli/authentication"
	"cineverse/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:8080"

var apiURL string // Global flag for API server URL

var rootCmd = &cobra.Command{
	Use:   "cineverse",
	Short: "cineverse - CineVerse Command Line Interface",
	Long: `cineverse talks to a CineVerse API server. Use it to:
- Browse trending, latest and per-genre movies, or search the catalog
- Keep a watchlist
- Curate movie collections
- Read and write reviews

Use "cineverse [command] --help" to see all available commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	defaultURL := os.Getenv("CINEVERSE_API")
	if defaultURL == "" {
		defaultURL = defaultAPIURL
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "API server URL (env CINEVERSE_API)")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(movieCmd)
	rootCmd.AddCommand(watchlistCmd)
	rootCmd.AddCommand(collectionCmd)
	rootCmd.AddCommand(reviewCmd)
}

func newClient() *client.HTTPClient {
	return client.NewHTTPClient(apiURL)
}

// authenticatedClient attaches the stored session token.
func authenticatedClient() (*client.HTTPClient, error) {
	creds, err := authentication.LoadCredentials()
	if err != nil {
		return nil, err
	}
	c := newClient()
	c.SetToken(creds.Token)
	return c, nil
}

func success(cmd *cobra.Command, format string, args ...any) {
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ "+format+"\n", args...)
}

func heading(cmd *cobra.Command, format string, args ...any) {
	color.New(color.Bold, color.FgCyan).Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
