package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	apiURL     string
	apiToken   string
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "biodatactl",
	Short: "Operator tool for the biodata API",
	Long: `biodatactl manages the biodata service.

Database commands (migrate, create-admin, promote, demote) read the same
configuration as the server: config.yaml, .env and DB_* variables.
The biodata commands talk to a running server over HTTP.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("BIODATA_API_URL", "http://localhost:5000"), "Base URL of the biodata API")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", os.Getenv("BIODATA_API_TOKEN"), "Bearer token for API commands")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
