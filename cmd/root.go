package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagConfigPath string

var rootCmd = &cobra.Command{
	Use:          "refsearch",
	Short:        "refsearch — keyword search over local reference docs and patterns",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `refsearch ranks local Markdown references and MDX pattern files by how well
they match a keyword query, and prints the best matches with a preview.

Defaults come from ~/.refsearch/config.yaml and REFSEARCH_* environment variables.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Config file (default ~/.refsearch/config.yaml)")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printErr(os.Stderr, fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}
