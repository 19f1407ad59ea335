// Package main provides the entry point for the ATS résumé scorer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resume_scorer",
	Short:         "ATS résumé parameter scoring engine",
	Long:          "resume_scorer evaluates a parsed résumé against a catalog of ATS parameters and reports a 0-100 score with category breakdown and feedback.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	jsonLogs   bool
	debugLogs  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML, JSON or TOML config file")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
