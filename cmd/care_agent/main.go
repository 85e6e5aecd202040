// Package main provides the entry point for the care finder CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "care_agent",
	Short: "Oneida County healthcare provider directory",
	Long:  "Care finder classifies, matches and recommends healthcare providers in Oneida County, NY, via a REST API, a conversational intake assistant and ad-hoc search.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
