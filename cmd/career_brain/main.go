// Package main provides the entry point for the Career Brain HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_brain",
	Short: "Career Brain HTTP API Server",
	Long:  "Career Brain analyzes a resume against a dream role and generates a personalized 30-day learning plan with a flagship project, via REST API or one-shot CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
