package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-navigator/internal/llm"
	"github.com/jonathan/career-navigator/internal/pipeline"
	"github.com/jonathan/career-navigator/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generating and adapting learning roadmaps.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8000, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	// GitHub token is optional; without it profile enrichment runs unauthenticated.
	githubToken := os.Getenv("GITHUB_TOKEN")

	client, err := llm.NewClient(cmd.Context(), llm.DefaultGeminiConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	p := pipeline.New(pipeline.Options{
		Client: client,
		GitHub: server.NewGitHubEnricher(githubToken),
	})

	srv := server.New(server.Config{Port: servePort}, p)
	return srv.Start()
}
