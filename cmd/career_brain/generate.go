package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appconfig "github.com/jonathan/career-navigator/internal/config"
	"github.com/jonathan/career-navigator/internal/llm"
	"github.com/jonathan/career-navigator/internal/pipeline"
	"github.com/jonathan/career-navigator/internal/server"
	"github.com/jonathan/career-navigator/internal/store"
	"github.com/jonathan/career-navigator/internal/types"
)

var (
	generateResume     string
	generateRole       string
	generateGitHub     string
	generateConfigPath string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a 30-day learning roadmap from a resume file",
	Long:  `Run the full generation pipeline once and print the resulting plan as JSON to stdout.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateResume, "resume", "", "Path to resume text file (required)")
	generateCmd.Flags().StringVar(&generateRole, "role", "", "Dream role to plan for (required)")
	generateCmd.Flags().StringVar(&generateGitHub, "github", "", "GitHub username for profile enrichment")
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg := appconfig.Config{
		Resume:         generateResume,
		DreamRole:      generateRole,
		GitHubUsername: generateGitHub,
	}
	if generateConfigPath != "" {
		fileCfg, err := appconfig.LoadConfig(generateConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(appconfig.FromEnv())
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.DreamRole == "" {
		return fmt.Errorf("--role is required")
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	resumeText, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	client, err := llm.NewClient(cmd.Context(), llm.DefaultGeminiConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	p := pipeline.New(pipeline.Options{
		Client: client,
		GitHub: server.NewGitHubEnricher(cfg.GitHubToken),
	})

	req := &types.GenerateRequest{
		ResumeText:     string(resumeText),
		DreamRole:      cfg.DreamRole,
		GitHubUsername: cfg.GitHubUsername,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	plan := p.Generate(cmd.Context(), req, store.DefaultSession)

	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
