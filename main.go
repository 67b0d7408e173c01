package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/briangreenhill/fitadvisor/advisor"
	"github.com/briangreenhill/fitadvisor/deepseek"
	"github.com/briangreenhill/fitadvisor/internal/cli"
	"github.com/briangreenhill/fitadvisor/internal/config"
)

func main() {
	if err := runCLI(os.Args[1:]); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runCLI(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "help", "--help", "-h":
			fmt.Println("Usage: fitadvisor [options]")
			fmt.Println("Options:")
			fmt.Println("  --help, -h          Show this help message")
			fmt.Println("  --version, -v       Show version")
			fmt.Println("  DEEPSEEK_API_KEY    DeepSeek API key (optional; rule-only mode without it)")
			fmt.Println("  DEEPSEEK_BASE_URL   API base URL (optional)")
			fmt.Println("  DEEPSEEK_MODEL      Model name (optional, default deepseek-chat)")
			return nil
		case "version", "--version", "-v":
			fmt.Println("FitAdvisor v0.1.0")
			return nil
		default:
			return fmt.Errorf("unknown command: %s", args[0])
		}
	}

	return runInteractive()
}

func runInteractive() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	opts := []advisor.Option{advisor.WithLogger(logger)}
	if cfg.HasDeepSeek() {
		client, err := deepseek.New(cfg.DeepSeek.APIKey,
			deepseek.WithBaseURL(cfg.DeepSeek.BaseURL),
			deepseek.WithModel(cfg.DeepSeek.Model),
			deepseek.WithTimeout(cfg.DeepSeek.Timeout),
		)
		if err != nil {
			return fmt.Errorf("deepseek client: %w", err)
		}
		opts = append(opts, advisor.WithChatClient(client))
	}

	return cli.Run(context.Background(), advisor.New(opts...))
}
