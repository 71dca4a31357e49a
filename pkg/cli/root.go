// Package cli wires the cobra command surface: the default interactive
// evaluation session plus the stats, history and check subcommands.
package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"lifesim/pkg/config"
	"lifesim/pkg/evaluator"
	"lifesim/pkg/gemini"
	"lifesim/pkg/openai"
	"lifesim/pkg/session"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "lifesim",
	Short: "Track five personal-development stats from your daily log",
	Long: `lifesim is a single-user text-based life sim. Type a free-text log of
your day; an AI evaluator decides which of the five stats (Knowledge,
Charm, Guts, Health, Kindness) you developed and awards 1-3 points each.
Stats persist in a local JSON file between sessions.`,
	SilenceUsage: true,
	RunE:         runSession,
}

// Execute runs the root command. A non-nil error means the process should
// exit non-zero.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yml", "Path to the yaml config file")
}

// setup loads config.yml and the .env secrets.
func setup() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return cfg, nil
}

// newProvider builds the evaluator selected by the config.
func newProvider(cfg *config.Config) (evaluator.Evaluator, error) {
	switch cfg.Provider {
	case "", config.ProviderGemini:
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("missing required environment variable: GEMINI_API_KEY")
		}
		return gemini.NewClient(key, cfg.ModelSettings.GeminiModel), nil

	case config.ProviderOpenAI:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("missing required environment variable: OPENAI_API_KEY")
		}
		return openai.NewClient(
			key,
			cfg.ModelSettings.OpenAIBaseURL,
			cfg.ModelSettings.OpenAIModel,
			cfg.ModelSettings.Temperature,
			cfg.ModelSettings.TopP,
		), nil

	default:
		return nil, fmt.Errorf("unknown provider %q in config", cfg.Provider)
	}
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}

	s := session.New(provider, cfg.Storage.StatsFile, cfg.Storage.JournalFile, os.Stdin, os.Stdout)
	return s.Run()
}
