package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pathlight/pathlight/internal/config"
	"github.com/pathlight/pathlight/internal/db"
	"github.com/pathlight/pathlight/internal/embeddings"
	"github.com/pathlight/pathlight/internal/learner"
	"github.com/pathlight/pathlight/internal/llm"
	"github.com/pathlight/pathlight/internal/planner"
	"github.com/pathlight/pathlight/internal/progress"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `pathlight init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openDatabase opens the SQLite database under the configured data
// directory.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	return db.Open(filepath.Join(cfg.DataDir, "pathlight.db"))
}

// createProviderFromConfig builds the configured LLM provider wrapped in the
// rate limiter. A missing API key is reported rather than deferred to the
// first request.
func createProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	if envVar := config.APIKeyEnvVar(cfg.Provider); envVar != "" && os.Getenv(envVar) == "" {
		return nil, fmt.Errorf("%s environment variable is required for provider %s", envVar, cfg.Provider)
	}
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, err
	}
	if cfg.RequestsPerMinute > 0 {
		provider = llm.NewRateLimitedProvider(provider, cfg.RequestsPerMinute)
	}
	return provider, nil
}

// createEmbedderFromConfig creates an embeddings.Embedder based on config.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	provider := cfg.EmbeddingProvider
	if provider == "" {
		provider = cfg.Provider
	}
	model := cfg.EmbeddingModel
	if model == "" {
		_, model = config.DefaultModels(provider)
	}

	switch provider {
	case config.ProviderOllama:
		return embeddings.NewEmbedder("ollama", model)
	default:
		// Google has no embedder here; OpenAI serves embeddings for it.
		return embeddings.NewEmbedder("openai", model)
	}
}

// buildEngine wires the planning and analytics components from config.
func buildEngine(cfg *config.Config, database *db.DB, provider llm.Provider) (*learner.Aggregator, *planner.Orchestrator, *planner.Store, *progress.Tracker) {
	pathStore := planner.NewStore(database)
	aggregator := learner.NewAggregator(learner.NewStore(database), pathStore)
	orchestrator := planner.NewOrchestrator(provider, cfg.Model, planner.Options{
		CheckpointInterval: cfg.Engine.CheckpointInterval,
		GenerationTimeout:  time.Duration(cfg.Engine.GenerationTimeoutSeconds) * time.Second,
		Verbose:            verbose,
	})
	tracker := progress.NewTracker(progress.NewStore(database), pathStore, cfg.Engine.TrendWindow, cfg.Engine.TrendHistory)
	return aggregator, orchestrator, pathStore, tracker
}
