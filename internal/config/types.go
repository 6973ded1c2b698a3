package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGoogle ProviderType = "google"
	ProviderOllama ProviderType = "ollama"
)

// Config is the top-level pathlight configuration, corresponding to
// .pathlight.yml.
type Config struct {
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	EmbeddingProvider ProviderType `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string       `yaml:"embedding_model" koanf:"embedding_model"`
	DataDir           string       `yaml:"data_dir" koanf:"data_dir"`
	Port              int          `yaml:"port" koanf:"port"`
	RequestsPerMinute int          `yaml:"requests_per_minute" koanf:"requests_per_minute"`
	Engine            EngineConfig `yaml:"engine" koanf:"engine"`
}

// EngineConfig holds the tunables of the planning and analytics engine.
type EngineConfig struct {
	CheckpointInterval       int `yaml:"checkpoint_interval" koanf:"checkpoint_interval"`
	TrendWindow              int `yaml:"trend_window" koanf:"trend_window"`
	TrendHistory             int `yaml:"trend_history" koanf:"trend_history"`
	GenerationTimeoutSeconds int `yaml:"generation_timeout_seconds" koanf:"generation_timeout_seconds"`
}
