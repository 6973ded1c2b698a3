package config

// modelPresets maps each provider to its default chat and embedding models.
var modelPresets = map[ProviderType]struct {
	Model          string
	EmbeddingModel string
}{
	ProviderOpenAI: {Model: "gpt-4o", EmbeddingModel: "text-embedding-3-small"},
	ProviderGoogle: {Model: "gemini-2.0-flash", EmbeddingModel: "text-embedding-3-small"},
	ProviderOllama: {Model: "llama3", EmbeddingModel: "nomic-embed-text"},
}

// DefaultModels returns the default chat and embedding models for a provider.
// Unknown providers get the OpenAI presets.
func DefaultModels(provider ProviderType) (model, embeddingModel string) {
	preset, ok := modelPresets[provider]
	if !ok {
		preset = modelPresets[ProviderOpenAI]
	}
	return preset.Model, preset.EmbeddingModel
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:          ProviderOpenAI,
		Model:             "gpt-4o",
		EmbeddingProvider: ProviderOpenAI,
		EmbeddingModel:    "text-embedding-3-small",
		DataDir:           ".pathlight",
		Port:              8080,
		RequestsPerMinute: 20,
		Engine: EngineConfig{
			CheckpointInterval:       3,
			TrendWindow:              7,
			TrendHistory:             30,
			GenerationTimeoutSeconds: 60,
		},
	}
}
