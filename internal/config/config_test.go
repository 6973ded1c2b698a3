package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("expected default provider %q, got %q", ProviderOpenAI, cfg.Provider)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Engine.CheckpointInterval != 3 {
		t.Errorf("expected default checkpoint_interval 3, got %d", cfg.Engine.CheckpointInterval)
	}
	if cfg.Engine.TrendWindow != 7 {
		t.Errorf("expected default trend_window 7, got %d", cfg.Engine.TrendWindow)
	}
	if cfg.Engine.TrendHistory != 30 {
		t.Errorf("expected default trend_history 30, got %d", cfg.Engine.TrendHistory)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.pathlight.yml")

	original := DefaultConfig()
	original.Provider = ProviderOllama
	original.Model = "llama3"
	original.EmbeddingProvider = ProviderOllama
	original.EmbeddingModel = "nomic-embed-text"
	original.Port = 9090
	original.Engine.TrendWindow = 14

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Provider != original.Provider {
		t.Errorf("provider: got %q, want %q", loaded.Provider, original.Provider)
	}
	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.Engine.TrendWindow != original.Engine.TrendWindow {
		t.Errorf("trend_window: got %d, want %d", loaded.Engine.TrendWindow, original.Engine.TrendWindow)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("expected default provider, got %q", cfg.Provider)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("PATHLIGHT_PROVIDER", "ollama")
	os.Setenv("PATHLIGHT_ENGINE__TREND_WINDOW", "5")
	defer os.Unsetenv("PATHLIGHT_PROVIDER")
	defer os.Unsetenv("PATHLIGHT_ENGINE__TREND_WINDOW")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Provider != ProviderOllama {
		t.Errorf("env override failed: got %q, want %q", loaded.Provider, ProviderOllama)
	}
	if loaded.Engine.TrendWindow != 5 {
		t.Errorf("nested env override failed: got %d, want 5", loaded.Engine.TrendWindow)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalidProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "invalid"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid provider")
	}
}

func TestValidateEmptyModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty model")
	}
}

func TestValidateEmptyDataDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty data_dir")
	}
}

func TestValidateBadPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestValidateEngineBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.CheckpointInterval = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero checkpoint_interval")
	}

	cfg = DefaultConfig()
	cfg.Engine.TrendWindow = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero trend_window")
	}

	cfg = DefaultConfig()
	cfg.Engine.TrendHistory = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative trend_history")
	}
}

func TestDefaultModels(t *testing.T) {
	model, embedding := DefaultModels(ProviderOllama)
	if model != "llama3" {
		t.Errorf("expected llama3, got %q", model)
	}
	if embedding != "nomic-embed-text" {
		t.Errorf("expected nomic-embed-text, got %q", embedding)
	}

	// Unknown provider falls back.
	model, _ = DefaultModels("unknown")
	if model != "gpt-4o" {
		t.Errorf("expected fallback to gpt-4o, got %q", model)
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider ProviderType
		want     string
	}{
		{ProviderOpenAI, "OPENAI_API_KEY"},
		{ProviderGoogle, "GEMINI_API_KEY"},
		{ProviderOllama, ""},
	}
	for _, tt := range tests {
		got := APIKeyEnvVar(tt.provider)
		if got != tt.want {
			t.Errorf("APIKeyEnvVar(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}
