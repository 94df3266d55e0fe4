package content

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"unknown provider", Config{Provider: "llama-local"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigApplyEnv(t *testing.T) {
	t.Setenv("PACER_CONTENT_PROVIDER", "openai")
	t.Setenv("PACER_OPENAI_API_KEY", "sk-env")
	t.Setenv("PACER_OPENAI_MODEL", "gpt-4o")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want \"openai\"", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-env" {
		t.Errorf("api key = %q, want \"sk-env\"", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q, want \"gpt-4o\"", cfg.OpenAI.Model)
	}
}

func TestConfigDiscoverPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")

	cfg := DefaultConfig()
	if !cfg.Discover() {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want \"gemini\" (highest priority)", cfg.Provider)
	}
}

func TestConfigDiscoverNoneSet(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg := DefaultConfig()
	if cfg.Discover() {
		t.Error("expected discovery to fail with no keys set")
	}
}
