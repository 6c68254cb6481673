package llm

import (
	"context"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MATHPLAY_LLM_PROVIDER", "MATHPLAY_ANTHROPIC_API_KEY", "MATHPLAY_OPENAI_API_KEY",
		"MATHPLAY_GEMINI_API_KEY", "MATHPLAY_OPENROUTER_API_KEY", "MATHPLAY_LLM_TIMEOUT",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"disabled", Config{}, false},
		{"mock", Config{Provider: ProviderMock}, false},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, true},
		{"unknown", Config{Provider: "llama"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveConfig_ExplicitWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("MATHPLAY_LLM_PROVIDER", "openai")
	t.Setenv("MATHPLAY_OPENAI_API_KEY", "explicit")
	t.Setenv("GEMINI_API_KEY", "discovered")
	t.Setenv("MATHPLAY_LLM_TIMEOUT", "3s")

	cfg := ResolveConfig()
	if cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "explicit" {
		t.Fatalf("expected explicit openai config, got %q", cfg.Provider)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", cfg.Timeout)
	}
}

func TestResolveConfig_Discovery(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "found")

	cfg := ResolveConfig()
	if cfg.Provider != ProviderAnthropic || cfg.Anthropic.APIKey != "found" {
		t.Fatalf("expected discovered anthropic config, got %q", cfg.Provider)
	}
}

func TestResolveConfig_Disabled(t *testing.T) {
	clearEnv(t)
	if cfg := ResolveConfig(); cfg.Enabled() {
		t.Fatalf("expected disabled config, got %q", cfg.Provider)
	}
}

func TestNewProvider_Disabled(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil provider, got %T", p)
	}
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("expected mock model, got %q", p.ModelID())
	}
}
