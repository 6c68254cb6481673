package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds LLM provider configuration. An empty Provider disables
// model-backed features; the game works fully offline without one.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a disabled Config with model and retry defaults filled in.
// Cheers are short, so retries and timeouts are tight.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     2 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 8 * time.Second,
	}
}

// Enabled reports whether a provider is selected.
func (c Config) Enabled() bool {
	return c.Provider != ""
}

// ConfigFromEnv reads MATHPLAY_* variables on top of the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	setFromEnv(&cfg.Provider, "MATHPLAY_LLM_PROVIDER")

	setFromEnv(&cfg.Anthropic.APIKey, "MATHPLAY_ANTHROPIC_API_KEY")
	setFromEnv(&cfg.Anthropic.Model, "MATHPLAY_ANTHROPIC_MODEL")

	setFromEnv(&cfg.OpenAI.APIKey, "MATHPLAY_OPENAI_API_KEY")
	setFromEnv(&cfg.OpenAI.Model, "MATHPLAY_OPENAI_MODEL")
	setFromEnv(&cfg.OpenAI.BaseURL, "MATHPLAY_OPENAI_BASE_URL")

	setFromEnv(&cfg.Gemini.APIKey, "MATHPLAY_GEMINI_API_KEY")
	setFromEnv(&cfg.Gemini.Model, "MATHPLAY_GEMINI_MODEL")

	setFromEnv(&cfg.OpenRouter.APIKey, "MATHPLAY_OPENROUTER_API_KEY")
	setFromEnv(&cfg.OpenRouter.Model, "MATHPLAY_OPENROUTER_MODEL")

	if v := os.Getenv("MATHPLAY_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the vendors' standard API key variables
// (Gemini, OpenAI, Anthropic, OpenRouter) and selects the first one found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}
	return Config{}, false
}

// ResolveConfig prefers explicit MATHPLAY_* settings, then discovery.
// The result is disabled when neither names a provider.
func ResolveConfig() Config {
	cfg := ConfigFromEnv()
	if cfg.Enabled() {
		return cfg
	}
	if found, ok := DiscoverConfig(); ok {
		return found
	}
	return cfg
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case "", ProviderMock:
		return nil
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "MATHPLAY_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "MATHPLAY_OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "MATHPLAY_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "MATHPLAY_OPENROUTER_API_KEY"
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
