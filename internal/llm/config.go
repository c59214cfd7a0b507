package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the LLM backend.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // override for OpenRouter or other compatible APIs
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string // route name, e.g. "google/gemini-2.0-flash-exp"
	BaseURL string
}

// RetryConfig tunes the backoff applied to transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks cheap models and conservative retry settings.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays STUDIQ_-prefixed environment variables on the
// defaults. Unset variables leave the default in place.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setenv := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setenv(&cfg.Provider, "STUDIQ_LLM_PROVIDER")

	setenv(&cfg.Anthropic.APIKey, "STUDIQ_ANTHROPIC_API_KEY")
	setenv(&cfg.Anthropic.Model, "STUDIQ_ANTHROPIC_MODEL")

	setenv(&cfg.OpenAI.APIKey, "STUDIQ_OPENAI_API_KEY")
	setenv(&cfg.OpenAI.Model, "STUDIQ_OPENAI_MODEL")
	setenv(&cfg.OpenAI.BaseURL, "STUDIQ_OPENAI_BASE_URL")

	setenv(&cfg.Gemini.APIKey, "STUDIQ_GEMINI_API_KEY")
	setenv(&cfg.Gemini.Model, "STUDIQ_GEMINI_MODEL")

	setenv(&cfg.OpenRouter.APIKey, "STUDIQ_OPENROUTER_API_KEY")
	setenv(&cfg.OpenRouter.Model, "STUDIQ_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes the providers' conventional key variables when
// nothing was configured explicitly. Probe order is cheapest first:
// Gemini, OpenAI, Anthropic, OpenRouter. The second return is false
// when no key was found.
func DiscoverConfig() (Config, bool) {
	type probe struct {
		envKey   string
		provider string
		apiKey   *string
	}

	cfg := DefaultConfig()
	probes := []probe{
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}

	for _, p := range probes {
		if k := os.Getenv(p.envKey); k != "" {
			cfg.Provider = p.provider
			*p.apiKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("STUDIQ_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("STUDIQ_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("STUDIQ_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("STUDIQ_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
