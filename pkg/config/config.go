package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	DefaultGeminiModel     = "gemini-2.0-flash-001"
	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultMaxOutputTokens = 1024
	DefaultTemperature     = 0.7

	maxTemperature = 2.0
)

var (
	// ErrMissingAPIKey is returned by Validate when no credential is configured.
	ErrMissingAPIKey = errors.New("API key is not set")
	// ErrInvalidMaxOutputTokens is returned when the token limit does not fit the request field.
	ErrInvalidMaxOutputTokens = errors.New("max output tokens out of range")
	// ErrUnknownProvider is returned for provider names other than gemini and openai.
	ErrUnknownProvider = errors.New("unknown provider")
)

// Config holds all runtime configuration for the chat CLI.
type Config struct {
	Provider        string  `yaml:"provider"`
	Model           string  `yaml:"model"`
	BaseURL         string  `yaml:"base_url"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
	Temperature     float64 `yaml:"temperature"`
	Verbose         bool    `yaml:"verbose"`

	// APIKey is only ever read from the environment.
	APIKey string `yaml:"-"`
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		Provider:        ProviderGemini,
		MaxOutputTokens: DefaultMaxOutputTokens,
		Temperature:     DefaultTemperature,
	}
}

// LoadFile overlays the YAML file at path onto cfg. An empty path returns cfg unchanged.
func LoadFile(path string, cfg Config) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	out := cfg
	if err := yaml.Unmarshal(data, &out); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	out.APIKey = cfg.APIKey
	return out, nil
}

// FromEnv overlays environment variables onto cfg.
func FromEnv(cfg Config) Config {
	if v := getEnv("CHAT_PROVIDER"); v != "" {
		cfg.Provider = strings.ToLower(v)
	}
	if v := getEnv("MODEL"); v != "" {
		cfg.Model = v
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderOpenAI:
		cfg.APIKey = getEnv("OPENAI_API_KEY")
		if v := getEnv("OPENAI_BASE_URL"); v != "" {
			cfg.BaseURL = v
		}
	default:
		cfg.APIKey = getEnv("GEMINI_API_KEY")
		if v := getEnv("GEMINI_BASE_URL"); v != "" {
			cfg.BaseURL = v
		}
	}
	return cfg
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)

	if cfg.Provider == "" {
		cfg.Provider = ProviderGemini
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Provider)
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if cfg.Temperature < 0 || cfg.Temperature > maxTemperature {
		cfg.Temperature = DefaultTemperature
	}
	return cfg
}

// Validate reports configuration errors that must stop the program before it starts.
func Validate(cfg Config) error {
	switch cfg.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	if cfg.MaxOutputTokens <= 0 || cfg.MaxOutputTokens > math.MaxInt32 {
		return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidMaxOutputTokens, cfg.MaxOutputTokens, math.MaxInt32)
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("%w: %s not found in environment or .env file", ErrMissingAPIKey, APIKeyEnv(cfg.Provider))
	}
	return nil
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(provider string) string {
	if provider == ProviderOpenAI {
		return DefaultOpenAIModel
	}
	return DefaultGeminiModel
}

// APIKeyEnv names the environment variable holding the credential for provider.
func APIKeyEnv(provider string) string {
	if provider == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
