// Package config loads process-wide settings from defaults, an optional YAML
// file and the environment, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ProviderConfig holds the per-vendor generation settings.
type ProviderConfig struct {
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model" validate:"required"`
	BaseURL     string  `yaml:"base_url,omitempty" validate:"omitempty,url"`
	Temperature float64 `yaml:"temperature" validate:"gte=0,lte=2"`
	MaxTokens   int     `yaml:"max_tokens" validate:"gt=0"`
}

type Config struct {
	Port    int    `yaml:"port" validate:"gt=0,lte=65535"`
	LogMode string `yaml:"log_mode"`

	// Provider names the active vendor. It is checked against the provider
	// registry at startup, not here.
	Provider string        `yaml:"provider" validate:"required"`
	Timeout  time.Duration `yaml:"timeout" validate:"gt=0"`

	OpenAI ProviderConfig `yaml:"openai"`
	Gemini ProviderConfig `yaml:"gemini"`

	CORSAllowOrigin string  `yaml:"cors_allow_origin"`
	RateLimitRPS    float64 `yaml:"rate_limit_rps" validate:"gte=0"`
	RateLimitBurst  int     `yaml:"rate_limit_burst" validate:"gte=0"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Port:     8080,
		LogMode:  "dev",
		Provider: "openai",
		Timeout:  45 * time.Second,
		OpenAI: ProviderConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0.4,
			MaxTokens:   1200,
		},
		Gemini: ProviderConfig{
			Model:       "gemini-1.5-flash",
			Temperature: 0.4,
			MaxTokens:   1200,
		},
		CORSAllowOrigin: "*",
		RateLimitRPS:    5,
		RateLimitBurst:  10,
	}
}

// Load builds the configuration. path may be empty, in which case CONFIG_FILE
// is consulted; a missing file is an error only when a path was given.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = strings.TrimSpace(os.Getenv("CONFIG_FILE"))
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// Active returns the settings of the selected provider, if it is known.
func (c Config) Active() (ProviderConfig, bool) {
	switch c.Provider {
	case "openai":
		return c.OpenAI, true
	case "gemini":
		return c.Gemini, true
	default:
		return ProviderConfig{}, false
	}
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	var errs []string
	setInt := func(key string, dst *int) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", key, err))
				return
			}
			*dst = n
		}
	}
	setFloat := func(key string, dst *float64) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", key, err))
				return
			}
			*dst = f
		}
	}
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}

	setInt("PORT", &c.Port)
	setString("LOG_MODE", &c.LogMode)
	setString("LLM_PROVIDER", &c.Provider)
	if v := strings.TrimSpace(os.Getenv("LLM_HTTP_TIMEOUT_MS")); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("LLM_HTTP_TIMEOUT_MS: %v", err))
		} else {
			c.Timeout = time.Duration(ms) * time.Millisecond
		}
	}

	setString("OPENAI_API_KEY", &c.OpenAI.APIKey)
	setString("OPENAI_MODEL", &c.OpenAI.Model)
	setString("OPENAI_API_BASE", &c.OpenAI.BaseURL)
	setFloat("OPENAI_TEMPERATURE", &c.OpenAI.Temperature)
	setInt("OPENAI_MAX_TOKENS", &c.OpenAI.MaxTokens)

	setString("GOOGLE_API_KEY", &c.Gemini.APIKey)
	setString("GEMINI_API_KEY", &c.Gemini.APIKey)
	setString("GEMINI_MODEL", &c.Gemini.Model)
	setFloat("GEMINI_TEMPERATURE", &c.Gemini.Temperature)
	setInt("GEMINI_MAX_TOKENS", &c.Gemini.MaxTokens)

	// LLM_MODEL targets whichever provider is active unless that provider
	// has its own model key.
	if m := strings.TrimSpace(os.Getenv("LLM_MODEL")); m != "" {
		switch strings.ToLower(strings.TrimSpace(c.Provider)) {
		case "openai":
			if os.Getenv("OPENAI_MODEL") == "" {
				c.OpenAI.Model = m
			}
		case "gemini":
			if os.Getenv("GEMINI_MODEL") == "" {
				c.Gemini.Model = m
			}
		}
	}

	setString("CORS_ALLOW_ORIGIN", &c.CORSAllowOrigin)
	setFloat("RATE_LIMIT_RPS", &c.RateLimitRPS)
	setInt("RATE_LIMIT_BURST", &c.RateLimitBurst)

	if len(errs) > 0 {
		return fmt.Errorf("invalid environment: %s", strings.Join(errs, "; "))
	}
	return nil
}
