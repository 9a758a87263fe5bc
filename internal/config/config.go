// Package config loads ProPrep settings from a YAML file, PROPREP_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"github.com/abhisek/proprep/internal/llm"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "PROPREP"

// Config is the resolved application configuration.
type Config struct {
	DBPath    string
	LogLevel  string
	LogFormat string
	Insight   InsightConfig
	Market    MarketConfig
	LLM       llm.Config

	// LLMConfigured is false when no provider could be resolved from the
	// config file, PROPREP_LLM_* or the vendors' standard env vars.
	LLMConfigured bool
}

// InsightConfig tunes skill insight generation.
type InsightConfig struct {
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
	Concurrency int
}

// MarketConfig selects the industry the dashboard shows.
type MarketConfig struct {
	Industry    string
	KeepHistory int
}

// New returns a viper instance wired to the PROPREP_ environment and
// populated with defaults. Nested keys map to env vars by replacing dots
// with underscores (llm.gemini.api_key -> PROPREP_LLM_GEMINI_API_KEY).
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("insight.timeout", 20*time.Second)
	v.SetDefault("insight.max_tokens", 256)
	v.SetDefault("insight.temperature", 0.7)
	v.SetDefault("insight.concurrency", 4)
	v.SetDefault("market.industry", "")
	v.SetDefault("market.keep_history", 10)
	llm.SetDefaults(v)
}

// ReadFile loads the config file. An explicit path must exist; otherwise
// config.yaml is looked up in $HOME/.proprep and the working directory,
// and a missing file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".proprep"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load resolves a Config from v. When the configured LLM provider lacks an
// API key, the vendors' standard env vars are checked before giving up.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		DBPath:    v.GetString("db"),
		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),
		Insight: InsightConfig{
			Timeout:     v.GetDuration("insight.timeout"),
			MaxTokens:   v.GetInt("insight.max_tokens"),
			Temperature: v.GetFloat64("insight.temperature"),
			Concurrency: v.GetInt("insight.concurrency"),
		},
		Market: MarketConfig{
			Industry:    v.GetString("market.industry"),
			KeepHistory: v.GetInt("market.keep_history"),
		},
		LLM: llm.ConfigFromViper(v),
	}

	if err := cfg.LLM.Validate(); err == nil {
		cfg.LLMConfigured = true
	} else if discovered, ok := llm.DiscoverConfig(cfg.LLM); ok {
		cfg.LLM = discovered
		cfg.LLMConfigured = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var result *multierror.Error

	switch c.LogFormat {
	case "text", "json":
	default:
		result = multierror.Append(result, fmt.Errorf("log.format must be text or json, got %q", c.LogFormat))
	}
	if c.Insight.Timeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("insight.timeout must be positive, got %s", c.Insight.Timeout))
	}
	if c.Insight.MaxTokens <= 0 {
		result = multierror.Append(result, fmt.Errorf("insight.max_tokens must be positive, got %d", c.Insight.MaxTokens))
	}
	if c.Insight.Concurrency <= 0 {
		result = multierror.Append(result, fmt.Errorf("insight.concurrency must be positive, got %d", c.Insight.Concurrency))
	}
	if c.Market.KeepHistory < 1 {
		result = multierror.Append(result, fmt.Errorf("market.keep_history must be at least 1, got %d", c.Market.KeepHistory))
	}

	return result.ErrorOrNil()
}
