package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("leaderboard.backend", LeaderboardBackendLocal)
	v.SetDefault("leaderboard.local_path", "flashmind.db")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")

	// Optional config file in the working directory
	v.SetConfigName("flashmind")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables with FLASHMIND_ prefix, e.g.
	// FLASHMIND_LLM_GEMINI_API_KEY overrides llm.gemini_api_key.
	v.SetEnvPrefix("FLASHMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so every
	// key without a default must be bound explicitly or Unmarshal never
	// sees its environment value.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"leaderboard.backend",
		"leaderboard.local_path",
		"leaderboard.database_url",
		"llm.gemini_api_key",
		"llm.model_name",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
