package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"      validate:"required"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard" validate:"required"`
	LLM         LLMConfig         `mapstructure:"llm"         validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// Leaderboard backend identifiers.
const (
	LeaderboardBackendLocal    = "local"
	LeaderboardBackendPostgres = "postgres"
)

// LeaderboardConfig selects and configures the leaderboard store.
//
// The two backends carry deliberately different retention semantics: the
// local store keeps the 5 most recent entries (FIFO eviction on write),
// while the postgres store keeps every entry and ranks the top 5 by score
// on read.
type LeaderboardConfig struct {
	Backend     string `mapstructure:"backend"      validate:"required,oneof=local postgres"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Backend postgres,omitempty,url"`
	LocalPath   string `mapstructure:"local_path"   validate:"required_if=Backend local"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`
}
