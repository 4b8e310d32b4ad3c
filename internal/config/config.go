package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Sync      SyncConfig      `mapstructure:"sync"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Narrative NarrativeConfig `mapstructure:"narrative"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// SyncConfig holds sync backend configuration
type SyncConfig struct {
	URL         string        `mapstructure:"url"`
	AnonKey     string        `mapstructure:"anon_key"`
	AccessToken string        `mapstructure:"access_token"`
	Table       string        `mapstructure:"table"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Enabled     bool          `mapstructure:"enabled"`
}

// TelegramConfig holds Telegram notification configuration
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
	Enabled  bool   `mapstructure:"enabled"`
}

// NarrativeConfig holds narrative generation configuration
type NarrativeConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	MaxTokens int64  `mapstructure:"max_tokens"`
}

// StorageConfig holds storage and persistence configuration
type StorageConfig struct {
	FilePath string `mapstructure:"file_path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables. A missing
// config file is not an error; defaults and environment variables still
// apply, since the tool is fully usable without a sync backend.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Enable environment variable override
	v.SetEnvPrefix("REHOBOAM")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, statErr := os.Stat(path); statErr == nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Sync defaults
	v.SetDefault("sync.table", "tech_tree_states")
	v.SetDefault("sync.timeout", "15s")
	v.SetDefault("sync.enabled", false)

	// Narrative defaults
	v.SetDefault("narrative.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("narrative.max_tokens", 1024)

	// Storage defaults
	v.SetDefault("storage.file_path", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	// Validate Sync config
	if c.Sync.Enabled {
		if c.Sync.URL == "" {
			return fmt.Errorf("sync.url is required when sync is enabled")
		}
		if c.Sync.AnonKey == "" {
			return fmt.Errorf("sync.anon_key is required when sync is enabled")
		}
	}
	if c.Sync.Timeout < 0 {
		return fmt.Errorf("sync.timeout must not be negative")
	}

	// Validate Telegram config
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}

	// Validate Narrative config
	if c.Narrative.MaxTokens < 1 {
		return fmt.Errorf("narrative.max_tokens must be at least 1")
	}

	// Validate Logging config
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
