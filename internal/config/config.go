package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings of the examples and the live integration
// test, read from MAILTRAIN_* environment variables and an optional .env file.
type Config struct {
	Url            string        `mapstructure:"url"`
	ApiKey         string        `mapstructure:"api_key"`
	ListId         string        `mapstructure:"list_id"`
	TestEmail      string        `mapstructure:"test_email"`
	LogLevel       string        `mapstructure:"log_level"`
	TimeoutSeconds int64         `mapstructure:"timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and ./.env.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with a custom .env location. A missing file is not an error.
func LoadFile(envFile string) (*Config, error) {
	_ = godotenv.Load(envFile)

	v := viper.New()
	v.SetEnvPrefix("MAILTRAIN")

	v.SetDefault("url", "")
	v.SetDefault("api_key", "")
	v.SetDefault("list_id", "")
	v.SetDefault("test_email", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("timeout_seconds", 0) // no timeout

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid timeout_seconds (must not be negative)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return &cfg, nil
}

// Validate reports the first missing setting required to talk to a server.
func (c *Config) Validate() error {
	if c.Url == "" {
		return fmt.Errorf("MAILTRAIN_URL is not set")
	}
	if c.ApiKey == "" {
		return fmt.Errorf("MAILTRAIN_API_KEY is not set")
	}
	return nil
}
