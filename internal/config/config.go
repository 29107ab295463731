package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config defines all environment-driven runtime options.
type Config struct {
	APIKey       string        `env:"OPENAI_API_KEY"`
	BaseURL      string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Organization string        `env:"OPENAI_ORGANIZATION"`
	Project      string        `env:"OPENAI_PROJECT"`
	Timeout      time.Duration `env:"LLMSDK_TIMEOUT" envDefault:"30s"`
	ChatModel    string        `env:"LLMSDK_CHAT_MODEL" envDefault:"gpt-4o-mini"`
	DataDir      string        `env:"LLMSDK_DATA_DIR" envDefault:"./data"`
	LogLevel     string        `env:"LLMSDK_LOG_LEVEL" envDefault:"info"`
}

// Load reads .env (if present) and parses environment variables into Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("parse env config: LLMSDK_TIMEOUT must be positive, got %s", cfg.Timeout)
	}

	return cfg, nil
}
