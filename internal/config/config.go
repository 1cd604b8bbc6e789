package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPConfig     `envPrefix:"HTTP_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Telegram TelegramConfig `envPrefix:"TELEGRAM_"`
	Log      LogConfig      `envPrefix:"LOG_"`

	// RateLimit is requests per window and client; 0 disables limiting.
	RateLimit       int64         `env:"RATE_LIMIT" envDefault:"0"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// StaticDir holds the logo images.
	StaticDir    string `env:"STATIC_DIR" envDefault:"static"`
	OutputFormat string `env:"OUTPUT_FORMAT" envDefault:"docx"`
}

type HTTPConfig struct {
	Addr         string        `env:"ADDR" envDefault:":8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
}

type RedisConfig struct {
	// Addr is optional; without it drafts live in memory and nothing is rate limited.
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"24h"`
}

type TelegramConfig struct {
	Token string `env:"TOKEN"`
	Debug bool   `env:"DEBUG" envDefault:"false"`
}

type LogConfig struct {
	Level       string `env:"LEVEL" envDefault:"info"`
	Development bool   `env:"DEVELOPMENT" envDefault:"false"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	const operation = "config.Load"

	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: failed to load %s: %w", operation, f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse config: %w", operation, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))
	switch c.OutputFormat {
	case "docx", "pdf":
	default:
		return fmt.Errorf("unsupported OUTPUT_FORMAT %q", c.OutputFormat)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT must not be negative")
	}
	if c.RateLimit > 0 && c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// RateLimited reports whether requests should be counted at all.
func (c *Config) RateLimited() bool {
	return c.RateLimit > 0 && c.Redis.Addr != ""
}
