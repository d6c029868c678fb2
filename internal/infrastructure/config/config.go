package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the booking backend the client talks to.
	APIBaseURL string `env:"BOOKING_API_URL, default=http://localhost:8000"`
	LogLevel   string `env:"LOG_LEVEL,       default=info"`
	LogPretty  bool   `env:"LOG_PRETTY,      default=true"`

	HTTP  HTTPConfig
	Token TokenConfig
}

type HTTPConfig struct {
	// Timeout is the per-request deadline. Without it, a request that never
	// resolves would leave the caller waiting forever.
	Timeout time.Duration `env:"BOOKING_HTTP_TIMEOUT, default=10s"`
	// Retries is how many times idempotent requests are reissued after a
	// transport failure. Mutations are never retried automatically.
	Retries int `env:"BOOKING_HTTP_RETRIES, default=2"`
}

type TokenConfig struct {
	// Path overrides where the session token is persisted. Empty means the
	// per-user default under os.UserConfigDir.
	Path string `env:"BOOKING_TOKEN_PATH"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Token.Path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve token path: %w", err)
		}
		cfg.Token.Path = filepath.Join(dir, "bookingctl", "token")
	}
	return &cfg, nil
}
