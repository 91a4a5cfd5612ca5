package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the root of the myURL backend, without trailing slash.
	APIBaseURL string `env:"MYURL_API,       default=http://localhost:8080"`
	// RequestTimeout bounds a single backend round trip. Zero disables the
	// client-side timeout entirely.
	RequestTimeout time.Duration `env:"MYURL_TIMEOUT,   default=30s"`
	LogLevel       string        `env:"MYURL_LOG_LEVEL, default=info"`
	LogPretty      bool          `env:"MYURL_LOG_PRETTY, default=true"`
	// StateDir overrides where the session file lives. Empty means the
	// per-user config directory.
	StateDir string `env:"MYURL_STATE_DIR"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
