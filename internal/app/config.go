package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the gateway and worker.
type Config struct {
	AppEnv          string        `envconfig:"APP_ENV" default:"development"`
	AppAddr         string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout  time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	RequestTimeout  time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// BackendBaseURL is the live upstream every entity client calls first.
	BackendBaseURL string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	BackendToken   string        `envconfig:"BACKEND_TOKEN"`
	BackendTimeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`

	// StoreLatency is the artificial delay on the fallback path, emulating
	// a backend round trip so UI behavior stays realistic offline.
	StoreLatency time.Duration `envconfig:"STORE_LATENCY" default:"150ms"`

	RedisAddr string        `envconfig:"REDIS_ADDR"`
	CacheTTL  time.Duration `envconfig:"CACHE_TTL" default:"30s"`

	// APIKeyHash is the bcrypt hash of the console API key. Empty disables
	// gateway auth (local development).
	APIKeyHash string `envconfig:"API_KEY_HASH"`

	ExportDir string `envconfig:"EXPORT_DIR" default:"./exports"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.BackendBaseURL == "" {
		return nil, errors.New("backend base url must be provided")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
