package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// BackendConfig points at the ordering backend that owns all state.
type BackendConfig struct {
	BaseURL string        `yaml:"base_url" env:"BACKEND_BASE_URL"`
	WSURL   string        `yaml:"ws_url" env:"BACKEND_WS_URL"`
	Token   string        `yaml:"token" env:"BACKEND_TOKEN"`
	Timeout time.Duration `yaml:"timeout" env:"BACKEND_TIMEOUT"`
}

// Config is the full service configuration: yaml file first, then
// environment overrides.
type Config struct {
	ListenAddr   string        `yaml:"listen_addr" env:"LISTEN_ADDR"`
	MetricsAddr  string        `yaml:"metrics_addr" env:"METRICS_ADDR"`
	JWTSecret    string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	PollInterval time.Duration `yaml:"poll_interval" env:"POLL_INTERVAL"`
	Backend      BackendConfig `yaml:"backend"`
}

// Load reads the yaml file at path (missing file is fine, defaults
// apply) and then applies environment variables on top.
func Load(path string) (*Config, error) {
	cfg := &Config{
		ListenAddr:   ":8080",
		MetricsAddr:  ":9090",
		PollInterval: 5 * time.Second,
		Backend: BackendConfig{
			BaseURL: "http://localhost:8000/api",
			WSURL:   "ws://localhost:8000/ws/orders",
			Timeout: 10 * time.Second,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	return cfg, nil
}
