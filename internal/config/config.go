package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

const namespace = "TASKFLOW"

// ServerConfig holds configuration for the taskflow server.
type ServerConfig struct {
	Addr           string   `envconfig:"ADDR"`            // Listen address (default ":8080")
	LogLevel       string   `envconfig:"LOG_LEVEL"`       // Log level: debug, info, warn, error
	LogFormat      string   `envconfig:"LOG_FORMAT"`      // Log format: text, json, console
	DBPath         string   `envconfig:"DB_PATH"`         // SQLite database path (default ~/.taskflow/taskflow.db, ":memory:" for testing)
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"` // CORS origins, comma separated in the environment
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:           ":8080",
		LogLevel:       "info",
		LogFormat:      "text",
		AllowedOrigins: []string{"http://localhost:5173"},
	}
}

// LoadServerConfig returns the defaults overlaid with any TASKFLOW_*
// environment variables that are set.
func LoadServerConfig() (ServerConfig, error) {
	cfg := DefaultServerConfig()
	if err := envconfig.Process(namespace, &cfg); err != nil {
		return cfg, fmt.Errorf("load env: %w", err)
	}
	return cfg, nil
}

// ResolveDBPath returns DBPath, or ~/.taskflow/taskflow.db when it is
// empty, creating the parent directory as needed.
func (c ServerConfig) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	dir := filepath.Join(home, ".taskflow")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return filepath.Join(dir, "taskflow.db"), nil
}
