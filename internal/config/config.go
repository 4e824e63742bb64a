package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type Config struct {
	Environment string `json:"environment"`
	Server      struct {
		Host           string   `json:"host"`
		Port           int      `json:"port"`
		AllowedOrigins []string `json:"allowedOrigins"`
	} `json:"server"`
	Storage struct {
		Dir      string `json:"dir"`      // empty means the platform data dir
		InMemory bool   `json:"inMemory"` // nothing survives a restart
	} `json:"storage"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{Environment: "dev"}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = 8080
	cfg.Server.AllowedOrigins = []string{"*"}
	return cfg
}

// Addr returns host:port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Load reads config.<env>.json from CONFIG_DIR (default "configs").
// A missing file yields Default().
func Load(env string) (*Config, error) {
	configDir := os.Getenv("CONFIG_DIR")
	if configDir == "" {
		// Default to configs directory relative to working directory
		configDir = "configs"
	}

	filename := fmt.Sprintf("config.%s.json", env)
	configPath := filepath.Join(configDir, filename)

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		cfg.Environment = env
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	// Replace environment variables in the config
	configStr := expandEnvVars(string(data))

	cfg := Default()
	if err := json.Unmarshal([]byte(configStr), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Environment = env
	return cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} with environment variable values
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		return os.Getenv(key)
	})
}

func GetEnv() string {
	env := os.Getenv("CHESSMODEL_ENV")
	if env == "" {
		return "dev"
	}
	return env
}
