package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds server configuration, loaded from an optional YAML file with
// environment variable overrides on top
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	Storage struct {
		// Type selects the backend: "memory" or "redis"
		Type string `yaml:"type"`
	} `yaml:"storage"`
	Redis struct {
		URL string `yaml:"url"`
	} `yaml:"redis"`
}

// Default returns the default configuration
func Default() Config {
	var cfg Config
	cfg.Server.Port = 8080
	cfg.Storage.Type = "memory"
	cfg.Redis.URL = "redis://localhost:6379"
	return cfg
}

// Load reads YAML config from path, then applies environment overrides.
// A missing file is not an error; env-only deployments are fine.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, err
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides config fields from the environment
func (c *Config) applyEnv() {
	if v := os.Getenv("MATHRACE_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("MATHRACE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		c.Storage.Type = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Redis.URL = v
	}
}
