// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`

	Rankings struct {
		// TopN caps the averages and nines-league tables.
		TopN int `yaml:"top_n"`
	} `yaml:"rankings"`

	Features struct {
		EnableMetrics bool `yaml:"enable_metrics"`
	} `yaml:"features"`

	Audit struct {
		// Schedule is a cron expression for the nightly score audit.
		// Empty disables the job.
		Schedule string `yaml:"schedule"`
	} `yaml:"audit"`
}

// Default returns the configuration used when no config file is supplied.
func Default() *Config {
	cfg := &Config{}
	cfg.App.Name = "skittles"
	cfg.App.Environment = "development"
	cfg.App.Port = 8080
	cfg.Database.Driver = "sqlite"
	cfg.Database.Filename = "data/skittles.db"
	cfg.Rankings.TopN = 20
	cfg.Audit.Schedule = "0 3 * * *"
	return cfg
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Read and parse YAML config
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.Rankings.TopN < 1 {
		return fmt.Errorf("rankings top_n must be positive")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Filename == "" {
			return fmt.Errorf("database filename is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	return nil
}
