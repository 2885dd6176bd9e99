package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	SourceCSV      = "csv"
	SourceDynamoDB = "dynamodb"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the service configuration.
//
// Resolution order:
//   - defaults
//   - optional YAML file (CONFIG_FILE)
//   - environment variables (a .env file is loaded by main via godotenv)
type Config struct {
	Env  string `yaml:"env"`
	Port int    `yaml:"port"`

	Dataset DatasetConfig `yaml:"dataset"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type DatasetConfig struct {
	// Source is "csv" or "dynamodb".
	Source string `yaml:"source"`
	Path   string `yaml:"path"`
	Table  string `yaml:"table"`
}

func Default() Config {
	return Config{
		Env:  "development",
		Port: 8080,
		Dataset: DatasetConfig{
			Source: SourceCSV,
			Path:   "all_data.csv",
			Table:  "order_lines",
		},
		CORSAllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
	}
}

// Load resolves the configuration from CONFIG_FILE and the environment.
func Load() (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	applyEnv(&cfg)
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) {
	if v := getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		} else {
			cfg.Port = -1
		}
	}
	if v := getenv("DATASET_SOURCE"); v != "" {
		cfg.Dataset.Source = strings.ToLower(v)
	}
	if v := getenv("DATASET_PATH"); v != "" {
		cfg.Dataset.Path = v
	}
	if v := getenv("ORDER_LINES_TABLE"); v != "" {
		cfg.Dataset.Table = v
	}
	if v := getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORSAllowedOrigins = origins
	}
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidConfig, c.Port)
	}
	switch c.Dataset.Source {
	case SourceCSV:
		if strings.TrimSpace(c.Dataset.Path) == "" {
			return fmt.Errorf("%w: dataset path is required for csv source", ErrInvalidConfig)
		}
	case SourceDynamoDB:
		if strings.TrimSpace(c.Dataset.Table) == "" {
			return fmt.Errorf("%w: dataset table is required for dynamodb source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown dataset source %q", ErrInvalidConfig, c.Dataset.Source)
	}
	return nil
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func (c Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	}
	return false
}
