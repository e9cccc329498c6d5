package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	YouTube YouTubeConfig `yaml:"youtube"`
	AI      AIConfig      `yaml:"ai"`
	Search  SearchConfig  `yaml:"search"`
	Server  ServerConfig  `yaml:"server"`
}

type YouTubeConfig struct {
	APIKey string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
}

type AIConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Project      string `yaml:"project" env:"GOOGLE_CLOUD_PROJECT"`
	Location     string `yaml:"location" env:"GOOGLE_CLOUD_LOCATION"`
	Model        string `yaml:"model"`
}

// SearchConfig is optional as a pair: when either the key or the engine ID
// is missing the investigation pipeline is disabled, never failed.
type SearchConfig struct {
	APIKey   string `yaml:"api_key" env:"SEARCH_API_KEY"`
	EngineID string `yaml:"engine_id" env:"SEARCH_ENGINE_ID"`
	Language string `yaml:"language" env:"SEARCH_LANG"`
}

type ServerConfig struct {
	Port           string        `yaml:"port"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	RequestTimeout time.Duration `yaml:"-"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}
	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	// Environment overrides fill anything the file left empty.
	if cfg.YouTube.APIKey == "" {
		cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if cfg.AI.GeminiAPIKey == "" {
		cfg.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.AI.Project == "" {
		cfg.AI.Project = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}
	if cfg.AI.Location == "" {
		cfg.AI.Location = os.Getenv("GOOGLE_CLOUD_LOCATION")
	}
	if cfg.Search.APIKey == "" {
		cfg.Search.APIKey = os.Getenv("SEARCH_API_KEY")
	}
	if cfg.Search.EngineID == "" {
		cfg.Search.EngineID = os.Getenv("SEARCH_ENGINE_ID")
	}
	if cfg.Search.Language == "" {
		cfg.Search.Language = os.Getenv("SEARCH_LANG")
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = os.Getenv("PORT")
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" && len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = strings.Split(origins, ",")
	}

	// Defaults.
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.5-flash"
	}
	if cfg.AI.Project != "" && cfg.AI.Location == "" {
		cfg.AI.Location = "us-central1"
	}
	if cfg.Search.Language == "" {
		cfg.Search.Language = "lang_en"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	cfg.Server.RequestTimeout = 90 * time.Second
	if seconds := os.Getenv("REQUEST_TIMEOUT_SECONDS"); seconds != "" {
		n, err := strconv.Atoi(seconds)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT_SECONDS value %q", seconds)
		}
		cfg.Server.RequestTimeout = time.Duration(n) * time.Second
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.AI.GeminiAPIKey == "" && c.AI.Project == "" {
		return fmt.Errorf("a model credential is required (set GEMINI_API_KEY or GOOGLE_CLOUD_PROJECT)")
	}
	return nil
}

// SearchEnabled reports whether both halves of the search credential pair
// are present.
func (c *Config) SearchEnabled() bool {
	return c.Search.APIKey != "" && c.Search.EngineID != ""
}
