package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	News     NewsConfig
	Scraper  ScraperConfig
	Registry RegistryConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Host                    string
	Port                    int
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration
	IdleTimeout             time.Duration
	GracefulShutdownTimeout time.Duration
}

type NewsConfig struct {
	BaseURL    string
	APIKey     string
	PageSize   int
	WindowDays int
	Timeout    time.Duration
	RateLimit  float64 // outbound requests per second
}

type ScraperConfig struct {
	Command       string
	Script        string
	Platform      string
	Channels      []string
	MaxPosts      int
	Timeout       time.Duration
	MaxConcurrent int
}

type RegistryConfig struct {
	Enabled bool
}

type LoggingConfig struct {
	Level  string
	Format string // json or text
}

type MetricsConfig struct {
	Enabled bool
	Port    int
	Path    string
}

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:                    getEnv("SERVER_HOST", "0.0.0.0"),
			Port:                    getEnvInt("SERVER_PORT", 8080),
			ReadTimeout:             getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:            getEnvDuration("SERVER_WRITE_TIMEOUT", 120*time.Second),
			IdleTimeout:             getEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
			GracefulShutdownTimeout: getEnvDuration("SERVER_GRACEFUL_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		News: NewsConfig{
			BaseURL:    getEnv("NEWS_API_BASE_URL", "https://newsapi.org/v2/everything"),
			APIKey:     getEnv("NEWS_API_KEY", ""),
			PageSize:   getEnvInt("NEWS_PAGE_SIZE", 20),
			WindowDays: getEnvInt("NEWS_WINDOW_DAYS", 30),
			Timeout:    getEnvDuration("NEWS_TIMEOUT", 10*time.Second),
			RateLimit:  getEnvFloat("NEWS_RATE_LIMIT", 5.0),
		},
		Scraper: ScraperConfig{
			Command:       getEnv("SCRAPER_COMMAND", "node"),
			Script:        getEnv("SCRAPER_SCRIPT", "reddit_scraper/scraper.js"),
			Platform:      getEnv("SCRAPER_PLATFORM", "Reddit Philippines"),
			Channels:      getEnvSlice("SCRAPER_CHANNELS", []string{"Philippines", "phcareers", "Entrepreneurship", "phinvest"}),
			MaxPosts:      getEnvInt("SCRAPER_MAX_POSTS", 30),
			Timeout:       getEnvDuration("SCRAPER_TIMEOUT", 60*time.Second),
			MaxConcurrent: getEnvInt("SCRAPER_MAX_CONCURRENT", 4),
		},
		Registry: RegistryConfig{
			Enabled: getEnvBool("REGISTRY_ENABLED", true),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", true),
			Port:    getEnvInt("METRICS_PORT", 9090),
			Path:    getEnv("METRICS_PATH", "/metrics"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.News.PageSize < 1 {
		return fmt.Errorf("news page size must be at least 1")
	}
	if c.Scraper.MaxPosts < 1 {
		return fmt.Errorf("scraper max posts must be at least 1")
	}
	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("scraper timeout must be positive")
	}
	if c.Scraper.MaxConcurrent < 1 {
		return fmt.Errorf("scraper max concurrent must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
