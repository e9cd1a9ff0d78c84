// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	UserAgent       string
	RedditBaseURL   string
	ProxyURLs       []string
	MaxRetries      int
	RequestTimeout  time.Duration
	RequestInterval time.Duration
	PageDelayMin    time.Duration
	PageDelayMax    time.Duration
	DefaultLimit    int
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ReleaseRepo     string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	var proxyURLs []string
	if raw := strings.TrimSpace(os.Getenv("KNEWKARMA_PROXY_URLS")); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if _, err := url.Parse(p); err != nil {
				return nil, fmt.Errorf("invalid proxy URL %s: %w", p, err)
			}
			proxyURLs = append(proxyURLs, p)
		}
	}

	cfg := &Config{
		UserAgent:       getEnv("KNEWKARMA_USER_AGENT", "knewkarma/2.0 (+https://github.com/rly0nheart/knewkarma)"),
		RedditBaseURL:   getEnv("KNEWKARMA_BASE_URL", "https://www.reddit.com"),
		ProxyURLs:       proxyURLs,
		MaxRetries:      getEnvInt("KNEWKARMA_MAX_RETRIES", 3),
		RequestTimeout:  getEnvDuration("KNEWKARMA_REQUEST_TIMEOUT", 30*time.Second),
		RequestInterval: getEnvDuration("KNEWKARMA_REQUEST_INTERVAL", time.Second),
		PageDelayMin:    getEnvDuration("KNEWKARMA_PAGE_DELAY_MIN", time.Second),
		PageDelayMax:    getEnvDuration("KNEWKARMA_PAGE_DELAY_MAX", 10*time.Second),
		DefaultLimit:    getEnvInt("KNEWKARMA_DEFAULT_LIMIT", 100),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ReleaseRepo:     getEnv("KNEWKARMA_RELEASE_REPO", "rly0nheart/knewkarma"),
	}

	if cfg.PageDelayMax < cfg.PageDelayMin {
		cfg.PageDelayMax = cfg.PageDelayMin
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
