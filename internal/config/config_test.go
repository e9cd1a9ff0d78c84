package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.RedditBaseURL != "https://www.reddit.com" {
		t.Errorf("RedditBaseURL = %q", cfg.RedditBaseURL)
	}
	if cfg.UserAgent == "" {
		t.Error("UserAgent must have a default")
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.DefaultLimit != 100 {
		t.Errorf("DefaultLimit = %d, want 100", cfg.DefaultLimit)
	}
	if cfg.PageDelayMin != time.Second || cfg.PageDelayMax != 10*time.Second {
		t.Errorf("page delay defaults = %v..%v", cfg.PageDelayMin, cfg.PageDelayMax)
	}
	if len(cfg.ProxyURLs) != 0 {
		t.Errorf("ProxyURLs should default empty, got %v", cfg.ProxyURLs)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("KNEWKARMA_BASE_URL", "http://localhost:8081")
	t.Setenv("KNEWKARMA_MAX_RETRIES", "5")
	t.Setenv("KNEWKARMA_REQUEST_TIMEOUT", "10s")
	t.Setenv("KNEWKARMA_PROXY_URLS", "http://proxy1:8080, socks5://proxy2:1080")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.RedditBaseURL != "http://localhost:8081" {
		t.Errorf("RedditBaseURL = %q", cfg.RedditBaseURL)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.MaxRetries)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
	if len(cfg.ProxyURLs) != 2 || cfg.ProxyURLs[1] != "socks5://proxy2:1080" {
		t.Errorf("ProxyURLs = %v", cfg.ProxyURLs)
	}
}

func TestLoadConfigMalformedValuesFallBack(t *testing.T) {
	t.Setenv("KNEWKARMA_MAX_RETRIES", "many")
	t.Setenv("KNEWKARMA_REQUEST_TIMEOUT", "soon")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want fallback 3", cfg.MaxRetries)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want fallback 30s", cfg.RequestTimeout)
	}
}

func TestLoadConfigPageDelayOrdering(t *testing.T) {
	t.Setenv("KNEWKARMA_PAGE_DELAY_MIN", "5s")
	t.Setenv("KNEWKARMA_PAGE_DELAY_MAX", "2s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.PageDelayMax < cfg.PageDelayMin {
		t.Errorf("PageDelayMax %v must not be below PageDelayMin %v", cfg.PageDelayMax, cfg.PageDelayMin)
	}
}
