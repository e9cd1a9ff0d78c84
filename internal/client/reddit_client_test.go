package client_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"knewkarma/internal/client"
	"knewkarma/internal/config"
	"knewkarma/internal/models"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		UserAgent:       "knewkarma-test",
		RedditBaseURL:   baseURL,
		MaxRetries:      1,
		RequestTimeout:  5 * time.Second,
		RequestInterval: time.Millisecond,
	}
}

func TestNewRedditClientRequiresUserAgent(t *testing.T) {
	cfg := testConfig("https://www.reddit.com")
	cfg.UserAgent = ""
	if _, err := client.NewRedditClient(cfg); err == nil {
		t.Fatal("expected an error without a user agent")
	}
}

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"kind":"t2","data":{"id":"abc"}}`)
	}))
	defer srv.Close()

	c, err := client.NewRedditClient(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewRedditClient: %v", err)
	}

	body, err := c.FetchJSON(context.Background(), srv.URL+"/user/spez/about.json")
	if err != nil {
		t.Fatalf("FetchJSON returned error: %v", err)
	}
	if len(body) == 0 {
		t.Error("empty body")
	}
}

func TestFetchJSONNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c, err := client.NewRedditClient(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewRedditClient: %v", err)
	}

	_, err = c.FetchJSON(context.Background(), srv.URL+"/r/private/about.json")
	var fetchErr *models.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.Status != http.StatusForbidden {
		t.Errorf("status = %d, want 403", fetchErr.Status)
	}
	if fetchErr.URL == "" {
		t.Error("FetchError must carry the request URL")
	}
}

func TestFetchJSONConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // listener gone, connections are refused

	c, err := client.NewRedditClient(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewRedditClient: %v", err)
	}

	_, err = c.FetchJSON(context.Background(), srv.URL+"/.json")
	var fetchErr *models.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.Status != 0 {
		t.Errorf("transport failures carry no status, got %d", fetchErr.Status)
	}
}

func TestClientResolveUsesConfiguredBase(t *testing.T) {
	c, err := client.NewRedditClient(testConfig("http://localhost:9"))
	if err != nil {
		t.Fatalf("NewRedditClient: %v", err)
	}

	url, err := c.Resolve(models.FetchRequest{Kind: models.KindFrontPage})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if url != "http://localhost:9/.json" {
		t.Errorf("url = %q, want configured base", url)
	}
}
