// internal/client/reddit_client.go
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"knewkarma/internal/config"
	"knewkarma/internal/models"
	"knewkarma/pkg/transport"
)

// RedditClient issues GET requests against Reddit's public JSON endpoints
// and resolves fetch requests to URLs. It is presentation-agnostic: it
// returns raw JSON bodies and errors, nothing else.
type RedditClient struct {
	client  *transport.Client
	baseURL string
}

func NewRedditClient(cfg *config.Config) (*RedditClient, error) {
	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("a user agent is required")
	}

	client, err := transport.NewClient(transport.Options{
		UserAgent:       cfg.UserAgent,
		ProxyURLs:       cfg.ProxyURLs,
		MaxRetries:      cfg.MaxRetries,
		Timeout:         cfg.RequestTimeout,
		RequestInterval: cfg.RequestInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &RedditClient{
		client:  client,
		baseURL: cfg.RedditBaseURL,
	}, nil
}

// Resolve maps a fetch request to its endpoint URL under this client's base.
func (r *RedditClient) Resolve(req models.FetchRequest) (string, error) {
	return Resolve(r.baseURL, req)
}

// PageURL builds the URL for one page of a resolved endpoint.
func (r *RedditClient) PageURL(base string, req models.FetchRequest, pageLimit int, after string) string {
	return PageURL(base, req, pageLimit, after)
}

// FetchJSON issues a single GET and returns the response body. Transport
// failures and non-2xx statuses surface as *models.FetchError; there is no
// page-level retry here, only the transport's own bounded backoff.
func (r *RedditClient) FetchJSON(ctx context.Context, url string) (json.RawMessage, error) {
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	status, body, err := r.client.Do(req)
	if err != nil {
		slog.Debug("request failed", "request_id", requestID, "url", url, "err", err)
		return nil, &models.FetchError{URL: url, Reason: err.Error()}
	}

	if status < 200 || status >= 300 {
		slog.Debug("non-2xx response", "request_id", requestID, "url", url, "status", status)
		return nil, &models.FetchError{URL: url, Status: status, Reason: http.StatusText(status)}
	}

	return body, nil
}
