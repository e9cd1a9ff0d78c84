// internal/update/update.go

// Package update checks GitHub's releases/latest endpoint for a newer
// release. It lives entirely outside the fetch core; only the CLI consumes
// it.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// apiBaseURL is a package variable so tests can point it at a local server.
var apiBaseURL = "https://api.github.com"

// Release is the subset of GitHub's release metadata the CLI shows.
type Release struct {
	Name    string `json:"name"`
	TagName string `json:"tag_name"`
	Body    string `json:"body"`
}

// Check fetches the latest release for an owner/repo pair.
func Check(ctx context.Context, repo, userAgent string) (Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", apiBaseURL, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Release{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	httpClient := &http.Client{Timeout: 10 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return Release{}, fmt.Errorf("release check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Release{}, fmt.Errorf("release check: status %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return Release{}, fmt.Errorf("decoding release metadata: %w", err)
	}
	return release, nil
}

// IsNewer reports whether the release tag differs from the running version.
// Tags may carry a leading "v"; comparison ignores it.
func (r Release) IsNewer(current string) bool {
	strip := func(s string) string {
		if len(s) > 0 && (s[0] == 'v' || s[0] == 'V') {
			return s[1:]
		}
		return s
	}
	return r.TagName != "" && strip(r.TagName) != strip(current)
}
