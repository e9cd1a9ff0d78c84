package client_test

import (
	"errors"
	"strings"
	"testing"

	"knewkarma/internal/client"
	"knewkarma/internal/models"
)

func TestResolveEndpoints(t *testing.T) {
	cases := []struct {
		name string
		req  models.FetchRequest
		want string
	}{
		{"user profile", models.FetchRequest{Kind: models.KindUserProfile, Identifier: "AutoModerator"},
			"https://www.reddit.com/user/AutoModerator/about.json"},
		{"user posts", models.FetchRequest{Kind: models.KindUserPosts, Identifier: "AutoModerator"},
			"https://www.reddit.com/user/AutoModerator/submitted.json"},
		{"user comments", models.FetchRequest{Kind: models.KindUserComments, Identifier: "AutoModerator"},
			"https://www.reddit.com/user/AutoModerator/comments.json"},
		{"user overview", models.FetchRequest{Kind: models.KindUserOverview, Identifier: "AutoModerator"},
			"https://www.reddit.com/user/AutoModerator/overview.json"},
		{"subreddit profile", models.FetchRequest{Kind: models.KindSubredditProfile, Identifier: "AskReddit"},
			"https://www.reddit.com/r/AskReddit/about.json"},
		{"subreddit posts", models.FetchRequest{Kind: models.KindSubredditPosts, Identifier: "AskReddit"},
			"https://www.reddit.com/r/AskReddit.json"},
		{"listing", models.FetchRequest{Kind: models.KindListing, Identifier: "AskReddit"},
			"https://www.reddit.com/r/AskReddit.json"},
		{"search users", models.FetchRequest{Kind: models.KindSearchUsers, Identifier: "cats"},
			"https://www.reddit.com/users/search.json?q=cats"},
		{"search subreddits", models.FetchRequest{Kind: models.KindSearchSubreddits, Identifier: "cats"},
			"https://www.reddit.com/subreddits/search.json?q=cats"},
		{"search posts", models.FetchRequest{Kind: models.KindSearchPosts, Identifier: "cats"},
			"https://www.reddit.com/search.json?q=cats"},
		{"front page", models.FetchRequest{Kind: models.KindFrontPage},
			"https://www.reddit.com/.json"},
		{"new", models.FetchRequest{Kind: models.KindNew},
			"https://www.reddit.com/new.json"},
		{"post data", models.FetchRequest{Kind: models.KindPostData, Identifier: "abc123", Subreddit: "AskReddit"},
			"https://www.reddit.com/r/AskReddit/comments/abc123.json"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := client.Resolve(client.DefaultBaseURL, tc.req)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Resolve = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveEscapesQuery(t *testing.T) {
	req := models.FetchRequest{Kind: models.KindSearchPosts, Identifier: "mechanical keyboards"}
	got, err := client.Resolve(client.DefaultBaseURL, req)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != "https://www.reddit.com/search.json?q=mechanical+keyboards" {
		t.Errorf("query not escaped: %q", got)
	}
}

func TestResolveMissingIdentifier(t *testing.T) {
	kinds := []models.Kind{
		models.KindUserProfile,
		models.KindUserPosts,
		models.KindSubredditPosts,
		models.KindSearchPosts,
	}
	for _, kind := range kinds {
		_, err := client.Resolve(client.DefaultBaseURL, models.FetchRequest{Kind: kind})
		if !errors.Is(err, models.ErrInvalidRequest) {
			t.Errorf("kind %s: expected ErrInvalidRequest, got %v", kind, err)
		}
	}
}

func TestResolvePostDataRequiresSubreddit(t *testing.T) {
	_, err := client.Resolve(client.DefaultBaseURL, models.FetchRequest{
		Kind:       models.KindPostData,
		Identifier: "abc123",
	})
	if !errors.Is(err, models.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestResolveUnknownKind(t *testing.T) {
	_, err := client.Resolve(client.DefaultBaseURL, models.FetchRequest{Kind: "comments_search"})
	if !errors.Is(err, models.ErrUnsupportedKind) {
		t.Errorf("expected ErrUnsupportedKind, got %v", err)
	}
}

func TestPageURL(t *testing.T) {
	req := models.FetchRequest{Kind: models.KindSubredditPosts, Identifier: "test", Sort: "top", Timeframe: "week"}

	url := client.PageURL("https://www.reddit.com/r/test.json", req, 100, "")
	if !strings.Contains(url, "limit=100") || !strings.Contains(url, "sort=top") || !strings.Contains(url, "t=week") {
		t.Errorf("missing expected query parameters: %q", url)
	}
	if strings.Contains(url, "after=") {
		t.Errorf("after should be absent without a cursor: %q", url)
	}

	url = client.PageURL("https://www.reddit.com/r/test.json", req, 100, "xyz")
	if !strings.Contains(url, "after=xyz") {
		t.Errorf("expected after cursor in %q", url)
	}
}

func TestPageURLAppendsToExistingQuery(t *testing.T) {
	req := models.FetchRequest{Kind: models.KindSearchPosts, Identifier: "cats"}
	url := client.PageURL("https://www.reddit.com/search.json?q=cats", req, 50, "")
	if !strings.HasPrefix(url, "https://www.reddit.com/search.json?q=cats&") {
		t.Errorf("existing query must be preserved: %q", url)
	}
	if !strings.Contains(url, "limit=50") {
		t.Errorf("missing limit parameter: %q", url)
	}
}
