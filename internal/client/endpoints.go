package client

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"knewkarma/internal/models"
)

// DefaultBaseURL is the root of Reddit's public read-only JSON API.
const DefaultBaseURL = "https://www.reddit.com"

// Reddit caps listing pages at 100 items; requests above that paginate.
const MaxPageSize = 100

// identifierRequired lists the kinds that reference a specific user,
// subreddit, query or post.
var identifierRequired = map[models.Kind]bool{
	models.KindUserProfile:      true,
	models.KindUserPosts:        true,
	models.KindUserComments:     true,
	models.KindUserOverview:     true,
	models.KindSubredditProfile: true,
	models.KindSubredditPosts:   true,
	models.KindSearchUsers:      true,
	models.KindSearchSubreddits: true,
	models.KindSearchPosts:      true,
	models.KindListing:          true,
	models.KindPostData:         true,
}

// Resolve maps a fetch request to the base URL of the endpoint serving it,
// without limit/sort/after query parameters. The path templates are Reddit's
// fixed REST contract.
func Resolve(base string, req models.FetchRequest) (string, error) {
	id := req.Identifier
	if identifierRequired[req.Kind] && id == "" {
		return "", fmt.Errorf("%w: kind %q requires an identifier", models.ErrInvalidRequest, req.Kind)
	}

	switch req.Kind {
	case models.KindUserProfile:
		return fmt.Sprintf("%s/user/%s/about.json", base, id), nil
	case models.KindUserPosts:
		return fmt.Sprintf("%s/user/%s/submitted.json", base, id), nil
	case models.KindUserComments:
		return fmt.Sprintf("%s/user/%s/comments.json", base, id), nil
	case models.KindUserOverview:
		return fmt.Sprintf("%s/user/%s/overview.json", base, id), nil
	case models.KindSubredditProfile:
		return fmt.Sprintf("%s/r/%s/about.json", base, id), nil
	case models.KindSubredditPosts, models.KindListing:
		return fmt.Sprintf("%s/r/%s.json", base, id), nil
	case models.KindSearchUsers:
		return fmt.Sprintf("%s/users/search.json?q=%s", base, url.QueryEscape(id)), nil
	case models.KindSearchSubreddits:
		return fmt.Sprintf("%s/subreddits/search.json?q=%s", base, url.QueryEscape(id)), nil
	case models.KindSearchPosts:
		return fmt.Sprintf("%s/search.json?q=%s", base, url.QueryEscape(id)), nil
	case models.KindFrontPage:
		return fmt.Sprintf("%s/.json", base), nil
	case models.KindNew:
		return fmt.Sprintf("%s/new.json", base), nil
	case models.KindPostData:
		if req.Subreddit == "" {
			return "", fmt.Errorf("%w: kind %q requires a subreddit", models.ErrInvalidRequest, req.Kind)
		}
		return fmt.Sprintf("%s/r/%s/comments/%s.json", base, req.Subreddit, id), nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnsupportedKind, req.Kind)
	}
}

// PageURL extends a resolved base URL with the per-page query parameters:
// raw_json, limit, sort, timeframe and, when non-empty, the after cursor.
func PageURL(base string, req models.FetchRequest, pageLimit int, after string) string {
	params := url.Values{}
	params.Set("raw_json", "1")
	if pageLimit > 0 {
		params.Set("limit", strconv.Itoa(pageLimit))
	}
	if req.Sort != "" {
		params.Set("sort", req.Sort)
	}
	if req.Timeframe != "" {
		params.Set("t", req.Timeframe)
	}
	if after != "" {
		params.Set("after", after)
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + params.Encode()
}
