package models

// Kind identifies the logical category of data being fetched. It selects the
// endpoint template used to build the request URL.
type Kind string

const (
	KindUserProfile      Kind = "user_profile"
	KindUserPosts        Kind = "user_posts"
	KindUserComments     Kind = "user_comments"
	KindUserOverview     Kind = "user_overview"
	KindSubredditProfile Kind = "subreddit_profile"
	KindSubredditPosts   Kind = "subreddit_posts"
	KindSearchUsers      Kind = "search_users"
	KindSearchSubreddits Kind = "search_subreddits"
	KindSearchPosts      Kind = "search_posts"
	KindFrontPage        Kind = "front_page"
	KindNew              Kind = "new"
	KindListing          Kind = "listing"
	KindPostData         Kind = "post_data"
)

// Sorts and Timeframes are the vocabularies Reddit accepts for the `sort`
// and `t` query parameters.
var (
	Sorts      = []string{"all", "best", "controversial", "hot", "new", "rising", "top"}
	Timeframes = []string{"hour", "day", "week", "month", "year", "all"}
)

// ValidSort reports whether s is in the sort vocabulary.
func ValidSort(s string) bool {
	for _, v := range Sorts {
		if v == s {
			return true
		}
	}
	return false
}

// ValidTimeframe reports whether t is in the timeframe vocabulary.
func ValidTimeframe(t string) bool {
	for _, v := range Timeframes {
		if v == t {
			return true
		}
	}
	return false
}

// FetchRequest describes one logical fetch against Reddit's public JSON
// endpoints. Identifier carries the username, subreddit name, query string or
// post ID depending on Kind; Subreddit is only set for post_data requests,
// which address a post inside a specific subreddit.
type FetchRequest struct {
	Kind       Kind
	Identifier string
	Subreddit  string
	Sort       string
	Timeframe  string
	Limit      int
}

// Item is one normalized listing entry: the unwrapped `data` payload of a
// post, comment, user or subreddit record. Fields keep Reddit's native names
// (id, title, author, created_utc, ...). No schema is enforced; consumers
// address fields by key and tolerate absence.
type Item map[string]any

// ID returns the item's `id` field, or "" when absent or not a string.
func (it Item) ID() string {
	id, _ := it["id"].(string)
	return id
}

// String returns the named field as a string, or "" when absent.
func (it Item) String(key string) string {
	s, _ := it[key].(string)
	return s
}

// UserActivity bundles a user's profile with their submissions and comments.
type UserActivity struct {
	Profile  Item   `json:"profile"`
	Posts    []Item `json:"posts,omitempty"`
	Comments []Item `json:"comments,omitempty"`
}

// PostDetail is a post together with its top-level comments.
type PostDetail struct {
	Post     Item   `json:"post"`
	Comments []Item `json:"comments"`
}
