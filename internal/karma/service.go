// internal/karma/service.go
package karma

import (
	"context"
	"fmt"
	"sync"
	"time"

	"knewkarma/internal/client"
	"knewkarma/internal/models"
	"knewkarma/internal/parser"
)

// Service is the public fetch surface: thin validating façades over the
// endpoint resolver and the paginated fetcher. Every operation validates its
// parameters before any network call and returns plain data the presentation
// layer (CLI, HTTP handler, library caller) renders however it wants.
type Service interface {
	UserProfile(ctx context.Context, username string) (models.Item, error)
	UserPosts(ctx context.Context, username string, opts Options) ([]models.Item, error)
	UserComments(ctx context.Context, username string, opts Options) ([]models.Item, error)
	UserOverview(ctx context.Context, username string, opts Options) ([]models.Item, error)
	UserActivity(ctx context.Context, username string, opts Options) (models.UserActivity, error)

	SubredditProfile(ctx context.Context, name string) (models.Item, error)
	SubredditPosts(ctx context.Context, name string, opts Options) ([]models.Item, error)

	Post(ctx context.Context, id, subreddit string) (models.PostDetail, error)

	SearchPosts(ctx context.Context, query string, opts Options) ([]models.Item, error)
	SearchSubreddits(ctx context.Context, query string, opts Options) ([]models.Item, error)
	SearchUsers(ctx context.Context, query string, opts Options) ([]models.Item, error)

	FrontPage(ctx context.Context, opts Options) ([]models.Item, error)
	New(ctx context.Context, opts Options) ([]models.Item, error)
}

// Options carries the listing parameters shared by every listing operation.
type Options struct {
	Limit     int
	Sort      string
	Timeframe string
}

type service struct {
	client       client.RedditClientInterface
	parser       parser.ParserInterface
	pageDelayMin time.Duration
	pageDelayMax time.Duration
}

// Option adjusts service behavior.
type Option func(*service)

// WithPageDelay sets the randomized courtesy delay inserted between
// successive pages of a multi-page fetch. Zero disables the delay.
func WithPageDelay(min, max time.Duration) Option {
	return func(s *service) {
		s.pageDelayMin = min
		s.pageDelayMax = max
	}
}

func NewService(client client.RedditClientInterface, parser parser.ParserInterface, opts ...Option) Service {
	s := &service{
		client:       client,
		parser:       parser,
		pageDelayMin: time.Second,
		pageDelayMax: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// request validates and assembles a FetchRequest. Empty sort/timeframe
// default to "all"; anything outside the fixed vocabularies is rejected.
func request(kind models.Kind, identifier string, opts Options) (models.FetchRequest, error) {
	if opts.Sort == "" {
		opts.Sort = "all"
	}
	if opts.Timeframe == "" {
		opts.Timeframe = "all"
	}

	if opts.Limit < 1 {
		return models.FetchRequest{}, fmt.Errorf("%w: limit must be >= 1, got %d", models.ErrInvalidRequest, opts.Limit)
	}
	if !models.ValidSort(opts.Sort) {
		return models.FetchRequest{}, fmt.Errorf("%w: unrecognized sort %q", models.ErrInvalidRequest, opts.Sort)
	}
	if !models.ValidTimeframe(opts.Timeframe) {
		return models.FetchRequest{}, fmt.Errorf("%w: unrecognized timeframe %q", models.ErrInvalidRequest, opts.Timeframe)
	}

	return models.FetchRequest{
		Kind:       kind,
		Identifier: identifier,
		Sort:       opts.Sort,
		Timeframe:  opts.Timeframe,
		Limit:      opts.Limit,
	}, nil
}

func requireIdentifier(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: missing %s", models.ErrInvalidRequest, name)
	}
	return nil
}

func (s *service) UserProfile(ctx context.Context, username string) (models.Item, error) {
	if err := requireIdentifier("username", username); err != nil {
		return nil, err
	}
	return s.fetchThing(ctx, models.FetchRequest{Kind: models.KindUserProfile, Identifier: username})
}

func (s *service) UserPosts(ctx context.Context, username string, opts Options) ([]models.Item, error) {
	if err := requireIdentifier("username", username); err != nil {
		return nil, err
	}
	req, err := request(models.KindUserPosts, username, opts)
	if err != nil {
		return nil, err
	}
	return s.fetchListing(ctx, req)
}

func (s *service) UserComments(ctx context.Context, username string, opts Options) ([]models.Item, error) {
	if err := requireIdentifier("username", username); err != nil {
		return nil, err
	}
	req, err := request(models.KindUserComments, username, opts)
	if err != nil {
		return nil, err
	}
	return s.fetchListing(ctx, req)
}

func (s *service) UserOverview(ctx context.Context, username string, opts Options) ([]models.Item, error) {
	if err := requireIdentifier("username", username); err != nil {
		return nil, err
	}
	req, err := request(models.KindUserOverview, username, opts)
	if err != nil {
		return nil, err
	}
	return s.fetchListing(ctx, req)
}

// UserActivity fetches a user's profile, posts and comments. The three
// fetches are independent, each owning its own buffer and cursor, so they
// run concurrently.
func (s *service) UserActivity(ctx context.Context, username string, opts Options) (models.UserActivity, error) {
	activity := models.UserActivity{}

	profile, err := s.UserProfile(ctx, username)
	if err != nil {
		return activity, fmt.Errorf("fetch user profile: %w", err)
	}
	activity.Profile = profile

	var wg sync.WaitGroup
	var postsErr, commentsErr error
	postsChan := make(chan []models.Item, 1)
	commentsChan := make(chan []models.Item, 1)

	wg.Add(2)

	go func() {
		defer wg.Done()
		posts, err := s.UserPosts(ctx, username, opts)
		if err != nil {
			postsErr = fmt.Errorf("fetch user posts: %w", err)
			return
		}
		postsChan <- posts
	}()

	go func() {
		defer wg.Done()
		comments, err := s.UserComments(ctx, username, opts)
		if err != nil {
			commentsErr = fmt.Errorf("fetch user comments: %w", err)
			return
		}
		commentsChan <- comments
	}()

	wg.Wait()
	close(postsChan)
	close(commentsChan)

	if postsErr != nil {
		return activity, postsErr
	}
	if commentsErr != nil {
		return activity, commentsErr
	}

	if posts, ok := <-postsChan; ok {
		activity.Posts = posts
	}
	if comments, ok := <-commentsChan; ok {
		activity.Comments = comments
	}

	return activity, nil
}

func (s *service) SubredditProfile(ctx context.Context, name string) (models.Item, error) {
	if err := requireIdentifier("subreddit", name); err != nil {
		return nil, err
	}
	return s.fetchThing(ctx, models.FetchRequest{Kind: models.KindSubredditProfile, Identifier: name})
}

func (s *service) SubredditPosts(ctx context.Context, name string, opts Options) ([]models.Item, error) {
	if err := requireIdentifier("subreddit", name); err != nil {
		return nil, err
	}
	req, err := request(models.KindSubredditPosts, name, opts)
	if err != nil {
		return nil, err
	}
	return s.fetchListing(ctx, req)
}

// Post fetches one post and its top-level comments. No pagination: the
// comments endpoint returns the tree in a single response.
func (s *service) Post(ctx context.Context, id, subreddit string) (models.PostDetail, error) {
	if err := requireIdentifier("post id", id); err != nil {
		return models.PostDetail{}, err
	}
	if err := requireIdentifier("subreddit", subreddit); err != nil {
		return models.PostDetail{}, err
	}

	req := models.FetchRequest{Kind: models.KindPostData, Identifier: id, Subreddit: subreddit}
	base, err := s.client.Resolve(req)
	if err != nil {
		return models.PostDetail{}, err
	}

	data, err := s.client.FetchJSON(ctx, base)
	if err != nil {
		return models.PostDetail{}, err
	}

	return s.parser.ParsePostDetail(data)
}

// SearchPosts searches site-wide posts. Known upstream constraint: when a
// search is scoped to comments, Reddit caps the post count at the number of
// comments searched; this is preserved as-is rather than worked around.
func (s *service) SearchPosts(ctx context.Context, query string, opts Options) ([]models.Item, error) {
	if err := requireIdentifier("query", query); err != nil {
		return nil, err
	}
	req, err := request(models.KindSearchPosts, query, opts)
	if err != nil {
		return nil, err
	}
	return s.fetchListing(ctx, req)
}

func (s *service) SearchSubreddits(ctx context.Context, query string, opts Options) ([]models.Item, error) {
	if err := requireIdentifier("query", query); err != nil {
		return nil, err
	}
	req, err := request(models.KindSearchSubreddits, query, opts)
	if err != nil {
		return nil, err
	}
	return s.fetchListing(ctx, req)
}

func (s *service) SearchUsers(ctx context.Context, query string, opts Options) ([]models.Item, error) {
	if err := requireIdentifier("query", query); err != nil {
		return nil, err
	}
	req, err := request(models.KindSearchUsers, query, opts)
	if err != nil {
		return nil, err
	}
	return s.fetchListing(ctx, req)
}

func (s *service) FrontPage(ctx context.Context, opts Options) ([]models.Item, error) {
	req, err := request(models.KindFrontPage, "", opts)
	if err != nil {
		return nil, err
	}
	return s.fetchListing(ctx, req)
}

func (s *service) New(ctx context.Context, opts Options) ([]models.Item, error) {
	req, err := request(models.KindNew, "", opts)
	if err != nil {
		return nil, err
	}
	return s.fetchListing(ctx, req)
}
