// internal/handler/http/subreddit_handler.go
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"knewkarma/internal/karma"
)

type SubredditHandler struct {
	svc karma.Service
}

func NewSubredditHandler(svc karma.Service) *SubredditHandler {
	return &SubredditHandler{svc: svc}
}

// GetSubredditPosts godoc
// @Summary Get posts from a subreddit
// @Description Retrieves posts from the specified subreddit
// @Tags subreddit
// @Produce json
// @Param subreddit query string true "Subreddit name without the r/ prefix"
// @Param limit query int false "Maximum number of posts to retrieve"
// @Param sort query string false "Sort order (all, best, controversial, hot, new, rising, top)"
// @Param timeframe query string false "Timeframe (hour, day, week, month, year, all)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /subreddit [get]
func (h *SubredditHandler) GetSubredditPosts(c echo.Context) error {
	sr := c.QueryParam("subreddit")
	if sr == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `subreddit` parameter")
	}

	opts, err := parseOptions(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 120*time.Second)
	defer cancel()

	startTime := time.Now()
	posts, err := h.svc.SubredditPosts(ctx, sr, opts)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"posts": posts,
		"meta": map[string]interface{}{
			"subreddit":          sr,
			"requested_limit":    opts.Limit,
			"actual_count":       len(posts),
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		},
	})
}

// GetSubredditProfile godoc
// @Summary Get a subreddit's profile
// @Tags subreddit
// @Produce json
// @Param subreddit query string true "Subreddit name without the r/ prefix"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.HTTPError
// @Failure 404 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /subreddit/profile [get]
func (h *SubredditHandler) GetSubredditProfile(c echo.Context) error {
	sr := c.QueryParam("subreddit")
	if sr == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `subreddit` parameter")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	profile, err := h.svc.SubredditProfile(ctx, sr)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}
