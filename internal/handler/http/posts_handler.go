// internal/handler/http/posts_handler.go
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"knewkarma/internal/karma"
	"knewkarma/internal/models"
)

type PostsHandler struct {
	svc karma.Service
}

func NewPostsHandler(svc karma.Service) *PostsHandler {
	return &PostsHandler{svc: svc}
}

// GetPosts godoc
// @Summary Get site-wide post listings
// @Description Retrieves posts from the front page or the sitewide new feed
// @Tags posts
// @Produce json
// @Param listing query string false "Listing to fetch: front_page (default) or new"
// @Param limit query int false "Maximum number of posts to retrieve"
// @Param sort query string false "Sort order (all, best, controversial, hot, new, rising, top)"
// @Param timeframe query string false "Timeframe (hour, day, week, month, year, all)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /posts [get]
func (h *PostsHandler) GetPosts(c echo.Context) error {
	listing := c.QueryParam("listing")
	if listing == "" {
		listing = "front_page"
	}

	var fetch func(context.Context, karma.Options) ([]models.Item, error)
	switch listing {
	case "front_page":
		fetch = h.svc.FrontPage
	case "new":
		fetch = h.svc.New
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid `listing` parameter: use front_page or new")
	}

	opts, err := parseOptions(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 120*time.Second)
	defer cancel()

	startTime := time.Now()
	posts, err := fetch(ctx, opts)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"posts": posts,
		"meta": map[string]interface{}{
			"listing":            listing,
			"requested_limit":    opts.Limit,
			"actual_count":       len(posts),
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		},
	})
}
