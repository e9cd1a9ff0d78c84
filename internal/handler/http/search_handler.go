// internal/handler/http/search_handler.go
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"knewkarma/internal/karma"
	"knewkarma/internal/models"
)

type SearchHandler struct {
	svc karma.Service
}

func NewSearchHandler(svc karma.Service) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search godoc
// @Summary Search Reddit
// @Description Searches posts, subreddits or users matching a query
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Param kind query string false "What to search: posts (default), subreddits or users"
// @Param limit query int false "Maximum number of results"
// @Param sort query string false "Sort order (all, best, controversial, hot, new, rising, top)"
// @Param timeframe query string false "Timeframe (hour, day, week, month, year, all)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `q` parameter")
	}

	kind := c.QueryParam("kind")
	if kind == "" {
		kind = "posts"
	}

	var search func(context.Context, string, karma.Options) ([]models.Item, error)
	switch kind {
	case "posts":
		search = h.svc.SearchPosts
	case "subreddits":
		search = h.svc.SearchSubreddits
	case "users":
		search = h.svc.SearchUsers
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid `kind` parameter: use posts, subreddits or users")
	}

	opts, err := parseOptions(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 120*time.Second)
	defer cancel()

	startTime := time.Now()
	results, err := search(ctx, query, opts)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"results": results,
		"meta": map[string]interface{}{
			"query":              query,
			"kind":               kind,
			"requested_limit":    opts.Limit,
			"actual_count":       len(results),
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		},
	})
}
