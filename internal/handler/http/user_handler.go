// internal/handler/http/user_handler.go
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"knewkarma/internal/karma"
	"knewkarma/internal/models"
)

type UserHandler struct {
	svc karma.Service
}

func NewUserHandler(svc karma.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetUserActivity godoc
// @Summary Get a user's profile, posts and comments
// @Description Retrieves profile information, submissions and comments for a Reddit user
// @Tags user
// @Produce json
// @Param username query string true "Reddit username"
// @Param limit query int false "Maximum number of posts and comments to retrieve"
// @Param sort query string false "Sort order (all, best, controversial, hot, new, rising, top)"
// @Param timeframe query string false "Timeframe (hour, day, week, month, year, all)"
// @Success 200 {object} models.UserActivity
// @Failure 400 {object} models.HTTPError
// @Failure 404 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /user [get]
func (h *UserHandler) GetUserActivity(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `username` parameter")
	}

	opts, err := parseOptions(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 120*time.Second)
	defer cancel()

	activity, err := h.svc.UserActivity(ctx, username, opts)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, activity)
}

// GetUserProfile godoc
// @Summary Get a user's profile
// @Tags user
// @Produce json
// @Param username query string true "Reddit username"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.HTTPError
// @Failure 404 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /user/profile [get]
func (h *UserHandler) GetUserProfile(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `username` parameter")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	profile, err := h.svc.UserProfile(ctx, username)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// GetUserPosts godoc
// @Summary Get a user's submissions
// @Tags user
// @Produce json
// @Param username query string true "Reddit username"
// @Param limit query int false "Maximum number of posts to retrieve"
// @Param sort query string false "Sort order"
// @Param timeframe query string false "Timeframe"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /user/posts [get]
func (h *UserHandler) GetUserPosts(c echo.Context) error {
	return h.listing(c, h.svc.UserPosts)
}

// GetUserComments godoc
// @Summary Get a user's comments
// @Tags user
// @Produce json
// @Param username query string true "Reddit username"
// @Param limit query int false "Maximum number of comments to retrieve"
// @Param sort query string false "Sort order"
// @Param timeframe query string false "Timeframe"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /user/comments [get]
func (h *UserHandler) GetUserComments(c echo.Context) error {
	return h.listing(c, h.svc.UserComments)
}

// GetUserOverview godoc
// @Summary Get a user's mixed recent activity
// @Tags user
// @Produce json
// @Param username query string true "Reddit username"
// @Param limit query int false "Maximum number of entries to retrieve"
// @Param sort query string false "Sort order"
// @Param timeframe query string false "Timeframe"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /user/overview [get]
func (h *UserHandler) GetUserOverview(c echo.Context) error {
	return h.listing(c, h.svc.UserOverview)
}

func (h *UserHandler) listing(c echo.Context, fetch func(context.Context, string, karma.Options) ([]models.Item, error)) error {
	username := c.QueryParam("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `username` parameter")
	}

	opts, err := parseOptions(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 120*time.Second)
	defer cancel()

	startTime := time.Now()
	items, err := fetch(ctx, username, opts)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
		"meta": map[string]interface{}{
			"username":           username,
			"requested_limit":    opts.Limit,
			"actual_count":       len(items),
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		},
	})
}
