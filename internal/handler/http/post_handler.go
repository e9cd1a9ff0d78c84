// internal/handler/http/post_handler.go
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"knewkarma/internal/karma"
)

type PostHandler struct {
	svc karma.Service
}

func NewPostHandler(svc karma.Service) *PostHandler {
	return &PostHandler{svc: svc}
}

// GetPost godoc
// @Summary Get a Reddit post with its top-level comments
// @Tags post
// @Produce json
// @Param id query string true "Reddit post ID"
// @Param subreddit query string true "Subreddit the post belongs to"
// @Success 200 {object} models.PostDetail
// @Failure 400 {object} models.HTTPError
// @Failure 404 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /post [get]
func (h *PostHandler) GetPost(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `id` parameter")
	}
	sr := c.QueryParam("subreddit")
	if sr == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `subreddit` parameter")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	detail, err := h.svc.Post(ctx, id, sr)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, detail)
}
