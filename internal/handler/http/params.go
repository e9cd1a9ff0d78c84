// internal/handler/http/params.go
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"knewkarma/internal/karma"
	"knewkarma/internal/models"
)

const defaultLimit = 100

// parseOptions reads the shared listing parameters from the query string.
// Limit defaults to 100; sort and timeframe default to "all" downstream.
func parseOptions(c echo.Context) (karma.Options, error) {
	opts := karma.Options{
		Limit:     defaultLimit,
		Sort:      c.QueryParam("sort"),
		Timeframe: c.QueryParam("timeframe"),
	}

	if l := c.QueryParam("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil {
			return opts, echo.NewHTTPError(http.StatusBadRequest, "invalid `limit` parameter")
		}
		opts.Limit = v
	}

	return opts, nil
}

// httpError maps core errors onto HTTP statuses: validation to 400, missing
// things to 404, everything upstream to 502.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, models.ErrInvalidRequest):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrEmptyThing):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	default:
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
}
