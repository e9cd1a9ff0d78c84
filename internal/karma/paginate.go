// internal/karma/paginate.go
package karma

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"knewkarma/internal/client"
	"knewkarma/internal/models"
)

// fetchListing drives the page loop for a validated listing request.
//
// Pagination across requests is only attempted when the limit exceeds
// Reddit's single-page maximum of 100; at or below that, exactly one request
// is issued. The cursor for each next page is the id of the last item seen on
// the previous one. The result is truncated to exactly the requested limit,
// never more.
func (s *service) fetchListing(ctx context.Context, req models.FetchRequest) ([]models.Item, error) {
	base, err := s.client.Resolve(req)
	if err != nil {
		return nil, err
	}

	paginate := req.Limit > client.MaxPageSize
	pageLimit := req.Limit
	if paginate {
		pageLimit = client.MaxPageSize
	}

	var collected []models.Item
	cursor := ""
	page := 0

	for {
		if ctx.Err() != nil {
			return collected, ctx.Err()
		}
		page++

		pageURL := s.client.PageURL(base, req, pageLimit, cursor)
		data, err := s.client.FetchJSON(ctx, pageURL)
		if err != nil {
			// A failed page surfaces immediately; the transport has
			// already done its bounded retries.
			return nil, err
		}

		items, err := s.parser.ParseListing(data)
		if err != nil {
			if !errors.Is(err, models.ErrUnexpectedShape) {
				return nil, err
			}
			slog.Warn("unexpected listing shape, treating as empty page",
				"kind", req.Kind, "page", page, "err", err)
			items = nil
		}

		if len(items) == 0 {
			// Source exhausted; not an error.
			break
		}

		collected = append(collected, items...)
		cursor = items[len(items)-1].ID()

		slog.Debug("fetched listing page",
			"kind", req.Kind, "page", page, "items", len(items), "total", len(collected))

		if len(collected) >= req.Limit {
			break
		}
		if !paginate {
			break
		}
		if cursor == "" {
			// Cannot build the next after cursor; return what we have.
			slog.Warn("last item has no id, stopping pagination",
				"kind", req.Kind, "page", page)
			break
		}

		if err := s.politeDelay(ctx); err != nil {
			return collected, err
		}
	}

	if len(collected) > req.Limit {
		collected = collected[:req.Limit]
	}
	return collected, nil
}

// fetchThing performs the single GET + single-mode normalization used by
// profile endpoints. models.ErrEmptyThing propagates to the caller, which
// treats it as "not found".
func (s *service) fetchThing(ctx context.Context, req models.FetchRequest) (models.Item, error) {
	base, err := s.client.Resolve(req)
	if err != nil {
		return nil, err
	}

	data, err := s.client.FetchJSON(ctx, base)
	if err != nil {
		return nil, err
	}

	return s.parser.ParseThing(data)
}

// politeDelay sleeps a random duration between successive pages so bulk
// fetches do not hammer the upstream API. Courtesy only; no effect on
// ordering or content.
func (s *service) politeDelay(ctx context.Context) error {
	if s.pageDelayMax <= 0 {
		return nil
	}
	delay := s.pageDelayMin
	if spread := s.pageDelayMax - s.pageDelayMin; spread > 0 {
		delay += time.Duration(rand.Int63n(int64(spread)))
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
