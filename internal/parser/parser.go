// internal/parser/parser.go
package parser

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"knewkarma/internal/models"
)

// RedditParser normalizes Reddit's heterogeneous response shapes. All shape
// inspection lives here; downstream code only ever sees models.Item values.
type RedditParser struct{}

func NewRedditParser() *RedditParser {
	return &RedditParser{}
}

// ParseThing extracts the payload of a single-object response (about.json
// style). A response whose `data` lacks an `id` yields an empty item and
// models.ErrEmptyThing, which callers treat as "not found".
func (p *RedditParser) ParseThing(data json.RawMessage) (models.Item, error) {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return models.Item{}, fmt.Errorf("%w: %v", models.ErrUnexpectedShape, err)
	}

	payload, ok := root["data"].(map[string]any)
	if !ok {
		return models.Item{}, models.ErrUnexpectedShape
	}
	if _, ok := payload["id"]; !ok {
		return models.Item{}, models.ErrEmptyThing
	}

	return models.Item(payload), nil
}

// ParseListing flattens a listing envelope into its per-item data payloads.
// An absent or empty `children` array is not an error; it is the natural
// end-of-pagination signal and yields an empty slice. A bare top-level array
// passes through unchanged. Anything else is reported as
// models.ErrUnexpectedShape with an empty result.
func (p *RedditParser) ParseListing(data json.RawMessage) ([]models.Item, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnexpectedShape, err)
	}

	switch v := root.(type) {
	case []any:
		return bareItems(v), nil
	case map[string]any:
		payload, ok := v["data"].(map[string]any)
		if !ok {
			return nil, models.ErrUnexpectedShape
		}
		children, ok := payload["children"].([]any)
		if !ok || len(children) == 0 {
			return nil, nil
		}
		return childItems(children), nil
	default:
		return nil, models.ErrUnexpectedShape
	}
}

// ParsePostDetail handles the two-element array a comments endpoint returns:
// element 0 is a one-post listing, element 1 the top-level comment listing.
func (p *RedditParser) ParsePostDetail(data json.RawMessage) (models.PostDetail, error) {
	var blocks []json.RawMessage
	if err := json.Unmarshal(data, &blocks); err != nil || len(blocks) < 2 {
		return models.PostDetail{}, models.ErrUnexpectedShape
	}

	posts, err := p.ParseListing(blocks[0])
	if err != nil {
		return models.PostDetail{}, err
	}
	if len(posts) == 0 {
		return models.PostDetail{}, models.ErrEmptyThing
	}

	comments, err := p.ParseListing(blocks[1])
	if err != nil {
		slog.Debug("comment listing had unexpected shape, returning post only", "err", err)
		comments = nil
	}

	return models.PostDetail{Post: posts[0], Comments: comments}, nil
}

// childItems maps {kind, data} wrappers to their data payloads, skipping
// malformed children rather than failing the page.
func childItems(children []any) []models.Item {
	items := make([]models.Item, 0, len(children))
	for _, child := range children {
		wrapper, ok := child.(map[string]any)
		if !ok {
			continue
		}
		payload, ok := wrapper["data"].(map[string]any)
		if !ok {
			continue
		}
		items = append(items, models.Item(payload))
	}
	return items
}

// bareItems passes a top-level array through unchanged; some endpoints skip
// the listing envelope entirely.
func bareItems(raw []any) []models.Item {
	items := make([]models.Item, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			items = append(items, models.Item(m))
		}
	}
	return items
}
