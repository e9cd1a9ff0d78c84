// internal/client/interface.go
package client

import (
	"context"
	"encoding/json"

	"knewkarma/internal/models"
)

type RedditClientInterface interface {
	FetchJSON(ctx context.Context, url string) (json.RawMessage, error)
	Resolve(req models.FetchRequest) (string, error)
	PageURL(base string, req models.FetchRequest, pageLimit int, after string) string
}
