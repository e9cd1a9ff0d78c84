// internal/parser/interface.go
package parser

import (
	"encoding/json"

	"knewkarma/internal/models"
)

type ParserInterface interface {
	ParseThing(data json.RawMessage) (models.Item, error)
	ParseListing(data json.RawMessage) ([]models.Item, error)
	ParsePostDetail(data json.RawMessage) (models.PostDetail, error)
}
