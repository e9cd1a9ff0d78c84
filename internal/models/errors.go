package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest marks a malformed request: missing identifier,
	// limit < 1 or an unrecognized sort/timeframe. Raised before any
	// network call is made.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnsupportedKind marks an entity kind with no endpoint mapping.
	// This is a programmer error in the calling code, never retried.
	ErrUnsupportedKind = errors.New("unsupported entity kind")

	// ErrEmptyThing is returned when a single-object endpoint answered
	// without a usable payload. Callers treat it as "not found".
	ErrEmptyThing = errors.New("empty response")

	// ErrUnexpectedShape marks JSON whose shape matches neither a thing
	// envelope, a listing envelope nor a bare array. Upstream format drift
	// degrades to an empty result rather than crashing the caller.
	ErrUnexpectedShape = errors.New("unexpected response shape")
)

// FetchError reports a failed page request: either a transport error or a
// non-2xx HTTP status. It carries the status and reason so presentation
// layers can surface them.
type FetchError struct {
	URL    string
	Status int
	Reason string
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d: %s", e.URL, e.Status, e.Reason)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Reason)
}
