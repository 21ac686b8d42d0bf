package models

import "github.com/google/uuid"

// MovieRepresentation is the shape of a movie exchanged with remote services.
// Identifier and HasWatched are optional on the wire.
type MovieRepresentation struct {
	Title      string     `json:"title"`
	Identifier *uuid.UUID `json:"identifier,omitempty"`
	HasWatched *bool      `json:"hasWatched,omitempty"`
}

// Key returns the canonical identifier, or false when the representation has none.
func (r MovieRepresentation) Key() (string, bool) {
	if r.Identifier == nil {
		return "", false
	}
	return r.Identifier.String(), true
}
