package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidIdentifier is returned when an identifier is not a UUID.
var ErrInvalidIdentifier = errors.New("identifier is not a valid UUID")

// Movie is a movie persisted in the local store.
type Movie struct {
	ID         uint      `gorm:"column:id;primaryKey" json:"-"`
	Identifier string    `gorm:"column:identifier;type:varchar(36);uniqueIndex;not null" json:"identifier"`
	Title      string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	HasWatched bool      `gorm:"column:has_watched;not null" json:"hasWatched"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName overrides the table name.
func (Movie) TableName() string {
	return "movies"
}

// BeforeCreate assigns an identifier to movies inserted without one.
func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	m.EnsureIdentifier()
	return nil
}

// EnsureIdentifier assigns a fresh UUID when the movie has none and reports whether it did.
func (m *Movie) EnsureIdentifier() bool {
	if m.Identifier != "" {
		return false
	}
	m.Identifier = uuid.NewString()
	return true
}

// Representation returns the wire shape of the movie.
func (m *Movie) Representation() (MovieRepresentation, error) {
	id, err := uuid.Parse(m.Identifier)
	if err != nil {
		return MovieRepresentation{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, m.Identifier)
	}
	watched := m.HasWatched
	return MovieRepresentation{
		Title:      m.Title,
		Identifier: &id,
		HasWatched: &watched,
	}, nil
}

// Apply overwrites the movie from rep. An absent watched flag keeps the current value.
func (m *Movie) Apply(rep MovieRepresentation) {
	m.Title = rep.Title
	if rep.Identifier != nil {
		m.Identifier = rep.Identifier.String()
	}
	if rep.HasWatched != nil {
		m.HasWatched = *rep.HasWatched
	}
}

// NewMovie builds an unsaved movie from rep. The watched flag defaults to false.
func NewMovie(rep MovieRepresentation) *Movie {
	m := &Movie{}
	m.Apply(rep)
	return m
}

// NormalizeIdentifier returns the canonical lowercase form of a UUID identifier.
func NormalizeIdentifier(identifier string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(identifier))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, identifier)
	}
	return id.String(), nil
}
