// Package idgen mints roster IDs.
package idgen

//go:generate mockgen -destination=mock/mock_generator.go -package=idgenmock github.com/KirkDiggler/rpg-alignment/internal/pkg/idgen Generator

import (
	"github.com/google/uuid"
)

// CharacterPrefix marks character IDs, e.g. "char_0190f3c2-..."
const CharacterPrefix = "char"

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// TimeOrdered generates "<prefix>_<uuid v7>" IDs. V7 IDs sort by creation
// time, which matches the roster's tie-break on equal CreatedAt.
type TimeOrdered struct {
	prefix string
}

// NewTimeOrdered creates a generator; an empty prefix yields bare UUIDs
func NewTimeOrdered(prefix string) *TimeOrdered {
	return &TimeOrdered{prefix: prefix}
}

// NewCharacterIDs is the generator the roster uses
func NewCharacterIDs() *TimeOrdered {
	return NewTimeOrdered(CharacterPrefix)
}

// Generate returns a new ID. It falls back to a random UUID if the v7
// source fails.
func (g *TimeOrdered) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	if g.prefix == "" {
		return id.String()
	}
	return g.prefix + "_" + id.String()
}
