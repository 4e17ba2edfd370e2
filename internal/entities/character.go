// Package entities provides core data structures for rpg-alignment.
package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Character types
const (
	CharacterTypeCharacter = "character"
	CharacterTypeNPC       = "npc"
)

// Character is the roster entry an alignment ledger belongs to.
type Character struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	PlayerOwned bool      `json:"player_owned"`
	Traits      []string  `json:"traits,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the roster type, "character" when unset
func (c *Character) GetType() string {
	if c.Type == "" {
		return CharacterTypeCharacter
	}
	return c.Type
}

// IsPlayerCharacter reports whether the character belongs on the party grid
func (c *Character) IsPlayerCharacter() bool {
	return c.PlayerOwned && c.Type == CharacterTypeCharacter
}

var _ core.Entity = (*Character)(nil)
