package alignment

import (
	"github.com/KirkDiggler/rpg-alignment/internal/entities"
	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
)

// Ledger is a character's alignment record with its derived labels
type Ledger struct {
	Record       alignment.Record
	Abbreviation string
	Labels       string
	// Stored is false when Record is the configured default
	Stored bool
}

// GetLedgerInput defines the request for reading a ledger
type GetLedgerInput struct {
	CharacterID string
}

// GetLedgerOutput defines the response for reading a ledger
type GetLedgerOutput struct {
	Character *entities.Character
	Ledger    Ledger
}

// ApplyDeltaInput defines the request for shifting an alignment
type ApplyDeltaInput struct {
	CharacterID string
	LawDelta    int
	MoralDelta  int
	Info        string
}

// ApplyDeltaOutput defines the response for shifting an alignment
type ApplyDeltaOutput struct {
	Ledger Ledger
	// Entry is the history line appended, empty when nothing was applied
	Entry   string
	Applied bool
}

// SetPresetInput defines the request for resetting to a preset
type SetPresetInput struct {
	CharacterID string
	Preset      string
}

// SetPresetOutput defines the response for resetting to a preset
type SetPresetOutput struct {
	Ledger  Ledger
	Applied bool
}

// ListPresetsInput defines the request for listing presets
type ListPresetsInput struct{}

// ListPresetsOutput defines the response for listing presets
type ListPresetsOutput struct {
	Presets []alignment.Preset
	// Warning is shown before any preset is applied
	Warning string
}

// SyncTraitInput defines the request for syncing the alignment trait
type SyncTraitInput struct {
	CharacterID string
}

// SyncTraitOutput defines the response for syncing the alignment trait
type SyncTraitOutput struct {
	Character *entities.Character
	Trait     string
	Changed   bool
}

// RegisterCharacterInput defines the request for adding a roster entry
type RegisterCharacterInput struct {
	Name        string
	Type        string
	PlayerOwned bool
	Traits      []string
	// Alignment seeds the ledger when set
	Alignment *alignment.Value
}

// RegisterCharacterOutput defines the response for adding a roster entry
type RegisterCharacterOutput struct {
	Character *entities.Character
	Ledger    Ledger
}

// RemoveCharacterInput defines the request for removing a roster entry
type RemoveCharacterInput struct {
	CharacterID string
}

// RemoveCharacterOutput defines the response for removing a roster entry
type RemoveCharacterOutput struct{}

// ListCharactersInput defines the request for listing the roster
type ListCharactersInput struct {
	PlayerCharactersOnly bool
}

// CharacterLedger pairs a roster entry with its ledger
type CharacterLedger struct {
	Character *entities.Character
	Ledger    Ledger
}

// ListCharactersOutput defines the response for listing the roster
type ListCharactersOutput struct {
	Characters []CharacterLedger
}
