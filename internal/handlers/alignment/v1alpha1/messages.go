package v1alpha1

import "time"

// Alignment is a point on the grid
type Alignment struct {
	Law   int32 `json:"law"`
	Moral int32 `json:"moral"`
}

// Ledger is an alignment record with its derived labels
type Ledger struct {
	Alignment    *Alignment `json:"alignment"`
	History      []string   `json:"history"`
	Abbreviation string     `json:"abbreviation"`
	Labels       string     `json:"labels"`
	Stored       bool       `json:"stored"`
}

// Character is a roster entry
type Character struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	PlayerOwned bool      `json:"player_owned"`
	Traits      []string  `json:"traits,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Preset is a named starting alignment
type Preset struct {
	Name      string     `json:"name"`
	Alignment *Alignment `json:"alignment"`
}

// Marker is a placed party member in grid space
type Marker struct {
	Id        string     `json:"id"`
	Name      string     `json:"name"`
	Color     string     `json:"color"`
	Alignment *Alignment `json:"alignment"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Radius    float64    `json:"radius"`
}

// Tooltip is hover text anchored above a marker
type Tooltip struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// GetLedgerRequest asks for one character's ledger
type GetLedgerRequest struct {
	CharacterId string `json:"character_id"`
}

// GetLedgerResponse carries the character and ledger
type GetLedgerResponse struct {
	Character *Character `json:"character"`
	Ledger    *Ledger    `json:"ledger"`
}

// ApplyDeltaRequest shifts an alignment
type ApplyDeltaRequest struct {
	CharacterId string `json:"character_id"`
	LawDelta    int32  `json:"law_delta"`
	MoralDelta  int32  `json:"moral_delta"`
	Info        string `json:"info"`
}

// ApplyDeltaResponse carries the ledger after the shift
type ApplyDeltaResponse struct {
	Ledger  *Ledger `json:"ledger"`
	Entry   string  `json:"entry,omitempty"`
	Applied bool    `json:"applied"`
}

// SetPresetRequest resets an alignment to a named preset
type SetPresetRequest struct {
	CharacterId string `json:"character_id"`
	Preset      string `json:"preset"`
}

// SetPresetResponse carries the ledger after the reset
type SetPresetResponse struct {
	Ledger  *Ledger `json:"ledger"`
	Applied bool    `json:"applied"`
}

// ListPresetsRequest asks for the preset table
type ListPresetsRequest struct{}

// ListPresetsResponse carries the presets and the reset warning
type ListPresetsResponse struct {
	Presets []*Preset `json:"presets"`
	Warning string    `json:"warning"`
}

// SyncTraitRequest writes the alignment trait onto a character
type SyncTraitRequest struct {
	CharacterId string `json:"character_id"`
}

// SyncTraitResponse carries the character after the sync
type SyncTraitResponse struct {
	Character *Character `json:"character"`
	Trait     string     `json:"trait"`
	Changed   bool       `json:"changed"`
}

// RegisterCharacterRequest adds a roster entry
type RegisterCharacterRequest struct {
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	PlayerOwned bool       `json:"player_owned"`
	Traits      []string   `json:"traits,omitempty"`
	Alignment   *Alignment `json:"alignment,omitempty"`
}

// RegisterCharacterResponse carries the new character
type RegisterCharacterResponse struct {
	Character *Character `json:"character"`
	Ledger    *Ledger    `json:"ledger"`
}

// RemoveCharacterRequest removes a roster entry and its ledger
type RemoveCharacterRequest struct {
	CharacterId string `json:"character_id"`
}

// RemoveCharacterResponse is empty
type RemoveCharacterResponse struct{}

// ListCharactersRequest lists the roster
type ListCharactersRequest struct {
	PlayerCharactersOnly bool `json:"player_characters_only"`
}

// CharacterLedger pairs a character with its ledger
type CharacterLedger struct {
	Character *Character `json:"character"`
	Ledger    *Ledger    `json:"ledger"`
}

// ListCharactersResponse carries the roster in creation order
type ListCharactersResponse struct {
	Characters []*CharacterLedger `json:"characters"`
}

// RenderPartyRequest draws the shared grid
type RenderPartyRequest struct {
	HighlightId string `json:"highlight_id,omitempty"`
}

// RenderPartyResponse carries the PNG and marker geometry
type RenderPartyResponse struct {
	Png         []byte    `json:"png"`
	Width       int32     `json:"width"`
	Height      int32     `json:"height"`
	OriginX     int32     `json:"origin_x"`
	OriginY     int32     `json:"origin_y"`
	GridSize    float64   `json:"grid_size"`
	Markers     []*Marker `json:"markers"`
	Highlighted bool      `json:"highlighted"`
}

// HoverRequest is a pointer position in grid space
type HoverRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HoverResponse reports the marker under the pointer
type HoverResponse struct {
	Found   bool     `json:"found"`
	Marker  *Marker  `json:"marker,omitempty"`
	Tooltip *Tooltip `json:"tooltip,omitempty"`
}

// RenderTabRequest draws one character's alignment tab
type RenderTabRequest struct {
	CharacterId string `json:"character_id"`
	ActiveTab   string `json:"active_tab,omitempty"`
}

// TabView is the tab's non-image content
type TabView struct {
	CharacterId  string     `json:"character_id"`
	Name         string     `json:"name"`
	Alignment    *Alignment `json:"alignment"`
	Abbreviation string     `json:"abbreviation"`
	LawLabel     string     `json:"law_label"`
	MoralLabel   string     `json:"moral_label"`
	History      []string   `json:"history"`
	Presets      []*Preset  `json:"presets"`
	Warning      string     `json:"warning"`
}

// RenderTabResponse carries the tab PNG and view model
type RenderTabResponse struct {
	Png       []byte   `json:"png"`
	Tab       *TabView `json:"tab"`
	ActiveTab string   `json:"active_tab"`
}
