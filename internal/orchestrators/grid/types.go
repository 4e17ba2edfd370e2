package grid

import (
	"image"

	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
	"github.com/KirkDiggler/rpg-alignment/internal/render/grid"
)

// TabAlignment is the sheet tab this service renders
const TabAlignment = "alignment"

// SnapshotInput defines the request for reading the party
type SnapshotInput struct{}

// SnapshotOutput is the party as of one read: markers in roster order
type SnapshotOutput struct {
	Markers []grid.Marker
}

// RenderPartyInput defines the request for drawing the party grid
type RenderPartyInput struct {
	// HighlightID draws an arrow at that character's marker
	HighlightID string
}

// RenderPartyOutput carries the PNG and the marker geometry behind it
type RenderPartyOutput struct {
	PNG         []byte
	Width       int
	Height      int
	Origin      image.Point
	GridSize    float64
	Markers     []grid.Marker
	Highlighted bool
}

// HoverInput is a pointer position in grid space
type HoverInput struct {
	X float64
	Y float64
}

// HoverOutput reports the marker under the pointer, if any
type HoverOutput struct {
	Found   bool
	Marker  grid.Marker
	Tooltip grid.Tooltip
}

// RenderTabInput defines the request for drawing one character's tab
type RenderTabInput struct {
	CharacterID string
	// ActiveTab is echoed back so a re-render keeps the same tab open
	ActiveTab string
}

// TabView is everything the alignment tab shows besides the image
type TabView struct {
	CharacterID  string             `json:"character_id"`
	Name         string             `json:"name"`
	Value        alignment.Value    `json:"value"`
	Abbreviation string             `json:"abbreviation"`
	LawLabel     string             `json:"law_label"`
	MoralLabel   string             `json:"moral_label"`
	History      []string           `json:"history"`
	Presets      []alignment.Preset `json:"presets"`
	Warning      string             `json:"warning"`
}

// RenderTabOutput carries the tab PNG and view model
type RenderTabOutput struct {
	PNG       []byte
	Tab       TabView
	ActiveTab string
}
