package grid

import (
	"image/color"

	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
)

// Marker layer proportions, relative to a 31px reference marker
const (
	referenceDiameter = 31.0

	outlineRadius = 15.5
	outlineWidth  = 2.0
	haloRadius    = 15.0
	haloWidth     = 7.0
	haloBlur      = 8.0
	ringRadius    = 10.8
	ringWidth     = 8.0
	fillRadius    = 7.2

	haloAlpha = 0.95
	fillAlpha = 0.95

	// tooltipGap separates the tooltip anchor from the top of the marker
	tooltipGap = 6.0
)

var (
	outlineColor = MustParseHex("#111")
	haloColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	shadowColor  = color.RGBA{A: 0xff}
)

// MarkerStyle sizes a layered marker. Every layer scales with Diameter.
type MarkerStyle struct {
	Diameter float64
}

// DefaultMarkerStyle is the grid marker size
var DefaultMarkerStyle = MarkerStyle{Diameter: referenceDiameter}

// LegendMarkerStyle is the miniature marker drawn in legend rows
var LegendMarkerStyle = MarkerStyle{Diameter: 18}

func (s MarkerStyle) scale(v float64) float64 {
	return v * s.Diameter / referenceDiameter
}

// HitRadius is the outer radius of the marker, used for hover tests
func (s MarkerStyle) HitRadius() float64 {
	return s.scale(outlineRadius)
}

// Layers returns every ring of the marker from the bottom up
func (s MarkerStyle) Layers() []Layer {
	return []Layer{
		{Kind: LayerOutline, Radius: s.scale(outlineRadius), Width: s.scale(outlineWidth)},
		{Kind: LayerHalo, Radius: s.scale(haloRadius), Width: s.scale(haloWidth), Blur: s.scale(haloBlur)},
		{Kind: LayerRing, Radius: s.scale(ringRadius), Width: s.scale(ringWidth)},
		{Kind: LayerFill, Radius: s.scale(fillRadius)},
	}
}

// LayerKind names one ring of a marker
type LayerKind int

// Marker layers, bottom to top
const (
	LayerOutline LayerKind = iota
	LayerHalo
	LayerRing
	LayerFill
)

// Layer is one ring of a marker. Width 0 means a filled disc.
type Layer struct {
	Kind   LayerKind
	Radius float64
	Width  float64
	Blur   float64
}

// Entry is the input for one marker: who and where
type Entry struct {
	ID    string
	Name  string
	Value alignment.Value
}

// Marker is a placed, colored entry in grid space
type Marker struct {
	ID     string
	Name   string
	Color  color.RGBA
	Value  alignment.Value
	X, Y   float64
	Radius float64
}

// PlaceMarkers positions entries on the layout and colors them by list
// position. Colors are only stable while the input order is.
func PlaceMarkers(layout Layout, style MarkerStyle, entries []Entry) []Marker {
	markers := make([]Marker, len(entries))
	for i, e := range entries {
		v := e.Value.Clamped()
		x, y := layout.Position(v.Law, v.Moral)
		markers[i] = Marker{
			ID:     e.ID,
			Name:   e.Name,
			Color:  PaletteColor(i),
			Value:  v,
			X:      x,
			Y:      y,
			Radius: style.HitRadius(),
		}
	}
	return markers
}

// Label is the marker's tooltip and legend text, "<name> (<law> <moral>)"
func (m Marker) Label() string {
	return m.Name + " " + m.Value.Labels()
}
