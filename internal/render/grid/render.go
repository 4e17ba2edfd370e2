package grid

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
)

// Party image layout
const (
	partyMargin   = 48.0
	legendInset   = 14.0
	legendWidth   = 260.0
	legendRowGap  = 10.0
	legendTextGap = 8.0
	labelPad      = 10.0
)

// Axis labels
const (
	LabelLawful  = "LAWFUL"
	LabelChaotic = "CHAOTIC"
	LabelGood    = "GOOD"
	LabelEvil    = "EVIL"
)

var pageColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// PartyOptions configures RenderParty
type PartyOptions struct {
	Layout      Layout
	Style       MarkerStyle
	LegendStyle MarkerStyle
	// HighlightID adds an arrow to that marker and its legend row
	HighlightID string
}

// DefaultPartyOptions returns the 450px grid with standard markers
func DefaultPartyOptions() PartyOptions {
	return PartyOptions{
		Layout:      NewLayout(PartySize),
		Style:       DefaultMarkerStyle,
		LegendStyle: LegendMarkerStyle,
	}
}

// PartyImage is a rendered party grid
type PartyImage struct {
	Image *image.RGBA
	// Origin is where grid space (0, 0) sits in the image
	Origin image.Point
	// Highlighted is false when HighlightID matched no marker
	Highlighted bool
}

// RenderParty draws the whole party view: grid, markers in slice order, axis
// labels and a legend with one row per marker. Every call redraws from
// scratch, including when only the highlight changed.
func RenderParty(markers []Marker, opts PartyOptions) *PartyImage {
	size := opts.Layout.Size
	rowHeight := legendRowHeight(opts.LegendStyle)
	legendX := partyMargin + size + partyMargin

	width := int(math.Ceil(legendX + legendWidth))
	height := int(math.Ceil(max(
		2*partyMargin+size,
		2*partyMargin+rowHeight*float64(len(markers)),
	)))

	c := NewCanvas(width, height, opts.Layout, partyMargin, partyMargin)
	c.Fill(pageColor)
	c.DrawBackground()
	c.DrawMajorGrid()

	for _, m := range markers {
		c.DrawMarker(m, opts.Style)
	}

	highlighted := false
	if opts.HighlightID != "" {
		if m, ok := Find(markers, opts.HighlightID); ok {
			c.DrawArrow(m, opts.Style)
			highlighted = true
		}
	}

	drawAxisLabels(c, size)
	drawLegend(c, markers, opts, legendX)

	return &PartyImage{
		Image:       c.Image(),
		Origin:      image.Pt(int(partyMargin), int(partyMargin)),
		Highlighted: highlighted,
	}
}

func legendRowHeight(style MarkerStyle) float64 {
	return max(style.Diameter, float64(basicLineHeight)) + legendRowGap
}

// basicLineHeight is the line height of the built-in 7x13 face
const basicLineHeight = 13

func drawAxisLabels(c *Canvas, size float64) {
	mid := partyMargin + size/2
	c.DrawTextVertical(partyMargin/2, mid, LabelLawful, labelColor)
	c.DrawTextVertical(partyMargin+size+partyMargin/2, mid, LabelChaotic, labelColor)
	c.DrawTextCentered(mid, partyMargin-labelPad, LabelGood, labelColor)
	c.DrawTextCentered(mid, partyMargin+size+labelPad+basicLineHeight, LabelEvil, labelColor)
}

func drawLegend(c *Canvas, markers []Marker, opts PartyOptions, legendX float64) {
	rowHeight := legendRowHeight(opts.LegendStyle)
	d := opts.LegendStyle.Diameter

	for i, m := range markers {
		cy := partyMargin + rowHeight*float64(i) + rowHeight/2
		cx := legendX + legendInset + d/2

		c.DrawMarkerAt(cx, cy, m.Color, opts.LegendStyle)
		if m.ID != "" && m.ID == opts.HighlightID {
			tip := cx - d/2 - 1
			c.DrawArrowAt(tip, cy, 1, 0, LegendArrowStyle(opts.LegendStyle))
		}
		// Vertically center the 7x13 face on the marker
		c.DrawText(cx+d/2+legendTextGap, cy+4, m.Label(), textColor)
	}
}

// LegendArrowStyle shrinks the arrow so it fits in the legend inset
func LegendArrowStyle(legend MarkerStyle) MarkerStyle {
	return MarkerStyle{Diameter: legend.Diameter * 0.5}
}

// RenderTab draws the single-character grid: gradient, reference lines and
// one filled cell at v.
func RenderTab(v alignment.Value, size float64) *image.RGBA {
	layout := NewLayout(size)
	side := int(math.Ceil(size))

	c := NewCanvas(side, side, layout, 0, 0)
	c.Fill(canvasColor)
	c.DrawBackground()
	c.DrawMajorGrid()
	c.DrawCellMarker(v.Clamped())

	return c.Image()
}

// EncodePNG writes img as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
