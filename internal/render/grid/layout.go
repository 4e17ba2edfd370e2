// Package grid draws alignment grids: the shared party grid with layered
// markers and legend, and the single-character tab grid.
//
// Grid space has its origin at the top left of the grid square. The law axis
// is inverted: law 0 sits in the rightmost column and law 44 in the leftmost,
// so chaos reads on the right. Moral 0 is the bottom row.
package grid

import (
	"image"
	"math"

	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
)

// Steps is the number of fine cells along each axis
const Steps = alignment.GridSteps

// Major is the number of major cells along each axis
const Major = 3

// Default canvas sizes
const (
	PartySize = 450.0
	TabSize   = 225.0
)

// Layout maps alignment values onto a square grid of side Size.
type Layout struct {
	Size float64
}

// NewLayout returns a layout of the given side length
func NewLayout(size float64) Layout {
	return Layout{Size: size}
}

// Step is the side length of one fine cell
func (l Layout) Step() float64 {
	return l.Size / Steps
}

// Position returns the center of the cell for (law, moral). Values are
// clamped first.
func (l Layout) Position(law, moral int) (x, y float64) {
	law, moral = alignment.Clamp(law), alignment.Clamp(moral)
	step := l.Step()
	x = l.Size - step - float64(law)*step + step/2
	y = l.Size - float64(moral+1)*step + step/2
	return x, y
}

// Cell returns the pixel rectangle of the fine cell for (law, moral).
// Adjacent cells share edges so a full fill leaves no gaps.
func (l Layout) Cell(law, moral int) image.Rectangle {
	law, moral = alignment.Clamp(law), alignment.Clamp(moral)
	step := l.Step()
	x0 := round(l.Size - float64(law+1)*step)
	x1 := round(l.Size - float64(law)*step)
	y0 := round(l.Size - float64(moral+1)*step)
	y1 := round(l.Size - float64(moral)*step)
	return image.Rect(x0, y0, x1, y1)
}

// MajorLines returns the offsets of the major grid lines, 0 through Size.
// Vertical lines sit at these x offsets and horizontal lines at these y
// offsets.
func (l Layout) MajorLines() []float64 {
	lines := make([]float64, Major+1)
	for i := range lines {
		lines[i] = float64(i) * l.Size / Major
	}
	return lines
}

// round matches the half-up rounding of canvas coordinates
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
