package grid

// HitTest returns the first marker whose hit radius contains (x, y).
// Overlapping markers resolve to the earliest in the slice.
func HitTest(markers []Marker, x, y float64) (Marker, bool) {
	for _, m := range markers {
		dx, dy := x-m.X, y-m.Y
		if dx*dx+dy*dy <= m.Radius*m.Radius {
			return m, true
		}
	}
	return Marker{}, false
}

// Tooltip is hover text anchored in grid space. X is the horizontal center
// and Y the bottom edge of the tooltip.
type Tooltip struct {
	Text string
	X, Y float64
}

// TooltipFor returns the tooltip shown above m
func TooltipFor(m Marker) Tooltip {
	return Tooltip{
		Text: m.Label(),
		X:    m.X,
		Y:    m.Y - m.Radius - tooltipGap,
	}
}

// Find returns the marker with the given ID
func Find(markers []Marker, id string) (Marker, bool) {
	for _, m := range markers {
		if m.ID == id {
			return m, true
		}
	}
	return Marker{}, false
}
