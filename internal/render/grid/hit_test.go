package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
	"github.com/KirkDiggler/rpg-alignment/internal/render/grid"
)

func TestHitTest(t *testing.T) {
	markers := []grid.Marker{
		{ID: "first", X: 100, Y: 100, Radius: 15.5},
		{ID: "second", X: 110, Y: 100, Radius: 15.5},
		{ID: "far", X: 300, Y: 300, Radius: 15.5},
	}

	tests := []struct {
		name   string
		x, y   float64
		wantID string
		found  bool
	}{
		{name: "center hit", x: 300, y: 300, wantID: "far", found: true},
		{name: "overlap resolves to first", x: 105, y: 100, wantID: "first", found: true},
		{name: "only second covers point", x: 124, y: 100, wantID: "second", found: true},
		{name: "edge of radius counts", x: 315.5, y: 300, wantID: "far", found: true},
		{name: "just outside radius", x: 315.6, y: 300, found: false},
		{name: "empty space", x: 10, y: 10, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := grid.HitTest(markers, tt.x, tt.y)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.wantID, m.ID)
			}
		})
	}
}

func TestHitTestNoMarkers(t *testing.T) {
	_, ok := grid.HitTest(nil, 1, 1)
	assert.False(t, ok)
}

func TestTooltipFor(t *testing.T) {
	m := grid.Marker{
		Name:   "Bram",
		Value:  alignment.Value{Law: 22, Moral: 37},
		X:      225,
		Y:      75,
		Radius: 15.5,
	}

	tip := grid.TooltipFor(m)
	assert.Equal(t, "Bram (neutral good)", tip.Text)
	assert.InDelta(t, 225, tip.X, 1e-9)
	assert.InDelta(t, 75-15.5-6, tip.Y, 1e-9)
}

func TestFind(t *testing.T) {
	markers := []grid.Marker{{ID: "a"}, {ID: "b"}}

	m, ok := grid.Find(markers, "b")
	assert.True(t, ok)
	assert.Equal(t, "b", m.ID)

	_, ok = grid.Find(markers, "z")
	assert.False(t, ok)
}
