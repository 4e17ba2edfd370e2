package grid_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-alignment/internal/render/grid"
)

func TestLayoutPosition(t *testing.T) {
	layout := grid.NewLayout(grid.PartySize)
	assert.InDelta(t, 10.0, layout.Step(), 1e-9)

	tests := []struct {
		name         string
		law, moral   int
		wantX, wantY float64
	}{
		{name: "chaotic evil corner is bottom right", law: 0, moral: 0, wantX: 445, wantY: 445},
		{name: "lawful good corner is top left", law: 44, moral: 44, wantX: 5, wantY: 5},
		{name: "true neutral is centered", law: 22, moral: 22, wantX: 225, wantY: 225},
		{name: "law moves left as it grows", law: 1, moral: 0, wantX: 435, wantY: 445},
		{name: "out of range values are clamped", law: -3, moral: 99, wantX: 445, wantY: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := layout.Position(tt.law, tt.moral)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestLayoutPositionIsCellCenter(t *testing.T) {
	for _, size := range []float64{grid.TabSize, grid.PartySize, 900} {
		layout := grid.NewLayout(size)
		step := layout.Step()

		x, y := layout.Position(0, 0)
		assert.InDelta(t, size-step/2, x, 1e-9, "rightmost column center")
		assert.InDelta(t, size-step/2, y, 1e-9, "bottom row center")

		x, y = layout.Position(44, 44)
		assert.InDelta(t, step/2, x, 1e-9, "leftmost column center")
		assert.InDelta(t, step/2, y, 1e-9, "top row center")
	}
}

func TestLayoutCell(t *testing.T) {
	tab := grid.NewLayout(grid.TabSize)
	assert.Equal(t, image.Rect(150, 150, 155, 155), tab.Cell(14, 14))
	assert.Equal(t, image.Rect(220, 220, 225, 225), tab.Cell(0, 0))
	assert.Equal(t, image.Rect(0, 0, 5, 5), tab.Cell(44, 44))

	party := grid.NewLayout(grid.PartySize)
	assert.Equal(t, image.Rect(440, 440, 450, 450), party.Cell(0, 0))
}

func TestLayoutMajorLines(t *testing.T) {
	assert.Equal(t, []float64{0, 150, 300, 450}, grid.NewLayout(grid.PartySize).MajorLines())
	assert.Equal(t, []float64{0, 75, 150, 225}, grid.NewLayout(grid.TabSize).MajorLines())
}
