package grid_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-alignment/internal/render/grid"
)

func TestPaletteColorCycles(t *testing.T) {
	require.Len(t, grid.Palette, 8)
	assert.Equal(t, "#e74c3c", grid.Hex(grid.PaletteColor(0)))
	assert.Equal(t, "#34495e", grid.Hex(grid.PaletteColor(7)))
	assert.Equal(t, grid.PaletteColor(0), grid.PaletteColor(8))
	assert.Equal(t, grid.PaletteColor(3), grid.PaletteColor(19))
	assert.Equal(t, grid.PaletteColor(7), grid.PaletteColor(-1))
}

func TestParseHex(t *testing.T) {
	c, err := grid.ParseHex("#3498db")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}, c)

	c, err = grid.ParseHex("#bbb")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}, c)

	_, err = grid.ParseHex("#12345")
	assert.Error(t, err)

	_, err = grid.ParseHex("#zzzzzz")
	assert.Error(t, err)
}

func TestDarken(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "#e74c3c", want: "#d04436"},
		{in: "#000000", want: "#000000"},
		{in: "#ffffff", want: "#e6e6e6"},
		{in: "#191919", want: "#171717"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.Hex(grid.Darken(grid.MustParseHex(tt.in), 10)))
		})
	}
}

func TestShadeLightens(t *testing.T) {
	assert.Equal(t, "#ffffff", grid.Hex(grid.Shade(grid.MustParseHex("#ffffff"), 50)))
	assert.Equal(t, "#808080", grid.Hex(grid.Shade(grid.MustParseHex("#000000"), 50)))
}
