package grid_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
	"github.com/KirkDiggler/rpg-alignment/internal/render/grid"
)

type RenderTestSuite struct {
	suite.Suite
	opts    grid.PartyOptions
	markers []grid.Marker
}

func (s *RenderTestSuite) SetupTest() {
	s.opts = grid.DefaultPartyOptions()
	s.markers = grid.PlaceMarkers(s.opts.Layout, s.opts.Style, []grid.Entry{
		{ID: "char_a", Name: "Alice", Value: alignment.Value{Law: 22, Moral: 22}},
		{ID: "char_b", Name: "Bob", Value: alignment.Value{Law: 37, Moral: 7}},
		{ID: "char_c", Name: "Cara", Value: alignment.Value{Law: 7, Moral: 37}},
	})
}

func (s *RenderTestSuite) rgba(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func (s *RenderTestSuite) assertColorNear(want, got color.RGBA, delta float64) {
	s.InDelta(float64(want.R), float64(got.R), delta, "red")
	s.InDelta(float64(want.G), float64(got.G), delta, "green")
	s.InDelta(float64(want.B), float64(got.B), delta, "blue")
}

func (s *RenderTestSuite) TestBackgroundColor() {
	s.Equal(color.RGBA{R: 255, A: 255}, grid.BackgroundColor(0, 0))
	s.Equal(color.RGBA{R: 180, G: 180, B: 180, A: 255}, grid.BackgroundColor(22, 22))
	s.Equal(color.RGBA{G: 128, A: 255}, grid.BackgroundColor(44, 44))
	s.Equal(color.RGBA{R: 128, G: 64, A: 255}, grid.BackgroundColor(0, 44))
}

func (s *RenderTestSuite) TestRenderTab() {
	img := grid.RenderTab(alignment.Value{Law: 14, Moral: 14}, grid.TabSize)
	s.Equal(image.Rect(0, 0, 225, 225), img.Bounds())

	// The character's cell is solid
	s.Equal(color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}, s.rgba(img, 152, 152))

	// A cell away from the reference lines keeps its gradient color
	s.Equal(grid.BackgroundColor(0, 0), s.rgba(img, 221, 221))
	s.Equal(grid.BackgroundColor(44, 44), s.rgba(img, 3, 3))

	// Major line through x=75
	s.Equal(color.RGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}, s.rgba(img, 75, 40))
}

func (s *RenderTestSuite) TestRenderTabClampsValue() {
	img := grid.RenderTab(alignment.Value{Law: -10, Moral: 100}, grid.TabSize)
	cell := grid.NewLayout(grid.TabSize).Cell(0, 44)
	s.Equal(color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}, s.rgba(img, cell.Min.X+2, cell.Min.Y+2))
}

func (s *RenderTestSuite) TestRenderPartyDrawsMarkers() {
	out := grid.RenderParty(s.markers, s.opts)
	s.Equal(image.Pt(48, 48), out.Origin)
	s.False(out.Highlighted)
	s.Equal(806, out.Image.Bounds().Dx())
	s.Equal(546, out.Image.Bounds().Dy())

	for _, m := range s.markers {
		cx := out.Origin.X + int(m.X)
		cy := out.Origin.Y + int(m.Y)
		s.assertColorNear(m.Color, s.rgba(out.Image, cx, cy), 12)
	}
}

func (s *RenderTestSuite) TestRenderPartyRingIsDarkened() {
	out := grid.RenderParty(s.markers, s.opts)

	m := s.markers[0]
	cx := out.Origin.X + int(m.X)
	cy := out.Origin.Y + int(m.Y)
	// Middle of the ring band, outside the fill disc
	s.assertColorNear(grid.Darken(m.Color, 10), s.rgba(out.Image, cx+11, cy), 2)
}

func (s *RenderTestSuite) TestRenderPartyHighlight() {
	plain := grid.RenderParty(s.markers, s.opts)

	s.opts.HighlightID = "char_a"
	highlighted := grid.RenderParty(s.markers, s.opts)
	s.True(highlighted.Highlighted)

	// Arrow shaft above Alice, who sits at the center of the grid
	x := highlighted.Origin.X + 225
	y := highlighted.Origin.Y + 225 - 33
	s.Equal(color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}, s.rgba(highlighted.Image, x, y))
	s.NotEqual(s.rgba(plain.Image, x, y), s.rgba(highlighted.Image, x, y))
}

func (s *RenderTestSuite) TestRenderPartyUnknownHighlight() {
	s.opts.HighlightID = "char_missing"
	out := grid.RenderParty(s.markers, s.opts)
	s.False(out.Highlighted)
}

func (s *RenderTestSuite) TestRenderPartyTallLegend() {
	entries := make([]grid.Entry, 30)
	for i := range entries {
		entries[i] = grid.Entry{ID: "c", Name: "Member", Value: alignment.Value{Law: i, Moral: i}}
	}
	markers := grid.PlaceMarkers(s.opts.Layout, s.opts.Style, entries)

	out := grid.RenderParty(markers, s.opts)
	// 30 rows of (18 + 10) plus top and bottom margins
	s.Equal(2*48+30*28, out.Image.Bounds().Dy())
}

func (s *RenderTestSuite) TestEncodePNG() {
	img := grid.RenderTab(alignment.Value{Law: 22, Moral: 22}, grid.TabSize)

	var buf bytes.Buffer
	s.Require().NoError(grid.EncodePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	s.Require().NoError(err)
	s.Equal(img.Bounds(), decoded.Bounds())
}

func TestRenderTestSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}
