package grid

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
)

// bezierCircle is the control point distance for a quarter circle
const bezierCircle = 0.5522847498

// Shadow approximation: stacked translucent rings out to the blur radius
const (
	shadowLayers = 6
	shadowAlpha  = 0.35
)

var (
	majorLineColor = MustParseHex("#bbb")
	cellMarkColor  = MustParseHex("#111")
	labelColor     = MustParseHex("#555")
	textColor      = MustParseHex("#222")
	canvasColor    = MustParseHex("#f5eaff")

	// Background gradient stops, low to high
	gradientLow  = [3]float64{255, 0, 0}
	gradientMid  = [3]float64{180, 180, 180}
	gradientHigh = [3]float64{0, 128, 0}
)

// MajorLineWidth is the stroke width of the 3x3 reference grid
const MajorLineWidth = 2.0

// Canvas draws onto an RGBA image. Grid-space drawing is offset by the grid
// origin; the *At methods take image coordinates.
type Canvas struct {
	img    *image.RGBA
	layout Layout
	ox, oy float64
	raster *vector.Rasterizer
	face   font.Face
}

// NewCanvas creates a width x height canvas whose grid square starts at
// (originX, originY)
func NewCanvas(width, height int, layout Layout, originX, originY float64) *Canvas {
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		layout: layout,
		ox:     originX,
		oy:     originY,
		raster: vector.NewRasterizer(width, height),
		face:   basicfont.Face7x13,
	}
}

// Image returns the backing image
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Fill paints the whole canvas
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// BackgroundColor is the gradient color of one fine cell: each axis runs
// red to gray to green and the two are averaged.
func BackgroundColor(law, moral int) color.RGBA {
	a := axisGradient(alignment.Clamp(law))
	b := axisGradient(alignment.Clamp(moral))
	return color.RGBA{
		R: uint8(round((a[0] + b[0]) / 2)),
		G: uint8(round((a[1] + b[1]) / 2)),
		B: uint8(round((a[2] + b[2]) / 2)),
		A: 0xff,
	}
}

func axisGradient(v int) [3]float64 {
	t := float64(v) / alignment.MaxValue
	from, to := gradientLow, gradientMid
	if t < 0.5 {
		t *= 2
	} else {
		from, to = gradientMid, gradientHigh
		t = (t - 0.5) * 2
	}

	var out [3]float64
	for i := range out {
		out[i] = float64(round(from[i] + (to[i]-from[i])*t))
	}
	return out
}

// DrawBackground fills every fine cell with its gradient color
func (c *Canvas) DrawBackground() {
	offset := image.Pt(round(c.ox), round(c.oy))
	for law := alignment.MinValue; law <= alignment.MaxValue; law++ {
		for moral := alignment.MinValue; moral <= alignment.MaxValue; moral++ {
			cell := c.layout.Cell(law, moral).Add(offset)
			draw.Draw(c.img, cell, image.NewUniform(BackgroundColor(law, moral)), image.Point{}, draw.Src)
		}
	}
}

// DrawMajorGrid strokes the 3x3 reference lines
func (c *Canvas) DrawMajorGrid() {
	size := c.layout.Size
	half := MajorLineWidth / 2
	for _, at := range c.layout.MajorLines() {
		x := c.ox + at
		c.fillRect(x-half, c.oy, x+half, c.oy+size, majorLineColor, 1)

		y := c.oy + size - at
		c.fillRect(c.ox, y-half, c.ox+size, y+half, majorLineColor, 1)
	}
}

// DrawCellMarker fills the fine cell for v, the single-character marker
func (c *Canvas) DrawCellMarker(v alignment.Value) {
	cell := c.layout.Cell(v.Law, v.Moral).Add(image.Pt(round(c.ox), round(c.oy)))
	draw.Draw(c.img, cell, image.NewUniform(cellMarkColor), image.Point{}, draw.Src)
}

// DrawMarker draws m at its grid position
func (c *Canvas) DrawMarker(m Marker, style MarkerStyle) {
	c.DrawMarkerAt(c.ox+m.X, c.oy+m.Y, m.Color, style)
}

// DrawMarkerAt draws a layered marker centered at image coordinates (cx, cy)
func (c *Canvas) DrawMarkerAt(cx, cy float64, col color.RGBA, style MarkerStyle) {
	for _, layer := range style.Layers() {
		switch layer.Kind {
		case LayerOutline:
			c.strokeCircle(cx, cy, layer.Radius, layer.Width, outlineColor, 1)
		case LayerHalo:
			c.shadow(cx, cy, layer.Radius, layer.Width, layer.Blur)
			c.strokeCircle(cx, cy, layer.Radius, layer.Width, haloColor, haloAlpha)
		case LayerRing:
			c.strokeCircle(cx, cy, layer.Radius, layer.Width, Darken(col, ringShade), 1)
		case LayerFill:
			c.fillCircle(cx, cy, layer.Radius, col, fillAlpha)
		}
	}
}

// DrawArrow points an arrow at m. The arrow sits above the marker unless
// there is no room, in which case it comes from below.
func (c *Canvas) DrawArrow(m Marker, style MarkerStyle) {
	length := style.scale(arrowLength)
	tipY := m.Y - m.Radius - style.scale(arrowGap)
	dir := 1.0
	if tipY-length < 0 {
		tipY = m.Y + m.Radius + style.scale(arrowGap)
		dir = -1
	}
	c.DrawArrowAt(c.ox+m.X, c.oy+tipY, 0, dir, style)
}

// Arrow proportions, relative to the reference marker
const (
	arrowLength    = 22.0
	arrowHead      = 10.0
	arrowHeadHalf  = 8.0
	arrowShaftHalf = 3.0
	arrowGap       = 2.0
	arrowOutline   = 1.5
)

// DrawArrowAt draws an arrow whose tip is at (tipX, tipY) pointing along
// (dx, dy), in image coordinates
func (c *Canvas) DrawArrowAt(tipX, tipY, dx, dy float64, style MarkerStyle) {
	norm := math.Hypot(dx, dy)
	if norm == 0 {
		return
	}
	dx, dy = dx/norm, dy/norm

	pad := style.scale(arrowOutline)
	c.fillPolygon(arrowPolygon(tipX+dx*pad, tipY+dy*pad, dx, dy,
		style.scale(arrowLength)+2*pad,
		style.scale(arrowHead)+pad,
		style.scale(arrowHeadHalf)+pad,
		style.scale(arrowShaftHalf)+pad,
	), haloColor, 1)
	c.fillPolygon(arrowPolygon(tipX, tipY, dx, dy,
		style.scale(arrowLength),
		style.scale(arrowHead),
		style.scale(arrowHeadHalf),
		style.scale(arrowShaftHalf),
	), outlineColor, 1)
}

// arrowPolygon builds the seven points of an arrow in image space
func arrowPolygon(tipX, tipY, dx, dy, length, head, headHalf, shaftHalf float64) [][2]float64 {
	// nx, ny is perpendicular to the direction of travel
	nx, ny := -dy, dx
	at := func(along, across float64) [2]float64 {
		return [2]float64{tipX - dx*along + nx*across, tipY - dy*along + ny*across}
	}
	return [][2]float64{
		at(0, 0),
		at(head, headHalf),
		at(head, shaftHalf),
		at(length, shaftHalf),
		at(length, -shaftHalf),
		at(head, -shaftHalf),
		at(head, -headHalf),
	}
}

// DrawText draws s with its baseline starting at (x, y)
func (c *Canvas) DrawText(x, y float64, s string, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(round(x), round(y)),
	}
	d.DrawString(s)
}

// DrawTextCentered draws s horizontally centered on cx
func (c *Canvas) DrawTextCentered(cx, y float64, s string, col color.Color) {
	width := font.MeasureString(c.face, s).Round()
	c.DrawText(cx-float64(width)/2, y, s, col)
}

// DrawTextVertical stacks the letters of s centered on (cx, cy)
func (c *Canvas) DrawTextVertical(cx, cy float64, s string, col color.Color) {
	metrics := c.face.Metrics()
	lineHeight := float64(metrics.Height.Round())
	ascent := float64(metrics.Ascent.Round())

	runes := []rune(s)
	top := cy - lineHeight*float64(len(runes))/2
	for i, r := range runes {
		c.DrawTextCentered(cx, top+ascent+lineHeight*float64(i), string(r), col)
	}
}

func (c *Canvas) shadow(cx, cy, radius, width, blur float64) {
	if blur <= 0 {
		return
	}
	for i := 1; i <= shadowLayers; i++ {
		spread := blur * float64(i) / shadowLayers
		c.strokeCircle(cx, cy, radius, width+2*spread, shadowColor, shadowAlpha/shadowLayers)
	}
}

func (c *Canvas) strokeCircle(cx, cy, radius, width float64, col color.RGBA, alpha float64) {
	outer := radius + width/2
	inner := radius - width/2
	c.fill(col, alpha, func(r *vector.Rasterizer) {
		addCircle(r, cx, cy, outer, false)
		if inner > 0 {
			addCircle(r, cx, cy, inner, true)
		}
	})
}

func (c *Canvas) fillCircle(cx, cy, radius float64, col color.RGBA, alpha float64) {
	c.fill(col, alpha, func(r *vector.Rasterizer) {
		addCircle(r, cx, cy, radius, false)
	})
}

func (c *Canvas) fillRect(x0, y0, x1, y1 float64, col color.RGBA, alpha float64) {
	c.fillPolygon([][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}, col, alpha)
}

func (c *Canvas) fillPolygon(points [][2]float64, col color.RGBA, alpha float64) {
	if len(points) < 3 {
		return
	}
	c.fill(col, alpha, func(r *vector.Rasterizer) {
		r.MoveTo(float32(points[0][0]), float32(points[0][1]))
		for _, p := range points[1:] {
			r.LineTo(float32(p[0]), float32(p[1]))
		}
		r.ClosePath()
	})
}

// fill rasterizes one path and composites col over the canvas
func (c *Canvas) fill(col color.RGBA, alpha float64, path func(r *vector.Rasterizer)) {
	b := c.img.Bounds()
	c.raster.Reset(b.Dx(), b.Dy())
	path(c.raster)

	src := image.NewUniform(color.NRGBA{
		R: col.R,
		G: col.G,
		B: col.B,
		A: uint8(round(alpha * float64(col.A))),
	})
	c.raster.Draw(c.img, b, src, image.Point{})
}

// addCircle appends a circle as four cubic Béziers. Winding direction
// decides whether it adds coverage or cuts a hole in an enclosing circle.
func addCircle(r *vector.Rasterizer, cx64, cy64, radius64 float64, clockwise bool) {
	cx, cy, radius := float32(cx64), float32(cy64), float32(radius64)
	kr := float32(bezierCircle) * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
