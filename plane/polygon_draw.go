package plane

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

// Padding around the shape so that query points outside it stay visible
const dbgDrawPadding = 50

// Render the polygon and a set of query points to a PNG at path, then print it
// to w (iTerm only). Inside points are drawn green, outside points red.
func (poly *SimplePolygon) dbgDraw(path string, w io.Writer, scale float64, queries ...Point) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, points := range [][]Point{poly.vertices, queries} {
		for _, p := range points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) { // Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	if len(poly.vertices) > 0 {
		c.SetLineWidth(2)
		c.MoveTo(poly.vertices[0].X, poly.vertices[0].Y)
		for _, p := range poly.vertices[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	for _, q := range queries {
		if poly.IsInside(q) {
			c.SetRGB(0, 1, 0)
		} else {
			c.SetRGB(1, 0, 0)
		}
		c.DrawCircle(q.X, q.Y, 3/scale)
		c.Fill()
	}

	if err := c.SavePNG(path); err != nil {
		return err
	}
	return imgcat.CatFile(path, w)
}
