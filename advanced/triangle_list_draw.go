package advanced

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/dbg"
)

// Padding around the mesh so super-triangle remnants are obvious when
// debugging a working set that hasn't been stripped yet.
const drawPadding = 100

func (tl TriangleList) bounds() (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, t := range tl {
		for _, p := range []*Point{t.A, t.B, t.C} {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return
}

// NewContext sets up a gg context sized and transformed so the whole list is
// visible with the origin at the bottom left.
func (tl TriangleList) NewContext(scale float64) *gg.Context {
	minX, minY, maxX, maxY := tl.bounds()

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	return c
}

// Draw fills and strokes every triangle on the context.
func (tl TriangleList) Draw(c *gg.Context) {
	for _, t := range tl {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()
}

// Helper to draw and print a triangle list in the terminal (iTerm only) for
// debugging.
func (tl TriangleList) dbgDraw(scale float64) {
	c := tl.NewContext(scale)
	c.SetLineWidth(2)
	tl.Draw(c)

	// Label each triangle with its readable name, at its centroid. We have to
	// go back to identity to draw the text.
	c.SetRGB(1, 1, 1)
	for _, t := range tl {
		centroid := t.Centroid()
		x, y := c.TransformPoint(centroid.X, centroid.Y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(dbg.Name(t), x, y, 0.5, 0.5)
		c.Pop()
	}

	// Save to temp file
	c.SavePNG("/tmp/triangulation.png")
	// Print to terminal
	imgcat.CatFile("/tmp/triangulation.png", os.Stdout)
}
