package advanced

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Capture the error a degenerate-geometry panic converts to, for asserting
// on failure modes without going through the public facade.
func capturePanic(fn func()) (err error) {
	defer func() {
		err = HandleTriangulatePanicRecover(recover())
	}()
	fn()
	return nil
}

func rotatePoint(p *Point, angle float64) {
	x := p.X*math.Cos(angle) - p.Y*math.Sin(angle)
	y := p.X*math.Sin(angle) + p.Y*math.Cos(angle)
	p.X = x
	p.Y = y
}

func TestTriangleEdges(t *testing.T) {
	a := &Point{0, 0}
	b := &Point{10, 0}
	c := &Point{0, 10}
	tri := NewTriangle(a, b, c)

	edges := tri.Edges()
	assert.Equal(t, [3]Edge{{a, b}, {b, c}, {c, a}}, edges)
}

func TestTriangleArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI // import into inner scope
		t.Run(fmt.Sprintf("With %s triangles", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			tri := NewTriangle(&Point{0, -1}, &Point{1, 0}, &Point{0, 1})
			if cwI == 1 {
				tri.A, tri.B = tri.B, tri.A
			}
			// Clockwise triangles have negative signed area, but Area is
			// winding-independent
			sign := 1 - 2*float64(cwI)
			assert.InDelta(t, sign*1, tri.SignedArea(), Tolerance)
			assert.InDelta(t, 1, tri.Area(), Tolerance)

			// Rotate the triangle repeatedly by a weird angle; area is invariant
			angle := math.Pi / 7
			for i := 0; i < 14; i++ {
				rotatePoint(tri.A, angle)
				rotatePoint(tri.B, angle)
				rotatePoint(tri.C, angle)
				assert.InDelta(t, 1, tri.Area(), Tolerance)
			}
		})
	}
}

func TestTriangleCentroid(t *testing.T) {
	tri := NewTriangle(&Point{0, 0}, &Point{6, 0}, &Point{0, 6})
	assert.Equal(t, &Point{2, 2}, tri.Centroid())
}

func TestTriangleCircumcircle(t *testing.T) {
	// Right triangle on the unit square: circumcenter is the hypotenuse
	// midpoint
	tri := NewTriangle(&Point{0, 0}, &Point{10, 0}, &Point{0, 10})
	center := tri.Circumcenter()
	assert.InDelta(t, 5, center.X, Tolerance)
	assert.InDelta(t, 5, center.Y, Tolerance)
	assert.InDelta(t, 50, tri.CircumradiusSquared(), Tolerance)

	// Equilateral-ish check: every vertex is equidistant from the center
	tri = NewTriangle(&Point{1, 1}, &Point{7, 3}, &Point{2, 9})
	center = tri.Circumcenter()
	dA := center.DistanceTo(tri.A)
	dB := center.DistanceTo(tri.B)
	dC := center.DistanceTo(tri.C)
	assert.InDelta(t, dA, dB, Tolerance)
	assert.InDelta(t, dA, dC, Tolerance)
	assert.InDelta(t, dA*dA, tri.CircumradiusSquared(), Tolerance)
}

func TestTriangleCircumcenterCache(t *testing.T) {
	tri := NewTriangle(&Point{0, 0}, &Point{10, 0}, &Point{0, 10})

	// Reference-stable across repeated calls
	first := tri.Circumcenter()
	assert.Same(t, first, tri.Circumcenter())

	// Invalidation yields a new, numerically-equal value
	tri.InvalidateCache()
	second := tri.Circumcenter()
	assert.NotSame(t, first, second)
	assert.Equal(t, first, second)
}

func TestTriangleCircumcircleContainsIsStrict(t *testing.T) {
	tri := NewTriangle(&Point{0, 0}, &Point{10, 0}, &Point{0, 10})

	assert.True(t, tri.CircumcircleContains(&Point{5, 5}))
	assert.False(t, tri.CircumcircleContains(&Point{50, 50}))

	// (10, 10) lies exactly on the circle through the three vertices; exactly
	// on the circle is not inside
	assert.False(t, tri.CircumcircleContains(&Point{10, 10}))
}

func TestTriangleDegenerateCircumcircle(t *testing.T) {
	collinear := NewTriangle(&Point{0, 0}, &Point{5, 5}, &Point{10, 10})
	err := capturePanic(func() { collinear.Circumcenter() })
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrDegenerateTriangle)

	// No NaN or Inf leaks out even after a failed computation
	err = capturePanic(func() { collinear.CircumradiusSquared() })
	assert.ErrorIs(t, err, ErrDegenerateTriangle)
}

func TestTriangleContainsPoint(t *testing.T) {
	tri := NewTriangle(&Point{0, 0}, &Point{10, 0}, &Point{0, 10})

	assert.True(t, tri.ContainsPoint(&Point{2, 2}))
	assert.False(t, tri.ContainsPoint(&Point{8, 8}))
	assert.False(t, tri.ContainsPoint(&Point{-1, 5}))

	// Vertices and edges count as inside
	assert.True(t, tri.ContainsPoint(&Point{0, 0}))
	assert.True(t, tri.ContainsPoint(&Point{5, 0}))
}

func TestTriangleContainsPointDegenerate(t *testing.T) {
	flat := NewTriangle(&Point{0, 0}, &Point{5, 0}, &Point{10, 0})
	err := capturePanic(func() { flat.ContainsPoint(&Point{1, 1}) })
	assert.ErrorIs(t, err, ErrDegenerateTriangle)
}

func TestTriangleVertexSharing(t *testing.T) {
	a := &Point{0, 0}
	b := &Point{10, 0}
	c := &Point{0, 10}
	d := &Point{10, 10}
	e := &Point{20, 20}
	f := &Point{30, 20}

	tri := NewTriangle(a, b, c)
	assert.True(t, tri.HasVertex(a))
	// Identity, not value: an equal point at a different address doesn't count
	assert.False(t, tri.HasVertex(&Point{0, 0}))

	assert.True(t, tri.SharesVertexWith(NewTriangle(b, d, e)))
	assert.False(t, tri.SharesVertexWith(NewTriangle(d, e, f)))
}
