package advanced

import "math"

// A Triangle is an ordered triple of vertices. The circumcircle is derived
// lazily and cached, since the incremental insertion loop queries it for
// every triangle in the working set on every insertion. The cache is valid
// as long as the vertices are unchanged; a caller that swaps a vertex must
// call InvalidateCache.
type Triangle struct {
	A, B, C *Point

	circumcenter   *Point
	circumradiusSq float64
	circumcircleOK bool
}

func NewTriangle(a, b, c *Point) *Triangle {
	return &Triangle{A: a, B: b, C: c}
}

// Edges returns the boundary edges in (A,B), (B,C), (C,A) cyclic order. The
// order is deterministic even though Edge equality ignores direction.
func (t *Triangle) Edges() [3]Edge {
	return [3]Edge{
		{t.A, t.B},
		{t.B, t.C},
		{t.C, t.A},
	}
}

func (t *Triangle) SignedArea() float64 {
	return ((t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.C.X-t.A.X)*(t.B.Y-t.A.Y)) / 2
}

// Area is always non-negative, independent of winding order.
func (t *Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t *Triangle) Centroid() *Point {
	return &Point{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
	}
}

// Circumcenter returns the center of the circle through all three vertices.
// The returned pointer is stable across calls until InvalidateCache.
func (t *Triangle) Circumcenter() *Point {
	if !t.circumcircleOK {
		t.computeCircumcircle()
	}
	return t.circumcenter
}

// CircumradiusSquared is the squared distance from the circumcenter to any
// vertex. Squared, because every consumer compares it against squared
// distances.
func (t *Triangle) CircumradiusSquared() float64 {
	if !t.circumcircleOK {
		t.computeCircumcircle()
	}
	return t.circumradiusSq
}

func (t *Triangle) InvalidateCache() {
	t.circumcenter = nil
	t.circumradiusSq = 0
	t.circumcircleOK = false
}

// Standard 2x2 determinant form. The denominator d is twice the signed area
// times two, so collinear vertices zero it out; we refuse to divide in that
// case rather than cache a NaN center that would poison every subsequent
// circumcircle test.
func (t *Triangle) computeCircumcircle() {
	a, b, c := t.A, t.B, t.C
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		throw(ErrDegenerateTriangle, "collinear vertices (%v %v %v) have no circumcircle", *a, *b, *c)
	}

	aSq := a.X*a.X + a.Y*a.Y
	bSq := b.X*b.X + b.Y*b.Y
	cSq := c.X*c.X + c.Y*c.Y
	t.circumcenter = &Point{
		X: (aSq*(b.Y-c.Y) + bSq*(c.Y-a.Y) + cSq*(a.Y-b.Y)) / d,
		Y: (aSq*(c.X-b.X) + bSq*(a.X-c.X) + cSq*(b.X-a.X)) / d,
	}
	t.circumradiusSq = t.circumcenter.DistanceToSquared(a)
	t.circumcircleOK = true
}

// CircumcircleContains reports whether p lies strictly inside the
// circumcircle. Points exactly on the circle are not inside; for exactly
// co-circular inputs, which triangle gets flagged bad during insertion is
// insertion-order-dependent, and any structurally valid result is fine.
func (t *Triangle) CircumcircleContains(p *Point) bool {
	return p.DistanceToSquared(t.Circumcenter()) < t.CircumradiusSquared()
}

// ContainsPoint is a barycentric point-in-triangle test. Edges and vertices
// count as inside.
func (t *Triangle) ContainsPoint(p *Point) bool {
	denom := (t.B.Y-t.C.Y)*(t.A.X-t.C.X) + (t.C.X-t.B.X)*(t.A.Y-t.C.Y)
	if denom == 0 {
		throw(ErrDegenerateTriangle, "zero-area triangle (%v %v %v) has no interior", *t.A, *t.B, *t.C)
	}
	u := ((t.B.Y-t.C.Y)*(p.X-t.C.X) + (t.C.X-t.B.X)*(p.Y-t.C.Y)) / denom
	v := ((t.C.Y-t.A.Y)*(p.X-t.C.X) + (t.A.X-t.C.X)*(p.Y-t.C.Y)) / denom
	w := 1 - u - v
	return u >= 0 && v >= 0 && w >= 0
}

func (t *Triangle) HasVertex(p *Point) bool {
	return t.A == p || t.B == p || t.C == p
}

func (t *Triangle) SharesVertexWith(other *Triangle) bool {
	return t.HasVertex(other.A) || t.HasVertex(other.B) || t.HasVertex(other.C)
}
