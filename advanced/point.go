package advanced

import "math"

// Note that all points involved with a triangulation are pointers. This means
// they can be used as map keys, and identity survives the whole insertion
// pipeline. We should never modify a point value once it has entered a
// triangulation; every arithmetic operation below returns a new value.
type Point struct {
	X float64
	Y float64
}

func (p *Point) Add(other *Point) *Point {
	return &Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p *Point) Sub(other *Point) *Point {
	return &Point{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p *Point) Mul(scalar float64) *Point {
	return &Point{X: p.X * scalar, Y: p.Y * scalar}
}

// Div scales by 1/scalar. A zero scalar is the caller's responsibility.
func (p *Point) Div(scalar float64) *Point {
	return &Point{X: p.X / scalar, Y: p.Y / scalar}
}

func (p *Point) DistanceTo(other *Point) float64 {
	return math.Sqrt(p.DistanceToSquared(other))
}

// The squared form avoids a square root on hot comparison paths; the
// circumcircle test in particular only ever compares squared distances.
func (p *Point) DistanceToSquared(other *Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Exact component comparison. The triangulation itself only compares by
// pointer identity, but callers deduplicating input want exact value equality.
func (p *Point) Equals(other *Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p *Point) ApproximatelyEquals(other *Point, epsilon float64) bool {
	return math.Abs(p.X-other.X) < epsilon && math.Abs(p.Y-other.Y) < epsilon
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". This simulates a
// slightly rotated coordinate system, giving a total order over distinct
// points that the canonical edge key relies on.
func (p *Point) Below(otherPoint *Point) bool {
	if Equal(p.Y, otherPoint.Y) {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p *Point) Above(otherPoint *Point) bool {
	return !p.Below(otherPoint)
}
