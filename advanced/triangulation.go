package advanced

import "math"

type TriangleList []*Triangle

// Points returns every distinct vertex referenced by the list.
func (tl TriangleList) Points() []*Point {
	seen := make(map[*Point]struct{})
	var points []*Point
	for _, t := range tl {
		for _, p := range []*Point{t.A, t.B, t.C} {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			points = append(points, p)
		}
	}
	return points
}

func (tl TriangleList) TotalArea() float64 {
	var sum float64
	for _, t := range tl {
		sum += t.Area()
	}
	return sum
}

// A Triangulation is the working state of an incremental Bowyer-Watson build:
// a triangle set seeded with a super triangle that must strictly contain
// every point that will be inserted. It is not safe for concurrent use; each
// build is a fresh value and no state survives across builds.
type Triangulation struct {
	Triangles TriangleList
	super     *Triangle
}

func NewTriangulation(super *Triangle) *Triangulation {
	return &Triangulation{
		Triangles: TriangleList{super},
		super:     super,
	}
}

// Insert runs one Bowyer-Watson cycle: find the triangles whose circumcircle
// strictly contains p, carve them out, and fan-retriangulate the hole they
// leave behind from p.
func (tr *Triangulation) Insert(p *Point) {
	var bad TriangleList
	keep := make(TriangleList, 0, len(tr.Triangles))
	for _, t := range tr.Triangles {
		if t.CircumcircleContains(p) {
			bad = append(bad, t)
		} else {
			keep = append(keep, t)
		}
	}

	// The hole's outline is every edge that belongs to exactly one bad
	// triangle. An edge shared by two bad triangles is interior to the hole
	// and vanishes with them. Counting occurrences by canonical key keeps
	// this linear in the number of bad-triangle edges.
	counts := make(map[edgeKey]int)
	outline := make(map[edgeKey]Edge)
	for _, t := range bad {
		for _, e := range t.Edges() {
			k := e.key()
			counts[k]++
			outline[k] = e
		}
	}

	tr.Triangles = keep
	for k, count := range counts {
		if count != 1 {
			continue
		}
		e := outline[k]
		tr.Triangles = append(tr.Triangles, NewTriangle(e.P, e.Q, p))
	}
}

// Result strips every triangle sharing a vertex with the super triangle. The
// remainder is the Delaunay triangulation of the inserted points, owned
// entirely by the caller.
func (tr *Triangulation) Result() TriangleList {
	var result TriangleList
	for _, t := range tr.Triangles {
		if t.SharesVertexWith(tr.super) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// Triangulate builds the Delaunay triangulation of points inside the given
// super triangle. Inputs are not mutated, and no super triangle vertex ever
// appears in the result. The final result is Delaunay regardless of insertion
// order, modulo the co-circular tie ambiguity noted on CircumcircleContains.
//
// Fewer than three points cannot form a triangle and yield an empty result.
func Triangulate(points []*Point, super *Triangle) TriangleList {
	tr := NewTriangulation(super)
	for _, p := range points {
		tr.Insert(p)
	}
	return tr.Result()
}

// TriangulateInBounds is a convenience for points known to live in the
// [0,width] x [0,height] box.
func TriangulateInBounds(points []*Point, width, height float64) TriangleList {
	return Triangulate(points, NewSuperTriangleForBounds(width, height))
}

// The default scale factor for super triangles. Empirically, a factor of 2
// keeps every bounding box strictly inside the triangle with comfortable
// margin; see NewSuperTriangle for the construction.
const DefaultSuperTriangleMargin = 2

// NewSuperTriangle constructs a triangle guaranteed to strictly enclose the
// bounding box of the points for any margin >= 1. The construction centers an
// isoceles triangle on the box's midpoint with half-width and height both
// proportional to margin * max(width, height), so the box's corners stay
// strictly interior. Coincident points get a unit extent so the triangle
// never collapses.
func NewSuperTriangle(points []*Point, margin float64) *Triangle {
	if len(points) == 0 {
		throw(ErrEmptyPointSet, "cannot build a super triangle")
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	extent := math.Max(maxX-minX, maxY-minY) * margin
	if extent == 0 {
		extent = margin
	}
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2

	return NewTriangle(
		&Point{X: midX - 2*extent, Y: midY - extent},
		&Point{X: midX + 2*extent, Y: midY - extent},
		&Point{X: midX, Y: midY + 2*extent},
	)
}

// NewSuperTriangleForBounds encloses the [0,width] x [0,height] box.
func NewSuperTriangleForBounds(width, height float64) *Triangle {
	corners := []*Point{
		{X: 0, Y: 0},
		{X: width, Y: height},
	}
	return NewSuperTriangle(corners, DefaultSuperTriangleMargin)
}
