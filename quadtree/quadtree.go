// Package quadtree is a spatial index over points, independent of the
// triangulation engine. It accelerates range, circle, and nearest-neighbor
// queries for point clouds that would otherwise need a linear scan, such as
// site generators enforcing minimum spacing.
//
// Like the engine, a tree is not safe for concurrent mutation without
// external locking.
package quadtree

import (
	"math"
	"sort"

	"github.com/osuushi/delaunay/advanced"
)

// A Rect is an axis-aligned bounding box, inclusive on all edges.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (r Rect) Contains(p *advanced.Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX &&
		p.Y >= r.MinY && p.Y <= r.MaxY
}

func (r Rect) Intersects(other Rect) bool {
	return r.MinX <= other.MaxX && r.MaxX >= other.MinX &&
		r.MinY <= other.MaxY && r.MaxY >= other.MinY
}

// distanceSquaredTo is the squared distance from (x, y) to the nearest point
// of the rect; zero if inside.
func (r Rect) distanceSquaredTo(x, y float64) float64 {
	dx := math.Max(math.Max(r.MinX-x, 0), x-r.MaxX)
	dy := math.Max(math.Max(r.MinY-y, 0), y-r.MaxY)
	return dx*dx + dy*dy
}

func (r Rect) intersectsCircle(cx, cy, radius float64) bool {
	return r.distanceSquaredTo(cx, cy) <= radius*radius
}

const (
	DefaultCapacity = 4
	DefaultMaxDepth = 8
)

// A Quadtree node holds up to capacity points before subdividing into four
// equal quadrants, bounded by maxDepth. At maxDepth a node absorbs points
// past capacity rather than losing them.
type Quadtree struct {
	bounds   Rect
	capacity int
	maxDepth int
	depth    int
	points   []*advanced.Point
	children []*Quadtree // nil until subdivided; NW, NE, SW, SE
}

func New(bounds Rect, capacity, maxDepth int) *Quadtree {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Quadtree{
		bounds:   bounds,
		capacity: capacity,
		maxDepth: maxDepth,
	}
}

func (q *Quadtree) Bounds() Rect {
	return q.bounds
}

// Len is the number of points stored in this subtree.
func (q *Quadtree) Len() int {
	n := len(q.points)
	for _, child := range q.children {
		n += child.Len()
	}
	return n
}

// Insert adds a point to the subtree. Points outside the node's bounds are
// rejected with no side effect. A point accepted anywhere in the subtree is
// always within the declared bounds of the node that holds it.
func (q *Quadtree) Insert(p *advanced.Point) bool {
	if !q.bounds.Contains(p) {
		return false
	}

	if q.children == nil {
		if len(q.points) < q.capacity || q.depth >= q.maxDepth {
			q.points = append(q.points, p)
			return true
		}
		q.subdivide()
	}

	for _, child := range q.children {
		if child.Insert(p) {
			return true
		}
	}
	// Unreachable: the quadrants tile the node's bounds, so one of them
	// contains any point we contain.
	return false
}

// Quadrants share their seam coordinates, so a point exactly on a seam goes
// to the first child that contains it.
func (q *Quadtree) subdivide() {
	midX := (q.bounds.MinX + q.bounds.MaxX) / 2
	midY := (q.bounds.MinY + q.bounds.MaxY) / 2
	quadrants := []Rect{
		{q.bounds.MinX, midY, midX, q.bounds.MaxY}, // NW
		{midX, midY, q.bounds.MaxX, q.bounds.MaxY}, // NE
		{q.bounds.MinX, q.bounds.MinY, midX, midY}, // SW
		{midX, q.bounds.MinY, q.bounds.MaxX, midY}, // SE
	}
	q.children = make([]*Quadtree, len(quadrants))
	for i, bounds := range quadrants {
		q.children[i] = &Quadtree{
			bounds:   bounds,
			capacity: q.capacity,
			maxDepth: q.maxDepth,
			depth:    q.depth + 1,
		}
	}
}

// QueryRange collects every stored point inside bounds, pruning subtrees
// whose bounds don't intersect it.
func (q *Quadtree) QueryRange(bounds Rect) []*advanced.Point {
	var found []*advanced.Point
	q.queryRange(bounds, &found)
	return found
}

func (q *Quadtree) queryRange(bounds Rect, found *[]*advanced.Point) {
	if !q.bounds.Intersects(bounds) {
		return
	}
	for _, p := range q.points {
		if bounds.Contains(p) {
			*found = append(*found, p)
		}
	}
	for _, child := range q.children {
		child.queryRange(bounds, found)
	}
}

// QueryCircle collects every stored point within radius of (cx, cy),
// inclusive of the boundary.
func (q *Quadtree) QueryCircle(cx, cy, radius float64) []*advanced.Point {
	var found []*advanced.Point
	q.queryCircle(cx, cy, radius, &found)
	return found
}

func (q *Quadtree) queryCircle(cx, cy, radius float64, found *[]*advanced.Point) {
	if !q.bounds.intersectsCircle(cx, cy, radius) {
		return
	}
	radiusSq := radius * radius
	center := &advanced.Point{X: cx, Y: cy}
	for _, p := range q.points {
		if p.DistanceToSquared(center) <= radiusSq {
			*found = append(*found, p)
		}
	}
	for _, child := range q.children {
		child.queryCircle(cx, cy, radius, found)
	}
}

// FindNearest returns the stored point nearest to (x, y) within maxDistance,
// or nil if none qualifies. Best-first traversal: children are visited
// nearest-first so the search radius shrinks as early as possible, pruning
// the rest.
func (q *Quadtree) FindNearest(x, y, maxDistance float64) *advanced.Point {
	var best *advanced.Point
	bestDistSq := maxDistance * maxDistance
	q.findNearest(x, y, &best, &bestDistSq)
	return best
}

func (q *Quadtree) findNearest(x, y float64, best **advanced.Point, bestDistSq *float64) {
	if q.bounds.distanceSquaredTo(x, y) > *bestDistSq {
		return
	}
	target := &advanced.Point{X: x, Y: y}
	for _, p := range q.points {
		d := p.DistanceToSquared(target)
		if d < *bestDistSq || (*best == nil && d <= *bestDistSq) {
			*best = p
			*bestDistSq = d
		}
	}
	if q.children == nil {
		return
	}
	order := append([]*Quadtree(nil), q.children...)
	sort.Slice(order, func(i, j int) bool {
		return order[i].bounds.distanceSquaredTo(x, y) < order[j].bounds.distanceSquaredTo(x, y)
	})
	for _, child := range order {
		child.findNearest(x, y, best, bestDistSq)
	}
}
