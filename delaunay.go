// An incremental Delaunay triangulation package for Go.
//
// This package takes a planar point set and computes its Delaunay
// triangulation with the Bowyer-Watson algorithm: points are inserted one at
// a time into a working set seeded with an enclosing "super triangle", and
// triangles touching the super triangle are stripped from the final result.
//
// The predicates use floating-point determinant formulas, so near-cocircular
// points are vulnerable to precision loss; this is a known limitation, not
// silently corrected.
package delaunay

import "github.com/osuushi/delaunay/advanced"

type Point = advanced.Point
type Edge = advanced.Edge
type Triangle = advanced.Triangle
type TriangleList = advanced.TriangleList

// Check these with errors.Is.
var (
	ErrEmptyPointSet      = advanced.ErrEmptyPointSet
	ErrDegenerateTriangle = advanced.ErrDegenerateTriangle
)

// Triangulate computes the Delaunay triangulation of points. The super
// triangle must strictly contain every point; its vertices never appear in
// the result. Inputs are not mutated. Fewer than three points yield an empty
// result, not an error.
//
// Callers should pre-validate their input: duplicate points are not
// deduplicated, and an all-collinear point set has no interior triangles, so
// it comes back empty once the super triangle is stripped.
func Triangulate(points []*Point, super *Triangle) (result TriangleList, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Triangulate(points, super), nil
}

// TriangulateInBounds derives an internal super triangle enclosing the
// [0,width] x [0,height] box.
func TriangulateInBounds(points []*Point, width, height float64) (result TriangleList, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.TriangulateInBounds(points, width, height), nil
}

// NewSuperTriangle constructs a triangle strictly enclosing every input
// point, scaled by margin (any margin >= 1 suffices; the conventional
// default is advanced.DefaultSuperTriangleMargin). An empty point set has no
// bounding box and returns ErrEmptyPointSet.
func NewSuperTriangle(points []*Point, margin float64) (super *Triangle, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			super = nil
			err = recoveredErr
		}
	}()
	return advanced.NewSuperTriangle(points, margin), nil
}
