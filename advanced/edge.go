package advanced

// An Edge is an unordered pair of points. It references points owned by the
// triangulation; it never copies them. Two edges are equal if their endpoints
// match in either order.
type Edge struct {
	P *Point
	Q *Point
}

func (e Edge) Equals(other Edge) bool {
	return (e.P == other.P && e.Q == other.Q) ||
		(e.P == other.Q && e.Q == other.P)
}

// EqualsByValue compares endpoint coordinates instead of identity, in either
// order. Useful for callers whose points did not come from one triangulation.
func (e Edge) EqualsByValue(other Edge) bool {
	return (e.P.Equals(other.P) && e.Q.Equals(other.Q)) ||
		(e.P.Equals(other.Q) && e.Q.Equals(other.P))
}

func (e Edge) Length() float64 {
	return e.P.DistanceTo(e.Q)
}

func (e Edge) Midpoint() *Point {
	return e.P.Add(e.Q).Div(2)
}

// An edgeKey is an orientation-free map key for an edge. Both orientations of
// the same edge produce the same key, because the endpoints are sorted by the
// Below total order. This is what makes the boundary polygon scan O(k)
// instead of O(k²) pairwise comparison.
type edgeKey [2]*Point

func (e Edge) key() edgeKey {
	if e.P.Below(e.Q) {
		return edgeKey{e.P, e.Q}
	}
	return edgeKey{e.Q, e.P}
}
