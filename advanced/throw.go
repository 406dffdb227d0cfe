package advanced

import "github.com/pkg/errors"

// Threading errors up through every arithmetic helper and recursive insertion
// step would add a ton of complexity to the code. Instead, we use panics, and
// the public API recovers to convert to an error.

type TriangulateError error

// The two failure modes the engine can detect. Callers check them with
// errors.Is after the facade has recovered.
var (
	// ErrEmptyPointSet is raised when a super triangle is requested for an
	// empty point set, which has no bounding box.
	ErrEmptyPointSet TriangulateError = errors.New("empty point set")

	// ErrDegenerateTriangle is raised when three collinear vertices zero out
	// the circumcenter denominator, or a zero-area triangle is asked for a
	// barycentric test. We detect this explicitly rather than let NaN and Inf
	// flow through the working set.
	ErrDegenerateTriangle TriangulateError = errors.New("degenerate triangle")
)

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// Panic with a wrapped sentinel, so errors.Is still matches at the boundary.
func throw(sentinel error, format string, args ...interface{}) {
	panic(errors.Wrapf(sentinel, format, args...))
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
