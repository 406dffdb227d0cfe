package advanced

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, scalar equality is tolerance
// based. Without this, nearly-horizontal edges would defeat the "lower
// endpoint" convention used for canonical edge keys.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}
