package internal

import "math"

const Tolerance = 1e-6

// Epsilon is the tolerance used for checks that should hold up to rounding
// error, such as the distance from a circumcenter to each of its vertices.
const Epsilon = 1e-9

// Relative tolerance for the collinearity test. The cross product of two
// edges is compared against the product of the two longest edge lengths, so
// the test is scale free and does not depend on which vertex comes first.
const CollinearTolerance = 1e-10

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, we'll end up shaving off absurdly thin triangles on nearly
// horizontal segments.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Tolerance based equality that scales with the magnitude of the operands.
// Values near zero fall back to an absolute comparison.
func RelativeEqual(a, b, tol float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= tol*scale
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Stack of indexes into a point slice. Indexes are used rather than the
// points themselves because two vertices may share the same coordinates.
type IndexStack []int

func (s *IndexStack) Push(i int) {
	*s = append(*s, i)
}

// Pop returns -1 when the stack is empty.
func (s *IndexStack) Pop() int {
	if len(*s) == 0 {
		return -1
	}
	i := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return i
}

func (s *IndexStack) Peek() int {
	if len(*s) == 0 {
		return -1
	}
	return (*s)[len(*s)-1]
}

func (s *IndexStack) Empty() bool {
	return len(*s) == 0
}
