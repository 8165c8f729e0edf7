package internal

import "github.com/pkg/errors"

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrCollinear         = errors.New("points are collinear")
	ErrNotMonotone       = errors.New("polygon is not y-monotone")
	ErrDegeneratePolygon = errors.New("polygon is degenerate")
	ErrDegenerateSpline  = errors.New("spline is degenerate")
	ErrInvalidStep       = errors.New("invalid step")
)

// Threading errors up and down the triangulation and spline solving loops
// would add a ton of noise to the code. Instead, we use panics, and the public
// API recovers to convert to an error.

type GeometryError struct {
	error
}

func (e GeometryError) Unwrap() error {
	return e.error
}

// Panic with a GeometryError wrapping one of the sentinel errors above.
func throw(sentinel error, format string, args ...interface{}) {
	panic(GeometryError{errors.Wrapf(sentinel, format, args...)})
}

// Panic with a GeometryError that has no sentinel. Used for internal
// invariant violations.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError.error
		}
		panic(r)
	}
	return nil
}
