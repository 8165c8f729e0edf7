// Package bidimensional is a small 2D geometry package for Go.
//
// The core of the package is Coordinate, an immutable (x, y) value, and
// Circumcircle, the circle through three non-collinear points. Around those
// sit the usual supporting shapes: lines and segments, triangles, polygons
// (with y-monotone triangulation) and cubic splines.
//
// Functions in this package never panic on bad geometry. Failures are
// reported as errors that wrap one of the Err* sentinels, so use errors.Is to
// tell them apart.
package bidimensional

import "github.com/osuushi/bidimensional/internal"

type Coordinate = internal.Coordinate
type Line = internal.Line
type Segment = internal.Segment
type Triangle = internal.Triangle
type Polygon = internal.Polygon
type Circumcircle = internal.Circumcircle
type CubicSpline = internal.CubicSpline
type Spline = internal.Spline
type SplineSample = internal.SplineSample

// Most samples SampleSpline will return for one spline.
const MaxSplineSamples = internal.MaxSplineSamples

var (
	// Invalid input: NaN or infinite components, or text that is not a number.
	ErrInvalidCoordinate = internal.ErrInvalidCoordinate
	// Coordinate.At was given an index other than 0 or 1.
	ErrIndexOutOfRange = internal.ErrIndexOutOfRange
	// Degenerate triangle: the three points lie on one line.
	ErrCollinear         = internal.ErrCollinear
	ErrNotMonotone       = internal.ErrNotMonotone
	ErrDegeneratePolygon = internal.ErrDegeneratePolygon
	ErrDegenerateSpline  = internal.ErrDegenerateSpline
	ErrInvalidStep       = internal.ErrInvalidStep
)

// Create a coordinate. Fails with ErrInvalidCoordinate for NaN or infinite
// components.
func NewCoordinate(x, y float64) (Coordinate, error) {
	return internal.NewCoordinate(x, y)
}

// Parse "x y", "x,y" or "(x, y)".
func ParseCoordinate(s string) (Coordinate, error) {
	return internal.ParseCoordinate(s)
}

// Compute the circle through a, b and c. Fails with ErrCollinear when the
// points lie on a line (or two of them coincide).
func NewCircumcircle(a, b, c Coordinate) (*Circumcircle, error) {
	return internal.NewCircumcircle(a, b, c)
}

// Shorthand for NewCircumcircle when only the center and radius are needed.
func Circumcenter(a, b, c Coordinate) (center Coordinate, radius float64, err error) {
	cc, err := internal.NewCircumcircle(a, b, c)
	if err != nil {
		return Coordinate{}, 0, err
	}
	return cc.Center, cc.Radius, nil
}

func Distance(a, b Coordinate) float64 {
	return internal.Distance(a, b)
}

// Angle at vertex between the rays to p and q, in radians.
func Angle(vertex, p, q Coordinate) float64 {
	return internal.Angle(vertex, p, q)
}

func Midpoint(a, b Coordinate) Coordinate {
	return internal.Midpoint(a, b)
}

func Area(points ...Coordinate) float64 {
	return internal.Area(points...)
}

func Perimeter(points ...Coordinate) float64 {
	return internal.Perimeter(points...)
}

// Split a y-monotone polygon into triangles. The polygon may wind either way;
// the triangles are always counterclockwise. Convex polygons are always
// y-monotone.
func Triangulate(poly Polygon) (result []Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return []Triangle(internal.TriangulateMonotone(poly.CCW())), nil
}

// Interpolate ys over strictly increasing xs with a natural cubic spline.
func NewCubicSpline(xs, ys []float64) (result *CubicSpline, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.BuildCubicSpline(xs, ys), nil
}

// Build a smooth path through the points, parametrised by chord length.
func NewSpline(points ...Coordinate) (result *Spline, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.BuildSpline(points), nil
}

// Sample a spline every step units of length. Fails with ErrInvalidStep for a
// step that is not positive or that would produce more than
// MaxSplineSamples samples, and with ErrDegenerateSpline for a nil spline.
func SampleSpline(sp *Spline, step float64) (result []SplineSample, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return sp.Sample(step), nil
}
