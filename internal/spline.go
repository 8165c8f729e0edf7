package internal

import (
	"math"
	"sort"
)

// Cubic spline interpolation with natural boundary conditions (zero second
// derivative at both ends). Each interval i is the polynomial
//
//	f(x) = a[i]*dx³ + b[i]*dx² + c[i]*dx + d[i],   dx = x - knots[i]
//
// Neighbouring intervals agree on value, first and second derivative at the
// shared knot.
type CubicSpline struct {
	knots      []float64
	a, b, c, d []float64
}

// Build a spline through (xs[i], ys[i]). The xs must be strictly increasing.
// Panics with ErrDegenerateSpline otherwise; use bidimensional.NewSpline for
// an error return.
func BuildCubicSpline(xs, ys []float64) *CubicSpline {
	n := len(xs)
	if n != len(ys) {
		throw(ErrDegenerateSpline, "got %d x values and %d y values", n, len(ys))
	}
	if n < 2 {
		throw(ErrDegenerateSpline, "need at least 2 knots, got %d", n)
	}

	h := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
		if !(h[i] > 0) || !isFinite(h[i]) {
			throw(ErrDegenerateSpline, "knots must be strictly increasing, got %v then %v", xs[i], xs[i+1])
		}
	}

	s := &CubicSpline{
		knots: append([]float64(nil), xs...),
		d:     append([]float64(nil), ys...),
	}

	// The b coefficients solve a tridiagonal system. The first and last rows
	// are identity rows, which pins b (half the second derivative) to zero at
	// the ends.
	lower := make([]float64, n)
	diag := make([]float64, n)
	upper := make([]float64, n)
	rhs := make([]float64, n)
	diag[0] = 1
	diag[n-1] = 1
	for i := 1; i < n-1; i++ {
		lower[i] = h[i-1]
		diag[i] = 2 * (h[i-1] + h[i])
		upper[i] = h[i]
		rhs[i] = 3*(s.d[i+1]-s.d[i])/h[i] - 3*(s.d[i]-s.d[i-1])/h[i-1]
	}
	s.b = solveTridiagonal(lower, diag, upper, rhs)

	s.a = make([]float64, n-1)
	s.c = make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		s.c[i] = (s.d[i+1]-s.d[i])/h[i] - h[i]*(s.b[i+1]+2*s.b[i])/3
		s.a[i] = (s.b[i+1] - s.b[i]) / (3 * h[i])
	}
	return s
}

// Thomas algorithm. lower[0] and upper[n-1] are ignored. The system built by
// BuildCubicSpline is strictly diagonally dominant, so no pivoting is needed.
func solveTridiagonal(lower, diag, upper, rhs []float64) []float64 {
	n := len(diag)
	cPrime := make([]float64, n)
	dPrime := make([]float64, n)
	cPrime[0] = upper[0] / diag[0]
	dPrime[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		m := diag[i] - lower[i]*cPrime[i-1]
		if m == 0 {
			fatalf("singular tridiagonal system at row %d", i)
		}
		if i < n-1 {
			cPrime[i] = upper[i] / m
		}
		dPrime[i] = (rhs[i] - lower[i]*dPrime[i-1]) / m
	}
	x := make([]float64, n)
	x[n-1] = dPrime[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dPrime[i] - cPrime[i]*x[i+1]
	}
	return x
}

func (s *CubicSpline) Domain() (min, max float64) {
	return s.knots[0], s.knots[len(s.knots)-1]
}

// Find the interval containing x, or false if x is outside the knots. The
// last knot belongs to the last interval.
func (s *CubicSpline) interval(x float64) (i int, dx float64, ok bool) {
	min, max := s.Domain()
	if !(x >= min && x <= max) {
		return 0, 0, false
	}
	// Index of the last knot <= x
	i = sort.SearchFloat64s(s.knots, x)
	if i == len(s.knots) || s.knots[i] > x {
		i--
	}
	if i > len(s.a)-1 {
		i = len(s.a) - 1
	}
	return i, x - s.knots[i], true
}

func (s *CubicSpline) Position(x float64) (float64, bool) {
	i, dx, ok := s.interval(x)
	if !ok {
		return 0, false
	}
	return s.a[i]*dx*dx*dx + s.b[i]*dx*dx + s.c[i]*dx + s.d[i], true
}

func (s *CubicSpline) FirstDerivative(x float64) (float64, bool) {
	i, dx, ok := s.interval(x)
	if !ok {
		return 0, false
	}
	return 3*s.a[i]*dx*dx + 2*s.b[i]*dx + s.c[i], true
}

func (s *CubicSpline) SecondDerivative(x float64) (float64, bool) {
	i, dx, ok := s.interval(x)
	if !ok {
		return 0, false
	}
	return 6*s.a[i]*dx + 2*s.b[i], true
}

// A smooth path through a list of coordinates, parametrised by cumulative
// chord length. x and y are interpolated independently over that parameter.
type Spline struct {
	Points []Coordinate
	knots  []float64
	x, y   *CubicSpline
}

type SplineSample struct {
	S         float64    `json:"s"`
	Position  Coordinate `json:"position"`
	Yaw       float64    `json:"yaw"`
	Curvature float64    `json:"curvature"`
}

func BuildSpline(points []Coordinate) *Spline {
	if len(points) < 2 {
		throw(ErrDegenerateSpline, "need at least 2 points, got %d", len(points))
	}
	knots := make([]float64, len(points))
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		if err := p.Validate(); err != nil {
			throw(ErrDegenerateSpline, "point %d: %v", i, err)
		}
		xs[i], ys[i] = p.Unpack()
		if i > 0 {
			step := p.DistanceTo(points[i-1])
			if step == 0 {
				throw(ErrDegenerateSpline, "points %d and %d are identical", i-1, i)
			}
			knots[i] = knots[i-1] + step
		}
	}
	return &Spline{
		Points: append([]Coordinate(nil), points...),
		knots:  knots,
		x:      BuildCubicSpline(knots, xs),
		y:      BuildCubicSpline(knots, ys),
	}
}

// Total chord length. This is the upper bound of the path parameter.
func (sp *Spline) Length() float64 {
	return sp.knots[len(sp.knots)-1]
}

func (sp *Spline) Position(s float64) (Coordinate, bool) {
	x, ok := sp.x.Position(s)
	if !ok {
		return Coordinate{}, false
	}
	y, _ := sp.y.Position(s)
	return Coordinate{x, y}, true
}

// Heading of the path at s, in radians from the positive x axis.
func (sp *Spline) Yaw(s float64) (float64, bool) {
	dx, ok := sp.x.FirstDerivative(s)
	if !ok {
		return 0, false
	}
	dy, _ := sp.y.FirstDerivative(s)
	return math.Atan2(dy, dx), true
}

// Signed curvature at s. Positive when the path turns counterclockwise.
func (sp *Spline) Curvature(s float64) (float64, bool) {
	dx, ok := sp.x.FirstDerivative(s)
	if !ok {
		return 0, false
	}
	dy, _ := sp.y.FirstDerivative(s)
	ddx, _ := sp.x.SecondDerivative(s)
	ddy, _ := sp.y.SecondDerivative(s)
	speedSq := dx*dx + dy*dy
	if speedSq == 0 {
		return 0, false
	}
	return (ddy*dx - ddx*dy) / math.Pow(speedSq, 1.5), true
}

// Upper bound on the number of samples Sample will produce. A step small
// enough to exceed it fails with ErrInvalidStep.
const MaxSplineSamples = 1 << 20

// Sample the path every step units of length, starting at zero and stopping
// before the end of the path.
func (sp *Spline) Sample(step float64) []SplineSample {
	if sp == nil {
		throw(ErrDegenerateSpline, "cannot sample a nil spline")
	}
	if !(step > 0) || !isFinite(step) {
		throw(ErrInvalidStep, "step must be a positive number, got %v", step)
	}
	length := sp.Length()
	// Compare as floats, since length/step can overflow an int
	if length/step > MaxSplineSamples {
		throw(ErrInvalidStep, "step %v gives more than %d samples over length %v", step, MaxSplineSamples, length)
	}
	count := int(math.Ceil(length / step))
	var samples []SplineSample
	for i := 0; i < count; i++ {
		s := float64(i) * step
		if s >= length {
			break
		}
		position, _ := sp.Position(s)
		yaw, _ := sp.Yaw(s)
		curvature, _ := sp.Curvature(s)
		samples = append(samples, SplineSample{
			S:         s,
			Position:  position,
			Yaw:       yaw,
			Curvature: curvature,
		})
	}
	return samples
}
