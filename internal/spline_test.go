package internal

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubicSpline(t *testing.T) {
	xs := []float64{0, 1, 2.5, 3, 5}
	ys := []float64{1, -2, 0.5, 4, 4}
	s := BuildCubicSpline(xs, ys)

	t.Run("passes through the knots", func(t *testing.T) {
		for i := range xs {
			y, ok := s.Position(xs[i])
			require.True(t, ok)
			assert.InDelta(t, ys[i], y, Epsilon, "knot %d", i)
		}
	})

	t.Run("natural ends", func(t *testing.T) {
		start, _ := s.SecondDerivative(xs[0])
		end, _ := s.SecondDerivative(xs[len(xs)-1])
		assert.InDelta(t, 0, start, Epsilon)
		assert.InDelta(t, 0, end, Epsilon)
	})

	t.Run("smooth at interior knots", func(t *testing.T) {
		const h = 1e-7
		for _, x := range xs[1 : len(xs)-1] {
			before, _ := s.FirstDerivative(x - h)
			after, _ := s.FirstDerivative(x + h)
			assert.InDelta(t, before, after, 1e-5, "first derivative at %v", x)

			before, _ = s.SecondDerivative(x - h)
			after, _ = s.SecondDerivative(x + h)
			assert.InDelta(t, before, after, 1e-5, "second derivative at %v", x)
		}
	})

	t.Run("outside the knots", func(t *testing.T) {
		for _, x := range []float64{-0.1, 5.1, math.NaN()} {
			_, ok := s.Position(x)
			assert.False(t, ok, "%v", x)
			_, ok = s.FirstDerivative(x)
			assert.False(t, ok, "%v", x)
			_, ok = s.SecondDerivative(x)
			assert.False(t, ok, "%v", x)
		}
	})

	min, max := s.Domain()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 5.0, max)
}

func TestCubicSpline_KnownValues(t *testing.T) {
	// Worked by hand: the middle knot gets b = -1.5, so the first interval is
	// -0.5x³ + 1.5x.
	s := BuildCubicSpline([]float64{0, 1, 2}, []float64{0, 1, 0})
	y, ok := s.Position(0.5)
	require.True(t, ok)
	assert.InDelta(t, 0.6875, y, Epsilon)

	// Symmetric data gives a flat top
	slope, _ := s.FirstDerivative(1)
	assert.InDelta(t, 0, slope, Epsilon)

	// Two knots is a straight line
	line := BuildCubicSpline([]float64{1, 3}, []float64{2, 6})
	y, _ = line.Position(2)
	assert.InDelta(t, 4, y, Epsilon)
	slope, _ = line.FirstDerivative(2.9)
	assert.InDelta(t, 2, slope, Epsilon)
}

func TestCubicSpline_Errors(t *testing.T) {
	cases := map[string][2][]float64{
		"mismatched lengths": {{0, 1, 2}, {0, 1}},
		"single knot":        {{0}, {0}},
		"repeated knot":      {{0, 1, 1}, {0, 1, 2}},
		"decreasing knots":   {{0, 2, 1}, {0, 1, 2}},
		"NaN knot":           {{0, math.NaN(), 2}, {0, 1, 2}},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			err := catch(func() {
				BuildCubicSpline(c[0], c[1])
			})
			assert.True(t, errors.Is(err, ErrDegenerateSpline), "got %v", err)
		})
	}
}

func TestSpline(t *testing.T) {
	points := []Coordinate{{0, 0}, {1, 0}, {1, 1}}
	sp := BuildSpline(points)

	assert.InDelta(t, 2, sp.Length(), Epsilon)

	t.Run("passes through the points", func(t *testing.T) {
		for i, s := range []float64{0, 1, 2} {
			p, ok := sp.Position(s)
			require.True(t, ok)
			assert.True(t, p.ApproxEqual(points[i], Epsilon), "point %d: %s", i, p)
		}
	})

	t.Run("turning left", func(t *testing.T) {
		yaw, ok := sp.Yaw(1)
		require.True(t, ok)
		assert.InDelta(t, math.Pi/4, yaw, Epsilon)

		curvature, ok := sp.Curvature(1)
		require.True(t, ok)
		assert.Greater(t, curvature, 0.0)

		// The mirror image turns right
		mirrored := BuildSpline([]Coordinate{{0, 0}, {1, 0}, {1, -1}})
		curvature, _ = mirrored.Curvature(1)
		assert.Less(t, curvature, 0.0)
	})

	t.Run("straight path", func(t *testing.T) {
		straight := BuildSpline([]Coordinate{{0, 0}, {1, 1}, {3, 3}})
		for _, s := range []float64{0, 0.5, 2, 4} {
			yaw, _ := straight.Yaw(s)
			curvature, _ := straight.Curvature(s)
			assert.InDelta(t, math.Pi/4, yaw, Epsilon, "yaw at %v", s)
			assert.InDelta(t, 0, curvature, Epsilon, "curvature at %v", s)
		}
	})

	t.Run("outside the path", func(t *testing.T) {
		_, ok := sp.Position(-1)
		assert.False(t, ok)
		_, ok = sp.Yaw(3)
		assert.False(t, ok)
		_, ok = sp.Curvature(3)
		assert.False(t, ok)
	})

	t.Run("copies its points", func(t *testing.T) {
		input := []Coordinate{{0, 0}, {1, 0}}
		sp := BuildSpline(input)
		input[0] = Coordinate{9, 9}
		assert.Equal(t, Coordinate{0, 0}, sp.Points[0])
	})
}

func TestSpline_Sample(t *testing.T) {
	sp := BuildSpline([]Coordinate{{0, 0}, {2, 0}})

	samples := sp.Sample(0.5)
	require.Len(t, samples, 4)
	for i, sample := range samples {
		assert.InDelta(t, 0.5*float64(i), sample.S, Epsilon)
		assert.True(t, sample.Position.ApproxEqual(Coordinate{sample.S, 0}, Epsilon), "%s", sample.Position)
	}

	// A step longer than the path still yields the start
	assert.Len(t, sp.Sample(10), 1)

	for _, step := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		err := catch(func() {
			sp.Sample(step)
		})
		assert.True(t, errors.Is(err, ErrInvalidStep), "step %v: got %v", step, err)
	}

	t.Run("too many samples", func(t *testing.T) {
		curve := BuildSpline([]Coordinate{{0, 0}, {1, 1}, {2, 0}})
		for _, step := range []float64{1e-300, 1e-9, curve.Length() / (MaxSplineSamples + 1)} {
			err := catch(func() {
				curve.Sample(step)
			})
			assert.True(t, errors.Is(err, ErrInvalidStep), "step %v: got %v", step, err)
		}

		// A fine but bounded step still works
		assert.Len(t, sp.Sample(sp.Length()/1024), 1024)
	})

	t.Run("nil spline", func(t *testing.T) {
		var nilSpline *Spline
		err := catch(func() {
			nilSpline.Sample(1)
		})
		assert.True(t, errors.Is(err, ErrDegenerateSpline), "got %v", err)
	})
}

func TestBuildSpline_Errors(t *testing.T) {
	cases := map[string][]Coordinate{
		"empty":          nil,
		"single point":   {{1, 1}},
		"repeated point": {{0, 0}, {1, 1}, {1, 1}},
		"infinite point": {{0, 0}, {math.Inf(1), 1}},
		"not a number":   {{math.NaN(), 0}, {1, 1}},
	}
	for name, points := range cases {
		points := points
		t.Run(name, func(t *testing.T) {
			err := catch(func() {
				BuildSpline(points)
			})
			assert.True(t, errors.Is(err, ErrDegenerateSpline), "got %v", err)
		})
	}
}
