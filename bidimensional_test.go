package bidimensional

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are already tested; these check that the public
// wrappers return errors instead of panicking.

func TestCircumcenter(t *testing.T) {
	center, radius, err := Circumcenter(Coordinate{X: 0, Y: 0}, Coordinate{X: 4, Y: 0}, Coordinate{X: 0, Y: 3})
	require.NoError(t, err)
	assert.InDelta(t, 2, center.X, 1e-9)
	assert.InDelta(t, 1.5, center.Y, 1e-9)
	assert.InDelta(t, 2.5, radius, 1e-9)

	for _, p := range []Coordinate{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}} {
		assert.InDelta(t, radius, Distance(center, p), 1e-9)
	}
}

func TestCircumcenter_Collinear(t *testing.T) {
	center, radius, err := Circumcenter(Coordinate{X: 0, Y: 0}, Coordinate{X: 1, Y: 1}, Coordinate{X: 2, Y: 2})
	assert.True(t, errors.Is(err, ErrCollinear), "got %v", err)
	assert.Equal(t, Coordinate{}, center)
	assert.Zero(t, radius)
}

func TestNewCoordinate(t *testing.T) {
	c, err := NewCoordinate(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 5.0, c.Norm())

	_, err = NewCoordinate(math.NaN(), 4)
	assert.True(t, errors.Is(err, ErrInvalidCoordinate), "got %v", err)

	_, err = ParseCoordinate("three, four")
	assert.True(t, errors.Is(err, ErrInvalidCoordinate), "got %v", err)
}

func TestTriangulate(t *testing.T) {
	t.Run("clockwise square", func(t *testing.T) {
		square := Polygon{Points: []Coordinate{
			{X: -1, Y: -1},
			{X: -1, Y: 1},
			{X: 1, Y: 1},
			{X: 1, Y: -1},
		}}
		require.True(t, square.IsCW())
		triangles, err := Triangulate(square)
		assert.NoError(t, err)
		assert.Len(t, triangles, 2)
		for _, tri := range triangles {
			assert.True(t, tri.IsCCW(), "%s", tri)
		}
	})

	t.Run("not monotone", func(t *testing.T) {
		u := Polygon{Points: []Coordinate{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 3}, {X: 0, Y: 3}}}
		triangles, err := Triangulate(u)
		assert.Nil(t, triangles)
		assert.True(t, errors.Is(err, ErrNotMonotone), "got %v", err)
	})

	t.Run("too few points", func(t *testing.T) {
		_, err := Triangulate(Polygon{Points: []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}})
		assert.True(t, errors.Is(err, ErrDegeneratePolygon), "got %v", err)
	})
}

func TestNewSpline(t *testing.T) {
	sp, err := NewSpline(Coordinate{X: 0, Y: 0}, Coordinate{X: 1, Y: 1}, Coordinate{X: 2, Y: 0})
	require.NoError(t, err)

	samples, err := SampleSpline(sp, 0.5)
	require.NoError(t, err)
	assert.NotEmpty(t, samples)
	assert.Equal(t, Coordinate{X: 0, Y: 0}, samples[0].Position)

	_, err = SampleSpline(sp, 0)
	assert.True(t, errors.Is(err, ErrInvalidStep), "got %v", err)

	_, err = SampleSpline(sp, 1e-300)
	assert.True(t, errors.Is(err, ErrInvalidStep), "got %v", err)

	samples, err = SampleSpline(nil, 0.5)
	assert.Nil(t, samples)
	assert.True(t, errors.Is(err, ErrDegenerateSpline), "got %v", err)

	_, err = NewSpline(Coordinate{X: 0, Y: 0})
	assert.True(t, errors.Is(err, ErrDegenerateSpline), "got %v", err)

	_, err = NewCubicSpline([]float64{0, 0, 1}, []float64{1, 2, 3})
	assert.True(t, errors.Is(err, ErrDegenerateSpline), "got %v", err)
}
