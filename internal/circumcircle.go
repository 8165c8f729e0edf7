package internal

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Compute the circle through three points.
//
// The center comes from the closed form of the perpendicular bisector
// intersection. Everything is computed relative to a, which keeps the squared
// magnitudes small when the triangle sits far from the origin:
//
//	d  = 2 * ((b-a) × (c-a))
//	ux = (|b-a|² (c-a).y - |c-a|² (b-a).y) / d
//	uy = (|c-a|² (b-a).x - |b-a|² (c-a).x) / d
//
// Collinear points (including repeated points) have no circumcircle and fail
// with ErrCollinear rather than producing an infinite center.
func NewCircumcircle(a, b, c Coordinate) (*Circumcircle, error) {
	for _, p := range []Coordinate{a, b, c} {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	if collinear(a, b, c) {
		return nil, errors.Wrapf(ErrCollinear, "no circumcircle for %s, %s, %s", a, b, c)
	}

	ab := b.Sub(a)
	ac := c.Sub(a)
	d := 2 * ab.Cross(ac)
	abSq := ab.Dot(ab)
	acSq := ac.Dot(ac)

	offset := Coordinate{
		X: (abSq*ac.Y - acSq*ab.Y) / d,
		Y: (acSq*ab.X - abSq*ac.X) / d,
	}
	center := a.Add(offset)
	radius := center.DistanceTo(a)

	// The center must be equidistant from all three points. If rounding has
	// broken that, the triangle is too close to degenerate to trust.
	for _, p := range []Coordinate{b, c} {
		if !RelativeEqual(center.DistanceTo(p), radius, Epsilon) {
			return nil, errors.Wrapf(ErrCollinear, "ill-conditioned circumcircle for %s, %s, %s", a, b, c)
		}
	}

	if !isFinite(center.X) || !isFinite(center.Y) || !isFinite(radius) {
		return nil, errors.Wrapf(ErrCollinear, "circumcircle for %s, %s, %s is unbounded", a, b, c)
	}

	return &Circumcircle{
		A:      a,
		B:      b,
		C:      c,
		Center: center,
		Radius: radius,
	}, nil
}

// The three points are collinear when the parallelogram they span has no
// area relative to its two longest sides. Using the two longest edges makes
// the decision the same for every ordering of the points.
func collinear(a, b, c Coordinate) bool {
	lengths := []float64{a.DistanceTo(b), b.DistanceTo(c), c.DistanceTo(a)}
	shortest := 0
	for i, l := range lengths {
		if l < lengths[shortest] {
			shortest = i
		}
	}
	product := 1.0
	for i, l := range lengths {
		if i != shortest {
			product *= l
		}
	}
	cross := b.Sub(a).Cross(c.Sub(a))
	return math.Abs(cross) <= CollinearTolerance*product
}

// Is the point inside or on the circle? Points within Tolerance of the
// boundary count as on it.
func (cc *Circumcircle) Contains(p Coordinate) bool {
	return cc.Center.DistanceTo(p) <= cc.Radius+Tolerance
}

func (cc *Circumcircle) Diameter() float64 {
	return 2 * cc.Radius
}

func (cc *Circumcircle) Triangle() Triangle {
	return Triangle{cc.A, cc.B, cc.C}
}

func (cc *Circumcircle) String() string {
	return fmt.Sprintf("Circumcircle(center=%s, radius=%s)", cc.Center, formatFloat(cc.Radius))
}
