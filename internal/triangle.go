package internal

import (
	"fmt"
	"math"
)

// Positive for counterclockwise triangles, negative for clockwise ones.
func (t Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle) Perimeter() float64 {
	sides := t.Sides()
	return sides[0] + sides[1] + sides[2]
}

// Lengths of the sides opposite A, B and C, in that order (BC, CA, AB).
func (t Triangle) Sides() [3]float64 {
	return [3]float64{
		t.B.DistanceTo(t.C),
		t.C.DistanceTo(t.A),
		t.A.DistanceTo(t.B),
	}
}

// Interior angles at A, B and C, in radians.
func (t Triangle) Angles() [3]float64 {
	return [3]float64{
		Angle(t.A, t.B, t.C),
		Angle(t.B, t.C, t.A),
		Angle(t.C, t.A, t.B),
	}
}

func (t Triangle) Points() [3]Coordinate {
	return [3]Coordinate{t.A, t.B, t.C}
}

func (t Triangle) IsCollinear() bool {
	return collinear(t.A, t.B, t.C)
}

func (t Triangle) IsCCW() bool {
	return t.SignedArea() > 0
}

func (t Triangle) IsCW() bool {
	return t.SignedArea() < 0
}

// Classification. Degenerate triangles are none of right, obtuse or acute.
// Angle comparisons use Tolerance (radians), side comparisons are relative to
// the side lengths.

func (t Triangle) IsRight() bool {
	if t.IsCollinear() {
		return false
	}
	for _, angle := range t.Angles() {
		if Equal(angle, math.Pi/2) {
			return true
		}
	}
	return false
}

func (t Triangle) IsObtuse() bool {
	if t.IsCollinear() {
		return false
	}
	for _, angle := range t.Angles() {
		if angle > math.Pi/2+Tolerance {
			return true
		}
	}
	return false
}

func (t Triangle) IsAcute() bool {
	if t.IsCollinear() {
		return false
	}
	for _, angle := range t.Angles() {
		if angle >= math.Pi/2-Tolerance {
			return false
		}
	}
	return true
}

// Number of pairs of sides that have equal length: 0, 1 or 3.
func (t Triangle) equalSidePairs() int {
	sides := t.Sides()
	pairs := 0
	for i := 0; i < 3; i++ {
		if RelativeEqual(sides[i], sides[(i+1)%3], Tolerance) {
			pairs++
		}
	}
	return pairs
}

func (t Triangle) IsEquilateral() bool {
	return !t.IsCollinear() && t.equalSidePairs() == 3
}

// Exactly two equal sides. Equilateral triangles are not counted as
// isosceles.
func (t Triangle) IsIsosceles() bool {
	return !t.IsCollinear() && t.equalSidePairs() == 1
}

func (t Triangle) IsScalene() bool {
	return !t.IsCollinear() && t.equalSidePairs() == 0
}

// Point in triangle test using barycentric coordinates. Points on the edges
// count as inside. A degenerate triangle contains nothing.
//
// Reference: http://totologic.blogspot.com/2014/01/accurate-point-in-triangle-test.html
func (t Triangle) Contains(p Coordinate) bool {
	denominator := (t.B.Y-t.C.Y)*(t.A.X-t.C.X) + (t.C.X-t.B.X)*(t.A.Y-t.C.Y)
	if denominator == 0 {
		return false
	}
	a := ((t.B.Y-t.C.Y)*(p.X-t.C.X) + (t.C.X-t.B.X)*(p.Y-t.C.Y)) / denominator
	b := ((t.C.Y-t.A.Y)*(p.X-t.C.X) + (t.A.X-t.C.X)*(p.Y-t.C.Y)) / denominator
	c := 1 - a - b
	inRange := func(v float64) bool {
		return v >= -Epsilon && v <= 1+Epsilon
	}
	return inRange(a) && inRange(b) && inRange(c)
}

func (t Triangle) Circumcircle() (*Circumcircle, error) {
	return NewCircumcircle(t.A, t.B, t.C)
}

// The same triangle wound the other way.
func (t Triangle) Reverse() Triangle {
	return Triangle{t.A, t.C, t.B}
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle(%s, %s, %s)", t.A, t.B, t.C)
}

// Convert the triangles to polygons, mostly for area and containment checks.
func (tl TriangleList) ToPolygonList() PolygonList {
	list := make(PolygonList, len(tl))
	for i, t := range tl {
		list[i] = Polygon{Points: []Coordinate{t.A, t.B, t.C}}
	}
	return list
}
