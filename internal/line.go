package internal

import (
	"fmt"
	"math"
)

func (l Line) IsVertical() bool {
	return l.A.X == l.B.X
}

// Slope of the line. Vertical lines have an infinite slope whose sign
// follows the direction from A to B.
func (l Line) Slope() float64 {
	dx := l.B.X - l.A.X
	dy := l.B.Y - l.A.Y
	if dx == 0 {
		if dy < 0 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	return dy / dx
}

// Solve for the y value on the line at the given x. Vertical lines have no
// unique answer, so ok is false for them.
func (l Line) SolveForY(x float64) (y float64, ok bool) {
	if l.IsVertical() {
		return 0, false
	}
	return l.A.Y + (x-l.A.X)*l.Slope(), true
}

// Intersection of two infinite lines. Parallel (including coincident) lines
// report false.
func (l Line) Intersect(other Line) (Coordinate, bool) {
	r := l.B.Sub(l.A)
	s := other.B.Sub(other.A)
	denominator := r.Cross(s)
	if math.Abs(denominator) <= CollinearTolerance*r.Norm()*s.Norm() {
		return Coordinate{}, false
	}
	t := other.A.Sub(l.A).Cross(s) / denominator
	return l.A.Add(r.Scale(t)), true
}

// Lines are equal when they are defined by the same two points, in either
// order.
func (l Line) Equal(other Line) bool {
	return (l.A == other.A && l.B == other.B) || (l.A == other.B && l.B == other.A)
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%s, %s)", l.A, l.B)
}

func (s Segment) Line() Line {
	return Line{s.A, s.B}
}

// Displacement from A to B.
func (s Segment) Vector() Coordinate {
	return s.B.Sub(s.A)
}

func (s Segment) Length() float64 {
	return s.A.DistanceTo(s.B)
}

func (s Segment) Midpoint() Coordinate {
	return Midpoint(s.A, s.B)
}

// Check whether p lies on the segment, within Tolerance.
func (s Segment) Contains(p Coordinate) bool {
	v := s.Vector()
	length := v.Norm()
	if length == 0 {
		return p.ApproxEqual(s.A, Tolerance)
	}
	// Distance from the supporting line
	if math.Abs(v.Cross(p.Sub(s.A)))/length > Tolerance {
		return false
	}
	// Projection must land between the endpoints
	t := v.Dot(p.Sub(s.A)) / (length * length)
	return t >= -Tolerance && t <= 1+Tolerance
}

// Intersection of two segments. Unlike Line.Intersect, the point must lie on
// both segments.
func (s Segment) Intersect(other Segment) (Coordinate, bool) {
	p, ok := s.Line().Intersect(other.Line())
	if !ok {
		return Coordinate{}, false
	}
	if !s.Contains(p) || !other.Contains(p) {
		return Coordinate{}, false
	}
	return p, true
}

func (s Segment) Equal(other Segment) bool {
	return s.Line().Equal(other.Line())
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment(%s, %s)", s.A, s.B)
}
