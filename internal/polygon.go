package internal

import (
	"fmt"
	"strings"
)

type PolygonList []Polygon

func (poly Polygon) SignedArea() float64 {
	return SignedArea(poly.Points...)
}

func (poly Polygon) Area() float64 {
	return Area(poly.Points...)
}

func (poly Polygon) Perimeter() float64 {
	return Perimeter(poly.Points...)
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

// Winding rule point-in-polygon. Output is not defined for points exactly on
// an edge.
func (poly Polygon) ContainsPointByEvenOdd(p Coordinate) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Counts the edges crossed by a ray
// from p towards positive x.
func (poly Polygon) CrossingCount(p Coordinate) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		// Horizontal edges never satisfy this, so the division below is safe
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		// Solve for the x value where the edge crosses p's height
		t := (p.Y - vertex.Y) / (nextVertex.Y - vertex.Y)
		x := vertex.X + t*(nextVertex.X-vertex.X)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Coordinate, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// The same polygon, wound counterclockwise.
func (poly Polygon) CCW() Polygon {
	if poly.IsCW() {
		return poly.Reverse()
	}
	return poly
}

// A polygon is y-monotone when walking its outline goes down exactly once and
// up exactly once. Under the lexicographic Below convention that means exactly
// one local maximum and one local minimum.
func (poly Polygon) IsMonotone() bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	maxima := 0
	minima := 0
	for i, p := range poly.Points {
		prev := poly.Points[CircularIndex(i-1, n)]
		next := poly.Points[CircularIndex(i+1, n)]
		if prev.Below(p) && next.Below(p) {
			maxima++
		}
		if p.Below(prev) && p.Below(next) {
			minima++
		}
	}
	return maxima == 1 && minima == 1
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.Points))
	for i, p := range poly.Points {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Polygon(%s)", strings.Join(parts, ", "))
}

func (pl PolygonList) ContainsPointByEvenOdd(p Coordinate) bool {
	crossingCount := 0
	for _, poly := range pl {
		crossingCount += poly.CrossingCount(p)
	}
	return crossingCount%2 == 1
}

func (pl PolygonList) Area() float64 {
	var sum float64
	for _, poly := range pl {
		sum += poly.SignedArea()
	}
	return sum
}
