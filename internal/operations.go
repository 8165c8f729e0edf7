package internal

import "math"

func Distance(a, b Coordinate) float64 {
	return a.DistanceTo(b)
}

// Angle at vertex between the rays towards p and q, in radians. The result
// is in [0, π]. If either ray has zero length the angle is undefined and NaN
// is returned.
func Angle(vertex, p, q Coordinate) float64 {
	toP := p.Sub(vertex)
	toQ := q.Sub(vertex)
	lengths := toP.Norm() * toQ.Norm()
	if lengths == 0 {
		return math.NaN()
	}
	// Rounding can push the cosine just outside [-1, 1] for nearly straight
	// angles, which would make Acos return NaN.
	cos := math.Max(-1, math.Min(1, toP.Dot(toQ)/lengths))
	return math.Acos(cos)
}

func Midpoint(a, b Coordinate) Coordinate {
	return Coordinate{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Shoelace formula. Positive for counterclockwise outlines.
func SignedArea(points ...Coordinate) float64 {
	var sum float64
	for i, p := range points {
		next := points[CircularIndex(i+1, len(points))]
		sum += p.Cross(next)
	}
	return sum / 2
}

func Area(points ...Coordinate) float64 {
	return math.Abs(SignedArea(points...))
}

// Length of the closed outline through the points, including the edge from
// the last point back to the first.
func Perimeter(points ...Coordinate) float64 {
	if len(points) < 2 {
		return 0
	}
	var sum float64
	for i, p := range points {
		sum += p.DistanceTo(points[CircularIndex(i+1, len(points))])
	}
	return sum
}
