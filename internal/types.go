package internal

// Coordinates are plain values. Every method has a value receiver and returns
// a new Coordinate, so nothing in this package ever mutates a caller's point.
// Because the type is comparable, it can be used directly as a map key.
type Coordinate struct {
	X float64
	Y float64
}

// An infinite line through two points.
type Line struct {
	A, B Coordinate
}

// A bounded line segment from A to B.
type Segment struct {
	A, B Coordinate
}

type Triangle struct {
	A, B, C Coordinate
}

type Polygon struct {
	Points []Coordinate
}

// The circle passing through A, B and C. Center and Radius are computed once
// by NewCircumcircle; the struct should be treated as read only.
type Circumcircle struct {
	A, B, C Coordinate
	Center  Coordinate
	Radius  float64
}

type TriangleList []Triangle
