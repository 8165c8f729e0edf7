package internal

import (
	"embed"
	"log"
	"math"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each is a single polygon SVG, except where the name says otherwise.

//go:embed fixtures
var fixtures embed.FS

// Load the only polygon in a fixture, wound counterclockwise. If anything goes
// wrong, the test binary exits.
func LoadFixture(name string) Polygon {
	list := LoadFixtureList(name)
	if len(list) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	return list[0].CCW()
}

func LoadFixtureList(name string) PolygonList {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	list, err := ReadSVGPolygons(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return list
}

// Some ad hoc code specified fixtures

// Regular polygon centered on the origin, counterclockwise.
func RegularPolygon(sides int, radius float64) Polygon {
	points := make([]Coordinate, sides)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		points[i] = Coordinate{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return Polygon{points}
}

// Five pointed star. Not y-monotone.
func SimpleStar() Polygon {
	var points []Coordinate
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Coordinate{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

func reflectX(poly Polygon) Polygon {
	points := make([]Coordinate, len(poly.Points))
	for i, p := range poly.Points {
		points[i] = Coordinate{-p.X, p.Y}
	}
	return Polygon{points}
}

func reflectY(poly Polygon) Polygon {
	points := make([]Coordinate, len(poly.Points))
	for i, p := range poly.Points {
		points[i] = Coordinate{p.X, -p.Y}
	}
	return Polygon{points}
}

func rotate(p Coordinate, angle float64) Coordinate {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Coordinate{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}
