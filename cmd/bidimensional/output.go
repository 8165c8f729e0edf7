package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/bidimensional"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type circumcircleResult struct {
	Group    int                         `json:"group"`
	Label    string                      `json:"label"`
	Vertices [3]bidimensional.Coordinate `json:"vertices"`
	Center   bidimensional.Coordinate    `json:"center"`
	Radius   float64                     `json:"radius"`
}

type triangleResult struct {
	Group     int                         `json:"group"`
	Label     string                      `json:"label"`
	Vertices  [3]bidimensional.Coordinate `json:"vertices"`
	Area      float64                     `json:"area"`
	Perimeter float64                     `json:"perimeter"`
	// Interior angles at each vertex, in degrees
	Angles       [3]float64                `json:"angles"`
	Kinds        []string                  `json:"kinds"`
	Circumcenter *bidimensional.Coordinate `json:"circumcenter,omitempty"`
	Circumradius *float64                  `json:"circumradius,omitempty"`
}

type splineResult struct {
	Group   int                          `json:"group"`
	Label   string                       `json:"label"`
	Length  float64                      `json:"length"`
	Samples []bidimensional.SplineSample `json:"samples"`
}

func describeTriangle(t bidimensional.Triangle) triangleResult {
	result := triangleResult{
		Vertices:  t.Points(),
		Area:      t.Area(),
		Perimeter: t.Perimeter(),
		Kinds:     triangleKinds(t),
	}
	for i, angle := range t.Angles() {
		// Repeated vertices have no angle, and JSON has no NaN
		if math.IsNaN(angle) {
			continue
		}
		result.Angles[i] = angle * 180 / math.Pi
	}
	return result
}

func triangleKinds(t bidimensional.Triangle) []string {
	if t.IsCollinear() {
		return []string{"degenerate"}
	}
	var kinds []string
	switch {
	case t.IsRight():
		kinds = append(kinds, "right")
	case t.IsObtuse():
		kinds = append(kinds, "obtuse")
	case t.IsAcute():
		kinds = append(kinds, "acute")
	}
	switch {
	case t.IsEquilateral():
		kinds = append(kinds, "equilateral")
	case t.IsIsosceles():
		kinds = append(kinds, "isosceles")
	case t.IsScalene():
		kinds = append(kinds, "scalene")
	}
	return kinds
}

// Results are always written as a list, even when empty, so consumers don't
// have to special case null.
func writeJSON(w io.Writer, results interface{}) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding json")
	}
	if string(data) == "null" {
		data = []byte("[]")
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return errors.Wrap(err, "writing output")
}

// Human readable output. The first write error is kept and later writes are
// skipped.
type textWriter struct {
	w   io.Writer
	au  aurora.Aurora
	err error
}

func newTextWriter(w io.Writer, color bool) *textWriter {
	return &textWriter{w: w, au: aurora.NewAurora(color)}
}

func (tw *textWriter) printf(format string, args ...interface{}) {
	if tw.err != nil {
		return
	}
	_, err := fmt.Fprintf(tw.w, format, args...)
	tw.err = errors.Wrap(err, "writing output")
}

func (tw *textWriter) heading(group int, label string) {
	tw.printf("%s %s\n", tw.au.Bold(fmt.Sprintf("#%d", group)), tw.au.Cyan(label))
}

func (tw *textWriter) circumcircles(results []circumcircleResult) {
	for _, result := range results {
		tw.heading(result.Group, result.Label)
		tw.printf("  vertices %s\n", formatVertices(result.Vertices))
		tw.printf("  center   %s\n", tw.au.Green(result.Center))
		tw.printf("  radius   %s\n", tw.au.Green(formatNumber(result.Radius)))
	}
}

func (tw *textWriter) triangles(results []triangleResult) {
	for _, result := range results {
		tw.heading(result.Group, result.Label)
		tw.printf("  vertices  %s\n", formatVertices(result.Vertices))
		tw.printf("  kind      %s\n", tw.au.Yellow(strings.Join(result.Kinds, ", ")))
		tw.printf("  area      %s\n", formatNumber(result.Area))
		tw.printf("  perimeter %s\n", formatNumber(result.Perimeter))
		tw.printf("  angles    %s°, %s°, %s°\n",
			formatNumber(result.Angles[0]),
			formatNumber(result.Angles[1]),
			formatNumber(result.Angles[2]),
		)
		if result.Circumcenter != nil {
			tw.printf("  circle    center %s radius %s\n",
				tw.au.Green(*result.Circumcenter),
				tw.au.Green(formatNumber(*result.Circumradius)),
			)
		} else {
			tw.printf("  circle    %s\n", tw.au.Red("none"))
		}
	}
}

func (tw *textWriter) splines(results []splineResult) {
	for _, result := range results {
		tw.heading(result.Group, result.Label)
		tw.printf("  length %s, %d samples\n", formatNumber(result.Length), len(result.Samples))
		tw.printf("  %10s %24s %10s %10s\n", "s", "position", "yaw", "curvature")
		for _, sample := range result.Samples {
			tw.printf("  %10s %24s %10s %10s\n",
				formatNumber(sample.S),
				formatCoordinate(sample.Position),
				formatNumber(sample.Yaw),
				formatNumber(sample.Curvature),
			)
		}
	}
}

func formatVertices(vertices [3]bidimensional.Coordinate) string {
	return fmt.Sprintf("%s %s %s",
		formatCoordinate(vertices[0]),
		formatCoordinate(vertices[1]),
		formatCoordinate(vertices[2]),
	)
}

func formatCoordinate(c bidimensional.Coordinate) string {
	return fmt.Sprintf("(%s, %s)", formatNumber(c.X), formatNumber(c.Y))
}

// Six decimal places, with trailing zeros trimmed.
func formatNumber(v float64) string {
	s := fmt.Sprintf("%.6f", v)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
