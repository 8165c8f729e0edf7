package internal

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read groups of points from text. Each line holds one point in any form
// ParseCoordinate accepts, and groups are separated by one or more blank
// lines. Lines starting with # are comments.
func ReadPointGroups(r io.Reader) ([][]Coordinate, error) {
	var groups [][]Coordinate
	var points []Coordinate
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the group
		if line == "" {
			if len(points) > 0 {
				groups = append(groups, points)
				points = nil
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		point, err := ParseCoordinate(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing group if any
	if len(points) > 0 {
		groups = append(groups, points)
	}
	return groups, nil
}

// Read every <polygon> element from an SVG document. This is not a full SVG
// reader: transforms, paths and other shapes are ignored, and only the
// "points" attribute is used. Polygons are returned as written; call CCW() to
// normalise winding.
//
// SVG's y axis points down, so a polygon that looks counterclockwise in a
// viewer is clockwise here.
func ReadSVGPolygons(r io.Reader) (PolygonList, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var list PolygonList
	for i, polygonEl := range rootEl.FindAll("polygon") {
		points, err := parseSVGPoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		list = append(list, Polygon{Points: points})
	}
	if len(list) == 0 {
		return nil, errors.Wrap(ErrDegeneratePolygon, "no polygons found in svg")
	}
	return list, nil
}

// The points attribute is a list of numbers separated by whitespace and/or
// commas, taken in x, y pairs.
func parseSVGPoints(attribute string) ([]Coordinate, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidCoordinate, "odd number of values in points %q", attribute)
	}
	points := make([]Coordinate, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidCoordinate, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidCoordinate, "invalid y value %q", fields[i+1])
		}
		point, err := NewCoordinate(x, y)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}
