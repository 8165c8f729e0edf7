package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osuushi/bidimensional"
	"github.com/osuushi/bidimensional/internal"
	"github.com/pkg/errors"
)

const (
	formatText = "text"
	formatJSON = "json"

	commandCircumcircle = "circumcircle"
	commandTriangle     = "triangle"
	commandSpline       = "spline"
)

type options struct {
	format   string
	svg      string
	draw     string
	imgcat   bool
	config   string
	logLevel string
	noColor  bool
	step     float64
}

type runner struct {
	opts   options
	style  internal.DrawStyle
	runID  string
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
	// Readable name for a triangle or path, used in output
	label func(interface{}) string
}

func (r *runner) run(command string) error {
	groups, err := r.readGroups()
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		return errors.New("no points in input")
	}
	r.logger.Debug("read input", "groups", len(groups))

	var failed int
	switch command {
	case commandCircumcircle:
		failed, err = r.runCircumcircle(groups)
	case commandTriangle:
		failed, err = r.runTriangle(groups)
	case commandSpline:
		failed, err = r.runSpline(groups)
	default:
		return errors.Errorf("unknown command %q", command)
	}
	if err != nil {
		return err
	}
	if failed > 0 {
		return errors.Errorf("%d of %d groups failed", failed, len(groups))
	}
	return nil
}

func (r *runner) readGroups() ([][]bidimensional.Coordinate, error) {
	if r.opts.svg == "" {
		return internal.ReadPointGroups(r.in)
	}
	polygons, err := internal.ReadSVGPolygons(r.in)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", r.opts.svg)
	}
	groups := make([][]bidimensional.Coordinate, len(polygons))
	for i, polygon := range polygons {
		groups[i] = polygon.Points
	}
	return groups, nil
}

// Three points are a triangle. Anything larger is a polygon, which has to be
// y-monotone to be split into triangles.
func triangulateGroup(group []bidimensional.Coordinate) ([]bidimensional.Triangle, error) {
	switch {
	case len(group) < 3:
		return nil, errors.Wrapf(bidimensional.ErrDegeneratePolygon, "need at least 3 points, got %d", len(group))
	case len(group) == 3:
		return []bidimensional.Triangle{{A: group[0], B: group[1], C: group[2]}}, nil
	default:
		return bidimensional.Triangulate(bidimensional.Polygon{Points: group})
	}
}

func (r *runner) runCircumcircle(groups [][]bidimensional.Coordinate) (failed int, err error) {
	var results []circumcircleResult
	var circles []*bidimensional.Circumcircle
	for i, group := range groups {
		groupNumber := i + 1
		triangles, err := triangulateGroup(group)
		if err != nil {
			r.logger.Warn("skipping group", "group", groupNumber, "error", err)
			failed++
			continue
		}
		for _, t := range triangles {
			cc, err := bidimensional.NewCircumcircle(t.A, t.B, t.C)
			if err != nil {
				r.logger.Warn("skipping triangle", "group", groupNumber, "triangle", t, "error", err)
				failed++
				break
			}
			circles = append(circles, cc)
			results = append(results, circumcircleResult{
				Group:    groupNumber,
				Label:    r.label(t),
				Vertices: t.Points(),
				Center:   cc.Center,
				Radius:   cc.Radius,
			})
		}
	}

	if err := r.write(results, func(w *textWriter) { w.circumcircles(results) }); err != nil {
		return failed, err
	}
	return failed, r.drawIfRequested(circles)
}

func (r *runner) runTriangle(groups [][]bidimensional.Coordinate) (failed int, err error) {
	var results []triangleResult
	var circles []*bidimensional.Circumcircle
	for i, group := range groups {
		groupNumber := i + 1
		triangles, err := triangulateGroup(group)
		if err != nil {
			r.logger.Warn("skipping group", "group", groupNumber, "error", err)
			failed++
			continue
		}
		for _, t := range triangles {
			result := describeTriangle(t)
			result.Group = groupNumber
			result.Label = r.label(t)
			if cc, err := t.Circumcircle(); err == nil {
				circles = append(circles, cc)
				result.Circumcenter = &cc.Center
				result.Circumradius = &cc.Radius
			} else {
				r.logger.Debug("no circumcircle", "group", groupNumber, "triangle", t, "error", err)
			}
			results = append(results, result)
		}
	}

	if err := r.write(results, func(w *textWriter) { w.triangles(results) }); err != nil {
		return failed, err
	}
	return failed, r.drawIfRequested(circles)
}

func (r *runner) runSpline(groups [][]bidimensional.Coordinate) (failed int, err error) {
	var results []splineResult
	for i, group := range groups {
		groupNumber := i + 1
		sp, err := bidimensional.NewSpline(group...)
		if err != nil {
			r.logger.Warn("skipping group", "group", groupNumber, "error", err)
			failed++
			continue
		}
		samples, err := bidimensional.SampleSpline(sp, r.opts.step)
		if err != nil {
			// A bad step fails every group the same way
			return failed, err
		}
		results = append(results, splineResult{
			Group:   groupNumber,
			Label:   r.label(sp),
			Length:  sp.Length(),
			Samples: samples,
		})
	}

	if r.opts.draw != "" || r.opts.imgcat {
		r.logger.Warn("drawing is not supported for splines")
	}
	return failed, r.write(results, func(w *textWriter) { w.splines(results) })
}

func (r *runner) write(results interface{}, text func(w *textWriter)) error {
	if r.opts.format == formatJSON {
		return writeJSON(r.out, results)
	}
	w := newTextWriter(r.out, !r.opts.noColor)
	text(w)
	return w.err
}

// With --imgcat but no --draw path, the drawing goes to a temp file named
// after the run.
func (r *runner) drawIfRequested(circles []*bidimensional.Circumcircle) error {
	if r.opts.draw == "" && !r.opts.imgcat {
		return nil
	}
	if len(circles) == 0 {
		r.logger.Warn("nothing to draw")
		return nil
	}
	path := r.opts.draw
	if path == "" {
		path = filepath.Join(os.TempDir(), "bidimensional-"+r.runID+".png")
	}

	c, err := internal.DrawCircumcircles(circles, r.style)
	if err != nil {
		return err
	}
	if err := internal.SavePNG(c, path); err != nil {
		return err
	}
	r.logger.Info("saved drawing", "path", path, "circles", len(circles))
	if r.opts.imgcat {
		internal.Imgcat(path)
	}
	return nil
}
