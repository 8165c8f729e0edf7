package main

import (
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/osuushi/bidimensional/internal"
	"github.com/osuushi/bidimensional/internal/dbg"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end. Input on stdin should be newline separated points
// in the form "x y", with each group separated by an extra newline. Groups of
// three points are triangles; larger groups are treated as y-monotone
// polygons and triangulated, or as paths by the spline command.
func main() {
	// Variables in .env act as defaults for the BIDIMENSIONAL_* flags below,
	// so it has to be loaded before parsing.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("could not load .env", "error", err)
		os.Exit(2)
	}

	app := kingpin.New("bidimensional", "Circumcircles, triangles and splines from 2D points.")
	opts := options{}
	app.Flag("format", "Output format.").Short('f').Default(formatText).Envar("BIDIMENSIONAL_FORMAT").EnumVar(&opts.format, formatText, formatJSON)
	app.Flag("svg", "Read polygons from an SVG file instead of stdin.").Envar("BIDIMENSIONAL_SVG").ExistingFileVar(&opts.svg)
	app.Flag("draw", "Render triangles and circumcircles to this PNG file.").Envar("BIDIMENSIONAL_DRAW").StringVar(&opts.draw)
	app.Flag("imgcat", "Print the drawing inline (iTerm only).").Envar("BIDIMENSIONAL_IMGCAT").BoolVar(&opts.imgcat)
	app.Flag("config", "YAML file with drawing style.").Short('c').Envar("BIDIMENSIONAL_CONFIG").ExistingFileVar(&opts.config)
	app.Flag("log-level", "Log level (debug, info, warn, error).").Default("info").Envar("BIDIMENSIONAL_LOG_LEVEL").StringVar(&opts.logLevel)
	app.Flag("no-color", "Disable colored output.").Envar("BIDIMENSIONAL_NO_COLOR").BoolVar(&opts.noColor)

	app.Command(commandCircumcircle, "Print the circumcircle of every triangle.").Default()
	app.Command(commandTriangle, "Print area, perimeter, angles and kind of every triangle.")
	splineCmd := app.Command(commandSpline, "Sample a cubic spline through every group of points.")
	splineCmd.Flag("step", "Distance between samples along the path.").Default("0.1").Envar("BIDIMENSIONAL_STEP").Float64Var(&opts.step)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(opts.logLevel, os.Stderr)
	app.FatalIfError(err, "")
	runID := uuid.NewString()
	logger = logger.With("run", runID)

	style, err := loadStyle(opts.config)
	app.FatalIfError(err, "")

	var in io.Reader = os.Stdin
	if opts.svg != "" {
		f, err := os.Open(opts.svg)
		app.FatalIfError(err, "")
		defer f.Close()
		in = f
	}

	r := &runner{
		opts:   opts,
		style:  style,
		runID:  runID,
		in:     in,
		out:    os.Stdout,
		logger: logger,
		label:  dbg.Name,
	}
	if err := r.run(command); err != nil {
		logger.Error("failed", "command", command, "error", err)
		os.Exit(1)
	}
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

func loadStyle(path string) (style internal.DrawStyle, err error) {
	cfg := defaultConfig()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return style, errors.Wrap(err, "opening config")
		}
		defer f.Close()
		if cfg, err = loadConfig(f); err != nil {
			return style, errors.Wrapf(err, "loading %s", path)
		}
	}
	return cfg.DrawStyle()
}
