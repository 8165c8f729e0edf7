package main

import (
	"io"
	"sort"
	"strings"

	"github.com/osuushi/bidimensional/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config file layout. Everything is optional; missing keys keep their
// defaults.
//
//	draw:
//	  scale: 50
//	  padding: 40
//	  line_width: 2
//	  labels: true
//	  font_file: /path/to/font.ttf
//	  font_size: 12
//	  colors:
//	    background: [0, 0, 0]
//	    circle: [0, 1, 1, 0.8]
type Config struct {
	Draw DrawConfig `yaml:"draw"`
}

type DrawConfig struct {
	Scale     float64              `yaml:"scale"`
	Padding   int                  `yaml:"padding"`
	LineWidth float64              `yaml:"line_width"`
	Labels    bool                 `yaml:"labels"`
	FontFile  string               `yaml:"font_file"`
	FontSize  float64              `yaml:"font_size"`
	Colors    map[string][]float64 `yaml:"colors"`
}

func defaultConfig() Config {
	style := internal.DefaultDrawStyle
	return Config{
		Draw: DrawConfig{
			Scale:     style.Scale,
			Padding:   style.Padding,
			LineWidth: style.LineWidth,
			Labels:    style.Labels,
			FontFile:  style.FontFile,
			FontSize:  style.FontSize,
		},
	}
}

// Decode a config over the defaults. Unknown keys are an error, so typos
// don't silently fall back to defaults.
func loadConfig(r io.Reader) (Config, error) {
	cfg := defaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	return cfg, nil
}

func (c Config) DrawStyle() (internal.DrawStyle, error) {
	style := internal.DefaultDrawStyle
	if !(c.Draw.Scale > 0) {
		return style, errors.Errorf("draw.scale must be positive, got %v", c.Draw.Scale)
	}
	if c.Draw.Padding < 0 {
		return style, errors.Errorf("draw.padding must not be negative, got %d", c.Draw.Padding)
	}
	style.Scale = c.Draw.Scale
	style.Padding = c.Draw.Padding
	style.LineWidth = c.Draw.LineWidth
	style.Labels = c.Draw.Labels
	style.FontFile = c.Draw.FontFile
	style.FontSize = c.Draw.FontSize

	targets := map[string]*internal.RGBA{
		"background": &style.Background,
		"triangle":   &style.Triangle,
		"circle":     &style.Circle,
		"center":     &style.Center,
		"label":      &style.Label,
	}
	for name, values := range c.Draw.Colors {
		target, ok := targets[name]
		if !ok {
			return style, errors.Errorf("unknown color %q, expected one of %s", name, colorNames(targets))
		}
		color, err := parseRGBA(values)
		if err != nil {
			return style, errors.Wrapf(err, "color %q", name)
		}
		*target = color
	}
	return style, nil
}

// Colors are [r, g, b] or [r, g, b, a] with components in 0..1.
func parseRGBA(values []float64) (internal.RGBA, error) {
	if len(values) != 3 && len(values) != 4 {
		return internal.RGBA{}, errors.Errorf("expected 3 or 4 components, got %d", len(values))
	}
	for _, v := range values {
		if v < 0 || v > 1 {
			return internal.RGBA{}, errors.Errorf("component %v outside 0..1", v)
		}
	}
	color := internal.RGBA{R: values[0], G: values[1], B: values[2], A: 1}
	if len(values) == 4 {
		color.A = values[3]
	}
	return color, nil
}

func colorNames(targets map[string]*internal.RGBA) string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
