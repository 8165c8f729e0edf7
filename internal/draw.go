package internal

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/bidimensional/internal/dbg"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type RGBA struct {
	R, G, B, A float64
}

// Appearance of a rendered drawing. Colors are in the 0 to 1 range.
type DrawStyle struct {
	// Pixels per unit of geometry
	Scale float64
	// Padding around the shapes, in pixels
	Padding    int
	LineWidth  float64
	Background RGBA
	Triangle   RGBA
	Circle     RGBA
	Center     RGBA
	Label      RGBA
	// Optional TrueType font for labels. The built in bitmap face is used
	// when empty.
	FontFile string
	FontSize float64
	Labels   bool
}

// Largest width or height, in pixels, that DrawCircumcircles will render.
const MaxCanvasSize = 8192

var DefaultDrawStyle = DrawStyle{
	Scale:      50,
	Padding:    40,
	LineWidth:  2,
	Background: RGBA{0, 0, 0, 1},
	Triangle:   RGBA{0, 0.5, 0, 0.6},
	Circle:     RGBA{0, 1, 1, 1},
	Center:     RGBA{1, 0.3, 0.3, 1},
	Label:      RGBA{1, 1, 1, 1},
	FontSize:   12,
	Labels:     true,
}

// Draw the triangles and their circumcircles onto a new context. The canvas
// is sized to fit every circle, and flipped so the origin is at the bottom
// left.
func DrawCircumcircles(circles []*Circumcircle, style DrawStyle) (*gg.Context, error) {
	if len(circles) == 0 {
		return nil, errors.New("nothing to draw")
	}
	if !(style.Scale > 0) {
		return nil, errors.Errorf("scale must be positive, got %v", style.Scale)
	}

	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, cc := range circles {
		minX = math.Min(minX, cc.Center.X-cc.Radius)
		minY = math.Min(minY, cc.Center.Y-cc.Radius)
		maxX = math.Max(maxX, cc.Center.X+cc.Radius)
		maxY = math.Max(maxY, cc.Center.Y+cc.Radius)
	}

	// A valid but nearly flat triangle can have an enormous circle, so the
	// size is checked before anything is allocated
	padding := float64(style.Padding * 2)
	fullWidth := style.Scale*(maxX-minX) + padding
	fullHeight := style.Scale*(maxY-minY) + padding
	if !(fullWidth <= MaxCanvasSize && fullHeight <= MaxCanvasSize) {
		return nil, errors.Errorf("drawing would be %.0fx%.0f pixels, larger than the %dx%d limit", fullWidth, fullHeight, MaxCanvasSize, MaxCanvasSize)
	}

	// Set up the context
	width := int(style.Scale*(maxX-minX)) + style.Padding*2
	height := int(style.Scale*(maxY-minY)) + style.Padding*2
	c := gg.NewContext(width, height)
	setColor(c, style.Background)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	face, err := loadFace(style)
	if err != nil {
		return nil, err
	}
	c.SetFontFace(face)

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(float64(style.Padding), float64(style.Padding))
	// Scale
	c.Scale(style.Scale, style.Scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Line widths are in user space, so undo the scale to keep them in pixels
	lineWidth := style.LineWidth / style.Scale

	for _, cc := range circles {
		c.MoveTo(cc.A.X, cc.A.Y)
		c.LineTo(cc.B.X, cc.B.Y)
		c.LineTo(cc.C.X, cc.C.Y)
		c.ClosePath()
		setColor(c, style.Triangle)
		c.Fill()
	}

	c.SetLineWidth(lineWidth)
	for _, cc := range circles {
		setColor(c, style.Circle)
		c.DrawCircle(cc.Center.X, cc.Center.Y, cc.Radius)
		c.Stroke()

		setColor(c, style.Center)
		c.DrawCircle(cc.Center.X, cc.Center.Y, 3/style.Scale)
		c.Fill()
	}

	if style.Labels {
		for _, cc := range circles {
			drawLabel(c, dbg.Name(cc.Triangle()), cc.Center, style)
		}
	}
	return c, nil
}

// Text has to be drawn in device space, or it would come out mirrored.
func drawLabel(c *gg.Context, label string, at Coordinate, style DrawStyle) {
	x, y := c.TransformPoint(at.X, at.Y)
	c.Push()
	c.Identity()
	setColor(c, style.Label)
	c.DrawStringAnchored(label, x, y-style.FontSize, 0.5, 0.5)
	c.Pop()
}

func loadFace(style DrawStyle) (font.Face, error) {
	if style.FontFile == "" {
		return basicfont.Face7x13, nil
	}
	data, err := os.ReadFile(style.FontFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading font")
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing font %q", style.FontFile)
	}
	size := style.FontSize
	if size <= 0 {
		size = DefaultDrawStyle.FontSize
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: size}), nil
}

func setColor(c *gg.Context, color RGBA) {
	c.SetRGBA(color.R, color.G, color.B, color.A)
}

// Write the drawing as a PNG.
func EncodePNG(c *gg.Context, w io.Writer) error {
	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

func SavePNG(c *gg.Context, path string) error {
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Print a saved PNG inline in the terminal (iTerm only).
func Imgcat(path string) {
	imgcat.CatFile(path, os.Stdout)
}
