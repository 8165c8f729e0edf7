package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Create a coordinate, rejecting NaN and infinite components. A literal
// Coordinate{X, Y} skips this check, which is fine for values you already
// trust.
func NewCoordinate(x, y float64) (Coordinate, error) {
	c := Coordinate{x, y}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// Parse a coordinate from text. Accepted forms are "x y", "x,y" and
// "(x, y)".
func ParseCoordinate(s string) (Coordinate, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		return Coordinate{}, errors.Wrapf(ErrInvalidCoordinate, "expected two components in %q", s)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Coordinate{}, errors.Wrapf(ErrInvalidCoordinate, "x value %q is not a number", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Coordinate{}, errors.Wrapf(ErrInvalidCoordinate, "y value %q is not a number", parts[1])
	}
	return NewCoordinate(x, y)
}

func (c Coordinate) Validate() error {
	if !isFinite(c.X) {
		return errors.Wrapf(ErrInvalidCoordinate, "x must be a finite number, got %v", c.X)
	}
	if !isFinite(c.Y) {
		return errors.Wrapf(ErrInvalidCoordinate, "y must be a finite number, got %v", c.Y)
	}
	return nil
}

// Sequence access. A coordinate behaves like an ordered pair (x, y).

func (c Coordinate) Components() [2]float64 {
	return [2]float64{c.X, c.Y}
}

func (c Coordinate) Unpack() (x, y float64) {
	return c.X, c.Y
}

func (c Coordinate) At(i int) (float64, error) {
	switch i {
	case 0:
		return c.X, nil
	case 1:
		return c.Y, nil
	}
	return 0, errors.Wrapf(ErrIndexOutOfRange, "index must be 0 (x) or 1 (y), got %d", i)
}

// The pair in reverse order, (y, x).
func (c Coordinate) Swap() Coordinate {
	return Coordinate{c.Y, c.X}
}

// Exact equality. This is the same as ==, but reads better in chains.
func (c Coordinate) Equal(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

func (c Coordinate) ApproxEqual(o Coordinate, tol float64) bool {
	return math.Abs(c.X-o.X) <= tol && math.Abs(c.Y-o.Y) <= tol
}

func (c Coordinate) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

// Arithmetic

func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{c.X + o.X, c.Y + o.Y}
}

func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{c.X - o.X, c.Y - o.Y}
}

func (c Coordinate) Scale(k float64) Coordinate {
	return Coordinate{c.X * k, c.Y * k}
}

// Componentwise product.
func (c Coordinate) Mul(o Coordinate) Coordinate {
	return Coordinate{c.X * o.X, c.Y * o.Y}
}

func (c Coordinate) Div(k float64) Coordinate {
	return Coordinate{c.X / k, c.Y / k}
}

func (c Coordinate) FloorDiv(k float64) Coordinate {
	return Coordinate{math.Floor(c.X / k), math.Floor(c.Y / k)}
}

// Floored modulo, so the result has the sign of k.
func (c Coordinate) Mod(k float64) Coordinate {
	return Coordinate{c.X - k*math.Floor(c.X/k), c.Y - k*math.Floor(c.Y/k)}
}

func (c Coordinate) Pow(k float64) Coordinate {
	return Coordinate{math.Pow(c.X, k), math.Pow(c.Y, k)}
}

func (c Coordinate) Neg() Coordinate {
	return Coordinate{-c.X, -c.Y}
}

func (c Coordinate) Abs() Coordinate {
	return Coordinate{math.Abs(c.X), math.Abs(c.Y)}
}

// Round both components to the given number of decimal digits. Negative
// digit counts round to tens, hundreds and so on.
func (c Coordinate) Round(digits int) Coordinate {
	p := math.Pow(10, float64(digits))
	return Coordinate{math.Round(c.X*p) / p, math.Round(c.Y*p) / p}
}

func (c Coordinate) Floor() Coordinate {
	return Coordinate{math.Floor(c.X), math.Floor(c.Y)}
}

func (c Coordinate) Ceil() Coordinate {
	return Coordinate{math.Ceil(c.X), math.Ceil(c.Y)}
}

func (c Coordinate) Trunc() Coordinate {
	return Coordinate{math.Trunc(c.X), math.Trunc(c.Y)}
}

// Vector helpers

func (c Coordinate) Dot(o Coordinate) float64 {
	return c.X*o.X + c.Y*o.Y
}

// The z component of the 3D cross product. Positive when o is
// counterclockwise from c.
func (c Coordinate) Cross(o Coordinate) float64 {
	return c.X*o.Y - c.Y*o.X
}

func (c Coordinate) Norm() float64 {
	return math.Hypot(c.X, c.Y)
}

func (c Coordinate) DistanceTo(o Coordinate) float64 {
	return math.Hypot(c.X-o.X, c.Y-o.Y)
}

// Componentwise ordering: both components must satisfy the comparison. This
// is a partial order, so !a.Less(b) does not imply b.LessEqual(a).

func (c Coordinate) Less(o Coordinate) bool {
	return c.X < o.X && c.Y < o.Y
}

func (c Coordinate) LessEqual(o Coordinate) bool {
	return c.X <= o.X && c.Y <= o.Y
}

func (c Coordinate) Greater(o Coordinate) bool {
	return c.X > o.X && c.Y > o.Y
}

func (c Coordinate) GreaterEqual(o Coordinate) bool {
	return c.X >= o.X && c.Y >= o.Y
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". This simulates a slightly
// rotated coordinate system, allowing us to assume Y values are never equal.
func (c Coordinate) Below(o Coordinate) bool {
	if Equal(c.Y, o.Y) {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// The complement of Below. Equal points each count as Above the other.
func (c Coordinate) Above(o Coordinate) bool {
	return !c.Below(o)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%s, %s)", formatFloat(c.X), formatFloat(c.Y))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Coordinates encode as a two element JSON array.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(c.Components())
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var components []float64
	if err := json.Unmarshal(data, &components); err != nil {
		return errors.Wrapf(ErrInvalidCoordinate, "cannot decode %s: %v", data, err)
	}
	if len(components) != 2 {
		return errors.Wrapf(ErrInvalidCoordinate, "expected 2 components, got %d", len(components))
	}
	decoded, err := NewCoordinate(components[0], components[1])
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}
