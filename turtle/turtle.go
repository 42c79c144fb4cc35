package turtle

import (
	"errors"
	"fmt"
	"image"

	"github.com/milk9111/turtle/canvas"
	"github.com/milk9111/turtle/config"
)

// ErrOutOfRange is returned when a displacement would move the footprint
// off the canvas.
var ErrOutOfRange = errors.New("requested movement outside range")

type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "NORTH"
	case South:
		return "SOUTH"
	case East:
		return "EAST"
	case West:
		return "WEST"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Turtle is the square cursor. X and Y are the top-left corner of its
// footprint.
type Turtle struct {
	X, Y    int
	Facing  Direction
	PenDown bool
	Colour  canvas.Pixel

	size   int
	bounds *config.Dimensions
}

// New places a turtle of side size at (x, y). The position is not
// validated; use config.Validate or Place for untrusted input.
func New(bounds *config.Dimensions, x, y, size int) *Turtle {
	return &Turtle{
		X:       x,
		Y:       y,
		Facing:  North,
		PenDown: true,
		Colour:  0x00FFFFFF,
		size:    size,
		bounds:  bounds,
	}
}

// FromConfig builds the turtle described by cfg. bounds must point at
// cfg's dimensions, or a copy shared with the canvas.
func FromConfig(cfg config.Config, bounds *config.Dimensions) *Turtle {
	t := New(bounds, cfg.StartX, cfg.StartY, cfg.Footprint)
	t.PenDown = cfg.PenDown
	t.Colour = canvas.Pixel(cfg.Colour)
	return t
}

func (t *Turtle) Size() int { return t.size }

func (t *Turtle) Footprint() image.Rectangle {
	return image.Rect(t.X, t.Y, t.X+t.size, t.Y+t.size)
}

func (t *Turtle) Ink() canvas.Pixel { return t.Colour }

// Displace moves the turtle by (dx, dy). The far edge of the footprint
// must stay strictly inside the canvas; on failure nothing changes.
func (t *Turtle) Displace(dx, dy int) error {
	x, y := t.X+dx, t.Y+dy
	if !t.fits(x, y) {
		return ErrOutOfRange
	}
	t.X, t.Y = x, y
	return nil
}

// Place moves the turtle to an absolute position under the same bounds
// as Displace.
func (t *Turtle) Place(x, y int) error {
	return t.Displace(x-t.X, y-t.Y)
}

func (t *Turtle) fits(x, y int) bool {
	return x >= 0 && y >= 0 &&
		x+t.size < t.bounds.Width &&
		y+t.size < t.bounds.Height
}

func (t *Turtle) TogglePen() {
	t.PenDown = !t.PenDown
}
