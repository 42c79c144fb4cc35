// Package canvas holds the raster the turtle draws into and the painter
// that stamps, and un-stamps, the turtle's footprint.
package canvas

import (
	"image"

	"github.com/milk9111/turtle/config"
)

// Pixel is a packed 0x00RRGGBB colour.
type Pixel uint32

// DefaultIndicator is the overlay colour used to mark the turtle.
const DefaultIndicator Pixel = 0x0000FF00

// Mode selects what Paint writes into the footprint.
type Mode int

const (
	// Overlay saves the footprint into scratch and fills it with the
	// indicator colour.
	Overlay Mode = iota
	// Trail saves the footprint into scratch and fills it with the
	// brush's ink.
	Trail
	// Restore writes scratch back into the footprint.
	Restore
)

func (m Mode) String() string {
	switch m {
	case Overlay:
		return "overlay"
	case Trail:
		return "trail"
	case Restore:
		return "restore"
	default:
		return "unknown"
	}
}

// Brush is anything with a square footprint and a colour.
type Brush interface {
	Footprint() image.Rectangle
	Ink() Pixel
}

type Canvas struct {
	dims      *config.Dimensions
	full      []Pixel
	scratch   []Pixel
	indicator Pixel
}

// New allocates a canvas of dims with a scratch buffer for a square
// footprint of side size.
func New(dims *config.Dimensions, size int) *Canvas {
	return &Canvas{
		dims:      dims,
		full:      make([]Pixel, dims.Area()),
		scratch:   make([]Pixel, size*size),
		indicator: DefaultIndicator,
	}
}

func (c *Canvas) Width() int { return c.dims.Width }
func (c *Canvas) Height() int { return c.dims.Height }

// Pixels returns the full raster, row-major. The slice is shared.
func (c *Canvas) Pixels() []Pixel { return c.full }

// Scratch returns the single-slot snapshot taken by the last Overlay or
// Trail paint. The slice is shared.
func (c *Canvas) Scratch() []Pixel { return c.scratch }

func (c *Canvas) At(x, y int) Pixel {
	return c.full[y*c.dims.Width+x]
}

func (c *Canvas) Set(x, y int, p Pixel) {
	c.full[y*c.dims.Width+x] = p
}

func (c *Canvas) SetIndicator(p Pixel) {
	c.indicator = p
}

func (c *Canvas) Indicator() Pixel {
	return c.indicator
}

// Fill sets every pixel of the raster to p and zeroes scratch.
func (c *Canvas) Fill(p Pixel) {
	for i := range c.full {
		c.full[i] = p
	}
	clear(c.scratch)
}

// Resize reallocates scratch for a footprint of side size. The previous
// snapshot is lost.
func (c *Canvas) Resize(size int) {
	if len(c.scratch) == size*size {
		return
	}
	c.scratch = make([]Pixel, size*size)
}

// Paint writes b's footprint according to mode. The footprint must lie
// inside the canvas; an out-of-range footprint panics.
func (c *Canvas) Paint(b Brush, mode Mode) {
	r := b.Footprint()
	size := r.Dx()
	c.Resize(size)

	var fill Pixel
	switch mode {
	case Overlay:
		fill = c.indicator
	case Trail:
		fill = b.Ink()
	}

	row := r.Min.Y*c.dims.Width + r.Min.X
	n := 0
	for range size {
		for col := range size {
			i := row + col
			if mode == Restore {
				c.full[i] = c.scratch[n]
			} else {
				c.scratch[n] = c.full[i]
				c.full[i] = fill
			}
			n++
		}
		row += c.dims.Width
	}
}
