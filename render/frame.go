// Package render turns a canvas into something a display can show.
package render

import (
	"github.com/milk9111/turtle/canvas"
)

// Renderer presents a whole canvas once per frame.
type Renderer interface {
	Present(c *canvas.Canvas) error
}

// RGBA converts the canvas into a premultiplied RGBA byte slice of
// length 4*W*H, reusing dst when it is large enough.
func RGBA(c *canvas.Canvas, dst []byte) []byte {
	px := c.Pixels()
	if cap(dst) < len(px)*4 {
		dst = make([]byte, len(px)*4)
	}
	dst = dst[:len(px)*4]

	for i, p := range px {
		j := i * 4
		dst[j] = uint8(p >> 16)
		dst[j+1] = uint8(p >> 8)
		dst[j+2] = uint8(p)
		dst[j+3] = 0xff
	}
	return dst
}

// Average returns the mean colour of the w×h block at (x, y), clipped to
// the canvas.
func Average(c *canvas.Canvas, x, y, w, h int) canvas.Pixel {
	var r, g, b, n int
	for yy := y; yy < y+h && yy < c.Height(); yy++ {
		for xx := x; xx < x+w && xx < c.Width(); xx++ {
			p := c.At(xx, yy)
			r += int(p>>16) & 0xff
			g += int(p>>8) & 0xff
			b += int(p) & 0xff
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return canvas.Pixel((r/n)<<16 | (g/n)<<8 | b/n)
}
