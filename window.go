package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/turtle/canvas"
	"github.com/milk9111/turtle/config"
	"github.com/milk9111/turtle/render"
)

// windowRenderer uploads the canvas into an offscreen ebiten image.
type windowRenderer struct {
	img   *ebiten.Image
	frame []byte
	dims  config.Dimensions
}

var _ render.Renderer = (*windowRenderer)(nil)

func newWindowRenderer(dims config.Dimensions) *windowRenderer {
	return &windowRenderer{
		img:  ebiten.NewImage(dims.Width, dims.Height),
		dims: dims,
	}
}

func (w *windowRenderer) Present(c *canvas.Canvas) error {
	if c.Width() != w.dims.Width || c.Height() != w.dims.Height {
		return fmt.Errorf("canvas is %dx%d, window is %dx%d",
			c.Width(), c.Height(), w.dims.Width, w.dims.Height)
	}
	w.frame = render.RGBA(c, w.frame)
	w.img.WritePixels(w.frame)
	return nil
}
