package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/turtle/canvas"
)

// Terminal draws a downsampled canvas into a tcell screen using upper
// half blocks, two canvas rows of cells per terminal row.
type Terminal struct {
	screen tcell.Screen
}

func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("render: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("render: init screen: %w", err)
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an already initialised screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Present(c *canvas.Canvas) error {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("render: terminal has no cells (%dx%d)", cols, rows)
	}

	// Each cell covers cw×ch canvas pixels for the top half and as many
	// again for the bottom half.
	cw := ceilDiv(c.Width(), cols)
	ch := ceilDiv(c.Height(), rows*2)

	t.screen.Clear()
	for row := 0; row < rows; row++ {
		top := row * 2 * ch
		if top >= c.Height() {
			break
		}
		for col := 0; col < cols; col++ {
			x := col * cw
			if x >= c.Width() {
				break
			}
			fg := Average(c, x, top, cw, ch)
			bg := Average(c, x, top+ch, cw, ch)
			style := tcell.StyleDefault.Foreground(tcellColour(fg)).Background(tcellColour(bg))
			t.screen.SetContent(col, row, '▀', nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// WaitKey blocks until a key is pressed, redrawing c on resize.
func (t *Terminal) WaitKey(c *canvas.Canvas) error {
	for {
		switch t.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			t.screen.Sync()
			if err := t.Present(c); err != nil {
				return err
			}
		case *tcell.EventKey:
			return nil
		}
	}
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

func tcellColour(p canvas.Pixel) tcell.Color {
	return tcell.NewRGBColor(int32(p>>16)&0xff, int32(p>>8)&0xff, int32(p)&0xff)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
