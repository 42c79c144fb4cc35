package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/turtle/canvas"
	"github.com/milk9111/turtle/config"
)

func TestRGBA(t *testing.T) {
	c := canvas.New(&config.Dimensions{Width: 2, Height: 2}, 1)
	c.Set(0, 0, 0xFF0080)
	c.Set(1, 1, 0x010203)

	got := RGBA(c, nil)
	want := []byte{
		0xFF, 0x00, 0x80, 0xFF,
		0x00, 0x00, 0x00, 0xFF,
		0x00, 0x00, 0x00, 0xFF,
		0x01, 0x02, 0x03, 0xFF,
	}
	if string(got) != string(want) {
		t.Fatalf("RGBA = %v, want %v", got, want)
	}

	buf := make([]byte, 0, 64)
	if out := RGBA(c, buf); &out[0] != &buf[:1][0] {
		t.Fatalf("RGBA should reuse a large enough buffer")
	}
}

func TestAverage(t *testing.T) {
	c := canvas.New(&config.Dimensions{Width: 4, Height: 4}, 1)
	c.Set(0, 0, 0xFF0000)
	c.Set(1, 0, 0x00FF00)

	cases := []struct {
		name       string
		x, y, w, h int
		want       canvas.Pixel
	}{
		{"single", 0, 0, 1, 1, 0xFF0000},
		{"pair", 0, 0, 2, 1, 0x7F7F00},
		{"clipped", 3, 3, 4, 4, 0},
		{"outside", 8, 8, 2, 2, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Average(c, tc.x, tc.y, tc.w, tc.h); got != tc.want {
				t.Fatalf("Average = %#x, want %#x", got, tc.want)
			}
		})
	}
}

func TestTerminalPresent(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	// 8×8 canvas on 4×2 cells: each half block covers 2×2 pixels.
	c := canvas.New(&config.Dimensions{Width: 8, Height: 8}, 1)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c.Set(x, y, 0xFFFFFF)
		}
	}

	term := NewTerminalWithScreen(screen)
	if err := term.Present(c); err != nil {
		t.Fatalf("Present: %v", err)
	}

	r, _, style, _ := screen.GetContent(0, 0)
	if r != '▀' {
		t.Fatalf("cell rune = %q, want upper half block", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(0xFF, 0xFF, 0xFF) {
		t.Fatalf("top half = %v, want white", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 0) {
		t.Fatalf("bottom half = %v, want black", bg)
	}

	_, _, style, _ = screen.GetContent(1, 0)
	if fg, _, _ := style.Decompose(); fg != tcell.NewRGBColor(0, 0, 0) {
		t.Fatalf("neighbouring cell = %v, want black", fg)
	}
}
