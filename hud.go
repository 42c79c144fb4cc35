package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/milk9111/turtle/config"
	"github.com/milk9111/turtle/turtle"
)

type HUD struct {
	face *text.GoTextFace
}

func NewHUD() (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	return &HUD{face: &text.GoTextFace{Source: src, Size: 14}}, nil
}

func (h *HUD) Draw(screen *ebiten.Image, t *turtle.Turtle) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, hudLine(t), h.face, op)
}

func hudLine(t *turtle.Turtle) string {
	pen := "up"
	if t.PenDown {
		pen = "down"
	}
	return fmt.Sprintf("(%d,%d) %s  pen %s  %s  FPS %.0f",
		t.X, t.Y, t.Facing, pen, config.Colour(t.Colour), ebiten.ActualFPS())
}
