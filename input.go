package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/turtle/turtle"
)

// Input holds the key state sampled for the current tick.
type Input struct {
	// Keys is the pressed-direction state: W/A/S/D or the arrow keys.
	Keys turtle.Keys
	// PenPressed is true on the frame Space was pressed.
	PenPressed bool
	// QuitPressed is true while Escape is held.
	QuitPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard.
func (i *Input) Update() {
	i.Keys = turtle.Keys{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
	i.PenPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.QuitPressed = ebiten.IsKeyPressed(ebiten.KeyEscape)
}
