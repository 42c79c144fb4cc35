package main

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/milk9111/turtle/canvas"
	"github.com/milk9111/turtle/config"
	"github.com/milk9111/turtle/drawings"
	"github.com/milk9111/turtle/script"
	"github.com/milk9111/turtle/turtle"
)

// session owns one canvas and the turtle drawing into it. Both share the
// session's dimensions.
type session struct {
	dims   config.Dimensions
	canvas *canvas.Canvas
	turtle *turtle.Turtle
}

func newSession(cfg config.Config) *session {
	s := &session{dims: cfg.Dimensions}
	s.turtle = turtle.FromConfig(cfg, &s.dims)
	s.canvas = canvas.New(&s.dims, s.turtle.Size())
	s.canvas.SetIndicator(canvas.Pixel(cfg.Indicator))
	s.canvas.Fill(canvas.Pixel(cfg.Background))
	return s
}

// run executes the script at path, or the built-in drawing of that name.
// An empty path is a no-op.
func (s *session) run(path string, logger *log.Logger) error {
	if path == "" {
		return nil
	}
	data, err := drawings.Load(path)
	if err != nil {
		return fmt.Errorf("%w: %w", script.ErrIO, err)
	}
	in := script.New(s.turtle, s.canvas)
	in.Logger = logger
	return in.Run(bytes.NewReader(data))
}

// mark paints the turtle marker over whatever is under it.
func (s *session) mark() {
	s.canvas.Paint(s.turtle, canvas.Overlay)
}

// tick advances one frame of interactive drawing. The marker from the
// previous tick is cleared first; a lowered pen leaves the trail behind.
// A refused move is returned after the marker is repainted.
func (s *session) tick(keys turtle.Keys, togglePen bool) error {
	t := s.turtle
	if t.PenDown {
		s.canvas.Paint(t, canvas.Trail)
	} else {
		s.canvas.Paint(t, canvas.Restore)
	}

	err := t.Steer(keys)

	if togglePen {
		t.TogglePen()
	}

	s.mark()
	return err
}

// loadSession builds a session and runs the script into it.
func loadSession(cfg config.Config, path string, logger *log.Logger) (*session, error) {
	s := newSession(cfg)
	if err := s.run(path, logger); err != nil {
		return nil, err
	}
	return s, nil
}
