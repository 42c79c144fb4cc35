package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/turtle/config"
	"github.com/milk9111/turtle/script"
)

// Game drives the interactive loop. Each tick removes the turtle marker,
// applies input, and paints the marker again.
type Game struct {
	cfg        config.Config
	logger     *log.Logger
	scriptPath string

	session *session
	input   *Input
	window  *windowRenderer
	hud     *HUD
	watcher *script.Watcher

	// renderErr is set by Draw and returned by the next Update, ending
	// the run.
	renderErr error
}

func NewGame(cfg config.Config, s *session, scriptPath string, logger *log.Logger) *Game {
	g := &Game{
		cfg:        cfg,
		logger:     logger,
		scriptPath: scriptPath,
		input:      NewInput(),
		window:     newWindowRenderer(cfg.Dimensions),
	}
	g.swap(s)
	return g
}

// Watch reloads the script whenever w reports a change.
func (g *Game) Watch(w *script.Watcher) {
	g.watcher = w
}

// ShowHUD enables the status line.
func (g *Game) ShowHUD(h *HUD) {
	g.hud = h
}

func (g *Game) swap(s *session) {
	g.session = s
	s.mark()
}

func (g *Game) reload() {
	s, err := loadSession(g.cfg, g.scriptPath, g.logger)
	if err != nil {
		g.logger.Warn("reload failed, keeping current drawing", "script", g.scriptPath, "err", err)
		return
	}
	g.logger.Info("reloaded", "script", g.scriptPath)
	g.swap(s)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Warn("watch", "err", err)
		}
	default:
	}
	if g.watcher.Changed() {
		g.reload()
	}
}

func (g *Game) Update() error {
	if g.renderErr != nil {
		return g.renderErr
	}

	g.input.Update()
	if g.input.QuitPressed {
		return ebiten.Termination
	}

	g.pollWatcher()

	t := g.session.turtle
	if err := g.session.tick(g.input.Keys, g.input.PenPressed); err != nil {
		g.logger.Warn("move skipped", "x", t.X, "y", t.Y, "facing", t.Facing, "err", err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.window.Present(g.session.canvas); err != nil {
		g.renderErr = fmt.Errorf("present: %w", err)
		return
	}
	screen.DrawImage(g.window.img, nil)

	if g.hud != nil {
		g.hud.Draw(screen, g.session.turtle)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Width), float64(g.cfg.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
