// Package script runs turtle instruction files against a turtle and its
// canvas.
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/milk9111/turtle/canvas"
	"github.com/milk9111/turtle/turtle"
)

// Interpreter applies instructions to a turtle, painting the trail into a
// canvas. Lines are independent apart from the state they leave behind.
type Interpreter struct {
	Turtle *turtle.Turtle
	Canvas *canvas.Canvas

	// Logger, when set, traces every executed instruction at debug level.
	Logger *log.Logger
}

func New(t *turtle.Turtle, c *canvas.Canvas) *Interpreter {
	return &Interpreter{Turtle: t, Canvas: c}
}

// RunFile runs the script at path.
func (in *Interpreter) RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return in.Run(f)
}

// Run executes r line by line and stops at the first failing line. The
// returned error is a *LineError unless reading itself failed.
func (in *Interpreter) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		inst, err := Parse(sc.Text(), n)
		if err != nil {
			return err
		}
		if err := in.Exec(inst); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Exec applies one instruction.
func (in *Interpreter) Exec(inst Instruction) error {
	if in.Logger != nil {
		in.Logger.Debug("exec", "line", inst.Line, "instruction", inst.String())
	}

	t := in.Turtle
	switch inst.Command {
	case cmdPen:
		down, err := parsePen(inst.Argument)
		if err != nil {
			return lineErr(inst.Line, err)
		}
		t.PenDown = down

	case cmdColour, cmdColor:
		c, err := parseColour(inst.Argument)
		if err != nil {
			return lineErr(inst.Line, err)
		}
		t.Colour = c

	default:
		dx, dy := Step(inst.Command)
		repeats, err := parseRepeats(inst.Argument)
		if err != nil {
			return lineErr(inst.Line, err)
		}
		for range repeats {
			if err := t.Displace(dx, dy); err != nil {
				return lineErr(inst.Line, err)
			}
			if t.PenDown {
				in.Canvas.Paint(t, canvas.Trail)
			}
		}
	}

	return nil
}
