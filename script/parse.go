package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milk9111/turtle/canvas"
	"github.com/milk9111/turtle/config"
)

const (
	cmdPen    = "PEN"
	cmdColour = "COLOUR"
	cmdColor  = "COLOR"
)

// Instruction is one parsed script line.
type Instruction struct {
	Line     int
	Command  string
	Argument string
}

func (in Instruction) String() string {
	return in.Command + " " + in.Argument
}

// Parse splits line n into its command and argument. Exactly two
// whitespace-separated tokens are accepted.
func Parse(line string, n int) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Instruction{}, lineErr(n, fmt.Errorf("%w: want \"<COMMAND> <ARGUMENT>\", got %d tokens", ErrParse, len(fields)))
	}
	return Instruction{Line: n, Command: fields[0], Argument: fields[1]}, nil
}

// Step returns the unit vector named by a direction token. Every
// NORTH/SOUTH/EAST/WEST substring contributes, so NORTHEAST is diagonal
// and NORTHSOUTH cancels out.
func Step(token string) (dx, dy int) {
	if strings.Contains(token, "NORTH") {
		dy--
	}
	if strings.Contains(token, "SOUTH") {
		dy++
	}
	if strings.Contains(token, "EAST") {
		dx++
	}
	if strings.Contains(token, "WEST") {
		dx--
	}
	return dx, dy
}

func parsePen(arg string) (bool, error) {
	switch arg {
	case "UP":
		return false, nil
	case "DOWN":
		return true, nil
	default:
		return false, fmt.Errorf("%w: unknown PEN instruction %q, use either 'PEN DOWN' or 'PEN UP'", ErrSemantic, arg)
	}
}

func parseColour(arg string) (canvas.Pixel, error) {
	c, err := config.ParseColour(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return canvas.Pixel(c), nil
}

func parseRepeats(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: repeat count %q is not an integer", ErrParse, arg)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: repeats must be a positive integer, got %d", ErrSemantic, n)
	}
	return n, nil
}
