package script

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	inst, err := Parse("NORTHEAST 12", 7)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if inst.Line != 7 || inst.Command != "NORTHEAST" || inst.Argument != "12" {
		t.Fatalf("unexpected instruction %+v", inst)
	}
	if inst.String() != "NORTHEAST 12" {
		t.Fatalf("String() = %q", inst.String())
	}

	for _, line := range []string{"", "EAST", "EAST 1 2", "   "} {
		_, err := Parse(line, 3)
		var le *LineError
		if !errors.As(err, &le) || le.Line != 3 || !errors.Is(err, ErrParse) {
			t.Fatalf("Parse(%q) = %v, want line 3 parse error", line, err)
		}
	}
}

func TestStep(t *testing.T) {
	cases := []struct {
		token  string
		dx, dy int
	}{
		{"NORTH", 0, -1},
		{"SOUTH", 0, 1},
		{"EAST", 1, 0},
		{"WEST", -1, 0},
		{"NORTHEAST", 1, -1},
		{"SOUTHWEST", -1, 1},
		{"NORTHSOUTH", 0, 0},
		{"EASTWEST", 0, 0},
		{"GONORTHNOW", 0, -1},
		{"north", 0, 0},
		{"FORWARD", 0, 0},
	}

	for _, c := range cases {
		t.Run(c.token, func(t *testing.T) {
			dx, dy := Step(c.token)
			if dx != c.dx || dy != c.dy {
				t.Fatalf("Step(%q) = (%d,%d), want (%d,%d)", c.token, dx, dy, c.dx, c.dy)
			}
		})
	}
}
