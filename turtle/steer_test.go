package turtle

import (
	"errors"
	"testing"

	"github.com/milk9111/turtle/config"
)

func TestSteer(t *testing.T) {
	dims := &config.Dimensions{Width: 1280, Height: 720}

	cases := []struct {
		name       string
		keys       Keys
		wantX      int
		wantY      int
		wantFacing Direction
	}{
		{"none", Keys{}, 50, 50, South},
		{"up", Keys{Up: true}, 50, 49, North},
		{"down", Keys{Down: true}, 50, 51, South},
		{"left", Keys{Left: true}, 49, 50, West},
		{"right", Keys{Right: true}, 51, 50, East},
		{"up_beats_down", Keys{Up: true, Down: true}, 50, 49, North},
		{"left_beats_right", Keys{Left: true, Right: true}, 49, 50, West},
		{"diagonal_faces_horizontal", Keys{Up: true, Right: true}, 51, 49, East},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tt := New(dims, 50, 50, 10)
			tt.Facing = South
			if err := tt.Steer(c.keys); err != nil {
				t.Fatalf("Steer: %v", err)
			}
			if tt.X != c.wantX || tt.Y != c.wantY {
				t.Fatalf("position = (%d,%d), want (%d,%d)", tt.X, tt.Y, c.wantX, c.wantY)
			}
			if tt.Facing != c.wantFacing {
				t.Fatalf("facing = %s, want %s", tt.Facing, c.wantFacing)
			}
		})
	}
}

func TestSteerBlockedStillTurns(t *testing.T) {
	tt := New(&config.Dimensions{Width: 1280, Height: 720}, 0, 0, 10)

	err := tt.Steer(Keys{Left: true})
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if tt.Facing != West {
		t.Fatalf("facing = %s, want WEST", tt.Facing)
	}
	if tt.X != 0 || tt.Y != 0 {
		t.Fatalf("position changed: (%d,%d)", tt.X, tt.Y)
	}
}
