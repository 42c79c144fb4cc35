package turtle

// Keys is the pressed-direction state sampled for one tick.
type Keys struct {
	Up, Down, Left, Right bool
}

func (k Keys) Any() bool {
	return k.Up || k.Down || k.Left || k.Right
}

// Steer applies at most one vertical and one horizontal unit step as a
// single displacement. Up wins over Down and Left over Right. Facing
// follows the requested direction even when the move is refused.
func (t *Turtle) Steer(k Keys) error {
	var dx, dy int

	if k.Up {
		dy--
		t.Facing = North
	} else if k.Down {
		dy++
		t.Facing = South
	}
	if k.Left {
		dx--
		t.Facing = West
	} else if k.Right {
		dx++
		t.Facing = East
	}

	return t.Displace(dx, dy)
}
