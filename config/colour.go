package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Colour is a packed 0x00RRGGBB value.
type Colour uint32

// ParseColour decodes a hexadecimal RGB triplet such as "FF0080" or
// "#FF0080".
func ParseColour(s string) (Colour, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid colour %q: want 6 hex digits", s)
	}

	parse := func(start int) (uint32, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid colour %q: %w", s, err)
		}
		return uint32(v), nil
	}

	r, err := parse(0)
	if err != nil {
		return 0, err
	}
	g, err := parse(2)
	if err != nil {
		return 0, err
	}
	b, err := parse(4)
	if err != nil {
		return 0, err
	}

	return Colour(r<<16 | g<<8 | b), nil
}

// RGB splits the colour into its channels.
func (c Colour) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Colour) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

func (c *Colour) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("colour must be a string")
	}

	parsed, err := ParseColour(value.Value)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

func (c Colour) MarshalYAML() (any, error) {
	return c.String(), nil
}
