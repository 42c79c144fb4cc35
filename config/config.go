package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no explicit
// config path is given.
const DefaultFile = "turtle.yaml"

//go:embed default.yaml
var defaultYAML []byte

// Dimensions is the raster size shared by the canvas and every turtle
// bounds check.
type Dimensions struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Area returns the number of pixels in the raster.
func (d Dimensions) Area() int {
	return d.Width * d.Height
}

type Config struct {
	Dimensions `yaml:",inline"`

	Title      string `yaml:"title"`
	Footprint  int    `yaml:"footprint"`
	StartX     int    `yaml:"start_x"`
	StartY     int    `yaml:"start_y"`
	PenDown    bool   `yaml:"pen_down"`
	Colour     Colour `yaml:"colour"`
	Indicator  Colour `yaml:"indicator"`
	Background Colour `yaml:"background"`
	TPS        int    `yaml:"tps"`
	HUD        bool   `yaml:"hud"`
}

// Default returns the embedded configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}
	return cfg
}

// Load reads the config at path. An empty path tries DefaultFile in the
// working directory and falls back to the embedded default. Fields left
// out of a file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	name := path
	if name == "" {
		name = DefaultFile
	}

	data, err := os.ReadFile(name)
	if err != nil {
		if path == "" && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", name, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", name, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Footprint <= 0 {
		return fmt.Errorf("footprint must be positive, got %d", c.Footprint)
	}
	if c.StartX < 0 || c.StartY < 0 ||
		c.StartX+c.Footprint >= c.Width ||
		c.StartY+c.Footprint >= c.Height {
		return fmt.Errorf("start (%d,%d) with footprint %d does not fit %dx%d",
			c.StartX, c.StartY, c.Footprint, c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}
