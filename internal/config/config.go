package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS       = 60
	DefaultStars     = 1000
	DefaultStarField = 2000.0
	DefaultSpeedMin  = 0.001
	DefaultSpeedMax  = 0.05
	DefaultSpeedStep = 0.001
	DefaultFOV       = 35.0
	DefaultDamping   = 0.05
	DefaultSunSize   = 5.0
	DefaultTheme     = "dark"
)

type Config struct {
	Theme    string        `yaml:"theme"`
	FPS      int           `yaml:"fps"`
	Seed     int64         `yaml:"seed"`
	Stars    int           `yaml:"stars"`
	Sun      SunConfig     `yaml:"sun"`
	Camera   CameraConfig  `yaml:"camera"`
	Controls ControlConfig `yaml:"controls"`
	Bodies   []BodyConfig  `yaml:"bodies"`
}

// BodyConfig describes one planet. Color and Texture are passed through to
// the scene untouched.
type BodyConfig struct {
	Name    string  `yaml:"name"`
	Size    float64 `yaml:"size"`
	Radius  float64 `yaml:"radius"`
	Speed   float64 `yaml:"speed"`
	Color   string  `yaml:"color,omitempty"`
	Texture string  `yaml:"texture,omitempty"`
}

type SunConfig struct {
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`
}

type CameraConfig struct {
	FOV      float64    `yaml:"fov"`
	Near     float64    `yaml:"near"`
	Far      float64    `yaml:"far"`
	Position [3]float64 `yaml:"position"`
	Damping  float64    `yaml:"damping"`
}

// ControlConfig is the range shared by every speed slider.
type ControlConfig struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: DefaultTheme,
		FPS:   DefaultFPS,
		Stars: DefaultStars,
		Sun:   SunConfig{Size: DefaultSunSize, Color: "#fdb813"},
		Camera: CameraConfig{
			FOV:      DefaultFOV,
			Near:     0.1,
			Far:      1000,
			Position: [3]float64{50, 30, 100},
			Damping:  DefaultDamping,
		},
		Controls: ControlConfig{Min: DefaultSpeedMin, Max: DefaultSpeedMax, Step: DefaultSpeedStep},
		Bodies:   solarBodies(),
	}
}

// Load reads a YAML file over the defaults. A file that lists bodies
// replaces the default body list entirely.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Bodies = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Bodies == nil {
		cfg.Bodies = solarBodies()
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the invariants the simulation relies on: at least one
// body, unique names, positive size and radius, and speeds inside the
// slider range.
func (c *Config) Validate() error {
	ctl := c.Controls
	if !(ctl.Min < ctl.Max) || ctl.Step <= 0 {
		return fmt.Errorf("%w: min=%g max=%g step=%g", ErrInvalidRange, ctl.Min, ctl.Max, ctl.Step)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 || c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: fov=%g near=%g far=%g", ErrInvalidCamera, c.Camera.FOV, c.Camera.Near, c.Camera.Far)
	}
	// The camera looks at the origin with +Y up, so it must sit off the
	// vertical axis for the view basis to exist.
	if p := c.Camera.Position; p[0] == 0 && p[2] == 0 {
		return fmt.Errorf("%w: position %v is on the vertical axis through the target", ErrInvalidCamera, p)
	}
	if c.Stars < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStars, c.Stars)
	}
	if c.Sun.Size <= 0 {
		return fmt.Errorf("%w: sun size %g", ErrInvalidSize, c.Sun.Size)
	}
	if len(c.Bodies) == 0 {
		return ErrNoBodies
	}
	seen := make(map[string]bool, len(c.Bodies))
	for i, b := range c.Bodies {
		var err error
		switch {
		case b.Name == "":
			err = ErrMissingName
		case seen[b.Name]:
			err = ErrDuplicateBody
		case b.Size <= 0:
			err = ErrInvalidSize
		case b.Radius <= 0:
			err = ErrInvalidRadius
		case b.Radius <= c.Sun.Size:
			err = ErrInsideSun
		case b.Speed < ctl.Min || b.Speed > ctl.Max:
			err = ErrInvalidSpeed
		}
		if err != nil {
			return &BodyError{Index: i, Name: b.Name, Err: err}
		}
		seen[b.Name] = true
	}
	return nil
}

// Body returns the named body config.
func (c *Config) Body(name string) (BodyConfig, bool) {
	for _, b := range c.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return BodyConfig{}, false
}
