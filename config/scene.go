// Package config loads the demo scene description.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene describes the sweep demo: window, projectile and target formation.
//
// Every field has a default (see Default); a YAML file only needs the keys
// it overrides.
type Scene struct {
	Window     Window     `yaml:"window"`
	Projectile Projectile `yaml:"projectile"`
	Targets    Targets    `yaml:"targets"`
	Grid       Grid       `yaml:"grid"`

	// Sweep enables the continuous test for the projectile. Without it the
	// projectile only uses the discrete query and tunnels through thin targets.
	Sweep bool `yaml:"sweep"`

	// DebugDraw is the initial state of the volume overlay
	DebugDraw bool `yaml:"debugDraw"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Projectile struct {
	// Speed in pixels per second
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Targets is a formation of Rows x Columns boxes sliding left and right
type Targets struct {
	Rows    int     `yaml:"rows"`
	Columns int     `yaml:"columns"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Spacing float64 `yaml:"spacing"`
	Top     float64 `yaml:"top"`
	// Travel is the horizontal distance covered by one slide
	Travel float64 `yaml:"travel"`
	// Duration of one slide, in seconds
	Duration float32 `yaml:"duration"`
}

// Grid configures the optional broad phase; CellSize 0 disables it
type Grid struct {
	CellSize float64 `yaml:"cellSize"`
	Cells    int     `yaml:"cells"`
}

func Default() Scene {
	return Scene{
		Window: Window{
			Width:  640,
			Height: 480,
			Title:  "hitbox sweep demo",
		},
		Projectile: Projectile{
			Speed:  2400,
			Width:  4,
			Height: 15,
		},
		Targets: Targets{
			Rows:     4,
			Columns:  8,
			Width:    32,
			Height:   2,
			Spacing:  16,
			Top:      60,
			Travel:   120,
			Duration: 2,
		},
		Sweep:     true,
		DebugDraw: true,
	}
}

// Load reads and validates a scene file
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to read scene config: %w", err)
	}

	scene, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}

	return scene, nil
}

// Parse decodes a YAML scene on top of the defaults, then validates it
func Parse(data []byte) (Scene, error) {
	scene := Default()
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return Scene{}, fmt.Errorf("failed to parse scene config: %w", err)
	}

	if err := scene.Validate(); err != nil {
		return Scene{}, fmt.Errorf("invalid scene config: %w", err)
	}

	return scene, nil
}

var ErrFormationTooWide = errors.New("target formation does not fit in the window")

// Validate checks that the values describe a playable scene
func (s *Scene) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}

	if s.Projectile.Speed <= 0 {
		return fmt.Errorf("projectile speed must be positive, got %.1f", s.Projectile.Speed)
	}
	if s.Projectile.Width <= 0 || s.Projectile.Height <= 0 {
		return fmt.Errorf("projectile size must be positive, got %.1fx%.1f", s.Projectile.Width, s.Projectile.Height)
	}

	t := s.Targets
	if t.Rows < 0 || t.Columns < 0 {
		return fmt.Errorf("target grid must not be negative, got %dx%d", t.Rows, t.Columns)
	}
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("target size must be positive, got %.1fx%.1f", t.Width, t.Height)
	}
	if t.Spacing < 0 || t.Travel < 0 {
		return fmt.Errorf("target spacing and travel must not be negative")
	}
	if t.Duration <= 0 {
		return fmt.Errorf("target slide duration must be positive, got %.2f", t.Duration)
	}
	if s.FormationWidth()+t.Travel > float64(s.Window.Width) {
		return fmt.Errorf("%w: %.1f + %.1f > %d", ErrFormationTooWide, s.FormationWidth(), t.Travel, s.Window.Width)
	}

	if s.Grid.CellSize < 0 {
		return fmt.Errorf("grid cell size must not be negative, got %.1f", s.Grid.CellSize)
	}
	if s.Grid.CellSize > 0 && s.Grid.Cells <= 0 {
		return fmt.Errorf("grid needs a positive cell count, got %d", s.Grid.Cells)
	}

	return nil
}

// FormationWidth is the width covered by one row of targets
func (s *Scene) FormationWidth() float64 {
	if s.Targets.Columns == 0 {
		return 0
	}
	n := float64(s.Targets.Columns)

	return n*s.Targets.Width + (n-1)*s.Targets.Spacing
}
