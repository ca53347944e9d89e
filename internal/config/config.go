package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ColfrozenlIquid/wave-function-collapse/internal/wfc"
)

// Config holds the terrain generator settings.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Render     RenderConfig     `yaml:"render"`
}

// GenerationConfig holds the solver constants.
type GenerationConfig struct {
	// Size is the edge length of the square map, border included.
	Size int `yaml:"size"`

	// Seed for the random source. 0 means pick one from the clock.
	Seed int64 `yaml:"seed"`

	// MaxIterations caps collapses per attempt. 0 means rows*columns.
	MaxIterations int `yaml:"max_iterations"`

	// MaxRetries is how many seeds are tried before a contradiction is fatal.
	MaxRetries int `yaml:"max_retries"`

	// StartTerrain is forced onto the first collapsed cell.
	StartTerrain string `yaml:"start_terrain"`
}

// RenderConfig holds settings for printing a finished map.
type RenderConfig struct {
	// Color enables ANSI colours when stdout is a terminal.
	Color bool `yaml:"color"`

	// Legend appends a key of glyphs to the output.
	Legend bool `yaml:"legend"`

	// TileSize is the sprite edge in pixels used for screen placement.
	TileSize int `yaml:"tile_size"`
}

// DefaultConfig returns the reference 30x30 setup.
func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			Size:          wfc.DefaultSize,
			Seed:          0,
			MaxIterations: 0,
			MaxRetries:    50,
			StartTerrain:  wfc.Grass.String(),
		},
		Render: RenderConfig{
			Color:    true,
			Legend:   true,
			TileSize: 16,
		},
	}
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, returns the default config.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// Validate checks that the settings describe a map the solver can build.
func (c *Config) Validate() error {
	g := c.Generation
	if g.Size < wfc.MinSize {
		return fmt.Errorf("config: generation.size %d is below %d", g.Size, wfc.MinSize)
	}
	if g.MaxIterations < 0 {
		return fmt.Errorf("config: generation.max_iterations must not be negative")
	}
	if g.MaxRetries < 1 {
		return fmt.Errorf("config: generation.max_retries must be at least 1")
	}
	start, err := wfc.ParseTerrain(g.StartTerrain)
	if err != nil {
		return fmt.Errorf("config: generation.start_terrain: %w", err)
	}
	if !start.Placeable() {
		return fmt.Errorf("config: generation.start_terrain %q is not placeable", g.StartTerrain)
	}
	if c.Render.TileSize < 1 {
		return fmt.Errorf("config: render.tile_size must be positive")
	}
	return nil
}

// MapConfig converts the generation settings for the wfc generator.
func (g *GenerationConfig) MapConfig(seed int64) (*wfc.MapConfig, error) {
	start, err := wfc.ParseTerrain(g.StartTerrain)
	if err != nil {
		return nil, err
	}

	cfg := wfc.DefaultMapConfig(seed)
	cfg.Size = g.Size
	cfg.MaxIterations = g.MaxIterations
	cfg.MaxRetries = g.MaxRetries
	cfg.StartTerrain = start
	return cfg, nil
}
