package wfc

import (
	"errors"
	"fmt"

	"github.com/ColfrozenlIquid/wave-function-collapse/internal/logger"
)

// DefaultSize is the edge length of the reference terrain map
const DefaultSize = 30

// MapConfig contains parameters for map generation
type MapConfig struct {
	Size          int     // Rows and columns, border included
	Seed          int64   // Base seed; attempt n uses Seed + n*1000
	MaxIterations int     // Collapse cap per attempt (0 = rows*columns)
	MaxRetries    int     // Attempts before giving up on contradictions
	StartTerrain  Terrain // Terrain forced onto the start cell
	Rules         *Rules  // Adjacency table (nil = DefaultRules)
}

// DefaultMapConfig returns reasonable defaults for a map
func DefaultMapConfig(seed int64) *MapConfig {
	return &MapConfig{
		Size:         DefaultSize,
		Seed:         seed,
		MaxRetries:   50,
		StartTerrain: Grass,
	}
}

// GeneratedMap represents the output of map generation
type GeneratedMap struct {
	Grid     *Grid
	Seed     int64 // Seed of the successful attempt
	Attempts int
	Result   *Result
}

// Generator handles map generation, retrying runs that hit a contradiction
type Generator struct {
	config *MapConfig
	rules  *Rules
}

// NewGenerator creates a new map generator
func NewGenerator(config *MapConfig) *Generator {
	rules := config.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	return &Generator{
		config: config,
		rules:  rules,
	}
}

// Generate creates a terrain map
func (g *Generator) Generate() (*GeneratedMap, error) {
	retries := g.config.MaxRetries
	if retries < 1 {
		retries = 1
	}

	var lastErr error

	for attempt := 0; attempt < retries; attempt++ {
		seed := g.config.Seed + int64(attempt*1000)

		grid, err := NewGrid(g.config.Size, g.config.Size)
		if err != nil {
			return nil, err
		}

		solver := NewSolver(grid, g.rules, seed)
		solver.MaxIterations = g.config.MaxIterations
		solver.StartTerrain = g.config.StartTerrain

		result, err := solver.Solve()
		if err != nil {
			// Only contradictions are worth another seed
			if !errors.Is(err, ErrContradiction) {
				return nil, err
			}
			logger.Warning("Terrain attempt hit a contradiction", "attempt", attempt+1, "seed", seed, "error", err)
			lastErr = err
			continue
		}

		if !result.Complete {
			logger.Warning("Terrain map incomplete, iteration cap reached",
				"seed", seed, "iterations", result.Iterations, "unresolved", result.Unresolved)
		}

		logger.Info("Terrain map generated",
			"size", g.config.Size,
			"seed", seed,
			"attempts", attempt+1,
			"iterations", result.Iterations)

		return &GeneratedMap{
			Grid:     grid,
			Seed:     seed,
			Attempts: attempt + 1,
			Result:   result,
		}, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("failed after %d attempts: %w", retries, lastErr)
	}
	return nil, ErrNoSolution
}
