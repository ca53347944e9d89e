package wfc

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ColfrozenlIquid/wave-function-collapse/internal/logger"
)

var (
	ErrContradiction = errors.New("wfc: contradiction - no valid terrain for cell")
	ErrInvalidSize   = errors.New("wfc: invalid grid size")
	ErrInvalidStart  = errors.New("wfc: invalid start cell")
	ErrNotStarted    = errors.New("wfc: solver has no current cell")
	ErrNoSolution    = errors.New("wfc: failed to find valid solution")
)

// ReferenceIterations is the fixed budget of the original terrain generator.
// The solver treats its own budget as a safety cap instead.
const ReferenceIterations = 700

// ContradictionError reports the cell whose options became empty
type ContradictionError struct {
	X, Y int

	// The collapsed cell whose propagation emptied the options.
	// FromX and FromY are -1 when the contradiction was found during selection.
	From         Terrain
	FromX, FromY int
}

func (e *ContradictionError) Error() string {
	if e.FromX < 0 {
		return fmt.Sprintf("wfc: contradiction at (%d,%d): no options left", e.X, e.Y)
	}
	return fmt.Sprintf("wfc: contradiction at (%d,%d) after (%d,%d) collapsed to %s",
		e.X, e.Y, e.FromX, e.FromY, e.From)
}

// Unwrap lets errors.Is match ErrContradiction
func (e *ContradictionError) Unwrap() error {
	return ErrContradiction
}

// Result summarises a finished run
type Result struct {
	Iterations int  // Cells resolved after the start cell
	Resolved   int  // Interior cells collapsed, start cell included
	Unresolved int  // Interior cells left when the run stopped
	Complete   bool // Every cell collapsed before the cap was reached
}

// Solver runs the constrained wave function collapse over a terrain grid.
// Propagation is local: only the eight neighbours of the cell just collapsed
// are narrowed, and the next collapse carries the constraint further.
type Solver struct {
	Grid  *Grid
	Rules *Rules

	// MaxIterations caps the number of collapses after the start cell.
	// Zero means rows*columns, which is always enough to finish.
	MaxIterations int

	// StartTerrain is forced onto the start cell regardless of its options
	StartTerrain Terrain

	rng        Intner
	current    *Cell
	iterations int
}

// NewSolver creates a solver over grid seeded for reproducible runs
func NewSolver(grid *Grid, rules *Rules, seed int64) *Solver {
	return NewSolverWithSource(grid, rules, rand.New(rand.NewSource(seed)))
}

// NewSolverWithSource creates a solver drawing every random choice from rnd
func NewSolverWithSource(grid *Grid, rules *Rules, rnd Intner) *Solver {
	return &Solver{
		Grid:         grid,
		Rules:        rules,
		StartTerrain: Grass,
		rng:          rnd,
	}
}

// Solve starts from a uniformly random interior cell and runs to completion
// or until the iteration cap is reached
func (s *Solver) Solve() (*Result, error) {
	x := 1 + s.rng.Intn(s.Grid.Columns-2)
	y := 1 + s.rng.Intn(s.Grid.Rows-2)
	return s.SolveFrom(x, y)
}

// SolveFrom runs the solver with (x, y) as the start cell
func (s *Solver) SolveFrom(x, y int) (*Result, error) {
	if err := s.Start(x, y); err != nil {
		return nil, err
	}

	limit := s.iterationCap()
	for s.iterations < limit {
		more, err := s.Step()
		if err != nil {
			logger.Debug("Collapse aborted", "iterations", s.iterations, "error", err)
			return nil, err
		}
		if !more {
			break
		}
	}

	res := s.Result()
	logger.Debug("Collapse finished",
		"iterations", res.Iterations,
		"resolved", res.Resolved,
		"unresolved", res.Unresolved,
		"complete", res.Complete)
	return res, nil
}

// Start collapses the start cell to StartTerrain
func (s *Solver) Start(x, y int) error {
	if s.current != nil {
		return fmt.Errorf("%w: solver already started at (%d,%d)", ErrInvalidStart, s.current.X, s.current.Y)
	}
	cell, ok := s.Grid.At(x, y)
	if !ok || s.Grid.IsBorder(x, y) {
		return fmt.Errorf("%w: (%d,%d) is not an interior cell", ErrInvalidStart, x, y)
	}
	if cell.Collapsed {
		return fmt.Errorf("%w: (%d,%d) is already collapsed", ErrInvalidStart, x, y)
	}

	cell.collapse(s.StartTerrain)
	s.current = cell
	logger.Debug("Collapse started", "x", x, "y", y, "terrain", s.StartTerrain)
	return nil
}

// Step propagates from the current cell, then selects and collapses the next
// lowest-entropy cell. It returns false once no uncollapsed cell remains.
func (s *Solver) Step() (bool, error) {
	if s.current == nil {
		return false, ErrNotStarted
	}

	if err := s.propagate(s.current); err != nil {
		return false, err
	}

	next, ok := PickLowestEntropy(s.Grid, s.rng)
	if !ok {
		return false, nil
	}

	options := next.OptionList()
	if len(options) == 0 {
		return false, &ContradictionError{X: next.X, Y: next.Y, FromX: -1, FromY: -1}
	}

	next.collapse(options[s.rng.Intn(len(options))])
	s.current = next
	s.iterations++
	return true, nil
}

// Current returns the cell most recently collapsed
func (s *Solver) Current() *Cell {
	return s.current
}

// Result reports the state of the run so far
func (s *Solver) Result() *Result {
	unresolved := s.Grid.Unresolved()
	interior := (s.Grid.Rows - 2) * (s.Grid.Columns - 2)
	return &Result{
		Iterations: s.iterations,
		Resolved:   interior - unresolved,
		Unresolved: unresolved,
		Complete:   unresolved == 0,
	}
}

// propagate narrows the options of c's uncollapsed neighbours to what c's
// rule permits. Out-of-range directions carry no constraint.
func (s *Solver) propagate(c *Cell) error {
	for _, dir := range AllDirections() {
		neighbor, ok := s.Grid.Neighbor(c, dir)
		if !ok || neighbor.Collapsed {
			continue
		}

		allowed, ok := s.Rules.Permitted(c.State, dir)
		if !ok {
			continue
		}

		neighbor.narrow(allowed)
		if neighbor.Entropy() == 0 {
			return &ContradictionError{
				X:     neighbor.X,
				Y:     neighbor.Y,
				From:  c.State,
				FromX: c.X,
				FromY: c.Y,
			}
		}
	}
	return nil
}

// iterationCap returns the effective collapse budget
func (s *Solver) iterationCap() int {
	if s.MaxIterations > 0 {
		return s.MaxIterations
	}
	return s.Grid.Rows * s.Grid.Columns
}
