package generator

import "svw.info/sudoku-cli/internal/ports"

// UniqueGenerator creates puzzles with a unique solution using a provided
// Solver for the uniqueness checks.
type UniqueGenerator struct {
	Solver ports.Solver
}

// NewUniqueGenerator wires a generator that uses the given solver.
func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

// The Generate method is implemented in simple.go.
