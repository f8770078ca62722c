package ports

import (
	"context"
	"time"

	"svw.info/sudoku-cli/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a board and can test uniqueness. Solve returns a solved
// copy and leaves the input untouched; it fails with domain.ErrUnsolvable
// when the given cells admit no completion.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Generator creates new puzzles of the requested size.
type Generator interface {
	Generate(ctx context.Context, seed int64, size int) (*domain.Board, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical placement, if one can be deduced.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error)
}
