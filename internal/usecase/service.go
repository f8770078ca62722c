package usecase

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

var errNotConfigured = errors.New("usecase dependency not configured")

// Service owns the single live board of a game session and exposes every
// operation the shell dispatches. It is an explicitly passed session object;
// there is no process-wide game state.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Logger    *slog.Logger

	board *domain.Board
	rng   *rand.Rand
}

// NewService wires a session. A zero seed picks a time-based one.
func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, logger *slog.Logger, seed int64) *Service {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		Solver:    s,
		Generator: g,
		Validator: v,
		Hinter:    h,
		Logger:    logger,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Board returns the live board. Callers must not retain it across commands.
func (u *Service) Board() *domain.Board { return u.board }

// Resize replaces the board with a freshly generated one of the given size.
// On failure the previous board is left intact.
func (u *Service) Resize(ctx context.Context, size int) error {
	if u.Generator == nil {
		return errNotConfigured
	}
	b, st, err := u.Generator.Generate(ctx, u.rng.Int63(), size)
	if err != nil {
		return err
	}
	u.Logger.Debug("generated", "size", size, "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
	u.board = b
	return nil
}

// Regenerate replaces the board with a fresh puzzle of the same size.
func (u *Service) Regenerate(ctx context.Context) error {
	if u.board == nil {
		return errNotConfigured
	}
	return u.Resize(ctx, u.board.Size)
}

// SetCell writes a single cell; value 0 clears it. Coordinate and range
// violations are reported, global invariants are deliberately not enforced.
func (u *Service) SetCell(x, y int, v uint8) error {
	if u.board == nil {
		return errNotConfigured
	}
	return u.board.SetAt(x, y, v)
}

// Reset clears user entries, keeping the generated givens.
func (u *Service) Reset() error {
	if u.board == nil {
		return errNotConfigured
	}
	u.board.Reset()
	return nil
}

// Solution solves the current board without mutating it, treating every set
// cell as a constraint. Returns domain.ErrUnsolvable when no completion
// exists.
func (u *Service) Solution(ctx context.Context) (*domain.Board, error) {
	if u.Solver == nil || u.board == nil {
		return nil, errNotConfigured
	}
	out, st, err := u.Solver.Solve(ctx, u.board)
	if err != nil {
		return nil, err
	}
	u.Logger.Debug("solved", "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
	return out, nil
}

// Validate reports conflicts on the live board.
func (u *Service) Validate(ctx context.Context) (bool, []domain.CellCoord, error) {
	if u.Validator == nil || u.board == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, u.board)
}

// Hint suggests the next deducible placement, if any.
func (u *Service) Hint(ctx context.Context) (domain.Hint, bool, error) {
	if u.Hinter == nil || u.board == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, u.board)
}

// Finished reports whether the board is completely and validly filled.
func (u *Service) Finished(ctx context.Context) bool {
	if u.board == nil || !u.board.Full() {
		return false
	}
	ok, _, err := u.Validate(ctx)
	return err == nil && ok
}
