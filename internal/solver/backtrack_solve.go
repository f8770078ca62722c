package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

// frame tracks one cell of the search: the candidates not yet tried there.
type frame struct {
	cand uint64
}

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	g, ok := loadGrid(b)
	if !ok {
		return nil, ports.Stats{Duration: time.Since(start)}, fmt.Errorf("%w: conflicting givens", domain.ErrUnsolvable)
	}
	nodes := 0
	if !g.fill(ctx, &nodes) {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, domain.ErrUnsolvable
	}
	return g.solved(b), ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fill completes the grid in place, scanning blanks row-major and
// backtracking on dead ends. Returns false on exhaustion or cancellation.
func (g *grid) fill(ctx context.Context, nodes *int) bool {
	order := g.emptyCells()
	if len(order) == 0 {
		return true
	}
	stack := make([]frame, 1, len(order))
	stack[0] = frame{cand: g.candidates(order[0])}
	for len(stack) > 0 {
		if ctx.Err() != nil {
			return false
		}
		d := len(stack) - 1
		cell := order[d]
		// A set cell at this depth is a previous try being revisited.
		if g.vals[cell] != 0 {
			g.unset(cell)
		}
		f := &stack[d]
		if f.cand == 0 {
			stack = stack[:d]
			continue
		}
		v := lowestValue(f.cand)
		f.cand &= f.cand - 1
		*nodes++
		g.set(cell, v)
		if d+1 == len(order) {
			return true
		}
		stack = append(stack, frame{cand: g.candidates(order[d+1])})
	}
	return false
}
