package solver

import (
	"context"
	"time"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	g, ok := loadGrid(b)
	if !ok {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	nodes := 0
	count := g.countSolutions(ctx, 2, &nodes)
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// countSolutions exhausts the search like fill but keeps going past each
// complete assignment, stopping once limit solutions have been seen.
func (g *grid) countSolutions(ctx context.Context, limit int, nodes *int) int {
	order := g.emptyCells()
	if len(order) == 0 {
		return 1
	}
	count := 0
	stack := make([]frame, 1, len(order))
	stack[0] = frame{cand: g.candidates(order[0])}
	for len(stack) > 0 {
		if ctx.Err() != nil || count >= limit {
			break
		}
		d := len(stack) - 1
		cell := order[d]
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
			count++
			continue // frame stays on top; next pass unsets and tries further
		}
		stack = append(stack, frame{cand: g.candidates(order[d+1])})
	}
	// Leave the grid clean for reuse.
	for _, cell := range order {
		if g.vals[cell] != 0 {
			g.unset(cell)
		}
	}
	return count
}
