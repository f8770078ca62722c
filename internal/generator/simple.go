package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

// carveBudget bounds the uniqueness-preserving carve. When it runs out the
// puzzle simply keeps more givens than targeted; it is still valid.
const carveBudget = 2 * time.Second

// Generate creates a puzzle of the given size: a full random solution is
// built by backtracking fill, then cells are carved out while the solution
// stays unique. Roughly half the cells remain as fixed givens.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, size int) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	b, err := domain.New(size)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	rng := rand.New(rand.NewSource(seed))

	// 1) full random solution
	full := make([]uint8, size*size)
	if !fillRandom(ctx, rng, full, size, b.Box) {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Duration: time.Since(start)}, err
		}
		return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrUnsolvable
	}

	// 2) carve out cells while the remaining givens pin a unique solution
	puz := make([]uint8, len(full))
	copy(puz, full)
	positions := rng.Perm(len(puz))
	target := (len(puz) + 1) / 2
	deadline := start.Add(carveBudget)
	nodes := 0

	givens := len(puz)
	for _, pos := range positions {
		if givens <= target || time.Now().After(deadline) || ctx.Err() != nil {
			break
		}
		old := puz[pos]
		puz[pos] = 0
		copyInto(b, puz)
		unique, st, err := g.Solver.Unique(ctx, b)
		nodes += st.Nodes
		if err != nil || !unique {
			puz[pos] = old // revert
			continue
		}
		givens--
	}

	copyInto(b, puz)
	return b, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// copyInto writes a flat value snapshot back onto the board, marking every
// set cell as a fixed given.
func copyInto(b *domain.Board, vals []uint8) {
	for i, v := range vals {
		b.Cells[i] = domain.Tile{Value: v, Fixed: v != domain.Empty}
	}
}

// fillRandom solves an empty grid into a full valid solution, trying values
// in random order cell by cell. Each frame shuffles its own candidate copy:
// a shared list would be reshuffled under the parent's feet by deeper
// frames, making the search non-exhaustive.
func fillRandom(ctx context.Context, rng *rand.Rand, vals []uint8, size, box int) bool {
	var dfs func(i int) bool
	dfs = func(i int) bool {
		if ctx.Err() != nil {
			return false
		}
		if i == len(vals) {
			return true
		}
		nums := make([]uint8, size)
		for k := range nums {
			nums[k] = uint8(k + 1)
		}
		rng.Shuffle(size, func(a, b int) { nums[a], nums[b] = nums[b], nums[a] })
		for _, v := range nums {
			if allowed(vals, size, box, i, v) {
				vals[i] = v
				if dfs(i + 1) {
					return true
				}
				vals[i] = 0
			}
		}
		return false
	}
	return dfs(0)
}

// allowed mirrors the row/col/box checks locally for the generator.
func allowed(vals []uint8, size, box, i int, v uint8) bool {
	x, y := i%size, i/size
	for k := 0; k < size; k++ {
		if vals[y*size+k] == v || vals[k*size+x] == v {
			return false
		}
	}
	bx, by := (x/box)*box, (y/box)*box
	for dy := 0; dy < box; dy++ {
		for dx := 0; dx < box; dx++ {
			if vals[(by+dy)*size+bx+dx] == v {
				return false
			}
		}
	}
	return true
}
