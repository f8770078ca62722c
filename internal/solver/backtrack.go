package solver

import (
	"math/bits"

	"svw.info/sudoku-cli/internal/domain"
)

// BacktrackingSolver is a straightforward depth-first solver. The search
// runs on an explicit frame stack, so its memory use is bounded by the cell
// count rather than the call depth.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// grid is the solver's working state: a flat value snapshot plus one value
// bitmask per row, column, and box. Bit i represents value i+1; with
// domain.MaxSize at 25 every mask fits in a uint64.
type grid struct {
	size, box int
	full      uint64
	vals      []uint8
	rows      []uint64
	cols      []uint64
	boxes     []uint64
}

// loadGrid snapshots a board. ok is false when two set cells already share
// a value in some unit, in which case no completion can exist.
func loadGrid(b *domain.Board) (*grid, bool) {
	g := &grid{
		size:  b.Size,
		box:   b.Box,
		full:  (uint64(1) << b.Size) - 1,
		vals:  b.Values(),
		rows:  make([]uint64, b.Size),
		cols:  make([]uint64, b.Size),
		boxes: make([]uint64, b.Size),
	}
	for i, v := range g.vals {
		if v == 0 {
			continue
		}
		x, y := i%g.size, i/g.size
		mask := uint64(1) << (v - 1)
		bx := g.boxIndex(x, y)
		if g.rows[y]&mask != 0 || g.cols[x]&mask != 0 || g.boxes[bx]&mask != 0 {
			return nil, false
		}
		g.rows[y] |= mask
		g.cols[x] |= mask
		g.boxes[bx] |= mask
	}
	return g, true
}

func (g *grid) boxIndex(x, y int) int {
	return (y/g.box)*g.box + x/g.box
}

// candidates returns the mask of values placeable at cell i.
func (g *grid) candidates(i int) uint64 {
	x, y := i%g.size, i/g.size
	return g.full &^ (g.rows[y] | g.cols[x] | g.boxes[g.boxIndex(x, y)])
}

func (g *grid) set(i int, v uint8) {
	x, y := i%g.size, i/g.size
	mask := uint64(1) << (v - 1)
	g.vals[i] = v
	g.rows[y] |= mask
	g.cols[x] |= mask
	g.boxes[g.boxIndex(x, y)] |= mask
}

func (g *grid) unset(i int) {
	x, y := i%g.size, i/g.size
	mask := uint64(1) << (g.vals[i] - 1)
	g.vals[i] = 0
	g.rows[y] &^= mask
	g.cols[x] &^= mask
	g.boxes[g.boxIndex(x, y)] &^= mask
}

// emptyCells lists unset cell indices in row-major order.
func (g *grid) emptyCells() []int {
	order := make([]int, 0, len(g.vals))
	for i, v := range g.vals {
		if v == 0 {
			order = append(order, i)
		}
	}
	return order
}

// lowestValue extracts the smallest candidate value from a mask.
func lowestValue(mask uint64) uint8 {
	return uint8(bits.TrailingZeros64(mask) + 1)
}

// solved builds a result board from the grid, carrying over which input
// cells were set so the caller can render givens distinctly.
func (g *grid) solved(in *domain.Board) *domain.Board {
	out := in.Clone()
	for i := range out.Cells {
		out.Cells[i].Value = g.vals[i]
	}
	return out
}
