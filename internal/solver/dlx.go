package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

// DLXSolver implements Algorithm X / Dancing Links for an N×N board.
// Exact-cover mapping for edge n with box edge m=√n:
//
//	columns: 0..n²-1       -> cell (r,c) is filled
//	         n²..2n²-1     -> row r has value v
//	         2n²..3n²-1    -> col c has value v
//	         3n²..4n²-1    -> box b has value v, b = (r/m)*m + c/m
//
// and one candidate row per (r,c,v) triple, n³ in total.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

// node/column structures (classic dancing links)
type node struct {
	left, right, up, down *node
	col                   *column
	rowIdx                int // identifies the (r,c,v) candidate
}
type column struct {
	node
	size   int
	name   int
	active bool // whether this constraint column is currently uncovered
}

type dlx struct {
	size, box int
	cols      []*column
	rowHead   []*node
	sol       []*node
	solLen    int
	nodes     int
	activeCnt int // number of active (uncovered) columns
}

func newDLX(size, box int) *dlx {
	nCols := 4 * size * size
	nRows := size * size * size
	d := &dlx{
		size:    size,
		box:     box,
		cols:    make([]*column, nCols),
		rowHead: make([]*node, nRows),
		sol:     make([]*node, nRows),
	}
	for i := 0; i < nCols; i++ {
		c := &column{name: i, active: true}
		c.up = &c.node
		c.down = &c.node
		d.cols[i] = c
	}
	d.activeCnt = nCols

	// build rows for all (r,c,v)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			for v := 1; v <= size; v++ {
				row := d.rowIndex(r, c, v)
				cols := d.rowColumns(r, c, v)
				var first *node
				var prev *node
				for _, colID := range cols {
					col := d.cols[colID]
					n := &node{col: col, rowIdx: row}
					// vertical insert (at bottom)
					n.down = &col.node
					n.up = col.node.up
					col.node.up.down = n
					col.node.up = n
					col.size++
					// horizontal ring for the 4 nodes of the row
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				d.rowHead[row] = first
			}
		}
	}
	return d
}

func (d *dlx) rowIndex(r, c, v int) int {
	return (r*d.size+c)*d.size + (v - 1)
}

func (d *dlx) rowColumns(r, c, v int) [4]int {
	n2 := d.size * d.size
	cell := r*d.size + c
	rowN := n2 + r*d.size + (v - 1)
	colN := 2*n2 + c*d.size + (v - 1)
	box := (r/d.box)*d.box + c/d.box
	boxN := 3*n2 + box*d.size + (v - 1)
	return [4]int{cell, rowN, colN, boxN}
}

// core operations
func (d *dlx) cover(col *column) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (d *dlx) uncover(col *column) {
	for i := col.up; i != &col.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// chooseColumn picks the active column with the smallest size.
func (d *dlx) chooseColumn() *column {
	var best *column
	for _, c := range d.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

// search recurses at most one level per cell, so its depth is bounded by n².
func (d *dlx) search(ctx context.Context, k int, wantCount int, found *int) bool {
	select {
	case <-ctx.Done():
		return true // stop search
	default:
	}
	// all constraints covered → solution
	if d.activeCnt == 0 {
		d.solLen = k
		(*found)++
		return *found >= wantCount
	}

	c := d.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	d.cover(c)
	for r := c.down; r != &c.node; r = r.down {
		d.nodes++
		d.sol[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				d.cover(j.col)
			}
		}
		if d.search(ctx, k+1, wantCount, found) {
			for j := r.left; j != r; j = j.left {
				d.uncover(j.col)
			}
			d.uncover(c)
			return true
		}
		// backtrack: uncover in reverse order
		for j := r.left; j != r; j = j.left {
			d.uncover(j.col)
		}
	}
	d.uncover(c)
	return false
}

// applyGiven selects the candidate row for a given and covers its columns.
// Callers must have screened the board for duplicate givens first: covering
// a row whose nodes were already unlinked corrupts the links.
func (d *dlx) applyGiven(r, c, v int) error {
	row := d.rowIndex(r, c, v)
	head := d.rowHead[row]
	if head == nil {
		return errors.New("invalid row mapping")
	}
	for j := head; ; j = j.right {
		d.cover(j.col)
		if j.right == head {
			break
		}
	}
	return nil
}

// applyBoard loads every set cell as a given. It reports ok=false when the
// board already violates the uniqueness invariant.
func (d *dlx) applyBoard(b *domain.Board) (bool, error) {
	if _, ok := loadGrid(b); !ok {
		return false, nil
	}
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			if v := int(b.Cells[b.Index(x, y)].Value); v > 0 {
				if err := d.applyGiven(y, x, v); err != nil {
					return false, err
				}
			}
		}
	}
	return true, nil
}

func (s *DLXSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	d := newDLX(b.Size, b.Box)
	ok, err := d.applyBoard(b)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	if !ok {
		return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrUnsolvable
	}
	found := 0
	_ = d.search(ctx, 0, 1, &found)
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if found < 1 {
		return nil, st, domain.ErrUnsolvable
	}
	// reconstruct from chosen rows; givens were covered before the search
	// and so keep their input values
	out := b.Clone()
	for i := 0; i < d.solLen; i++ {
		r, c, v := d.decodeRow(d.sol[i].rowIdx)
		out.Cells[out.Index(c, r)] = domain.Tile{Value: uint8(v), Fixed: out.Cells[out.Index(c, r)].Fixed}
	}
	return out, st, nil
}

func (d *dlx) decodeRow(row int) (r, c, v int) {
	cell := row / d.size
	v = (row % d.size) + 1
	r = cell / d.size
	c = cell % d.size
	return
}

func (s *DLXSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	d := newDLX(b.Size, b.Box)
	ok, err := d.applyBoard(b)
	if err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	if !ok {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	found := 0
	_ = d.search(ctx, 0, 2, &found) // stop after finding 2 solutions
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return found == 1, st, nil
}
