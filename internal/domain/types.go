package domain

import "fmt"

const (
	// Empty is the unset tile value.
	Empty uint8 = 0

	// MaxSize caps the board edge so per-unit value masks fit in a uint64.
	MaxSize = 25
)

// Tile is a single board cell. The zero value is an empty, editable tile.
type Tile struct {
	Value uint8 // Empty or 1..board size
	Fixed bool  // part of the generated puzzle; render metadata only
}

// IsEmpty reports whether the tile has no value.
func (t Tile) IsEmpty() bool { return t.Value == Empty }

// CellCoord identifies a cell on the board. X is the column, Y the row,
// both zero-based.
type CellCoord struct {
	X int
	Y int
}

// Hint suggests a single placement that follows from the current board.
type Hint struct {
	Message string
	Cell    CellCoord
	Value   uint8
}

// Board holds an N×N grid of tiles. N must be a positive perfect square so
// that the Box×Box sub-square constraint is well defined. Tiles are stored
// row-major; the Board exclusively owns the slice.
type Board struct {
	Size  int
	Box   int // √Size
	Cells []Tile
}

// New allocates an empty board. It fails with ErrInvalidSize unless size is
// a positive perfect square no larger than MaxSize.
func New(size int) (*Board, error) {
	box := isqrt(size)
	if size <= 0 || size > MaxSize || box*box != size {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return &Board{Size: size, Box: box, Cells: make([]Tile, size*size)}, nil
}

// Clone returns an independent deep copy.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	clone.Cells = make([]Tile, len(b.Cells))
	copy(clone.Cells, b.Cells)
	return &clone
}

// Index maps (x, y) onto the flat cell slice. Bounds are the caller's job.
func (b *Board) Index(x, y int) int { return y*b.Size + x }

// At returns the tile at (x, y), or ErrOutOfBounds.
func (b *Board) At(x, y int) (Tile, error) {
	if err := b.checkBounds(x, y); err != nil {
		return Tile{}, err
	}
	return b.Cells[b.Index(x, y)], nil
}

// SetAt overwrites the tile at (x, y). Value Empty clears the cell. The
// write is not checked against the row/column/box invariant: the board is a
// sandbox and may pass through invalid states; the solver reports them.
// Overwriting a fixed tile turns it into a regular one.
func (b *Board) SetAt(x, y int, v uint8) error {
	if err := b.checkBounds(x, y); err != nil {
		return err
	}
	if err := b.CheckValue(v); err != nil {
		return err
	}
	b.Cells[b.Index(x, y)] = Tile{Value: v}
	return nil
}

// Reset clears every tile that is not a fixed given.
func (b *Board) Reset() {
	for i := range b.Cells {
		if !b.Cells[i].Fixed {
			b.Cells[i].Value = Empty
		}
	}
}

// Values returns a flat snapshot of the cell values, row-major.
func (b *Board) Values() []uint8 {
	vals := make([]uint8, len(b.Cells))
	for i, t := range b.Cells {
		vals[i] = t.Value
	}
	return vals
}

// EmptyCount returns the number of unset tiles.
func (b *Board) EmptyCount() int {
	n := 0
	for _, t := range b.Cells {
		if t.IsEmpty() {
			n++
		}
	}
	return n
}

// Full reports whether every tile is set.
func (b *Board) Full() bool { return b.EmptyCount() == 0 }

// CheckValue validates a value against the board's range.
func (b *Board) CheckValue(v uint8) error {
	if v != Empty && int(v) > b.Size {
		return fmt.Errorf("%w: %d not in 1..%d", ErrInvalidValue, v, b.Size)
	}
	return nil
}

func (b *Board) checkBounds(x, y int) error {
	if x < 0 || x >= b.Size || y < 0 || y >= b.Size {
		return fmt.Errorf("%w: (%d, %d) not in [0, %d)", ErrOutOfBounds, x, y, b.Size)
	}
	return nil
}

// isqrt is the integer square root for the small sizes a board allows.
func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
