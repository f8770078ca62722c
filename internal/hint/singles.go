package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-cli/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles: empty
// cells where exactly one value fits.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single found in row-major order.
func (h *Singles) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			if !b.Cells[b.Index(x, y)].IsEmpty() {
				continue
			}
			v, ok := soleCandidate(b, x, y)
			if !ok {
				continue
			}
			return domain.Hint{
				Message: fmt.Sprintf("only %d fits at (%d, %d)", v, x, y),
				Cell:    domain.CellCoord{X: x, Y: y},
				Value:   v,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(b *domain.Board, x, y int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); int(v) <= b.Size; v++ {
		if allowed(b, x, y, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}

func allowed(b *domain.Board, x, y int, v uint8) bool {
	for i := 0; i < b.Size; i++ {
		if b.Cells[b.Index(i, y)].Value == v || b.Cells[b.Index(x, i)].Value == v {
			return false
		}
	}
	bx, by := (x/b.Box)*b.Box, (y/b.Box)*b.Box
	for dy := 0; dy < b.Box; dy++ {
		for dx := 0; dx < b.Box; dx++ {
			if b.Cells[b.Index(bx+dx, by+dy)].Value == v {
				return false
			}
		}
	}
	return true
}
