package validator

import (
	"context"

	"svw.info/sudoku-cli/internal/domain"
)

// FastValidator scans each unit once with a value bitmask per row, column,
// and box. Empty cells are ignored; only duplicates are conflicts.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	conf := make([]domain.CellCoord, 0, 8)
	n, box := b.Size, b.Box
	// rows
	for y := 0; y < n; y++ {
		var m uint64
		for x := 0; x < n; x++ {
			val := b.Cells[b.Index(x, y)].Value
			if val == domain.Empty {
				continue
			}
			bit := uint64(1) << (val - 1)
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{X: x, Y: y})
			}
			m |= bit
		}
	}
	// cols
	for x := 0; x < n; x++ {
		var m uint64
		for y := 0; y < n; y++ {
			val := b.Cells[b.Index(x, y)].Value
			if val == domain.Empty {
				continue
			}
			bit := uint64(1) << (val - 1)
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{X: x, Y: y})
			}
			m |= bit
		}
	}
	// boxes
	for by := 0; by < box; by++ {
		for bx := 0; bx < box; bx++ {
			var m uint64
			for dy := 0; dy < box; dy++ {
				for dx := 0; dx < box; dx++ {
					x := bx*box + dx
					y := by*box + dy
					val := b.Cells[b.Index(x, y)].Value
					if val == domain.Empty {
						continue
					}
					bit := uint64(1) << (val - 1)
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{X: x, Y: y})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
