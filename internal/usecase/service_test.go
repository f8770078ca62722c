package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/generator"
	"svw.info/sudoku-cli/internal/hint"
	"svw.info/sudoku-cli/internal/logging"
	"svw.info/sudoku-cli/internal/solver"
	"svw.info/sudoku-cli/internal/validator"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s := solver.NewBacktrackingSolver()
	return NewService(s, generator.NewUniqueGenerator(s), validator.New(), hint.NewSingles(), logging.NewNop(), 12345)
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestResizeInvalidSizeKeepsBoard(t *testing.T) {
	ctx := testCtx(t)
	svc := newTestService(t)
	require.NoError(t, svc.Resize(ctx, 4))
	before := svc.Board()

	err := svc.Resize(ctx, 10)
	require.ErrorIs(t, err, domain.ErrInvalidSize)
	require.Same(t, before, svc.Board())
}

func TestSetCellErrors(t *testing.T) {
	ctx := testCtx(t)
	svc := newTestService(t)
	require.NoError(t, svc.Resize(ctx, 4))

	require.ErrorIs(t, svc.SetCell(4, 0, 1), domain.ErrOutOfBounds)
	require.ErrorIs(t, svc.SetCell(0, 9, 1), domain.ErrOutOfBounds)
	require.ErrorIs(t, svc.SetCell(0, 0, 5), domain.ErrInvalidValue)
}

// setBoardSize 9 → regenBoard → printSolution must yield a full, valid 9×9.
func TestSolveAfterRegenerate(t *testing.T) {
	ctx := testCtx(t)
	svc := newTestService(t)
	require.NoError(t, svc.Resize(ctx, 9))
	require.NoError(t, svc.Regenerate(ctx))

	live := svc.Board().Clone()
	sol, err := svc.Solution(ctx)
	require.NoError(t, err)
	require.True(t, sol.Full())

	ok, conflicts, err := validator.New().Validate(ctx, sol)
	require.NoError(t, err)
	require.True(t, ok, "conflicts: %v", conflicts)

	// every given of the live board survives in the solution
	for i, tile := range live.Cells {
		if !tile.IsEmpty() {
			require.Equal(t, tile.Value, sol.Cells[i].Value, "cell %d", i)
		}
	}

	// and the live board itself was not touched
	require.Equal(t, live.Cells, svc.Board().Cells)
}

func TestSolutionUnsolvable(t *testing.T) {
	ctx := testCtx(t)
	svc := newTestService(t)
	require.NoError(t, svc.Resize(ctx, 4))

	// force a contradiction; SetCell may overwrite givens
	require.NoError(t, svc.SetCell(0, 0, 1))
	require.NoError(t, svc.SetCell(1, 0, 1))

	_, err := svc.Solution(ctx)
	require.ErrorIs(t, err, domain.ErrUnsolvable)
}

func TestResetKeepsGivensOnly(t *testing.T) {
	ctx := testCtx(t)
	svc := newTestService(t)
	require.NoError(t, svc.Resize(ctx, 4))

	var empty *domain.CellCoord
	b := svc.Board()
	for y := 0; y < b.Size && empty == nil; y++ {
		for x := 0; x < b.Size; x++ {
			if tile, _ := b.At(x, y); tile.IsEmpty() {
				empty = &domain.CellCoord{X: x, Y: y}
				break
			}
		}
	}
	require.NotNil(t, empty, "generated board should have blanks")

	require.NoError(t, svc.SetCell(empty.X, empty.Y, 1))
	require.NoError(t, svc.Reset())
	tile, err := b.At(empty.X, empty.Y)
	require.NoError(t, err)
	require.True(t, tile.IsEmpty())
}

func TestFinished(t *testing.T) {
	ctx := testCtx(t)
	svc := newTestService(t)
	require.NoError(t, svc.Resize(ctx, 4))
	require.False(t, svc.Finished(ctx))

	sol, err := svc.Solution(ctx)
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			tile, _ := sol.At(x, y)
			require.NoError(t, svc.SetCell(x, y, tile.Value))
		}
	}
	require.True(t, svc.Finished(ctx))
}
