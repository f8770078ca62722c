package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-cli/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	b, err := domain.New(4)
	require.NoError(t, err)
	// row 0 is 1 2 3 _, so (3,0) can only be 4
	require.NoError(t, b.SetAt(0, 0, 1))
	require.NoError(t, b.SetAt(1, 0, 2))
	require.NoError(t, b.SetAt(2, 0, 3))

	h, ok, err := NewSingles().Hint(context.Background(), b)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, domain.CellCoord{X: 3, Y: 0}, h.Cell)
	require.Equal(t, uint8(4), h.Value)
	require.NotEmpty(t, h.Message)
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	b, err := domain.New(4)
	require.NoError(t, err)

	_, ok, err := NewSingles().Hint(context.Background(), b)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHintNoneOnFullBoard(t *testing.T) {
	b, err := domain.New(1)
	require.NoError(t, err)
	require.NoError(t, b.SetAt(0, 0, 1))

	_, ok, err := NewSingles().Hint(context.Background(), b)
	require.NoError(t, err)
	require.False(t, ok)
}
