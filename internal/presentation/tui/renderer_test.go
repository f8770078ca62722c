package tui

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-cli/internal/domain"
)

func plainBoard(t *testing.T) *domain.Board {
	t.Helper()
	b, err := domain.New(4)
	require.NoError(t, err)
	b.Cells[b.Index(0, 0)] = domain.Tile{Value: 1, Fixed: true}
	require.NoError(t, b.SetAt(3, 2, 4))
	return b
}

func TestBoardRowsShape(t *testing.T) {
	r := NewRenderer(true)
	rows := slices.Collect(r.BoardRows(plainBoard(t)))

	require.Len(t, rows, 2*4+1) // a separator around every cell row
	require.Equal(t, "-----------------", rows[0])
	require.Equal(t, "| 1 |   |   |   |", rows[1])
	require.Equal(t, "|   |   |   | 4 |", rows[5])
}

func TestBoardRowsRestartable(t *testing.T) {
	r := NewRenderer(true)
	seq := r.BoardRows(plainBoard(t))

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	require.Equal(t, first, second)
}

func TestBoardRowsWideValues(t *testing.T) {
	b, err := domain.New(16)
	require.NoError(t, err)
	require.NoError(t, b.SetAt(0, 0, 12))

	r := NewRenderer(true)
	rows := slices.Collect(r.BoardRows(b))
	require.Len(t, rows, 2*16+1)
	require.Contains(t, rows[1], "| 12 |")
}

func TestHelpListsCommands(t *testing.T) {
	r := NewRenderer(true)
	help := r.Help()
	for _, cmd := range []string{"setBoardSize", "regenBoard", "setAtPosition", "printSolution", "quit"} {
		require.Contains(t, help, cmd)
	}
}

func TestBanner(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(true).Banner(&out)
	require.Contains(t, out.String(), "Welcome to sudoku!")
}
