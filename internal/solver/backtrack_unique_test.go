package solver

import (
	"context"
	"testing"

	"svw.info/sudoku-cli/internal/domain"
)

func TestBacktrackingUniqueOnNearFullBoard(t *testing.T) {
	s := NewBacktrackingSolver()
	full, _, err := s.Solve(context.Background(), sampleBoard(t))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	// one blank admits exactly one value
	full.Cells[full.Index(4, 4)] = domain.Tile{}
	unique, _, err := s.Unique(context.Background(), full)
	if err != nil || !unique {
		t.Fatalf("near-full board should be unique: unique=%v err=%v", unique, err)
	}
}

func TestBacktrackingUniqueEmptyBoard(t *testing.T) {
	b, _ := domain.New(4)
	s := NewBacktrackingSolver()
	unique, _, err := s.Unique(context.Background(), b)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if unique {
		t.Fatal("empty board has many solutions, reported unique")
	}
}

func TestBacktrackingUniqueContradiction(t *testing.T) {
	b, _ := domain.New(4)
	_ = b.SetAt(0, 0, 1)
	_ = b.SetAt(1, 1, 1) // same box
	s := NewBacktrackingSolver()
	unique, _, err := s.Unique(context.Background(), b)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if unique {
		t.Fatal("contradictory board reported unique")
	}
}
