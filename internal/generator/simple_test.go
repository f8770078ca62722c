package generator

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/solver"
	"svw.info/sudoku-cli/internal/validator"
)

func TestGenerateValidBoards(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	for _, size := range []int{1, 4, 9} {
		t.Run(map[int]string{1: "1x1", 4: "4x4", 9: "9x9"}[size], func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			b, st, err := g.Generate(ctx, 12345, size)
			if err != nil {
				t.Fatalf("Generate(%d) failed: %v", size, err)
			}
			if b.Size != size {
				t.Fatalf("size = %d, want %d", b.Size, size)
			}

			// no duplicate set values in any row, column, or box
			ok, conf, err := validator.New().Validate(ctx, b)
			if err != nil || !ok {
				t.Fatalf("generated board invalid: err=%v conflicts=%v", err, conf)
			}

			// every given is marked fixed, every blank is not
			givens := 0
			for _, tile := range b.Cells {
				if tile.IsEmpty() == tile.Fixed {
					t.Fatalf("fixed flag out of sync: %+v", tile)
				}
				if !tile.IsEmpty() {
					givens++
				}
			}
			if givens < (size*size+1)/2 {
				t.Fatalf("too few givens: %d", givens)
			}

			// the puzzle pins exactly one solution
			unique, _, err := s.Unique(ctx, b)
			if err != nil || !unique {
				t.Fatalf("puzzle not unique: unique=%v err=%v", unique, err)
			}
			t.Logf("size=%d givens=%d nodes=%d dur=%v", size, givens, st.Nodes, st.Duration)
		})
	}
}

func TestGenerateRejectsBadSizes(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	for _, size := range []int{0, -1, 10, 26} {
		if _, _, err := g.Generate(context.Background(), 1, size); !errors.Is(err, domain.ErrInvalidSize) {
			t.Fatalf("Generate(%d): want ErrInvalidSize, got %v", size, err)
		}
	}
}

// An empty grid is always feasible, so the fill must succeed for every
// seed: a failure means the search dropped candidates while backtracking.
func TestFillRandomExhaustiveAcrossSeeds(t *testing.T) {
	for _, size := range []int{4, 9} {
		b, err := domain.New(size)
		if err != nil {
			t.Fatalf("New(%d): %v", size, err)
		}
		for seed := int64(0); seed < 200; seed++ {
			rng := rand.New(rand.NewSource(seed))
			vals := make([]uint8, size*size)
			if !fillRandom(context.Background(), rng, vals, size, b.Box) {
				t.Fatalf("fill failed for size=%d seed=%d", size, seed)
			}
			copyInto(b, vals)
			if n := b.EmptyCount(); n != 0 {
				t.Fatalf("size=%d seed=%d left %d blanks", size, seed, n)
			}
			ok, conf, err := validator.New().Validate(context.Background(), b)
			if err != nil || !ok {
				t.Fatalf("size=%d seed=%d invalid fill: err=%v conflicts=%v", size, seed, err, conf)
			}
		}
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 42, 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _, err := g.Generate(ctx, 42, 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			t.Fatalf("same seed produced different boards at cell %d", i)
		}
	}
}
