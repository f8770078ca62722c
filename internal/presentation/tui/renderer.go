package tui

import (
	"fmt"
	"iter"
	"strings"

	"github.com/muesli/termenv"

	"svw.info/sudoku-cli/internal/domain"
)

// ANSI colors, matching the classic scheme: givens red, user entries blue,
// solved values green.
const (
	colorGiven  = "1"
	colorEntry  = "4"
	colorSolved = "2"
)

// Renderer turns boards into text rows for the shell. With color disabled
// (or a dumb terminal) it degrades to plain ASCII.
type Renderer struct {
	profile termenv.Profile
}

func NewRenderer(noColor bool) *Renderer {
	p := termenv.ColorProfile()
	if noColor {
		p = termenv.Ascii
	}
	return &Renderer{profile: p}
}

// BoardRows yields the live board as text rows: givens red, entries blue.
// The sequence is finite and restartable; iterating has no side effects.
func (r *Renderer) BoardRows(b *domain.Board) iter.Seq[string] {
	return r.rows(b, func(t domain.Tile) string {
		if t.Fixed {
			return colorGiven
		}
		return colorEntry
	})
}

// SolutionRows yields a solved board: the original givens stay red, every
// solved-in value prints green.
func (r *Renderer) SolutionRows(b *domain.Board) iter.Seq[string] {
	return r.rows(b, func(t domain.Tile) string {
		if t.Fixed {
			return colorGiven
		}
		return colorSolved
	})
}

func (r *Renderer) rows(b *domain.Board, colorOf func(domain.Tile) string) iter.Seq[string] {
	width := 1
	if b.Size >= 10 {
		width = 2
	}
	sep := strings.Repeat("-", b.Size*(width+3)+1)
	return func(yield func(string) bool) {
		if !yield(sep) {
			return
		}
		for y := 0; y < b.Size; y++ {
			var sb strings.Builder
			for x := 0; x < b.Size; x++ {
				t := b.Cells[b.Index(x, y)]
				cell := strings.Repeat(" ", width)
				if !t.IsEmpty() {
					cell = fmt.Sprintf("%*d", width, t.Value)
				}
				sb.WriteString("| ")
				sb.WriteString(r.paint(cell, colorOf(t)))
				sb.WriteByte(' ')
			}
			sb.WriteByte('|')
			if !yield(sb.String()) {
				return
			}
			if !yield(sep) {
				return
			}
		}
	}
}

// Error formats a recoverable command error.
func (r *Renderer) Error(err error) string {
	return r.paint(fmt.Sprintf("oops: %v", err), colorGiven)
}

// Congrats celebrates a completed board.
func (r *Renderer) Congrats() string {
	return r.paint("Congratulations, you finished the puzzle!", colorSolved)
}

func (r *Renderer) paint(s, color string) string {
	if r.profile == termenv.Ascii {
		return s
	}
	return termenv.String(s).Foreground(r.profile.Color(color)).String()
}
