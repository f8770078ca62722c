package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

const helpText = `# Commands

- ` + "`help`" + `: this list
- ` + "`setBoardSize <size>`" + `: start over with a new size×size board (size must be a perfect square)
- ` + "`regenBoard`" + `: replace the board with a freshly generated puzzle
- ` + "`setAtPosition <x> <y> <value>`" + ` (alias ` + "`pos`" + `): set a cell, zero-based coordinates; value 0 clears it
- ` + "`printSolution`" + `: solve and print the solution without touching your board
- ` + "`validate`" + `: point out conflicting cells
- ` + "`hint`" + `: suggest the next forced placement
- ` + "`clear`" + `: drop your entries, keep the givens
- ` + "`quit`" + `: leave the game
`

// Help renders the command list as markdown when the terminal supports it,
// falling back to the raw text otherwise.
func (r *Renderer) Help() string {
	if r.profile == termenv.Ascii {
		return helpText
	}
	tr, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return helpText
	}
	out, err := tr.Render(helpText)
	if err != nil {
		return helpText
	}
	return out
}
