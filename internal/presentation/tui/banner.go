package tui

import (
	"fmt"
	"io"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{` ___ _   _ ___   ___  _  ___   _ `, "#818cf8"},
	{`/ __| | | |   \ / _ \| |/ / | | |`, "#a78bfa"},
	{`\__ \ |_| | |) | (_) | ' <| |_| |`, "#c084fc"},
	{`|___/\___/|___/ \___/|_|\_\\___/ `, "#e879f9"},
}

// Banner writes the startup banner and a short welcome line.
func (r *Renderer) Banner(w io.Writer) {
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, r.paint(l.text, l.color))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Welcome to sudoku! Type help for the command list.")
}
