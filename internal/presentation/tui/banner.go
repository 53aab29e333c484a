package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the folio banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.NewOutput(w).ColorProfile()
	lines := []struct{ text, color string }{
		{"   __       _ _       ", "#34d399"},
		{"  / _| ___ | (_) ___  ", "#2dd4bf"},
		{" | |_ / _ \\| | |/ _ \\ ", "#22d3ee"},
		{" |  _| (_) | | | (_) |", "#38bdf8"},
		{" |_|  \\___/|_|_|\\___/ ", "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
