package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Renderer formats markdown for terminal output.
type Renderer func(markdown string) (string, error)

// NewRenderer returns a glamour renderer when f is a terminal and a
// pass-through otherwise, so piped output stays plain markdown.
func NewRenderer(f *os.File) Renderer {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return Plain
	}
	width := 80
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		width = w
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return Plain
	}
	return r.Render
}

// Plain returns the markdown unchanged.
func Plain(markdown string) (string, error) {
	return markdown, nil
}

// Styled renders markdown with a fixed glamour style regardless of the terminal.
func Styled(style string) Renderer {
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(80))
	if err != nil {
		return Plain
	}
	return r.Render
}
