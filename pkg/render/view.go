package render

import (
	"fmt"
	"strings"

	"github.com/aretw0/folio/pkg/domain"
)

// BlockKind is the presentation role of a Block.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockField     BlockKind = "field"
	BlockMeta      BlockKind = "meta"
	BlockRule      BlockKind = "rule"
)

// Block is one unit of rendered content.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"` // heading level, 1-based
	Label string    `json:"label,omitempty"` // field label
	Text  string    `json:"text,omitempty"`
}

// View is the renderable form of one document.
// Key identifies the view for export bookkeeping (at most one export per key).
type View struct {
	Key        string              `json:"key"`
	Title      string              `json:"title"`
	Kind       domain.TemplateKind `json:"componentKey,omitempty"`
	StyleClass string              `json:"styleClass,omitempty"`
	Blocks     []Block             `json:"blocks"`
}

// Markdown renders the view as CommonMark.
func (v View) Markdown() string {
	var b strings.Builder
	for _, blk := range v.Blocks {
		switch blk.Kind {
		case BlockHeading:
			level := max(blk.Level, 1)
			fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", level), blk.Text)
		case BlockField:
			fmt.Fprintf(&b, "- **%s:** %s\n", blk.Label, blk.Text)
		case BlockMeta:
			fmt.Fprintf(&b, "_%s_\n\n", blk.Text)
		case BlockRule:
			b.WriteString("\n---\n\n")
		default:
			b.WriteString(blk.Text)
			b.WriteString("\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Text renders the view as plain text, one block per line.
func (v View) Text() string {
	var b strings.Builder
	for _, blk := range v.Blocks {
		switch blk.Kind {
		case BlockField:
			fmt.Fprintf(&b, "%s: %s\n", blk.Label, blk.Text)
		case BlockRule:
			b.WriteString(strings.Repeat("-", 40) + "\n")
		default:
			b.WriteString(blk.Text + "\n")
		}
	}
	return b.String()
}
