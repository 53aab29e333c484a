package render

import (
	"html"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/aretw0/folio/pkg/domain"
	"github.com/aretw0/folio/pkg/schema"
	"github.com/microcosm-cc/bluemonday"
)

// Placeholder shown for an empty date.
const BlankDate = "__________"

// Renderer appends the blocks of one template kind.
type Renderer func(b *Builder)

var registry = map[domain.TemplateKind]Renderer{
	domain.KindStandardLetter:        renderLetter,
	domain.KindPOARevocation:         renderPOARevocation,
	domain.KindLoanOffer:             renderLoanOffer,
	domain.KindAccountUpdate:         renderAccountUpdate,
	domain.KindEmploymentApplication: renderEmploymentApplication,
}

// Lookup returns the renderer registered for kind.
func Lookup(kind domain.TemplateKind) (Renderer, bool) {
	r, ok := registry[kind]
	return r, ok
}

// Option configures Build.
type Option func(*Builder)

// WithFieldDefinitions supplies labels for template fields.
func WithFieldDefinitions(defs []domain.FieldDefinition) Option {
	return func(b *Builder) {
		for _, d := range defs {
			b.labels[d.ID] = d.Label
			b.byID[d.ID] = d
		}
		b.defs = defs
	}
}

// WithKey sets the view key.
func WithKey(key string) Option {
	return func(b *Builder) {
		b.view.Key = key
	}
}

// Builder accumulates the blocks of a View.
type Builder struct {
	Snapshot domain.Snapshot
	Now      time.Time

	view   View
	labels map[string]string
	defs   []domain.FieldDefinition
	byID   map[string]domain.FieldDefinition
}

// Build renders s as of now.
func Build(s domain.Snapshot, now time.Time, opts ...Option) View {
	b := &Builder{
		Snapshot: s,
		Now:      now,
		labels:   make(map[string]string),
		byID:     make(map[string]domain.FieldDefinition),
		view:     View{Key: "document", Title: s.Title()},
	}
	for _, opt := range opts {
		opt(b)
	}

	if s.Template == nil {
		b.Paragraph("Select a template to start a document.")
		return b.view
	}
	b.view.Kind = s.Template.Kind
	b.view.StyleClass = s.Template.StyleClass

	r, ok := registry[s.Template.Kind]
	if !ok {
		r = renderGeneric
	}
	r(b)
	return b.view
}

func (b *Builder) add(blk Block) { b.view.Blocks = append(b.view.Blocks, blk) }

func (b *Builder) Heading(level int, text string) { b.add(Block{Kind: BlockHeading, Level: level, Text: text}) }
func (b *Builder) Paragraph(text string)          { b.add(Block{Kind: BlockParagraph, Text: text}) }
func (b *Builder) Meta(text string)               { b.add(Block{Kind: BlockMeta, Text: text}) }
func (b *Builder) Rule()                          { b.add(Block{Kind: BlockRule}) }

// FieldValue returns the value stored under id. Text is parsed by the
// field's definition, so a stored "2024-03-01" displays as a date.
func (b *Builder) FieldValue(id string) (domain.FieldValue, bool) {
	v, ok := b.Snapshot.Fields.Get(id)
	if !ok || v.Kind() != domain.ValueText || v.IsEmpty() {
		return v, ok
	}
	if def, found := b.byID[id]; found {
		if typed, err := schema.Parse(def, v.String()); err == nil {
			return typed, true
		}
	}
	return v, true
}

// Field appends a labelled field. An empty value renders as domain.Blank.
func (b *Builder) Field(id string) {
	v, _ := b.FieldValue(id)
	b.add(Block{Kind: BlockField, Label: b.Label(id), Text: orDefault(Display(v), domain.Blank)})
}

// Label returns the configured label for a field id, or a humanized id.
func (b *Builder) Label(id string) string {
	if l, ok := b.labels[id]; ok && l != "" {
		return l
	}
	return Humanize(id)
}

// Value returns the display form of a field, or fallback when empty.
func (b *Builder) Value(id, fallback string) string {
	v, _ := b.FieldValue(id)
	return orDefault(Display(v), fallback)
}

// Date returns a field formatted as a long date, or BlankDate.
func (b *Builder) Date(id string) string {
	v, ok := b.FieldValue(id)
	if !ok || v.IsEmpty() {
		return BlankDate
	}
	if t, ok := v.AsTime(); ok {
		return t.Format("January 2, 2006")
	}
	return v.String()
}

// Body appends the rich body as plain paragraphs.
func (b *Builder) Body() {
	for _, p := range Paragraphs(b.Snapshot.RichBody) {
		b.Paragraph(p)
	}
}

// Fields appends every field: defined ones first in definition order, then the rest.
func (b *Builder) Fields() {
	seen := make(map[string]bool)
	for _, d := range b.defs {
		seen[d.ID] = true
		b.Field(d.ID)
	}
	for id := range b.Snapshot.Fields.All() {
		if !seen[id] {
			b.Field(id)
		}
	}
}

// Display formats a field value for documents.
func Display(v domain.FieldValue) string {
	switch v.Kind() {
	case domain.ValueDate:
		t, _ := v.AsTime()
		return t.Format("January 2, 2006")
	case domain.ValueBool:
		if ok, _ := v.AsBool(); ok {
			return "Yes"
		}
		return "No"
	default:
		return v.String()
	}
}

var (
	blockEnd = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|blockquote)>|<br\s*/?>`)
	strict   = bluemonday.StrictPolicy()
)

// Paragraphs reduces rich markup to its non-empty text paragraphs.
func Paragraphs(markup string) []string {
	if markup == "" {
		return nil
	}
	text := html.UnescapeString(strict.Sanitize(blockEnd.ReplaceAllString(markup, "\n")))
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Humanize turns a camelCase field id into a title: "declarantName" -> "Declarant Name".
func Humanize(id string) string {
	var b strings.Builder
	runes := []rune(id)
	for i, r := range runes {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case r == '_' || r == '-':
			b.WriteRune(' ')
		case unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
