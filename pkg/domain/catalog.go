package domain

import "strings"

// LineOfBusiness is a top-level category grouping templates.
type LineOfBusiness struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// TemplateKind identifies the rendering variant of a template.
// The set is closed: renderers are looked up by kind.
type TemplateKind string

const (
	KindStandardLetter        TemplateKind = "StandardLetterTemplate"
	KindPOARevocation         TemplateKind = "POARevocationTemplate"
	KindLoanOffer             TemplateKind = "LoanOfferTemplate"
	KindAccountUpdate         TemplateKind = "AccountUpdateTemplate"
	KindEmploymentApplication TemplateKind = "EmploymentApplicationTemplate"
)

var templateKinds = []TemplateKind{
	KindStandardLetter,
	KindPOARevocation,
	KindLoanOffer,
	KindAccountUpdate,
	KindEmploymentApplication,
}

// TemplateKinds returns every known kind in declaration order.
func TemplateKinds() []TemplateKind {
	out := make([]TemplateKind, len(templateKinds))
	copy(out, templateKinds)
	return out
}

// Valid reports whether k is one of the known kinds.
func (k TemplateKind) Valid() bool {
	for _, known := range templateKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Template is an immutable catalog entry describing a document type.
type Template struct {
	ID                string       `json:"id" yaml:"id"`
	LOBID             string       `json:"lobId" yaml:"lobId"`
	Name              string       `json:"name" yaml:"name"`
	Kind              TemplateKind `json:"componentKey" yaml:"componentKey"`
	StyleClass        string       `json:"styleClass,omitempty" yaml:"styleClass,omitempty"`
	HasSpecificFields bool         `json:"hasSpecificFields" yaml:"hasSpecificFields"`
	UsesRichEditor    bool         `json:"usesRichEditor" yaml:"usesRichEditor"`
}

// MatchesSearch reports whether the template name contains term, ignoring case.
// An empty term matches everything.
func (t Template) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Name), strings.ToLower(term))
}

// InputKind is the form control used to edit a template field.
type InputKind string

const (
	InputText     InputKind = "text"
	InputDate     InputKind = "date"
	InputTextarea InputKind = "textarea"
	InputNumber   InputKind = "number"
)

// Valid reports whether k is a known input kind.
func (k InputKind) Valid() bool {
	switch k {
	case InputText, InputDate, InputTextarea, InputNumber:
		return true
	}
	return false
}

// FieldDefinition describes one template-specific input.
type FieldDefinition struct {
	ID          string    `json:"id" yaml:"id" mapstructure:"id"`
	Label       string    `json:"label" yaml:"label" mapstructure:"label"`
	InputKind   InputKind `json:"inputKind" yaml:"inputKind" mapstructure:"inputKind"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty" mapstructure:"placeholder"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty" mapstructure:"required"`
}

// Blank is written in place of an empty common field when a section is rendered.
const Blank = "_____"

// CommonSection is a reusable HTML snippet that can be inserted into a rich body.
// Its content may reference [Recipient Name] and [Subject].
type CommonSection struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Render substitutes the placeholders with the given common fields.
func (s CommonSection) Render(common CommonFields) string {
	out := strings.ReplaceAll(s.Content, "[Recipient Name]", orBlank(common.RecipientName))
	return strings.ReplaceAll(out, "[Subject]", orBlank(common.Subject))
}

func orBlank(v string) string {
	if v == "" {
		return Blank
	}
	return v
}
