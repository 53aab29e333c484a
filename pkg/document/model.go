package document

import (
	"log/slog"

	"github.com/aretw0/folio/internal/logging"
	"github.com/aretw0/folio/pkg/catalog"
	"github.com/aretw0/folio/pkg/domain"
)

// Phase is the coarse state of a Model.
type Phase int

const (
	PhaseNoLOB Phase = iota
	PhaseLOBSelected
	PhaseTemplateSelected
)

func (p Phase) String() string {
	switch p {
	case PhaseLOBSelected:
		return "lob_selected"
	case PhaseTemplateSelected:
		return "template_selected"
	default:
		return "no_lob"
	}
}

// Model is the authoritative state of one document being edited.
type Model struct {
	lob      *domain.LineOfBusiness
	template *domain.Template
	search   string
	common   domain.CommonFields
	fields   domain.FieldData
	richBody string

	logger *slog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithLogger configures the logger used for ignored edits.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New creates an empty Model in PhaseNoLOB.
func New(opts ...Option) *Model {
	m := &Model{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SelectedLOB returns the selected line of business, or nil.
func (m *Model) SelectedLOB() *domain.LineOfBusiness {
	if m.lob == nil {
		return nil
	}
	lob := *m.lob
	return &lob
}

// SelectedTemplate returns the selected template, or nil.
func (m *Model) SelectedTemplate() *domain.Template {
	if m.template == nil {
		return nil
	}
	t := *m.template
	return &t
}

func (m *Model) SearchTerm() string                { return m.search }
func (m *Model) CommonFields() domain.CommonFields { return m.common }
func (m *Model) TemplateFields() domain.FieldData  { return m.fields.Clone() }
func (m *Model) RichBody() string                  { return m.richBody }

// Phase reports the current phase. A loaded snapshot may carry a template
// without a selected line of business.
func (m *Model) Phase() Phase {
	switch {
	case m.template != nil:
		return PhaseTemplateSelected
	case m.lob != nil:
		return PhaseLOBSelected
	default:
		return PhaseNoLOB
	}
}

// CanInsert reports whether the active template accepts rich content.
func (m *Model) CanInsert() bool {
	return m.template != nil && m.template.UsesRichEditor
}

// SelectLOB selects a line of business (nil deselects) and resets the
// template, its field data and the search term. The rich body is kept.
func (m *Model) SelectLOB(lob *domain.LineOfBusiness) {
	if lob != nil {
		l := *lob
		m.lob = &l
	} else {
		m.lob = nil
	}
	m.template = nil
	m.fields = domain.FieldData{}
	m.search = ""
}

// SelectTemplate selects a template (nil deselects) and resets its field data.
// Structured templates clear the rich body; rich templates seed an empty body
// with DefaultRichBody.
func (m *Model) SelectTemplate(t *domain.Template) {
	if t != nil {
		tmpl := *t
		m.template = &tmpl
	} else {
		m.template = nil
	}
	m.fields = domain.FieldData{}

	switch {
	case m.template == nil || !m.template.UsesRichEditor:
		m.richBody = ""
	case m.richBody == "":
		m.richBody = domain.DefaultRichBody
	}
}

// UpdateCommonField shallow-merges patch into the common fields.
func (m *Model) UpdateCommonField(patch domain.CommonFieldsPatch) {
	m.common = m.common.Merge(patch)
}

// UpdateTemplateField stores value under id. Ids unknown to the template are accepted.
func (m *Model) UpdateTemplateField(id string, value domain.FieldValue) {
	m.fields.Set(id, value)
}

// SetSearchTerm sets the template name filter. It only has a visible effect
// once a line of business is selected.
func (m *Model) SetSearchTerm(term string) {
	m.search = term
}

// SetRichBody replaces the rich body with markup from the editor.
// It is ignored when the active template is structured.
func (m *Model) SetRichBody(markup string) bool {
	if !m.CanInsert() {
		m.unsupported("set_body")
		return false
	}
	m.richBody = markup
	return true
}

// InsertIntoRichBody appends content to the rich body and reports whether it applied.
// Insertion into a structured template is logged and ignored.
func (m *Model) InsertIntoRichBody(content string) bool {
	if !m.CanInsert() {
		m.unsupported("insert")
		return false
	}
	m.richBody += content
	return true
}

// InsertSection renders s against the current common fields and inserts it.
func (m *Model) InsertSection(s domain.CommonSection) bool {
	return m.InsertIntoRichBody(s.Render(m.common))
}

func (m *Model) unsupported(op string) {
	templateID := ""
	if m.template != nil {
		templateID = m.template.ID
	}
	m.logger.Warn("Rich content edit ignored",
		"op", op,
		"template_id", templateID,
		"err", domain.ErrUnsupportedInsertion,
	)
}

// LoadSnapshot restores s without the reset side effects of SelectTemplate.
// Common fields, rich body and field data are set before the template.
// The selected line of business and search term are left untouched.
func (m *Model) LoadSnapshot(s domain.Snapshot) {
	s = s.Clone()
	m.common = s.Common
	m.richBody = s.RichBody
	m.fields = s.Fields
	m.template = s.Template
}

// Snapshot returns a deep copy of the persistable state.
func (m *Model) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Common:   m.common,
		RichBody: m.richBody,
		Template: m.template,
		Fields:   m.fields,
	}.Clone()
}

// VisibleTemplates returns the templates offered for the current selection:
// nil before a line of business is chosen, otherwise the filtered catalog list.
func (m *Model) VisibleTemplates(c *catalog.Catalog) []domain.Template {
	if m.lob == nil {
		return nil
	}
	return c.ListTemplatesForLOB(m.lob.ID, m.search)
}

// State is the full model state, including the session-only selections
// that a Snapshot leaves out.
type State struct {
	LOB        *domain.LineOfBusiness `json:"selectedLob"`
	SearchTerm string                 `json:"searchTerm"`
	domain.Snapshot
}

// State returns a deep copy of the full model state.
func (m *Model) State() State {
	return State{
		LOB:        m.SelectedLOB(),
		SearchTerm: m.search,
		Snapshot:   m.Snapshot(),
	}
}

// Restore replaces the full model state with s.
func (m *Model) Restore(s State) {
	m.SelectLOB(s.LOB)
	m.SetSearchTerm(s.SearchTerm)
	m.LoadSnapshot(s.Snapshot)
}
