package document

import "github.com/aretw0/folio/pkg/domain"

// Edit is one state transition. The set of edits is closed.
type Edit interface {
	apply(m *Model)
}

// Apply runs edits in the order given.
func (m *Model) Apply(edits ...Edit) {
	for _, e := range edits {
		e.apply(m)
	}
}

type SelectLOB struct{ LOB *domain.LineOfBusiness }

type SelectTemplate struct{ Template *domain.Template }

type UpdateCommon struct{ Patch domain.CommonFieldsPatch }

type UpdateField struct {
	ID    string
	Value domain.FieldValue
}

type SetSearch struct{ Term string }

type SetBody struct{ Markup string }

type Insert struct{ Content string }

type InsertSection struct{ Section domain.CommonSection }

type Load struct{ Snapshot domain.Snapshot }

func (e SelectLOB) apply(m *Model)      { m.SelectLOB(e.LOB) }
func (e SelectTemplate) apply(m *Model) { m.SelectTemplate(e.Template) }
func (e UpdateCommon) apply(m *Model)   { m.UpdateCommonField(e.Patch) }
func (e UpdateField) apply(m *Model)    { m.UpdateTemplateField(e.ID, e.Value) }
func (e SetSearch) apply(m *Model)      { m.SetSearchTerm(e.Term) }
func (e SetBody) apply(m *Model)        { m.SetRichBody(e.Markup) }
func (e Insert) apply(m *Model)         { m.InsertIntoRichBody(e.Content) }
func (e InsertSection) apply(m *Model)  { m.InsertSection(e.Section) }
func (e Load) apply(m *Model)           { m.LoadSnapshot(e.Snapshot) }
