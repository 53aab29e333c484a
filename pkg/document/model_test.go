package document_test

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/aretw0/folio/pkg/document"
	"github.com/aretw0/folio/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	personal = &domain.LineOfBusiness{ID: "personal", Name: "Personal"}
	business = &domain.LineOfBusiness{ID: "business", Name: "Business"}

	standardLetter = &domain.Template{
		ID: "letter", LOBID: "personal", Name: "Standard Letter",
		Kind: domain.KindStandardLetter, UsesRichEditor: true,
	}
	revocation = &domain.Template{
		ID: "revocation", LOBID: "personal", Name: "Revocation Letter",
		Kind: domain.KindPOARevocation, HasSpecificFields: true,
	}
)

func ptr(s string) *string { return &s }

func TestModel_InitialState(t *testing.T) {
	m := document.New()

	assert.Equal(t, document.PhaseNoLOB, m.Phase())
	assert.Nil(t, m.SelectedLOB())
	assert.Nil(t, m.SelectedTemplate())
	assert.Equal(t, "", m.RichBody())
	assert.Equal(t, 0, m.TemplateFields().Len())
	assert.False(t, m.CanInsert())
}

func TestModel_SelectLOBAlwaysResets(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	lobs := []*domain.LineOfBusiness{nil, personal, business}
	templates := []*domain.Template{nil, standardLetter, revocation}

	m := document.New()
	for i := 0; i < 200; i++ {
		// Dirty the model before every LOB selection.
		m.SelectTemplate(templates[rng.IntN(len(templates))])
		m.UpdateTemplateField("f", domain.Text("v"))
		m.SetSearchTerm("term")

		lob := lobs[rng.IntN(len(lobs))]
		m.SelectLOB(lob)

		require.Nil(t, m.SelectedTemplate())
		require.Equal(t, 0, m.TemplateFields().Len())
		require.Equal(t, "", m.SearchTerm())
		if lob == nil {
			require.Equal(t, document.PhaseNoLOB, m.Phase())
		} else {
			require.Equal(t, document.PhaseLOBSelected, m.Phase())
		}
	}
}

func TestModel_SelectLOBKeepsRichBody(t *testing.T) {
	m := document.New()
	m.SelectLOB(personal)
	m.SelectTemplate(standardLetter)
	m.SetRichBody("<p>Hello</p>")

	m.SelectLOB(business)
	assert.Equal(t, "<p>Hello</p>", m.RichBody())

	m.SelectTemplate(revocation)
	assert.Equal(t, "", m.RichBody())
}

func TestModel_SelectTemplateRichBody(t *testing.T) {
	t.Run("Structured Template Clears Body", func(t *testing.T) {
		m := document.New()
		m.SelectTemplate(standardLetter)
		m.SetRichBody("<p>draft</p>")

		m.SelectTemplate(revocation)
		assert.Equal(t, "", m.RichBody())
	})

	t.Run("Nil Template Clears Body", func(t *testing.T) {
		m := document.New()
		m.SelectTemplate(standardLetter)
		m.SelectTemplate(nil)
		assert.Equal(t, "", m.RichBody())
		assert.Equal(t, document.PhaseNoLOB, m.Phase())
	})

	t.Run("Rich Template Seeds Empty Body", func(t *testing.T) {
		m := document.New()
		m.SelectTemplate(standardLetter)
		assert.Equal(t, domain.DefaultRichBody, m.RichBody())
	})

	t.Run("Rich Template Keeps Existing Body", func(t *testing.T) {
		m := document.New()
		m.SelectTemplate(standardLetter)
		m.SetRichBody("<p>kept</p>")

		other := *standardLetter
		other.ID = "letter-2"
		m.SelectTemplate(&other)
		assert.Equal(t, "<p>kept</p>", m.RichBody())
	})
}

func TestModel_UpdateFields(t *testing.T) {
	m := document.New()
	m.SelectTemplate(revocation)

	m.UpdateTemplateField("declarantName", domain.Text("Jane"))
	m.UpdateTemplateField("revocationDate", domain.Text("2024-01-02"))
	m.UpdateTemplateField("declarantName", domain.Text("Jane Doe"))
	m.UpdateTemplateField("notDefined", domain.Number(1))

	fields := m.TemplateFields()
	assert.Equal(t, []string{"declarantName", "revocationDate", "notDefined"}, fields.Keys())
	v, _ := fields.Get("declarantName")
	assert.Equal(t, "Jane Doe", v.String())

	m.UpdateCommonField(domain.CommonFieldsPatch{Subject: ptr("Notice")})
	m.UpdateCommonField(domain.CommonFieldsPatch{RecipientName: ptr("Bank")})
	assert.Equal(t, domain.CommonFields{Subject: "Notice", RecipientName: "Bank"}, m.CommonFields())
}

func TestModel_TemplateFieldsIsCopy(t *testing.T) {
	m := document.New()
	m.UpdateTemplateField("a", domain.Text("1"))

	fields := m.TemplateFields()
	fields.Set("b", domain.Text("2"))

	assert.Equal(t, 1, m.TemplateFields().Len())
}

func TestModel_InsertIntoRichBody(t *testing.T) {
	var logs bytes.Buffer
	m := document.New(document.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	m.SelectTemplate(revocation)
	m.UpdateTemplateField("declarantName", domain.Text("Jane"))

	assert.False(t, m.InsertIntoRichBody("<p>x</p>"))
	assert.Equal(t, "", m.RichBody())
	assert.Equal(t, 1, m.TemplateFields().Len(), "field data must not be touched")
	assert.Contains(t, logs.String(), "template_id=revocation")

	assert.False(t, m.SetRichBody("<p>y</p>"))
	assert.Equal(t, "", m.RichBody())

	m.SelectTemplate(standardLetter)
	m.SetRichBody("<p>Hello</p>")
	assert.True(t, m.InsertIntoRichBody("<p>World</p>"))
	assert.Equal(t, "<p>Hello</p><p>World</p>", m.RichBody())
}

func TestModel_InsertSection(t *testing.T) {
	m := document.New()
	m.SelectTemplate(standardLetter)
	m.SetRichBody("")
	m.UpdateCommonField(domain.CommonFieldsPatch{RecipientName: ptr("Ann")})

	ok := m.InsertSection(domain.CommonSection{ID: "greeting", Content: "<p>Dear [Recipient Name], re [Subject]</p>"})
	assert.True(t, ok)
	assert.Equal(t, "<p>Dear Ann, re _____</p>", m.RichBody())
}

func TestModel_LoadSnapshotRoundTrip(t *testing.T) {
	snapshots := []domain.Snapshot{
		{},
		{
			Common:   domain.CommonFields{Subject: "Letter", RecipientName: "Ann"},
			RichBody: "<p>Hello</p>",
			Template: standardLetter,
		},
		{
			Common:   domain.CommonFields{Subject: "Revoke"},
			Template: revocation,
			Fields: domain.FieldsOf(
				domain.Field{ID: "declarantName", Value: domain.Text("Jane Doe")},
				domain.Field{ID: "revocationDate", Value: domain.Date(mustTime(t, "2024-02-29"))},
				domain.Field{ID: "amount", Value: domain.Number(12.5)},
				domain.Field{ID: "agreed", Value: domain.Bool(true)},
			),
		},
		// Inconsistent but well-typed snapshots are loaded as-is.
		{RichBody: "<p>orphan</p>", Template: revocation},
	}

	for _, s := range snapshots {
		m := document.New()
		m.SelectLOB(business)
		m.SelectTemplate(standardLetter)
		m.UpdateTemplateField("stale", domain.Text("x"))

		m.LoadSnapshot(s)
		assert.Equal(t, s, m.Snapshot())
	}
}

func TestModel_LoadSnapshotIsolation(t *testing.T) {
	tmpl := *revocation
	s := domain.Snapshot{
		Template: &tmpl,
		Fields:   domain.FieldsOf(domain.Field{ID: "declarantName", Value: domain.Text("Jane")}),
	}
	m := document.New()
	m.LoadSnapshot(s)

	s.Fields.Set("declarantName", domain.Text("Mutated"))
	s.Template.Name = "Mutated"

	v, _ := m.TemplateFields().Get("declarantName")
	assert.Equal(t, "Jane", v.String())
	assert.Equal(t, "Revocation Letter", m.SelectedTemplate().Name)
}

func TestModel_SnapshotIsPure(t *testing.T) {
	m := document.New()
	m.SelectTemplate(standardLetter)
	m.UpdateTemplateField("a", domain.Text("1"))

	first := m.Snapshot()
	first.Fields.Set("b", domain.Text("2"))
	first.Template.Name = "changed"

	second := m.Snapshot()
	assert.Equal(t, 1, second.Fields.Len())
	assert.Equal(t, "Standard Letter", second.Template.Name)
}

func TestScenario_RevocationLetter(t *testing.T) {
	m := document.New()
	m.Apply(
		document.SelectLOB{LOB: personal},
		document.SelectTemplate{Template: revocation},
		document.UpdateField{ID: "declarantName", Value: domain.Text("Jane Doe")},
	)

	s := m.Snapshot()
	assert.Equal(t, domain.FieldsOf(domain.Field{ID: "declarantName", Value: domain.Text("Jane Doe")}), s.Fields)
	assert.Equal(t, "", s.RichBody)
	assert.Equal(t, document.PhaseTemplateSelected, m.Phase())
}

func TestScenario_SwitchRichToStructured(t *testing.T) {
	m := document.New()
	m.Apply(
		document.SelectLOB{LOB: personal},
		document.SelectTemplate{Template: standardLetter},
		document.UpdateCommon{Patch: domain.CommonFieldsPatch{Subject: ptr("Hi"), RecipientName: ptr("Bob")}},
		document.SetBody{Markup: "<p>Hello</p>"},
		document.UpdateField{ID: "extra", Value: domain.Text("x")},
	)
	before := m.CommonFields()

	m.Apply(document.SelectTemplate{Template: revocation})

	assert.Equal(t, "", m.RichBody())
	assert.Equal(t, 0, m.TemplateFields().Len())
	assert.Equal(t, before, m.CommonFields())
}

func TestModel_ApplyOrder(t *testing.T) {
	m := document.New()
	m.Apply(
		document.SelectTemplate{Template: standardLetter},
		document.SetBody{Markup: "<p>a</p>"},
		document.Insert{Content: "<p>b</p>"},
		document.SetBody{Markup: "<p>c</p>"},
		document.Insert{Content: "<p>d</p>"},
	)
	assert.Equal(t, "<p>c</p><p>d</p>", m.RichBody())

	m.Apply(document.Load{Snapshot: domain.Snapshot{RichBody: "<p>z</p>", Template: standardLetter}})
	assert.Equal(t, "<p>z</p>", m.RichBody())
}

func TestModel_StateRestore(t *testing.T) {
	m := document.New()
	m.Apply(
		document.SelectLOB{LOB: personal},
		document.SetSearch{Term: "letter"},
		document.SelectTemplate{Template: standardLetter},
		document.SetBody{Markup: "<p>Hello</p>"},
	)

	restored := document.New()
	restored.Restore(m.State())

	assert.Equal(t, m.State(), restored.State())
	assert.Equal(t, "letter", restored.SearchTerm())
	assert.Equal(t, document.PhaseTemplateSelected, restored.Phase())
}
