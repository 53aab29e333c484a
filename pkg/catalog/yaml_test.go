package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/folio/pkg/catalog"
	"github.com/aretw0/folio/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	assert.NotEmpty(t, c.ListLOBs())
	assert.Empty(t, c.Warnings(), "bundled catalog must be consistent")

	poa := c.FieldDefinitionsFor("poa-revocation")
	var ids []string
	for _, d := range poa {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"declarantName", "poaExecutionDate", "agentName", "revocationDate", "principalSSN"}, ids)

	for _, kind := range domain.TemplateKinds() {
		found := false
		for _, lob := range c.ListLOBs() {
			for _, tmpl := range c.ListTemplatesForLOB(lob.ID, "") {
				if tmpl.Kind == kind {
					found = true
				}
			}
		}
		assert.True(t, found, "bundled catalog should exercise %s", kind)
	}

	assert.NotEmpty(t, c.Sections())
}

func TestLoadYAML(t *testing.T) {
	src := `
lobs:
  - id: personal
    name: Personal
templates:
  - id: revocation
    lobId: personal
    name: Revocation Letter
    componentKey: POARevocationTemplate
    hasSpecificFields: true
fields:
  revocation:
    - id: declarantName
      label: Declarant Name
      inputKind: text
    - id: revocationDate
      label: Revocation Date
      inputKind: date
`
	c, err := catalog.LoadYAML(strings.NewReader(src))
	require.NoError(t, err)

	tmpl, err := c.Template("revocation")
	require.NoError(t, err)
	assert.True(t, tmpl.HasSpecificFields)
	assert.False(t, tmpl.UsesRichEditor)
	assert.Len(t, c.FieldDefinitionsFor("revocation"), 2)
}

func TestLoadYAML_UnknownKeyRejected(t *testing.T) {
	_, err := catalog.LoadYAML(strings.NewReader("lobs: []\nwidgets: []\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, catalog.DefaultYAML(), 0644))

	c, err := catalog.LoadFile(path)
	require.NoError(t, err)

	def, err := catalog.Default()
	require.NoError(t, err)
	assert.Equal(t, def.ListLOBs(), c.ListLOBs())

	_, err = catalog.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
