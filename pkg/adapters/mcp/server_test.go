package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/folio"
	"github.com/aretw0/folio/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *folio.App) {
	t.Helper()
	app, err := folio.New()
	require.NoError(t, err)
	return NewServer(app), app
}

func saveLetter(t *testing.T, app *folio.App, subject string) domain.SavedDocumentRecord {
	t.Helper()
	c := app.Catalog()
	tmpl, err := c.Template("personal-letter")
	require.NoError(t, err)

	m := app.NewDocument()
	m.SelectTemplate(&tmpl)
	m.UpdateCommonField(domain.CommonFieldsPatch{Subject: &subject})
	rec, err := app.Save(context.Background(), m)
	require.NoError(t, err)
	return rec
}

func call(t *testing.T, s *Server, raw string) map[string]any {
	t.Helper()
	resp := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(raw))
	out, err := json.Marshal(resp)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m
}

func TestListTools(t *testing.T) {
	s, _ := newTestServer(t)
	resp := call(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)

	result, ok := resp["result"].(map[string]any)
	require.True(t, ok, "unexpected response: %v", resp)
	tools, _ := result["tools"].([]any)

	var names []string
	for _, tool := range tools {
		names = append(names, tool.(map[string]any)["name"].(string))
	}
	assert.ElementsMatch(t, []string{
		"list_lobs", "list_templates", "list_fields",
		"list_documents", "preview_document", "delete_document",
	}, names)
}

func TestReadCatalogResource(t *testing.T) {
	s, _ := newTestServer(t)
	resp := call(t, s, `{"jsonrpc":"2.0","id":2,"method":"resources/read","params":{"uri":"folio://catalog"}}`)

	result, ok := resp["result"].(map[string]any)
	require.True(t, ok, "unexpected response: %v", resp)
	contents := result["contents"].([]any)
	require.Len(t, contents, 1)
	text := contents[0].(map[string]any)["text"].(string)
	assert.Contains(t, text, `"personal_banking"`)
	assert.Contains(t, text, `"poa-revocation"`)
}

func TestCatalogTools(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	lobs, err := s.handleListLOBs(ctx, mcp.CallToolRequest{}, struct{}{})
	require.NoError(t, err)
	assert.Len(t, lobs.LOBs, 3)

	templates, err := s.handleListTemplates(ctx, mcp.CallToolRequest{}, templatesArgs{LOBID: "business_lending", Search: "LOAN"})
	require.NoError(t, err)
	require.Len(t, templates.Templates, 1)
	assert.Equal(t, "loan-offer", templates.Templates[0].ID)

	_, err = s.handleListTemplates(ctx, mcp.CallToolRequest{}, templatesArgs{LOBID: "nope"})
	assert.ErrorIs(t, err, domain.ErrLOBNotFound)

	fields, err := s.handleListFields(ctx, mcp.CallToolRequest{}, templateArgs{TemplateID: "poa-revocation"})
	require.NoError(t, err)
	assert.Len(t, fields.Fields, 5)

	_, err = s.handleListFields(ctx, mcp.CallToolRequest{}, templateArgs{TemplateID: "nope"})
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestDocumentTools(t *testing.T) {
	s, app := newTestServer(t)
	ctx := context.Background()
	rec := saveLetter(t, app, "Quarterly Review")

	docs, err := s.handleListDocuments(ctx, mcp.CallToolRequest{}, struct{}{})
	require.NoError(t, err)
	require.Len(t, docs.Documents, 1)
	assert.Equal(t, "Quarterly Review", docs.Documents[0].Title)
	assert.Equal(t, "personal-letter", docs.Documents[0].TemplateID)

	preview, err := s.handlePreviewDocument(ctx, mcp.CallToolRequest{}, documentArgs{ID: rec.ID})
	require.NoError(t, err)
	assert.Contains(t, preview.Markdown, "# Quarterly Review")

	_, err = s.handlePreviewDocument(ctx, mcp.CallToolRequest{}, documentArgs{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

	_, err = s.handleDeleteDocument(ctx, mcp.CallToolRequest{}, documentArgs{})
	assert.Error(t, err)

	deleted, err := s.handleDeleteDocument(ctx, mcp.CallToolRequest{}, documentArgs{ID: rec.ID})
	require.NoError(t, err)
	assert.Equal(t, rec.ID, deleted.Deleted)

	docs, err = s.handleListDocuments(ctx, mcp.CallToolRequest{}, struct{}{})
	require.NoError(t, err)
	assert.Empty(t, docs.Documents)
}

func TestCallTool_ErrorResult(t *testing.T) {
	s, _ := newTestServer(t)
	resp := call(t, s, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"list_fields","arguments":{"template_id":"nope"}}}`)

	result, ok := resp["result"].(map[string]any)
	require.True(t, ok, "unexpected response: %v", resp)
	assert.Equal(t, true, result["isError"])
}
