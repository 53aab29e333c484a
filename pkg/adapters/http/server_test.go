package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/folio"
	"github.com/aretw0/folio/pkg/adapters/memory"
	"github.com/aretw0/folio/pkg/domain"
	"github.com/aretw0/folio/pkg/export"
	"github.com/aretw0/folio/pkg/observability"
	"github.com/aretw0/folio/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrinter struct {
	mu   sync.Mutex
	jobs []export.Job
}

func (p *fakePrinter) Print(ctx context.Context, job export.Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = append(p.jobs, job)
	return nil
}

type testEnv struct {
	handler http.Handler
	streams *StreamManager
	printer *fakePrinter
}

func newTestEnv(t *testing.T, store *memory.Store) *testEnv {
	t.Helper()
	if store == nil {
		store = memory.NewStore()
	}
	sm := NewStreamManager(nil)
	printer := &fakePrinter{}
	svc, err := export.NewService(export.WithPrinter(printer))
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	app, err := folio.New(
		folio.WithBlobStore(store),
		folio.WithNotifier(sm.Notifier()),
		folio.WithExporter(svc),
		folio.WithMetrics(metrics),
	)
	require.NoError(t, err)

	sessions := session.NewManager(memory.NewStore())
	h := NewHandler(app, sessions,
		WithStreams(sm),
		WithGatherer(reg),
		WithEditCounter(metrics),
	)
	return &testEnv{handler: h, streams: sm, printer: printer}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createSession(t *testing.T) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[CreatedSession](t, w)
	require.NotEmpty(t, resp.Id)
	return resp.Id
}

func edits(ops ...map[string]any) map[string]any {
	return map[string]any{"edits": ops}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthAndInfo(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)

	w = env.do(t, http.MethodGet, "/info", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	info := decode[Info](t, w)
	assert.Equal(t, folio.Version, info.Version)
	assert.Equal(t, "1.0.0", info.ApiVersion)
}

func TestCatalogRoutes(t *testing.T) {
	env := newTestEnv(t, nil)

	lobs := decode[[]LineOfBusiness](t, env.do(t, http.MethodGet, "/lobs", nil))
	assert.Len(t, lobs, 3)

	templates := decode[[]Template](t, env.do(t, http.MethodGet, "/lobs/personal_banking/templates?search=revoc", nil))
	require.Len(t, templates, 1)
	assert.Equal(t, "poa-revocation", templates[0].ID)

	w := env.do(t, http.MethodGet, "/lobs/nope/templates", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	fields := decode[[]FieldDefinition](t, env.do(t, http.MethodGet, "/templates/loan-offer/fields", nil))
	assert.Len(t, fields, 2)

	w = env.do(t, http.MethodGet, "/templates/nope/fields", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	sections := decode[[]CommonSection](t, env.do(t, http.MethodGet, "/sections", nil))
	assert.Len(t, sections, 4)
}

func TestSessionLifecycle(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.createSession(t)

	got := decode[Session](t, env.do(t, http.MethodGet, "/sessions/"+id, nil))
	assert.Equal(t, SessionPhaseNoLob, got.Phase)
	assert.Empty(t, got.VisibleTemplates)

	w := env.do(t, http.MethodPost, "/sessions/"+id+"/edits", edits(
		map[string]any{"op": "selectLOB", "lobId": "business_lending"},
		map[string]any{"op": "selectTemplate", "templateId": "loan-offer"},
		map[string]any{"op": "updateCommon", "subject": "Offer", "recipientName": "Acme"},
		map[string]any{"op": "updateField", "fieldId": "loanAmount", "value": 25000},
	))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got = decode[Session](t, w)
	assert.Equal(t, SessionPhaseTemplateSelected, got.Phase)
	assert.True(t, got.CanInsert)
	assert.Len(t, got.VisibleTemplates, 2)
	assert.Len(t, got.Fields, 2)
	assert.Equal(t, []string{`field "Interest Rate (%)": required`}, got.Issues)
	assert.Equal(t, "Offer", got.State.Common.Subject)
	assert.Equal(t, domain.DefaultRichBody, got.State.RichBody)

	// Persisted across requests.
	got = decode[Session](t, env.do(t, http.MethodGet, "/sessions/"+id, nil))
	assert.Equal(t, "loan-offer", got.State.Template.ID)

	w = env.do(t, http.MethodDelete, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = env.do(t, http.MethodGet, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyEdits_Invalid(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.createSession(t)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"unknown op", edits(map[string]any{"op": "explode"}), http.StatusBadRequest},
		{"unknown template", edits(map[string]any{"op": "selectTemplate", "templateId": "nope"}), http.StatusBadRequest},
		{"unknown key", edits(map[string]any{"op": "setSearch", "bogus": 1}), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/sessions/"+id+"/edits", tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/edits", strings.NewReader("{"))
		w := httptest.NewRecorder()
		env.handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/sessions/missing/edits", edits(map[string]any{"op": "setSearch", "term": "x"}))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejected batch leaves state untouched", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/sessions/"+id+"/edits", edits(
			map[string]any{"op": "selectLOB", "lobId": "general"},
			map[string]any{"op": "selectTemplate", "templateId": "nope"},
		))
		require.Equal(t, http.StatusBadRequest, w.Code)
		got := decode[Session](t, env.do(t, http.MethodGet, "/sessions/"+id, nil))
		assert.Equal(t, SessionPhaseNoLob, got.Phase)
	})
}

func TestSaveOpenAndDocuments(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.createSession(t)

	w := env.do(t, http.MethodPost, "/sessions/"+id+"/edits", edits(
		map[string]any{"op": "selectLOB", "lobId": "personal_banking"},
		map[string]any{"op": "selectTemplate", "templateId": "poa-revocation"},
		map[string]any{"op": "updateField", "fieldId": "declarantName", "value": "Jane Roe"},
	))
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/sessions/"+id+"/save", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	rec := decode[SavedDocument](t, w)
	assert.Equal(t, "Jane Roe", rec.Title())

	docs := decode[[]SavedDocument](t, env.do(t, http.MethodGet, "/documents", nil))
	require.Len(t, docs, 1)
	assert.Equal(t, rec.ID, docs[0].ID)

	w = env.do(t, http.MethodGet, "/documents/"+rec.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodGet, "/documents/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Open into a fresh session: template and fields come back, the LOB does not.
	other := env.createSession(t)
	w = env.do(t, http.MethodPost, "/sessions/"+other+"/open/"+rec.ID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[Session](t, w)
	assert.Equal(t, SessionPhaseTemplateSelected, got.Phase)
	assert.Nil(t, got.State.LOB)
	v, ok := got.State.Fields.Get("declarantName")
	require.True(t, ok)
	assert.Equal(t, "Jane Roe", v.String())

	w = env.do(t, http.MethodPost, "/sessions/"+other+"/open/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, "/documents/"+rec.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	docs = decode[[]SavedDocument](t, env.do(t, http.MethodGet, "/documents", nil))
	assert.Empty(t, docs)
}

func TestSave_QuotaExceeded(t *testing.T) {
	env := newTestEnv(t, memory.NewStore(memory.WithQuota(8)))
	id := env.createSession(t)

	w := env.do(t, http.MethodPost, "/sessions/"+id+"/save", nil)
	assert.Equal(t, http.StatusInsufficientStorage, w.Code)
}

func TestPreviewExportAndPrint(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.createSession(t)
	w := env.do(t, http.MethodPost, "/sessions/"+id+"/edits", edits(
		map[string]any{"op": "selectLOB", "lobId": "personal_banking"},
		map[string]any{"op": "selectTemplate", "templateId": "personal-letter"},
		map[string]any{"op": "updateCommon", "subject": "Hello"},
	))
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/sessions/"+id+"/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[map[string]any](t, w)
	assert.Equal(t, "Hello", view["title"])
	assert.Equal(t, id, view["key"])

	req := httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/preview", nil)
	req.Header.Set("Accept", "text/markdown")
	rw := httptest.NewRecorder()
	env.handler.ServeHTTP(rw, req)
	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Contains(t, rw.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, rw.Body.String(), "# Hello")

	w = env.do(t, http.MethodGet, "/sessions/"+id+"/export.pdf", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w = env.do(t, http.MethodPost, "/sessions/"+id+"/print", nil)
	assert.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	require.Len(t, env.printer.jobs, 1)
	assert.Equal(t, "Hello", env.printer.jobs[0].Title)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.createSession(t)
	env.do(t, http.MethodPost, "/sessions/"+id+"/edits", edits(map[string]any{"op": "setSearch", "term": "x"}))

	w := env.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `edits_total{op="setSearch"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t, nil)
	w := env.do(t, http.MethodOptions, "/lobs", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSubscribeEvents_Session(t *testing.T) {
	env := newTestEnv(t, nil)
	srv := httptest.NewServer(env.handler)
	defer srv.Close()
	id := env.createSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/sessions/"+id+"/events?watch=body", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := make(chan string, 16)
	go func() {
		defer close(events)
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.HasPrefix(line, "event: ") {
				events <- strings.TrimPrefix(line, "event: ")
			}
		}
	}()
	require.Equal(t, "ping", <-events)
	require.Eventually(t, func() bool { return env.streams.Subscribers(id) == 1 }, time.Second, 10*time.Millisecond)

	// Search only: filtered out by watch=body.
	env.do(t, http.MethodPost, "/sessions/"+id+"/edits", edits(map[string]any{"op": "setSearch", "term": "x"}))
	// Selecting a rich template seeds the body.
	env.do(t, http.MethodPost, "/sessions/"+id+"/edits", edits(
		map[string]any{"op": "selectLOB", "lobId": "personal_banking"},
		map[string]any{"op": "selectTemplate", "templateId": "personal-letter"},
	))
	// Notifications are never filtered.
	env.do(t, http.MethodPost, "/sessions/"+id+"/save", nil)

	var got []string
	for len(got) < 2 {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "stream closed early")
			got = append(got, ev)
		case <-ctx.Done():
			t.Fatalf("timed out, got %v", got)
		}
	}
	assert.Equal(t, []string{"diff", "notification"}, got)
}

func TestMatchesWatch(t *testing.T) {
	body := "x"
	raw, err := json.Marshal(domain.SnapshotDiff{SessionID: "s", RichBody: &body})
	require.NoError(t, err)

	assert.True(t, matchesWatch(string(raw), nil))
	assert.True(t, matchesWatch(string(raw), []string{"body"}))
	assert.True(t, matchesWatch(string(raw), []string{"fields", " body"}))
	assert.False(t, matchesWatch(string(raw), []string{"common", "template"}))
}

func TestApplyEdits_StripsControlCharacters(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.createSession(t)

	w := env.do(t, http.MethodPost, "/sessions/"+id+"/edits", edits(
		map[string]any{"op": "selectLOB", "lobId": "general"},
		map[string]any{"op": "setSearch", "term": "app\x07lication"},
	))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[Session](t, w)
	assert.Equal(t, "application", got.State.SearchTerm)
	assert.Len(t, got.VisibleTemplates, 1)
}

func TestOpenAPIDocument(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodGet, "/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/yaml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"/sessions/{sessionId}/edits"`)

	w = env.do(t, http.MethodGet, "/swagger", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "url: '/openapi.yaml'")

	swagger, err := GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))
	assert.Equal(t, "Folio API", swagger.Info.Title)
	for _, path := range []string{
		"/health", "/info", "/lobs", "/lobs/{lobId}/templates", "/templates/{templateId}/fields",
		"/sections", "/sessions", "/sessions/{sessionId}", "/sessions/{sessionId}/edits",
		"/sessions/{sessionId}/save", "/sessions/{sessionId}/open/{docId}",
		"/sessions/{sessionId}/preview", "/sessions/{sessionId}/export.pdf",
		"/sessions/{sessionId}/print", "/sessions/{sessionId}/events",
		"/documents", "/documents/{docId}",
	} {
		assert.NotNil(t, swagger.Paths.Find(path), path)
	}
}

func TestSessionResponseMatchesSchema(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.createSession(t)
	w := env.do(t, http.MethodPost, "/sessions/"+id+"/edits", edits(
		map[string]any{"op": "selectLOB", "lobId": "business_lending"},
		map[string]any{"op": "selectTemplate", "templateId": "loan-offer"},
		map[string]any{"op": "updateField", "fieldId": "loanAmount", "value": 25000},
	))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	swagger, err := GetSwagger()
	require.NoError(t, err)
	schema := swagger.Components.Schemas["Session"].Value
	var body any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NoError(t, schema.VisitJSON(body))
}

func TestUnimplementedRoutes(t *testing.T) {
	h := HandlerWithOptions(Unimplemented{}, ChiServerOptions{})
	req := httptest.NewRequest(http.MethodGet, "/sessions/abc/preview", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}
