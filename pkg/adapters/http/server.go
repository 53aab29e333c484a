package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/folio"
	"github.com/aretw0/folio/internal/logging"
	"github.com/aretw0/folio/internal/sanitize"
	"github.com/aretw0/folio/pkg/catalog"
	"github.com/aretw0/folio/pkg/document"
	"github.com/aretw0/folio/pkg/domain"
	"github.com/aretw0/folio/pkg/export"
	"github.com/aretw0/folio/pkg/ports"
	"github.com/aretw0/folio/pkg/schema"
	"github.com/aretw0/folio/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// MaxBodySize bounds request bodies.
const MaxBodySize = 1 << 20

// EditCounter counts applied edits. Implemented by observability.Metrics.
type EditCounter interface {
	CountEdit(op string)
}

// Server implements the generated ServerInterface.
type Server struct {
	App      *folio.App
	Sessions *session.Manager
	Streams  *StreamManager

	gatherer prometheus.Gatherer
	edits    EditCounter
	logger   *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithStreams shares a StreamManager, typically the one whose Notifier the App uses.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		s.Streams = sm
	}
}

// WithGatherer exposes the registry on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithEditCounter counts applied edits by op.
func WithEditCounter(c EditCounter) Option {
	return func(s *Server) {
		s.edits = c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler.
func NewHandler(app *folio.App, sessions *session.Manager, opts ...Option) http.Handler {
	s := &Server{App: app, Sessions: sessions, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.Streams == nil {
		s.Streams = NewStreamManager(s.logger)
	}
	return s.Routes()
}

// Routes builds the router. API routes come from the OpenAPI document.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/openapi.yaml", s.serveSpec)
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		if _, err := w.Write([]byte(swaggerHTML)); err != nil {
			s.logger.Warn("Swagger page write failed", "err", err)
		}
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return HandlerWithOptions(s, ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []MiddlewareFunc{sessionContext},
		ErrorHandlerFunc: s.paramError,
	})
}

// serveSpec serves the embedded OpenAPI document.
func (s *Server) serveSpec(w http.ResponseWriter, r *http.Request) {
	spec, err := rawSpec()
	if err != nil {
		s.logger.Error("Failed to load OpenAPI spec", "err", err)
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to load spec"})
		return
	}
	w.Header().Set("Content-Type", "text/yaml")
	if _, err := w.Write(spec); err != nil {
		s.logger.Warn("Spec write failed", "err", err)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sessionContext tags the request context so notifications reach the session's subscribers.
// It runs per operation, after chi has matched the path parameters.
func sessionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chi.URLParam(r, "sessionId"); id != "" {
			r = r.WithContext(withSession(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// paramError reports path and query binding failures.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Debug("Invalid request parameter", "path", r.URL.Path, "err", err)
	s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Folio API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}
	s.writeJSON(w, http.StatusOK, Info{
		App:        "folio-http",
		Version:    strings.TrimSpace(folio.Version),
		ApiVersion: apiVersion,
	})
}

// ListLobs handles GET /lobs.
func (s *Server) ListLobs(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.App.Catalog().ListLOBs())
}

// ListTemplates handles GET /lobs/{lobId}/templates?search=.
func (s *Server) ListTemplates(w http.ResponseWriter, r *http.Request, lobId string, params ListTemplatesParams) {
	c := s.App.Catalog()
	if _, err := c.LOB(lobId); err != nil {
		s.writeError(w, r, err)
		return
	}
	var term string
	if params.Search != nil {
		var err error
		if term, err = sanitize.Input(*params.Search); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	s.writeJSON(w, http.StatusOK, c.ListTemplatesForLOB(lobId, term))
}

// ListFields handles GET /templates/{templateId}/fields.
func (s *Server) ListFields(w http.ResponseWriter, r *http.Request, templateId TemplateId) {
	c := s.App.Catalog()
	if _, err := c.Template(templateId); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, c.FieldDefinitionsFor(templateId))
}

// ListSections handles GET /sections.
func (s *Server) ListSections(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.App.Catalog().Sections())
}

func (s *Server) describe(id string, m *document.Model) Session {
	c := s.App.Catalog()
	resp := Session{
		Id:               id,
		Phase:            SessionPhase(m.Phase().String()),
		CanInsert:        m.CanInsert(),
		State:            m.State(),
		VisibleTemplates: m.VisibleTemplates(c),
		Fields:           []domain.FieldDefinition{},
	}
	if t := m.SelectedTemplate(); t != nil {
		resp.Fields = c.FieldDefinitionsFor(t.ID)
		for _, err := range schema.ValidationErrors(schema.Validate(resp.Fields, m.TemplateFields())) {
			resp.Issues = append(resp.Issues, err.Error())
		}
	}
	return resp
}

// CreateSession handles POST /sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, err := s.Sessions.Create(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, CreatedSession{Id: id})
}

// GetSession handles GET /sessions/{sessionId}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request, sessionId SessionId) {
	var resp Session
	err := s.Sessions.View(r.Context(), sessionId, func(m *document.Model) error {
		resp = s.describe(sessionId, m)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// DeleteSession handles DELETE /sessions/{sessionId}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request, sessionId SessionId) {
	if err := s.Sessions.Delete(r.Context(), sessionId); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ApplyEdits handles POST /sessions/{sessionId}/edits. The whole list is
// validated first; edits then apply in order under the session lock.
func (s *Server) ApplyEdits(w http.ResponseWriter, r *http.Request, sessionId SessionId) {
	var body ApplyEditsJSONRequestBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize)).Decode(&body); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %w", document.ErrInvalidEdit, err))
		return
	}
	for i := range body.Edits {
		if _, err := sanitize.Value(body.Edits[i]); err != nil {
			s.writeError(w, r, fmt.Errorf("edit %d: %w", i, err))
			return
		}
	}
	reqs, err := document.DecodeRequests(body.Edits)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	edits, err := document.ResolveAll(s.App.Catalog(), reqs)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var (
		resp Session
		diff *domain.SnapshotDiff
	)
	err = s.Sessions.Update(r.Context(), sessionId, func(m *document.Model) error {
		before := m.Snapshot()
		m.Apply(edits...)
		after := m.Snapshot()
		diff = domain.Diff(sessionId, &before, &after)
		resp = s.describe(sessionId, m)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if s.edits != nil {
		for _, req := range reqs {
			s.edits.CountEdit(req.Op)
		}
	}
	if diff != nil {
		if raw, err := json.Marshal(diff); err == nil {
			s.Streams.Broadcast(sessionId, Event{Name: "diff", Data: string(raw)})
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// SaveDocument handles POST /sessions/{sessionId}/save.
func (s *Server) SaveDocument(w http.ResponseWriter, r *http.Request, sessionId SessionId) {
	var rec SavedDocument
	err := s.Sessions.View(r.Context(), sessionId, func(m *document.Model) error {
		var err error
		rec, err = s.App.Save(r.Context(), m)
		return err
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, rec)
}

// OpenDocument handles POST /sessions/{sessionId}/open/{docId}.
func (s *Server) OpenDocument(w http.ResponseWriter, r *http.Request, sessionId SessionId, docId DocId) {
	var resp Session
	err := s.Sessions.Update(r.Context(), sessionId, func(m *document.Model) error {
		if _, err := s.App.Open(r.Context(), m, docId); err != nil {
			return err
		}
		resp = s.describe(sessionId, m)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// Preview handles GET /sessions/{sessionId}/preview.
// Clients accepting text/markdown get markdown, others the block view as JSON.
func (s *Server) Preview(w http.ResponseWriter, r *http.Request, sessionId SessionId) {
	var v View
	err := s.Sessions.View(r.Context(), sessionId, func(m *document.Model) error {
		v = s.App.View(m, sessionId)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if strings.Contains(r.Header.Get("Accept"), "text/markdown") {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(v.Markdown())); err != nil {
			s.logger.Warn("Preview write failed", "err", err)
		}
		return
	}
	s.writeJSON(w, http.StatusOK, v)
}

// ExportPdf handles GET /sessions/{sessionId}/export.pdf.
func (s *Server) ExportPdf(w http.ResponseWriter, r *http.Request, sessionId SessionId) {
	var buf bytes.Buffer
	err := s.Sessions.View(r.Context(), sessionId, func(m *document.Model) error {
		return s.App.ExportView(r.Context(), s.App.View(m, sessionId), &buf)
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="document.pdf"`)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("PDF response write failed", "err", err)
	}
}

// Print handles POST /sessions/{sessionId}/print.
func (s *Server) Print(w http.ResponseWriter, r *http.Request, sessionId SessionId) {
	err := s.Sessions.View(r.Context(), sessionId, func(m *document.Model) error {
		return s.App.PrintView(r.Context(), s.App.View(m, sessionId))
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// ListDocuments handles GET /documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.App.Documents(r.Context()))
}

// GetDocument handles GET /documents/{docId}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request, docId DocId) {
	rec, err := s.App.History().Get(r.Context(), docId)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

// DeleteDocument handles DELETE /documents/{docId}.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request, docId DocId) {
	if err := s.App.Delete(r.Context(), docId); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// -- Helpers --

func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, domain.ErrDocumentNotFound),
		errors.Is(err, domain.ErrTemplateNotFound),
		errors.Is(err, domain.ErrLOBNotFound):
		return http.StatusNotFound
	case errors.As(err, &maxBytes),
		errors.Is(err, sanitize.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, document.ErrInvalidEdit),
		errors.Is(err, sanitize.ErrInvalidUTF8),
		errors.Is(err, catalog.ErrInvalidCatalog):
		return http.StatusBadRequest
	case errors.Is(err, export.ErrExportInProgress):
		return http.StatusConflict
	case errors.Is(err, ports.ErrQuotaExceeded):
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	} else {
		s.logger.Debug("Request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "err", err)
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "err", err)
	}
}
