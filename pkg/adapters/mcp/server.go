package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/folio"
	"github.com/aretw0/folio/internal/logging"
	"github.com/aretw0/folio/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CatalogURI is the resource exposing the whole catalog.
const CatalogURI = "folio://catalog"

// LOBsResponse is the result of list_lobs.
type LOBsResponse struct {
	LOBs []domain.LineOfBusiness `json:"lobs" jsonschema_description:"Lines of business in catalog order"`
}

// TemplatesResponse is the result of list_templates.
type TemplatesResponse struct {
	Templates []domain.Template `json:"templates" jsonschema_description:"Templates of the line of business matching the search"`
}

// FieldsResponse is the result of list_fields.
type FieldsResponse struct {
	Fields []domain.FieldDefinition `json:"fields" jsonschema_description:"Field definitions in display order"`
}

// DocumentsResponse is the result of list_documents.
type DocumentsResponse struct {
	Documents []DocumentSummary `json:"documents" jsonschema_description:"Saved documents, newest first"`
}

// DocumentSummary describes a saved document without its content.
type DocumentSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	TemplateID string    `json:"templateId,omitempty"`
	SavedAt    time.Time `json:"savedAt"`
}

// PreviewResponse is the result of preview_document.
type PreviewResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
}

// DeleteResponse is the result of delete_document.
type DeleteResponse struct {
	Deleted string `json:"deleted"`
}

type templatesArgs struct {
	LOBID  string `json:"lob_id"`
	Search string `json:"search"`
}

type templateArgs struct {
	TemplateID string `json:"template_id"`
}

type documentArgs struct {
	ID string `json:"id"`
}

// Server exposes the folio catalog and saved documents as an MCP server.
type Server struct {
	app       *folio.App
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(app *folio.App, opts ...Option) *Server {
	s := &Server{
		app:       app,
		mcpServer: server.NewMCPServer("folio-mcp", strings.TrimSpace(folio.Version)),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves on addr using SSE until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	baseURL := "http://localhost" + addr
	if !strings.HasPrefix(addr, ":") {
		baseURL = "http://" + addr
	}
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_lobs",
		mcp.WithDescription("List the lines of business in the catalog."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOutputSchema[LOBsResponse](),
	), mcp.NewStructuredToolHandler(s.handleListLOBs))

	s.mcpServer.AddTool(mcp.NewTool("list_templates",
		mcp.WithDescription("List the templates of a line of business, optionally filtered by name."),
		mcp.WithString("lob_id", mcp.Required(), mcp.Description("Line of business ID")),
		mcp.WithString("search", mcp.Description("Case-insensitive substring of the template name")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOutputSchema[TemplatesResponse](),
	), mcp.NewStructuredToolHandler(s.handleListTemplates))

	s.mcpServer.AddTool(mcp.NewTool("list_fields",
		mcp.WithDescription("List the template-specific fields of a template."),
		mcp.WithString("template_id", mcp.Required(), mcp.Description("Template ID")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOutputSchema[FieldsResponse](),
	), mcp.NewStructuredToolHandler(s.handleListFields))

	s.mcpServer.AddTool(mcp.NewTool("list_documents",
		mcp.WithDescription("List saved documents, newest first."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOutputSchema[DocumentsResponse](),
	), mcp.NewStructuredToolHandler(s.handleListDocuments))

	s.mcpServer.AddTool(mcp.NewTool("preview_document",
		mcp.WithDescription("Render a saved document as markdown."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Saved document ID")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOutputSchema[PreviewResponse](),
	), mcp.NewStructuredToolHandler(s.handlePreviewDocument))

	s.mcpServer.AddTool(mcp.NewTool("delete_document",
		mcp.WithDescription("Delete a saved document. Unknown IDs are ignored."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Saved document ID")),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithOutputSchema[DeleteResponse](),
	), mcp.NewStructuredToolHandler(s.handleDeleteDocument))
}

func (s *Server) handleListLOBs(ctx context.Context, request mcp.CallToolRequest, _ struct{}) (LOBsResponse, error) {
	return LOBsResponse{LOBs: s.app.Catalog().ListLOBs()}, nil
}

func (s *Server) handleListTemplates(ctx context.Context, request mcp.CallToolRequest, args templatesArgs) (TemplatesResponse, error) {
	c := s.app.Catalog()
	if _, err := c.LOB(args.LOBID); err != nil {
		return TemplatesResponse{}, err
	}
	return TemplatesResponse{Templates: c.ListTemplatesForLOB(args.LOBID, args.Search)}, nil
}

func (s *Server) handleListFields(ctx context.Context, request mcp.CallToolRequest, args templateArgs) (FieldsResponse, error) {
	c := s.app.Catalog()
	if _, err := c.Template(args.TemplateID); err != nil {
		return FieldsResponse{}, err
	}
	return FieldsResponse{Fields: c.FieldDefinitionsFor(args.TemplateID)}, nil
}

func (s *Server) handleListDocuments(ctx context.Context, request mcp.CallToolRequest, _ struct{}) (DocumentsResponse, error) {
	docs := s.app.Documents(ctx)
	out := make([]DocumentSummary, 0, len(docs))
	for _, d := range docs {
		sum := DocumentSummary{ID: d.ID, Title: d.Title(), SavedAt: d.SavedAt}
		if d.Template != nil {
			sum.TemplateID = d.Template.ID
		}
		out = append(out, sum)
	}
	return DocumentsResponse{Documents: out}, nil
}

func (s *Server) handlePreviewDocument(ctx context.Context, request mcp.CallToolRequest, args documentArgs) (PreviewResponse, error) {
	if args.ID == "" {
		return PreviewResponse{}, errors.New("id is required")
	}
	m := s.app.NewDocument()
	rec, err := s.app.History().Get(ctx, args.ID)
	if err != nil {
		return PreviewResponse{}, err
	}
	m.LoadSnapshot(rec.Snapshot)
	v := s.app.View(m, rec.ID)
	return PreviewResponse{ID: rec.ID, Title: v.Title, Markdown: v.Markdown()}, nil
}

func (s *Server) handleDeleteDocument(ctx context.Context, request mcp.CallToolRequest, args documentArgs) (DeleteResponse, error) {
	if args.ID == "" {
		return DeleteResponse{}, errors.New("id is required")
	}
	if err := s.app.Delete(ctx, args.ID); err != nil {
		s.logger.Error("MCP delete_document failed", "id", args.ID, "err", err)
		return DeleteResponse{}, fmt.Errorf("delete failed: %w", err)
	}
	return DeleteResponse{Deleted: args.ID}, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Document Catalog",
		mcp.WithResourceDescription("Lines of business, templates, field definitions and common sections"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.app.Catalog().Data())
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      CatalogURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
