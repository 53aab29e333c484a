package folio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/folio/internal/logging"
	"github.com/aretw0/folio/pkg/adapters/memory"
	"github.com/aretw0/folio/pkg/catalog"
	"github.com/aretw0/folio/pkg/document"
	"github.com/aretw0/folio/pkg/domain"
	"github.com/aretw0/folio/pkg/export"
	"github.com/aretw0/folio/pkg/history"
	"github.com/aretw0/folio/pkg/ports"
	"github.com/aretw0/folio/pkg/render"
)

// Exporter produces PDFs and print jobs from a rendered view.
type Exporter interface {
	PDF(ctx context.Context, v render.View, w io.Writer) error
	Print(ctx context.Context, v render.View) error
}

// Metrics observes the app. Implemented by observability.Metrics.
type Metrics interface {
	history.Metrics
	export.Metrics
	CountNotification(level string)
}

// App wires a catalog, the document history and an exporter together and
// reports the outcome of every boundary operation through a Notifier.
// Safe for concurrent use; each document.Model must still have a single owner.
type App struct {
	catalog    *catalog.Catalog
	catalogDir string
	blobs      ports.BlobStore
	history    *history.Store
	historyOps []history.Option
	exporter   Exporter
	notifier   ports.Notifier
	metrics    Metrics
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures the App.
type Option func(*App)

// WithCatalog uses an already built catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *App) {
		a.catalog = c
	}
}

// WithCatalogDir loads the catalog from a Loam directory.
func WithCatalogDir(dir string) Option {
	return func(a *App) {
		a.catalogDir = dir
	}
}

// WithBlobStore sets the store holding the document history. Defaults to memory.
func WithBlobStore(s ports.BlobStore) Option {
	return func(a *App) {
		a.blobs = s
	}
}

// WithHistoryOptions passes options to the history store.
func WithHistoryOptions(opts ...history.Option) Option {
	return func(a *App) {
		a.historyOps = append(a.historyOps, opts...)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithNotifier sets the receiver of user-facing notifications.
func WithNotifier(n ports.Notifier) Option {
	return func(a *App) {
		a.notifier = n
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(a *App) {
		a.metrics = m
	}
}

// WithExporter replaces the default export service.
func WithExporter(e Exporter) Option {
	return func(a *App) {
		a.exporter = e
	}
}

// WithClock overrides the time used for rendered dates.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// New builds an App. Without options it uses the built-in catalog and an
// in-memory history.
func New(opts ...Option) (*App, error) {
	a := &App{
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.notifier == nil {
		a.notifier = ports.NotifierFunc(func(context.Context, domain.Notification) {})
	}

	if a.catalog == nil {
		var err error
		if a.catalogDir != "" {
			a.catalog, err = catalog.LoadDir(context.Background(), a.catalogDir, catalog.WithLogger(a.logger))
		} else {
			a.catalog, err = catalog.Default(catalog.WithLogger(a.logger))
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	if a.blobs == nil {
		a.blobs = memory.NewStore()
	}
	hopts := []history.Option{history.WithLogger(a.logger)}
	if a.metrics != nil {
		hopts = append(hopts, history.WithMetrics(a.metrics))
	}
	a.history = history.New(a.blobs, append(hopts, a.historyOps...)...)

	if a.exporter == nil {
		eopts := []export.Option{export.WithLogger(a.logger)}
		if a.metrics != nil {
			eopts = append(eopts, export.WithMetrics(a.metrics))
		}
		svc, err := export.NewService(eopts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create exporter: %w", err)
		}
		a.exporter = svc
	}

	for _, w := range a.catalog.Warnings() {
		a.logger.Warn("Catalog configuration warning", "template_id", w.TemplateID, "err", w)
	}
	return a, nil
}

// Catalog returns the loaded catalog.
func (a *App) Catalog() *catalog.Catalog { return a.catalog }

// History returns the document history store.
func (a *App) History() *history.Store { return a.history }

// NewDocument returns an empty document model.
func (a *App) NewDocument() *document.Model {
	return document.New(document.WithLogger(a.logger))
}

// Documents lists the saved documents, newest first. An unreadable history is
// logged by the store and reads as empty; it is not reported to the user.
func (a *App) Documents(ctx context.Context) []domain.SavedDocumentRecord {
	docs, _ := a.history.List(ctx)
	return docs
}

// Save persists a snapshot of m. The model is never modified.
func (a *App) Save(ctx context.Context, m *document.Model) (domain.SavedDocumentRecord, error) {
	rec, err := a.history.Save(ctx, m.Snapshot())
	if err != nil {
		msg := "An error occurred while saving the document."
		if errors.Is(err, ports.ErrQuotaExceeded) {
			msg = "Could not save document. Storage might be full."
		}
		a.notify(ctx, domain.NotifyError, msg, err)
		return domain.SavedDocumentRecord{}, err
	}
	a.notify(ctx, domain.NotifySuccess, fmt.Sprintf("Document %q saved!", rec.Title()), nil)
	return rec, nil
}

// Open loads a saved document into m. The selected line of business and search
// term are left as they are.
func (a *App) Open(ctx context.Context, m *document.Model, id string) (domain.SavedDocumentRecord, error) {
	rec, err := a.history.Get(ctx, id)
	if err != nil {
		a.notify(ctx, domain.NotifyError, "Saved document not found.", err)
		return domain.SavedDocumentRecord{}, err
	}
	m.LoadSnapshot(rec.Snapshot)
	a.notify(ctx, domain.NotifyInfo, fmt.Sprintf("Document %q loaded.", rec.Title()), nil)
	return rec, nil
}

// Delete removes a saved document. Unknown ids succeed.
func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.history.Delete(ctx, id); err != nil {
		a.notify(ctx, domain.NotifyError, "An error occurred while deleting the document.", err)
		return err
	}
	a.notify(ctx, domain.NotifyWarn, "Document deleted.", nil)
	return nil
}

// View renders m under key.
func (a *App) View(m *document.Model, key string) render.View {
	s := m.Snapshot()
	opts := []render.Option{render.WithKey(key)}
	if s.Template != nil {
		opts = append(opts, render.WithFieldDefinitions(a.catalog.FieldDefinitionsFor(s.Template.ID)))
	}
	return render.Build(s, a.now(), opts...)
}

// ExportPDF writes m as a PDF to w.
func (a *App) ExportPDF(ctx context.Context, m *document.Model, w io.Writer) error {
	return a.ExportView(ctx, a.View(m, viewKey(m)), w)
}

// ExportView writes an already rendered view as a PDF to w.
func (a *App) ExportView(ctx context.Context, v render.View, w io.Writer) error {
	if err := a.exporter.PDF(ctx, v, w); err != nil {
		a.notify(ctx, domain.NotifyError, "An error occurred while generating the PDF.", err)
		return err
	}
	a.notify(ctx, domain.NotifySuccess, "PDF saved successfully!", nil)
	return nil
}

// Print sends m to the printer.
func (a *App) Print(ctx context.Context, m *document.Model) error {
	return a.PrintView(ctx, a.View(m, viewKey(m)))
}

// PrintView sends an already rendered view to the printer.
func (a *App) PrintView(ctx context.Context, v render.View) error {
	if err := a.exporter.Print(ctx, v); err != nil {
		a.notify(ctx, domain.NotifyError, "An error occurred while printing the document.", err)
		return err
	}
	a.notify(ctx, domain.NotifyInfo, "Document sent to printer.", nil)
	return nil
}

func (a *App) notify(ctx context.Context, level domain.NotificationLevel, msg string, err error) {
	if err != nil {
		a.logger.Error(msg, "err", err)
	}
	if a.metrics != nil {
		a.metrics.CountNotification(string(level))
	}
	a.notifier.Notify(ctx, domain.Notification{Level: level, Message: msg, Err: err})
}

func viewKey(m *document.Model) string {
	return fmt.Sprintf("model-%p", m)
}
