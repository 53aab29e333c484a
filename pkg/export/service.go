package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/folio/internal/logging"
	"github.com/aretw0/folio/pkg/domain"
	"github.com/aretw0/folio/pkg/render"
)

// ErrExportInProgress is returned when an export of the same view is already running.
var ErrExportInProgress = errors.New("export already in progress for this view")

// Export kinds, also used as metric labels.
const (
	KindPDF   = "pdf"
	KindPrint = "print"
)

// Chrome is the non-document interface hidden during a capture.
type Chrome interface {
	Hide()
	Restore()
}

// ChromeFuncs adapts two functions to Chrome.
type ChromeFuncs struct {
	HideFunc    func()
	RestoreFunc func()
}

func (c ChromeFuncs) Hide() {
	if c.HideFunc != nil {
		c.HideFunc()
	}
}

func (c ChromeFuncs) Restore() {
	if c.RestoreFunc != nil {
		c.RestoreFunc()
	}
}

// Printer submits a PDF to the host's print flow.
type Printer interface {
	Print(ctx context.Context, job Job) error
}

// Job is one print submission.
type Job struct {
	Key   string
	Title string
	PDF   io.Reader
}

// Metrics observes exports. Implemented by observability.Metrics.
type Metrics interface {
	ObserveExport(kind string, elapsed time.Duration, err error)
}

type nopMetrics struct{}

func (nopMetrics) ObserveExport(string, time.Duration, error) {}

// Service runs PDF and print exports.
type Service struct {
	raster  *Rasterizer
	printer Printer
	chrome  Chrome
	logger  *slog.Logger
	metrics Metrics

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// Option configures the Service.
type Option func(*Service)

// WithPrinter sets the print backend. Defaults to CommandPrinter running lp.
func WithPrinter(p Printer) Option {
	return func(s *Service) {
		s.printer = p
	}
}

// WithChrome sets the interface hidden during capture.
func WithChrome(c Chrome) Option {
	return func(s *Service) {
		s.chrome = c
	}
}

// WithRasterizer overrides the default rasterizer.
func WithRasterizer(r *Rasterizer) Option {
	return func(s *Service) {
		s.raster = r
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewService creates an export service.
func NewService(opts ...Option) (*Service, error) {
	s := &Service{
		printer:  &CommandPrinter{},
		chrome:   ChromeFuncs{},
		logger:   logging.NewNop(),
		metrics:  nopMetrics{},
		inFlight: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.raster == nil {
		r, err := NewRasterizer()
		if err != nil {
			return nil, err
		}
		s.raster = r
	}
	return s, nil
}

// PDF rasterizes v and writes a single-page A4 PDF to w.
func (s *Service) PDF(ctx context.Context, v render.View, w io.Writer) error {
	return s.run(ctx, KindPDF, v, func() error {
		return s.writePDF(v, w)
	})
}

// Print rasterizes v and submits it to the printer.
func (s *Service) Print(ctx context.Context, v render.View) error {
	return s.run(ctx, KindPrint, v, func() error {
		var buf bytes.Buffer
		if err := s.writePDF(v, &buf); err != nil {
			return err
		}
		return s.printer.Print(ctx, Job{Key: v.Key, Title: v.Title, PDF: &buf})
	})
}

func (s *Service) writePDF(v render.View, w io.Writer) error {
	img, err := s.raster.Rasterize(v)
	if err != nil {
		return err
	}
	return WritePDF(img, w)
}

func (s *Service) run(ctx context.Context, kind string, v render.View, fn func() error) (err error) {
	if !s.acquire(v.Key) {
		s.logger.Warn("Export rejected", "kind", kind, "view", v.Key, "err", ErrExportInProgress)
		return &domain.ExportFailure{Op: kind, Err: ErrExportInProgress}
	}
	defer s.release(v.Key)

	start := time.Now()
	defer func() {
		s.metrics.ObserveExport(kind, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return &domain.ExportFailure{Op: kind, Err: err}
	}

	s.chrome.Hide()
	defer s.chrome.Restore()

	if err := fn(); err != nil {
		s.logger.Error("Export failed", "kind", kind, "view", v.Key, "err", err)
		return &domain.ExportFailure{Op: kind, Err: err}
	}
	s.logger.Debug("Export complete", "kind", kind, "view", v.Key, "elapsed", time.Since(start))
	return nil
}

func (s *Service) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *Service) release(key string) {
	s.mu.Lock()
	delete(s.inFlight, key)
	s.mu.Unlock()
}
