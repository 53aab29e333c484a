package main

import (
	"context"
	"fmt"

	"github.com/aretw0/folio"
	"github.com/aretw0/folio/internal/config"
	"github.com/aretw0/folio/pkg/export"
	"github.com/aretw0/folio/pkg/history"
	"github.com/aretw0/folio/pkg/observability"
	"github.com/aretw0/folio/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// env is the wiring shared by the commands.
type env struct {
	App      *folio.App
	Stores   *config.Stores
	Registry *prometheus.Registry
	Metrics  *observability.Metrics
}

func (e *env) Close() {
	if err := e.Stores.Close(); err != nil {
		logger.Warn("Failed to close stores", "err", err)
	}
}

// openEnv opens the configured stores and builds the App around them.
func openEnv(ctx context.Context, notifier ports.Notifier) (*env, error) {
	stores, err := cfg.OpenStores(ctx)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	printer, err := configuredPrinter()
	if err != nil {
		_ = stores.Close()
		return nil, err
	}
	exporter, err := export.NewService(
		export.WithPrinter(printer),
		export.WithLogger(logger),
		export.WithMetrics(metrics),
	)
	if err != nil {
		_ = stores.Close()
		return nil, err
	}

	opts := []folio.Option{
		folio.WithBlobStore(stores.History),
		folio.WithHistoryOptions(history.WithLimit(cfg.HistoryLimit)),
		folio.WithLogger(logger),
		folio.WithMetrics(metrics),
		folio.WithExporter(exporter),
	}
	if cfg.CatalogDir != "" {
		opts = append(opts, folio.WithCatalogDir(cfg.CatalogDir))
	}
	if notifier != nil {
		opts = append(opts, folio.WithNotifier(notifier))
	}
	app, err := folio.New(opts...)
	if err != nil {
		_ = stores.Close()
		return nil, err
	}
	return &env{App: app, Stores: stores, Registry: reg, Metrics: metrics}, nil
}

// configuredPrinter resolves the named printer from the printers file,
// falling back to the system print command.
func configuredPrinter() (export.Printer, error) {
	if cfg.Printer == "" {
		return export.NewCommandPrinter(export.PrinterConfig{}), nil
	}
	printers, err := export.LoadPrinters(cfg.PrintersFile)
	if err != nil {
		return nil, err
	}
	p, ok := printers[cfg.Printer]
	if !ok {
		return nil, fmt.Errorf("printer %q is not defined in %s", cfg.Printer, cfg.PrintersFile)
	}
	return export.NewCommandPrinter(p), nil
}
