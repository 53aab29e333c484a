// Package config resolves runtime settings from FOLIO_* environment variables
// and command-line flags, and opens the configured blob stores.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/folio/pkg/adapters/file"
	"github.com/aretw0/folio/pkg/adapters/memory"
	"github.com/aretw0/folio/pkg/adapters/redis"
	"github.com/aretw0/folio/pkg/adapters/sqlite"
	"github.com/aretw0/folio/pkg/persistence/middleware"
	"github.com/aretw0/folio/pkg/ports"
	"github.com/spf13/pflag"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// DefaultPIIFields masks social security numbers in saved documents.
const DefaultPIIFields = `(?i)ssn$`

// ErrUnknownStore is returned for an unsupported FOLIO_STORE value.
var ErrUnknownStore = errors.New("config: unknown store backend")

// Config holds every runtime setting.
type Config struct {
	CatalogDir    string
	Store         string
	StorePath     string
	RedisAddr     string
	RedisPassword string
	RedisPrefix   string
	EncryptionKey string
	FallbackKeys  []string
	PIIFields     []string
	LogLevel      string
	LogFormat     string
	Addr          string
	PrintersFile  string
	Printer       string
	HistoryLimit  int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Store:        StoreFile,
		StorePath:    filepath.Join(".folio", "store"),
		RedisAddr:    "localhost:6379",
		RedisPrefix:  "folio:",
		PIIFields:    []string{DefaultPIIFields},
		LogLevel:     "info",
		LogFormat:    "text",
		Addr:         ":8080",
		PrintersFile: filepath.Join(".folio", "printers.yaml"),
		HistoryLimit: 10,
	}
}

// FromEnv returns Default overridden by FOLIO_* variables.
func FromEnv() Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup is FromEnv with an explicit lookup function.
func FromLookup(lookup func(string) (string, bool)) Config {
	c := Default()
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	list := func(name string, dst *[]string) {
		if v, ok := lookup(name); ok {
			*dst = splitList(v)
		}
	}
	str("FOLIO_CATALOG_DIR", &c.CatalogDir)
	str("FOLIO_STORE", &c.Store)
	str("FOLIO_STORE_PATH", &c.StorePath)
	str("FOLIO_REDIS_ADDR", &c.RedisAddr)
	str("FOLIO_REDIS_PASSWORD", &c.RedisPassword)
	str("FOLIO_REDIS_PREFIX", &c.RedisPrefix)
	str("FOLIO_ENCRYPTION_KEY", &c.EncryptionKey)
	list("FOLIO_ENCRYPTION_FALLBACK_KEYS", &c.FallbackKeys)
	list("FOLIO_PII_FIELDS", &c.PIIFields)
	str("FOLIO_LOG_LEVEL", &c.LogLevel)
	str("FOLIO_LOG_FORMAT", &c.LogFormat)
	str("FOLIO_ADDR", &c.Addr)
	str("FOLIO_PRINTERS", &c.PrintersFile)
	str("FOLIO_PRINTER", &c.Printer)
	return c
}

// BindFlags registers persistent flags whose defaults are the current values,
// so flags override the environment which overrides the built-in defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.CatalogDir, "catalog", c.CatalogDir, "Directory holding a Loam catalog (empty uses the built-in catalog)")
	fs.StringVar(&c.Store, "store", c.Store, "Blob store backend: memory, file, redis or sqlite")
	fs.StringVar(&c.StorePath, "store-path", c.StorePath, "Directory (file) or database path (sqlite)")
	fs.StringVar(&c.RedisAddr, "redis-addr", c.RedisAddr, "Redis address")
	fs.StringVar(&c.RedisPrefix, "redis-prefix", c.RedisPrefix, "Redis key prefix")
	fs.StringSliceVar(&c.PIIFields, "pii-fields", c.PIIFields, "Patterns of field ids masked before saving")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format: text or json")
	fs.IntVar(&c.HistoryLimit, "history-limit", c.HistoryLimit, "Number of saved documents kept")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Stores are the blob stores opened for one process.
// History blobs are masked then encrypted; session blobs are only encrypted
// so in-progress documents keep every field.
type Stores struct {
	History  ports.BlobStore
	Sessions ports.BlobStore
	Locker   ports.DistributedLocker

	closers []io.Closer
}

// Close releases backend connections.
func (s *Stores) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// OpenStores opens the configured backend and wraps it with middleware.
func (c Config) OpenStores(ctx context.Context) (*Stores, error) {
	stores := &Stores{}

	var base ports.BlobStore
	switch c.Store {
	case StoreMemory:
		base = memory.NewStore()
	case StoreFile:
		base = file.New(c.StorePath)
	case StoreSQLite:
		path := c.StorePath
		if filepath.Ext(path) == "" {
			if err := os.MkdirAll(path, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create store directory: %w", err)
			}
			path = filepath.Join(path, "folio.db")
		}
		db, err := sqlite.Open(path)
		if err != nil {
			return nil, err
		}
		base = db
		stores.closers = append(stores.closers, db)
	case StoreRedis:
		rdb := redis.New(c.RedisAddr, c.RedisPassword, 0, redis.WithPrefix(c.RedisPrefix+"blob:"))
		if err := rdb.Client().Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", c.RedisAddr, err)
		}
		base = rdb
		stores.Locker = redis.NewLocker(rdb.Client(), c.RedisPrefix)
		stores.closers = append(stores.closers, rdb)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, c.Store)
	}

	var encryption []middleware.Middleware
	if c.EncryptionKey != "" {
		active, err := middleware.ParseKey(c.EncryptionKey)
		if err != nil {
			_ = stores.Close()
			return nil, fmt.Errorf("FOLIO_ENCRYPTION_KEY: %w", err)
		}
		cfg := middleware.EncryptionConfig{ActiveKey: active}
		for i, k := range c.FallbackKeys {
			key, err := middleware.ParseKey(k)
			if err != nil {
				_ = stores.Close()
				return nil, fmt.Errorf("fallback key %d: %w", i, err)
			}
			cfg.FallbackKeys = append(cfg.FallbackKeys, key)
		}
		encryption = append(encryption, middleware.NewEncryptionMiddleware(cfg))
	}

	history := encryption
	if len(c.PIIFields) > 0 {
		history = append([]middleware.Middleware{middleware.NewPIIMiddleware(c.PIIFields)}, encryption...)
	}
	stores.History = middleware.Chain(base, history...)
	stores.Sessions = middleware.Chain(base, encryption...)
	return stores, nil
}
