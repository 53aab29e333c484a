package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/folio/internal/logging"
	"github.com/aretw0/folio/pkg/domain"
	"github.com/aretw0/folio/pkg/ports"
	"github.com/google/uuid"
)

const (
	// DefaultKey is the blob key holding the collection.
	DefaultKey = "folioDocuments"
	// DefaultLimit is the number of most recent documents kept.
	DefaultLimit = 10
)

// Metrics observes history operations. Implemented by observability.Metrics.
type Metrics interface {
	ObserveHistory(op string, elapsed time.Duration, err error)
}

type collection struct {
	Documents []domain.SavedDocumentRecord `json:"documents"`
}

// Store is the persistence adapter for saved documents.
// Safe for concurrent use within one process.
type Store struct {
	blobs   ports.BlobStore
	key     string
	limit   int
	now     func() time.Time
	logger  *slog.Logger
	metrics Metrics

	mu sync.Mutex // serializes read-modify-write cycles
}

type Option func(*Store)

// WithKey sets the blob key.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithLimit sets how many documents are kept.
func WithLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithClock overrides the time source used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger configures the logger for degraded reads.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithMetrics records operation outcomes.
func WithMetrics(m Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// New creates a Store over blobs.
func New(blobs ports.BlobStore, opts ...Option) *Store {
	s := &Store{
		blobs:  blobs,
		key:    DefaultKey,
		limit:  DefaultLimit,
		now:    time.Now,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the blob key in use.
func (s *Store) Key() string { return s.key }

// List returns the saved documents, newest first.
//
// A missing or unparsable blob yields an empty, non-nil list together with a
// *domain.StorageReadError. The error is informational: the empty list is the
// usable result.
func (s *Store) List(ctx context.Context) (docs []domain.SavedDocumentRecord, err error) {
	defer s.observe("list", time.Now(), &err)

	docs, err = s.read(ctx)
	if err != nil {
		s.logRead(err)
		return []domain.SavedDocumentRecord{}, err
	}
	return docs, nil
}

// Get returns one saved document by id.
func (s *Store) Get(ctx context.Context, id string) (domain.SavedDocumentRecord, error) {
	docs, _ := s.List(ctx)
	for _, d := range docs {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.SavedDocumentRecord{}, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, id)
}

// Save stamps snapshot with a new id and the current time, prepends it and keeps
// the most recent documents up to the limit. The collection is written in one Put.
// Failures are *domain.StorageWriteError and leave the stored collection intact.
func (s *Store) Save(ctx context.Context, snapshot domain.Snapshot) (rec domain.SavedDocumentRecord, err error) {
	defer s.observe("save", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.read(ctx)
	if err != nil {
		if !recoverable(err) {
			return domain.SavedDocumentRecord{}, &domain.StorageWriteError{Key: s.key, Err: err}
		}
		s.logRead(err)
		docs = nil
	}

	now := s.now()
	// A clock that stepped back must not sort the new record behind older ones.
	if len(docs) > 0 && now.Before(docs[0].SavedAt) {
		s.logger.Warn("Clock is behind the newest saved document", "now", now, "newest", docs[0].SavedAt)
		now = docs[0].SavedAt
	}
	rec = domain.SavedDocumentRecord{
		ID:       NewID(now),
		SavedAt:  now,
		Snapshot: snapshot.Clone(),
	}

	next := make([]domain.SavedDocumentRecord, 0, len(docs)+1)
	next = append(next, rec)
	for _, d := range docs {
		if d.ID != rec.ID {
			next = append(next, d)
		}
	}
	sortNewestFirst(next)
	if len(next) > s.limit {
		next = next[:s.limit]
	}

	if err := s.write(ctx, next); err != nil {
		return domain.SavedDocumentRecord{}, err
	}
	return rec, nil
}

// Delete removes the document with id. Unknown ids are not an error and cause no write.
func (s *Store) Delete(ctx context.Context, id string) (err error) {
	defer s.observe("delete", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.read(ctx)
	if err != nil {
		if recoverable(err) {
			s.logRead(err)
			return nil
		}
		return &domain.StorageWriteError{Key: s.key, Err: err}
	}

	i := slices.IndexFunc(docs, func(d domain.SavedDocumentRecord) bool { return d.ID == id })
	if i < 0 {
		return nil
	}
	return s.write(ctx, slices.Delete(docs, i, i+1))
}

func (s *Store) read(ctx context.Context) ([]domain.SavedDocumentRecord, error) {
	raw, err := s.blobs.Get(ctx, s.key)
	if err != nil {
		return nil, &domain.StorageReadError{Key: s.key, Err: err}
	}

	var c collection
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, &domain.StorageReadError{Key: s.key, Err: fmt.Errorf("%w: %w", errMalformed, err)}
	}
	if c.Documents == nil {
		c.Documents = []domain.SavedDocumentRecord{}
	}
	sortNewestFirst(c.Documents)
	return c.Documents, nil
}

func (s *Store) write(ctx context.Context, docs []domain.SavedDocumentRecord) error {
	raw, err := json.Marshal(collection{Documents: docs})
	if err != nil {
		return &domain.StorageWriteError{Key: s.key, Err: err}
	}
	if err := s.blobs.Put(ctx, s.key, raw); err != nil {
		return &domain.StorageWriteError{Key: s.key, Err: err}
	}
	return nil
}

var errMalformed = errors.New("malformed collection")

// recoverable reports whether a read failure means "no usable collection"
// rather than an unreachable backend.
func recoverable(err error) bool {
	return errors.Is(err, ports.ErrBlobNotFound) || errors.Is(err, errMalformed)
}

func (s *Store) logRead(err error) {
	if errors.Is(err, ports.ErrBlobNotFound) {
		s.logger.Debug("No saved documents yet", "key", s.key)
		return
	}
	s.logger.Warn("Saved documents unreadable, treating as empty", "key", s.key, "err", err)
}

func (s *Store) observe(op string, start time.Time, err *error) {
	if s.metrics == nil {
		return
	}
	var e error
	if err != nil {
		e = *err
	}
	// A missing collection is the normal first-run state.
	if errors.Is(e, ports.ErrBlobNotFound) {
		e = nil
	}
	s.metrics.ObserveHistory(op, time.Since(start), e)
}

func sortNewestFirst(docs []domain.SavedDocumentRecord) {
	slices.SortStableFunc(docs, func(a, b domain.SavedDocumentRecord) int {
		return b.SavedAt.Compare(a.SavedAt)
	})
}

// NewID returns an opaque record id: "doc-<unix millis>-<random suffix>".
func NewID(t time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return "doc-" + strconv.FormatInt(t.UnixMilli(), 10) + "-" + suffix
}
