package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/folio/internal/logging"
	"github.com/aretw0/folio/pkg/document"
	"github.com/aretw0/folio/pkg/ports"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session id is unknown.
var ErrSessionNotFound = errors.New("session not found")

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates session access, ensuring safe concurrent operations.
// It uses Reference Counting to garbage collect unused locks.
type Manager struct {
	store  ports.BlobStore
	prefix string

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	locker  ports.DistributedLocker // Optional distributed locker
	lockTTL time.Duration
	logger  *slog.Logger
	modelOp []document.Option
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL sets the expiry of distributed locks. Defaults to 30s.
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.lockTTL = ttl
	}
}

// WithLogger configures a logger for the Manager and the models it creates.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithPrefix sets the blob key prefix for session state. Defaults to "session:".
func WithPrefix(prefix string) Option {
	return func(m *Manager) {
		m.prefix = prefix
	}
}

// NewManager creates a new Session Manager with the given persistence store.
func NewManager(store ports.BlobStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		prefix:  "session:",
		locks:   make(map[string]*lockEntry),
		lockTTL: 30 * time.Second,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.modelOp = []document.Option{document.WithLogger(m.logger)}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(sessionID) after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

func (m *Manager) key(sessionID string) string {
	return m.prefix + sessionID
}

// Create starts a new session with an empty model and returns its id.
func (m *Manager) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		return m.save(ctx, id, document.New(m.modelOp...))
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// View runs fn with the session's model without persisting changes.
func (m *Manager) View(ctx context.Context, sessionID string, fn func(*document.Model) error) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		model, err := m.load(ctx, sessionID)
		if err != nil {
			return err
		}
		return fn(model)
	})
}

// Update runs fn with the session's model and persists the result if fn succeeds.
func (m *Manager) Update(ctx context.Context, sessionID string, fn func(*document.Model) error) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		model, err := m.load(ctx, sessionID)
		if err != nil {
			return err
		}
		if err := fn(model); err != nil {
			return err
		}
		return m.save(ctx, sessionID, model)
	})
}

// Delete removes the session.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Delete(ctx, m.key(sessionID))
	})
}

func (m *Manager) load(ctx context.Context, sessionID string) (*document.Model, error) {
	raw, err := m.store.Get(ctx, m.key(sessionID))
	if err != nil {
		if errors.Is(err, ports.ErrBlobNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var state document.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session state: %w", err)
	}

	model := document.New(m.modelOp...)
	model.Restore(state)
	return model, nil
}

func (m *Manager) save(ctx context.Context, sessionID string, model *document.Model) error {
	raw, err := json.Marshal(model.State())
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}
	if err := m.store.Put(ctx, m.key(sessionID), raw); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// WithLock executes a function while holding the lock for the session.
func (m *Manager) WithLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, sessionID, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"session_id", sessionID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
