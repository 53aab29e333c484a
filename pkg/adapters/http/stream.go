package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/aretw0/folio/internal/logging"
	"github.com/aretw0/folio/pkg/domain"
	"github.com/aretw0/folio/pkg/ports"
)

// Event is one server-sent event.
type Event struct {
	Name string
	Data string
}

// StreamManager handles active SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- Event]struct{} // SessionID -> Set of Channels
	logger      *slog.Logger
}

func NewStreamManager(logger *slog.Logger) *StreamManager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StreamManager{
		subscribers: make(map[string]map[chan<- Event]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a listener for a session. The returned func unsubscribes and closes the channel.
func (sm *StreamManager) Subscribe(sessionID string) (<-chan Event, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan Event, 10)
	if _, ok := sm.subscribers[sessionID]; !ok {
		sm.subscribers[sessionID] = make(map[chan<- Event]struct{})
	}
	sm.subscribers[sessionID][ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			sm.mu.Lock()
			defer sm.mu.Unlock()
			if subs, ok := sm.subscribers[sessionID]; ok {
				delete(subs, ch)
				if len(subs) == 0 {
					delete(sm.subscribers, sessionID)
				}
			}
			close(ch)
		})
	}
}

// Broadcast sends an event to every subscriber of a session.
// Slow clients lose events rather than block the sender.
func (sm *StreamManager) Broadcast(sessionID string, ev Event) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers[sessionID] {
		select {
		case ch <- ev:
		default:
			sm.logger.Warn("SSE: Client buffer full, dropping event", "session_id", sessionID, "event", ev.Name)
		}
	}
}

// Subscribers returns the number of listeners for a session.
func (sm *StreamManager) Subscribers(sessionID string) int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers[sessionID])
}

type sessionKey struct{}

func withSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionFrom returns the session id carried by a request context.
func SessionFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok && id != ""
}

type notificationPayload struct {
	Level   domain.NotificationLevel `json:"level"`
	Message string                   `json:"message"`
	Error   string                   `json:"error,omitempty"`
}

// Notifier delivers notifications to the subscribers of the session found in
// the context. Notifications outside a session are only logged.
func (sm *StreamManager) Notifier() ports.Notifier {
	return ports.NotifierFunc(func(ctx context.Context, n domain.Notification) {
		id, ok := SessionFrom(ctx)
		if !ok {
			sm.logger.Debug("Notification outside a session", "level", n.Level, "message", n.Message)
			return
		}
		p := notificationPayload{Level: n.Level, Message: n.Message}
		if n.Err != nil {
			p.Error = n.Err.Error()
		}
		raw, err := json.Marshal(p)
		if err != nil {
			return
		}
		sm.Broadcast(id, Event{Name: "notification", Data: string(raw)})
	})
}
