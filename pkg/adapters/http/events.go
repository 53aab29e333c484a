package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aretw0/folio/pkg/domain"
)

// SubscribeEvents handles GET /sessions/{sessionId}/events (SSE).
// The optional watch parameter (common,body,template,fields) filters diff events;
// notifications are always delivered.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request, sessionId SessionId, params SubscribeEventsParams) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	var watch []string
	if params.Watch != nil && *params.Watch != "" {
		watch = strings.Split(*params.Watch, ",")
	}

	ch, cancel := s.Streams.Subscribe(sessionId)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	s.logger.Info("SSE: Subscribing to session updates", "session_id", sessionId)
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE client disconnected", "session_id", sessionId)
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if ev.Name == "diff" && !matchesWatch(ev.Data, watch) {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, ev.Data)
			flusher.Flush()
		}
	}
}

func matchesWatch(data string, watch []string) bool {
	if len(watch) == 0 {
		return true
	}
	var diff domain.SnapshotDiff
	if err := json.Unmarshal([]byte(data), &diff); err != nil {
		return true
	}
	for _, field := range watch {
		switch strings.TrimSpace(field) {
		case "common":
			if diff.Common != nil {
				return true
			}
		case "body":
			if diff.RichBody != nil {
				return true
			}
		case "template":
			if diff.TemplateID != nil {
				return true
			}
		case "fields":
			if len(diff.Fields) > 0 {
				return true
			}
		}
	}
	return false
}
