// Package http exposes folio over a JSON API routed with chi.
//
// Sessions hold one document model each; edits are posted as an ordered list
// and applied under the session lock. Subscribers of /sessions/{id}/events
// receive snapshot diffs and user notifications as server-sent events.
package http
