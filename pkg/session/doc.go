/*
Package session implements per-session document state management.

Each session owns one document.Model, persisted between requests in a
ports.BlobStore. Access to a session is serialized by a reference-counted
in-process lock and, optionally, a distributed lock so the model is never
mutated concurrently across goroutines or replicas.
*/
package session
