// Package history keeps the bounded, newest-first collection of saved documents.
//
// The whole collection lives in one blob, {"documents": [...]}, under a single
// key of a ports.BlobStore. Every mutation rewrites the blob with one Put so a
// failed write leaves the previously persisted collection untouched.
package history
