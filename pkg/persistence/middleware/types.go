package middleware

import "github.com/aretw0/folio/pkg/ports"

// Middleware allows wrapping a BlobStore to add behavior.
type Middleware func(ports.BlobStore) ports.BlobStore

// Chain wraps store with mws. The first middleware is the outermost.
func Chain(store ports.BlobStore, mws ...Middleware) ports.BlobStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
