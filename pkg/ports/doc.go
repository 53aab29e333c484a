/*
Package ports defines the driven ports (interfaces) for folio.

These interfaces decouple the document core from external implementations,
allowing history to be persisted on various blob backends and boundary failures
to be surfaced through any notification channel.

# Key Interfaces

  - BlobStore: key-value persistence of whole blobs (memory, file, redis, sqlite).
  - Notifier: receives user-facing notifications produced by boundary operations.
  - DistributedLocker: serializes access to a session across replicas.
*/
package ports
