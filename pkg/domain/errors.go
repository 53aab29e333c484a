package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks catalog data-integrity defects. Never fatal.
	ErrConfiguration = errors.New("catalog configuration warning")

	// ErrStorageRead is returned when the persisted blob is missing or unparsable.
	ErrStorageRead = errors.New("storage read failed")

	// ErrStorageWrite is returned when the blob store rejects a write.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrExport is returned when rasterization or printing fails.
	ErrExport = errors.New("export failed")

	// ErrUnsupportedInsertion is reported when rich content is inserted into a structured template.
	ErrUnsupportedInsertion = errors.New("template does not use the rich editor")

	// ErrDocumentNotFound is returned when a saved document id is unknown.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrTemplateNotFound is returned when a template id is not in the catalog.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrLOBNotFound is returned when a line of business id is not in the catalog.
	ErrLOBNotFound = errors.New("line of business not found")
)

// ConfigurationWarning reports a template that declares specific fields without definitions.
type ConfigurationWarning struct {
	TemplateID string
	Reason     string
}

func (w *ConfigurationWarning) Error() string {
	return fmt.Sprintf("template %q: %s", w.TemplateID, w.Reason)
}

func (w *ConfigurationWarning) Unwrap() error { return ErrConfiguration }

// StorageReadError wraps a failure to read or decode the persisted collection.
type StorageReadError struct {
	Key string
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("read %q: %v", e.Key, e.Err)
}

func (e *StorageReadError) Unwrap() error { return e.Err }

func (e *StorageReadError) Is(target error) bool { return target == ErrStorageRead }

// StorageWriteError wraps a rejected write. Previously persisted records remain intact.
type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("write %q: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

func (e *StorageWriteError) Is(target error) bool { return target == ErrStorageWrite }

// ExportFailure wraps a failed print or PDF export.
type ExportFailure struct {
	Op  string // "pdf" or "print"
	Err error
}

func (e *ExportFailure) Error() string {
	return fmt.Sprintf("%s export: %v", e.Op, e.Err)
}

func (e *ExportFailure) Unwrap() error { return e.Err }

func (e *ExportFailure) Is(target error) bool { return target == ErrExport }
