package tree

import "errors"

var (
	// ErrLoad is returned when a document cannot be read or parsed.
	ErrLoad = errors.New("load document")

	// ErrSave is returned when a document cannot be persisted.
	ErrSave = errors.New("save document")
)
