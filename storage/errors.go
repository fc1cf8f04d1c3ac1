package storage

import "errors"

// Common storage errors.
var (
	// ErrNotFound is returned when an archive or archive member is missing.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArchive is returned when a file is not a readable ZIP archive.
	ErrInvalidArchive = errors.New("invalid archive")
)
