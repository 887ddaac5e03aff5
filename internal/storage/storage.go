package storage

import (
	"context"
	"io"
)

// Storage defines the interface for file storage operations.
// The credential core never touches file I/O directly: the transport
// layer saves the uploaded registration document here and passes only
// the resulting URL and filename down to the service.
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader) error

	// GetURL returns a public URL for the file
	GetURL(path string) string
}

// Config holds storage configuration
type Config struct {
	BasePath string // Filesystem directory for stored files
	BaseURL  string // Public URL base
}
