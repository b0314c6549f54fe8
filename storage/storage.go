package storage

import (
	"context"
	"io"
)

// Storage defines the operations the table writer needs from an output location.
type Storage interface {
	// Upload writes data from reader to the given path, replacing any
	// existing file.
	Upload(ctx context.Context, path string, reader io.Reader) error
}
