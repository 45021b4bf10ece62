// Package storage abstracts the external object-storage collaborator used
// for cover images and work content-block images.
package storage

import (
	"context"
	"io"
)

// ObjectStore stores uploaded files under namespaced paths and serves them
// through retrievable URLs.
type ObjectStore interface {
	// Put stores the object at path and returns its public URL.
	Put(ctx context.Context, path string, contentType string, r io.Reader) (string, error)
	// Delete removes the object addressed by a previously returned URL.
	// Deleting a missing object is not an error.
	Delete(ctx context.Context, url string) error
	// DeletePrefix removes every object under the given path prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}
