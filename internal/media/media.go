// Package media talks to the external host that stores video bytes and
// serves them by URL. The application never holds media bytes itself.
package media

import (
	"context"
	"fmt"
	"io"
)

// Asset is what the host hands back after a successful store: an opaque
// handle for later operations plus the public playback URL.
type Asset struct {
	PublicID string
	URL      string
}

// Host is the external media host collaborator.
type Host interface {
	// Store uploads the raw bytes and returns the new asset.
	Store(ctx context.Context, body io.Reader, filename, contentType string) (*Asset, error)

	// ThumbnailURL derives a still-frame thumbnail URL for a stored asset.
	ThumbnailURL(publicID string, offsetSeconds, width, height int, crop string) (string, error)

	// Delete removes the asset from the host.
	Delete(ctx context.Context, publicID string) error
}

// StorageError wraps a failed call to the media host.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("media %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
