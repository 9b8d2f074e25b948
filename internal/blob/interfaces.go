package blob

import (
	"context"
	"time"
)

// ObjectInfo describes one stored object for listing.
type ObjectInfo struct {
	Key          string
	LastModified time.Time
}

// Storage is the object storage collaborator holding recipe images. Keys are
// hierarchical strings ("recipe-photos/<id>/<filename>"); no versioning.
type Storage interface {
	// Put stores data under key with the given content type and returns
	// the key.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Get returns the object bytes and content type.
	Get(ctx context.Context, key string) ([]byte, string, error)

	// Delete removes one object. Deleting an absent object is not an error.
	Delete(ctx context.Context, key string) error

	// List returns the objects whose keys start with prefix.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}
