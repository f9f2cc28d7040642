package store

import "context"

// FileStore is the storage boundary for uploaded project images. Keys are
// relative paths like "my-project-1712345678-ab12cd34.png".
type FileStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Remove(ctx context.Context, key string) error
	// URL returns the path or URL the front end should use for the key.
	URL(key string) string
}
