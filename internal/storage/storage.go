package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is the blob store behind resume files. The application persists only
// the URL returned by GetURL.
type Storage interface {
	// Save stores a file under the given key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, key string) error

	// Exists checks whether a file is present.
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns the public URL for a stored file.
	GetURL(ctx context.Context, key string) (string, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, cloudflare_r2
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

// NewStorage creates a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
