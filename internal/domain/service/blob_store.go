package service

import (
	"context"

	"dating/internal/domain/entity"
)

// BlobStore stores photo bytes and returns where they can be fetched from.
type BlobStore interface {
	// Put stores the content under a new key and returns its public URL and key.
	Put(ctx context.Context, content []byte, contentType string) (*entity.StoredObject, error)

	// Delete removes a stored object by key. Missing objects are not an error.
	Delete(ctx context.Context, storageID string) error
}
