// Package blob stores photo bytes in a gocloud.dev bucket selected by URL.
package blob

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"

	"dating/config"
	"dating/internal/domain/entity"
	"dating/internal/domain/service"
	"dating/internal/errors"
)

// ErrObjectNotFound is returned by Open for unknown keys.
var ErrObjectNotFound = errors.New("object not found")

// Store is a concrete implementation of the BlobStore interface on top of gocloud.dev/blob.
// It also serves stored objects back for buckets without a public endpoint.
type Store struct {
	bucket        *blob.Bucket
	publicBaseURL string
	keyPrefix     string
}

// Params defines the parameters required for the blob store
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (*Store, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Blob.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Blob.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing blob bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return NewStore(bucket, params.Config.Blob), nil
}

// NewStore wraps an already opened bucket.
func NewStore(bucket *blob.Bucket, cfg config.BlobConfig) *Store {
	return &Store{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		keyPrefix:     cfg.KeyPrefix,
	}
}

// AsBlobStore exposes the store as the domain port.
func AsBlobStore(s *Store) service.BlobStore {
	return s
}

// Put writes content under a fresh key derived from a random UUID and the sniffed extension.
func (s *Store) Put(ctx context.Context, content []byte, contentType string) (*entity.StoredObject, error) {
	if contentType == "" {
		contentType = mimetype.Detect(content).String()
	}
	key := s.keyPrefix + uuid.NewString() + extensionFor(contentType)

	if err := s.bucket.WriteAll(ctx, key, content, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return nil, errors.Wrapf(err, "failed to write object %s", key)
	}

	return &entity.StoredObject{
		URL:       s.URLFor(key),
		StorageID: key,
	}, nil
}

// Delete removes an object; a missing object is treated as already deleted.
func (s *Store) Delete(ctx context.Context, storageID string) error {
	if err := s.bucket.Delete(ctx, storageID); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete object %s", storageID)
	}

	return nil
}

// Open returns a reader for the object and its content type.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", ErrObjectNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open object %s", key)
	}

	return reader, reader.ContentType(), nil
}

// URLFor builds the public URL of a key.
func (s *Store) URLFor(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	return s.publicBaseURL + "/" + key
}

func extensionFor(contentType string) string {
	if mt := mimetype.Lookup(contentType); mt != nil {
		return mt.Extension()
	}

	return ""
}
