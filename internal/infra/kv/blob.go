package kv

import (
	"context"
	"log/slog"

	"placebook/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes accepted by storage.blobUrl
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const blobContentType = "application/json"

// blobStore stores each key as one object of a gocloud.dev bucket
type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewBlobStore opens the bucket at bucketURL, scoping every key under prefix
func NewBlobStore(ctx context.Context, bucketURL, prefix string, logger *slog.Logger) (repository.KeyValueStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	if prefix != "" {
		bucket = blob.PrefixedBucket(bucket, prefix)
	}

	return &blobStore{bucket: bucket, logger: logger}, nil
}

func (s *blobStore) Get(ctx context.Context, key string) (string, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "read %s", key)
	}

	return string(data), nil
}

func (s *blobStore) Set(ctx context.Context, key, value string) error {
	opts := &blob.WriterOptions{ContentType: blobContentType}
	if err := s.bucket.WriteAll(ctx, key, []byte(value), opts); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}

func (s *blobStore) Remove(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

func (s *blobStore) Close() error {
	s.logger.Debug("[BlobStore] Closing bucket")

	return errors.WithStack(s.bucket.Close())
}
