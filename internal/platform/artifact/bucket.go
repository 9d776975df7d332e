package artifact

import (
	"context"
	"errors"
	"io"

	"github.com/yungbote/sns-consult-backend/internal/platform/gcp"
)

type bucketStore struct {
	bucket gcp.BucketService
}

func NewBucketStore(bucket gcp.BucketService) Store {
	return &bucketStore{bucket: bucket}
}

func (s *bucketStore) Put(ctx context.Context, key string, r io.Reader) error {
	return s.bucket.UploadFile(ctx, key, r)
}

func (s *bucketStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := s.bucket.DownloadFile(ctx, key)
	if errors.Is(err, gcp.ErrObjectNotFound) {
		return nil, ErrNotFound
	}
	return rc, err
}

func (s *bucketStore) Close() error {
	return s.bucket.Close()
}
