package gcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
)

// ErrObjectNotFound is returned by DownloadFile when the key does not exist.
var ErrObjectNotFound = errors.New("gcs object not found")

type BucketConfig struct {
	Name string
	// EmulatorHost switches the client to an unauthenticated emulator
	// (fake-gcs-server) at this absolute URL.
	EmulatorHost string
}

// BucketService is a single-bucket object store.
type BucketService interface {
	UploadFile(ctx context.Context, key string, file io.Reader) error
	DownloadFile(ctx context.Context, key string) (io.ReadCloser, error)
	Close() error
}

type bucketService struct {
	log           *logger.Logger
	storageClient *storage.Client
	bucket        string
	emulatorHost  string
	httpClient    *http.Client
}

func NewBucketService(ctx context.Context, log *logger.Logger, cfg BucketConfig) (BucketService, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		return nil, fmt.Errorf("missing bucket name")
	}
	emulatorHost := strings.TrimRight(strings.TrimSpace(cfg.EmulatorHost), "/")
	stClient, err := newStorageClient(ctx, emulatorHost)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	serviceLog := log.With("service", "BucketService")
	serviceLog.Info("Object storage initialized", "bucket", cfg.Name, "emulator_host", emulatorHost)

	return &bucketService{
		log:           serviceLog,
		storageClient: stClient,
		bucket:        cfg.Name,
		emulatorHost:  emulatorHost,
		httpClient:    &http.Client{Timeout: 2 * time.Minute},
	}, nil
}

func newStorageClient(ctx context.Context, emulatorHost string) (*storage.Client, error) {
	if emulatorHost == "" {
		opts := ClientOptionsFromEnv()
		opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
		return storage.NewClient(ctx, opts...)
	}
	_ = os.Setenv("STORAGE_EMULATOR_HOST", emulatorHost)
	return storage.NewClient(ctx, option.WithoutAuthentication())
}

// UploadFile writes the whole object in one request, so readers see either
// the previous version or the new one.
func (bs *bucketService) UploadFile(ctx context.Context, key string, file io.Reader) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := bs.storageClient.Bucket(bs.bucket).Object(key).NewWriter(ctx)
	if ct := contentTypeForKey(key); ct != "" {
		w.ContentType = ct
	}
	if err := writeObject(w, cancel, file); err != nil {
		return err
	}
	bs.log.Debug("object uploaded", "bucket", bs.bucket, "key", key)
	return nil
}

// writeObject copies r into w and commits it with Close. On a copy error
// the write context is cancelled before Close so the partial object is
// discarded instead of committed.
func writeObject(w io.WriteCloser, abort context.CancelFunc, r io.Reader) error {
	if _, err := io.Copy(w, r); err != nil {
		abort()
		_ = w.Close()
		return fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer: %w", err)
	}
	return nil
}

func (bs *bucketService) DownloadFile(ctx context.Context, key string) (io.ReadCloser, error) {
	// The reader outlives this call, so the timeout is cancelled on Close.
	ctx2, cancel := context.WithTimeout(ctx, 2*time.Minute)

	if bs.emulatorHost != "" {
		req, err := http.NewRequestWithContext(ctx2, http.MethodGet, bs.emulatorObjectMediaURL(key), nil)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed creating emulator download request: %w", err)
		}
		resp, err := bs.httpClient.Do(req)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed emulator download request: %w", err)
		}
		if resp.StatusCode == http.StatusNotFound {
			_ = resp.Body.Close()
			cancel()
			return nil, ErrObjectNotFound
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			_ = resp.Body.Close()
			cancel()
			return nil, fmt.Errorf("emulator download failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
		return &readCloserWithCancel{ReadCloser: resp.Body, cancel: cancel}, nil
	}

	r, err := bs.storageClient.Bucket(bs.bucket).Object(key).NewReader(ctx2)
	if err != nil {
		cancel()
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to open GCS reader: %w", err)
	}
	return &readCloserWithCancel{ReadCloser: r, cancel: cancel}, nil
}

func (bs *bucketService) Close() error {
	return bs.storageClient.Close()
}

func (bs *bucketService) emulatorObjectMediaURL(key string) string {
	return fmt.Sprintf(
		"%s/storage/v1/b/%s/o/%s?alt=media",
		bs.emulatorHost,
		url.PathEscape(bs.bucket),
		url.PathEscape(key),
	)
}

type readCloserWithCancel struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (r *readCloserWithCancel) Close() error {
	err := r.ReadCloser.Close()
	if r.cancel != nil {
		r.cancel()
	}
	return err
}

func contentTypeForKey(key string) string {
	s := strings.ToLower(strings.TrimSpace(key))
	if i := strings.Index(s, "?"); i >= 0 {
		s = s[:i]
	}
	switch {
	case strings.HasSuffix(s, ".docx"):
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case strings.HasSuffix(s, ".json"):
		return "application/json"
	case strings.HasSuffix(s, ".txt"):
		return "text/plain; charset=utf-8"
	default:
		return ""
	}
}
