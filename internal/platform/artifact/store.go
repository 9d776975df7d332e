package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/yungbote/sns-consult-backend/internal/platform/gcp"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
)

var ErrNotFound = errors.New("artifact not found")

// Store keeps generated documents by key. Put replaces any previous object
// atomically: concurrent writers race, the last one wins, and readers never
// observe a partial object.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Close releases the backing client. The store is unusable afterwards.
	Close() error
}

// New builds the store selected by cfg.
func New(ctx context.Context, log *logger.Logger, cfg Config) (Store, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate artifact store config: %w", err)
	}
	log.Info("artifact store selected", "mode", cfg.Mode, "mode_source", cfg.ModeSource(), "dir", cfg.Dir, "bucket", cfg.Bucket)

	switch cfg.Mode {
	case ModeLocal:
		return NewLocalStore(cfg.Dir)
	default:
		emulator := ""
		if cfg.Mode == ModeGCSEmulator {
			emulator = cfg.EmulatorHost
		}
		bs, err := gcp.NewBucketService(ctx, log, gcp.BucketConfig{Name: cfg.Bucket, EmulatorHost: emulator})
		if err != nil {
			return nil, err
		}
		return NewBucketStore(bs), nil
	}
}
