package blob

import (
	"context"

	"recipekeep/internal/config"
	"recipekeep/internal/logger"
)

// NewStorage selects a [Storage] backend from the blob configuration:
// an S3-compatible endpoint when one is configured, otherwise a local
// directory.
func NewStorage(ctx context.Context, cfg config.Blob, log *logger.Logger) (Storage, error) {
	if cfg.LocalDir != "" {
		return NewFSStorage(cfg.LocalDir)
	}
	return NewS3Storage(ctx, cfg, log)
}
