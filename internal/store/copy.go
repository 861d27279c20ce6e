package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	cp "github.com/otiai10/copy"

	"github.com/mlahtinen/savekeeper/internal/domain"
)

// copyTree recursively copies the directory tree at src to dst, preserving
// file modes and timestamps. Cancellation is checked per entry; a canceled
// context aborts the copy with the context's error.
func copyTree(ctx context.Context, src, dst string) error {
	opts := cp.Options{
		PreserveTimes: true,
		Skip: func(srcinfo os.FileInfo, src, dest string) (bool, error) {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			return false, nil
		},
	}
	return cp.Copy(src, dst, opts)
}

// stageDir creates a fresh staging directory under tmp/. Callers must
// remove it on every exit path; anything committed out of it is renamed
// away first, so removal of the leftover staging dir is always safe.
func (s *Store) stageDir() (string, error) {
	if err := os.MkdirAll(s.tmpDir(), 0o755); err != nil {
		return "", fmt.Errorf("create staging area: %w", domain.ErrStoreUnavailable)
	}
	stage := filepath.Join(s.tmpDir(), uuid.NewString())
	if err := os.Mkdir(stage, 0o755); err != nil {
		return "", fmt.Errorf("create staging dir: %w", domain.ErrStoreUnavailable)
	}
	return stage, nil
}
