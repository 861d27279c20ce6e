package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mlahtinen/savekeeper/internal/domain"
)

// Create captures the live game directory into a new active save named
// name. The source is only read, never mutated. On any failure the store
// is left exactly as it was: the snapshot is staged under tmp/ and renamed
// into saves/ only once fully written.
func (s *Store) Create(ctx context.Context, name string) (domain.Save, error) {
	return s.capture(ctx, name, s.liveDir, domain.SourceLive)
}

// Import is Create with an arbitrary caller-supplied source directory.
func (s *Store) Import(ctx context.Context, name, srcDir string) (domain.Save, error) {
	return s.capture(ctx, name, srcDir, domain.SourceImport)
}

func (s *Store) capture(ctx context.Context, name, src string, kind domain.SourceKind) (domain.Save, error) {
	if err := validateName(name); err != nil {
		return domain.Save{}, err
	}

	// Names are unique store-wide: a save in the trash blocks creation
	// just like an active one, so restore can never become ambiguous.
	if loc, ok := s.locate(name); ok {
		return domain.Save{}, fmt.Errorf("save %q already exists (%s): %w", name, loc, domain.ErrNameConflict)
	}

	fi, err := os.Stat(src)
	if err != nil || !fi.IsDir() {
		return domain.Save{}, fmt.Errorf("source %s: %w", src, domain.ErrSourceUnavailable)
	}

	stage, err := s.stageDir()
	if err != nil {
		return domain.Save{}, err
	}
	defer os.RemoveAll(stage)

	meta := domain.Meta{
		Name:      name,
		CreatedAt: time.Now(),
		Source:    kind,
	}
	if err := writeMeta(stage, meta); err != nil {
		return domain.Save{}, fmt.Errorf("write marker for %q: %w", name, domain.ErrCopyFailed)
	}
	if err := copyTree(ctx, src, filepath.Join(stage, dataDirName)); err != nil {
		return domain.Save{}, fmt.Errorf("snapshot %q from %s: %w: %v", name, src, domain.ErrCopyFailed, err)
	}

	if err := os.MkdirAll(s.savesDir(), 0o755); err != nil {
		return domain.Save{}, fmt.Errorf("create saves dir: %w", domain.ErrStoreUnavailable)
	}
	dest := s.savePath(domain.Active, name)
	if err := os.Rename(stage, dest); err != nil {
		return domain.Save{}, fmt.Errorf("commit save %q: %w: %v", name, domain.ErrCopyFailed, err)
	}

	s.log.Info().Str("save", name).Str("source", src).Msg("created save")
	return meta.ToSave(domain.Active, dest), nil
}
