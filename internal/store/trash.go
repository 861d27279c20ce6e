package store

import (
	"context"
	"fmt"
	"os"

	"github.com/mlahtinen/savekeeper/internal/domain"
)

// Remove soft-deletes an active save: its subtree is renamed from saves/
// into trash/, preserving name, capture time and contents. No data is
// copied. Remove never overwrites trash: a trashed save with the same name
// must be restored or permanently deleted first.
func (s *Store) Remove(ctx context.Context, name string) (domain.Save, error) {
	if err := validateName(name); err != nil {
		return domain.Save{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Save{}, err
	}

	src := s.savePath(domain.Active, name)
	if !dirExists(src) {
		if dirExists(s.savePath(domain.Trashed, name)) {
			return domain.Save{}, fmt.Errorf("save %q: %w", name, domain.ErrAlreadyTrashed)
		}
		return domain.Save{}, fmt.Errorf("save %q: %w", name, domain.ErrNotFound)
	}

	dest := s.savePath(domain.Trashed, name)
	if dirExists(dest) {
		return domain.Save{}, fmt.Errorf("trash already holds %q: %w", name, domain.ErrNameConflict)
	}

	save, err := s.get(domain.Active, name)
	if err != nil {
		return domain.Save{}, err
	}

	if err := os.MkdirAll(s.trashDir(), 0o755); err != nil {
		return domain.Save{}, fmt.Errorf("create trash dir: %w", domain.ErrStoreUnavailable)
	}
	if err := os.Rename(src, dest); err != nil {
		return domain.Save{}, fmt.Errorf("move %q to trash: %w: %v", name, domain.ErrStoreUnavailable, err)
	}

	s.log.Info().Str("save", name).Msg("moved save to trash")
	save.Location = domain.Trashed
	save.Path = dest
	return save, nil
}

// Restore is the inverse of Remove: a trashed save is renamed back into
// saves/, identity preserved. It never overwrites an active save.
func (s *Store) Restore(ctx context.Context, name string) (domain.Save, error) {
	if err := validateName(name); err != nil {
		return domain.Save{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Save{}, err
	}

	src := s.savePath(domain.Trashed, name)
	if !dirExists(src) {
		return domain.Save{}, fmt.Errorf("save %q not in trash: %w", name, domain.ErrNotFound)
	}

	dest := s.savePath(domain.Active, name)
	if dirExists(dest) {
		return domain.Save{}, fmt.Errorf("active save %q exists: %w", name, domain.ErrNameConflict)
	}

	save, err := s.get(domain.Trashed, name)
	if err != nil {
		return domain.Save{}, err
	}

	if err := os.MkdirAll(s.savesDir(), 0o755); err != nil {
		return domain.Save{}, fmt.Errorf("create saves dir: %w", domain.ErrStoreUnavailable)
	}
	if err := os.Rename(src, dest); err != nil {
		return domain.Save{}, fmt.Errorf("restore %q from trash: %w: %v", name, domain.ErrStoreUnavailable, err)
	}

	s.log.Info().Str("save", name).Msg("restored save from trash")
	save.Location = domain.Active
	save.Path = dest
	return save, nil
}

// Delete permanently removes a trashed save. Active saves cannot be
// deleted; the trash is a deliberate two-step gate against accidental
// data loss. There is no undo.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	src := s.savePath(domain.Trashed, name)
	if !dirExists(src) {
		if dirExists(s.savePath(domain.Active, name)) {
			return fmt.Errorf("save %q is active, not trashed: %w", name, domain.ErrNotTrashed)
		}
		return fmt.Errorf("save %q: %w", name, domain.ErrNotFound)
	}

	if err := os.RemoveAll(src); err != nil {
		return fmt.Errorf("delete %q: %w: %v", name, domain.ErrStoreUnavailable, err)
	}

	s.log.Info().Str("save", name).Msg("permanently deleted save")
	return nil
}
