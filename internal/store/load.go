package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mlahtinen/savekeeper/internal/domain"
)

// Load restores the named active save into the live game directory.
//
// The live directory's current contents are first captured into the single
// backup slot, replacing any prior backup. Only after the backup is in
// place is the live directory cleared and rewritten from the save. If the
// backup step fails the live directory is untouched. If the rewrite fails
// partway, the live directory is in an undefined state and the backup slot
// holds the full pre-load contents for manual recovery; this is the one
// operation that mutates state outside the store's transactional boundary.
//
// Load never changes the save itself; it returns the refreshed backup slot.
func (s *Store) Load(ctx context.Context, name string) (domain.BackupInfo, error) {
	if err := validateName(name); err != nil {
		return domain.BackupInfo{}, err
	}

	loc, ok := s.locate(name)
	if !ok {
		return domain.BackupInfo{}, fmt.Errorf("save %q: %w", name, domain.ErrNotFound)
	}
	if loc == domain.Trashed {
		return domain.BackupInfo{}, fmt.Errorf("save %q: %w", name, domain.ErrSaveIsTrashed)
	}

	if !dirExists(s.liveDir) {
		return domain.BackupInfo{}, fmt.Errorf("live directory %s missing: %w", s.liveDir, domain.ErrBackupFailed)
	}

	// Step 1: capture the live directory into the backup slot. Staged
	// first so a failed copy never destroys the previous backup.
	capturedAt := time.Now()
	stage, err := s.stageDir()
	if err != nil {
		return domain.BackupInfo{}, err
	}
	defer os.RemoveAll(stage)

	if err := writeBackupMeta(stage, backupMeta{CapturedAt: capturedAt}); err != nil {
		return domain.BackupInfo{}, fmt.Errorf("write backup marker: %w", domain.ErrBackupFailed)
	}
	if err := copyTree(ctx, s.liveDir, filepath.Join(stage, dataDirName)); err != nil {
		return domain.BackupInfo{}, fmt.Errorf("backup live directory: %w: %v", domain.ErrBackupFailed, err)
	}
	if err := os.RemoveAll(s.backupDir()); err != nil {
		return domain.BackupInfo{}, fmt.Errorf("replace previous backup: %w: %v", domain.ErrBackupFailed, err)
	}
	if err := os.Rename(stage, s.backupDir()); err != nil {
		return domain.BackupInfo{}, fmt.Errorf("commit backup: %w: %v", domain.ErrBackupFailed, err)
	}

	// Step 2: replace the live directory. Failure past this point leaves
	// the live directory undefined; the backup just taken is the recovery
	// path.
	saveData := filepath.Join(s.savePath(domain.Active, name), dataDirName)
	if err := os.RemoveAll(s.liveDir); err != nil {
		return domain.BackupInfo{}, fmt.Errorf("clear live directory: %w: %v", domain.ErrLoadFailed, err)
	}
	if err := copyTree(ctx, saveData, s.liveDir); err != nil {
		return domain.BackupInfo{}, fmt.Errorf("restore save %q into live directory: %w: %v", name, domain.ErrLoadFailed, err)
	}

	info := domain.BackupInfo{
		Path:       filepath.Join(s.backupDir(), dataDirName),
		CapturedAt: capturedAt,
	}
	s.log.Info().Str("save", name).Time("backup_captured_at", capturedAt).Msg("loaded save")
	return info, nil
}

// Backup reports the current backup slot. The slot is an optional value:
// absent until the first successful load, then replaced by each one after.
func (s *Store) Backup(ctx context.Context) (domain.BackupInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.BackupInfo{}, err
	}
	if !dirExists(s.backupDir()) {
		return domain.BackupInfo{}, domain.ErrNoBackup
	}
	meta, err := readBackupMeta(s.backupDir())
	if err != nil {
		return domain.BackupInfo{}, fmt.Errorf("read backup marker: %w", domain.ErrStoreUnavailable)
	}
	return domain.BackupInfo{
		Path:       filepath.Join(s.backupDir(), dataDirName),
		CapturedAt: meta.CapturedAt,
	}, nil
}
