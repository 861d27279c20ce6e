package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/mlahtinen/savekeeper/internal/domain"
)

const metaFileName = "meta.json"

func metaFile(saveDir string) string { return filepath.Join(saveDir, metaFileName) }

func readMeta(saveDir string) (domain.Meta, error) {
	b, err := os.ReadFile(metaFile(saveDir))
	if err != nil {
		return domain.Meta{}, err
	}
	var m domain.Meta
	if err := json.Unmarshal(b, &m); err != nil {
		return domain.Meta{}, err
	}
	return m, nil
}

// writeMeta persists the marker atomically (temp file, then rename) so a
// crash mid-write never leaves a save with a corrupt marker.
func writeMeta(saveDir string, m domain.Meta) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	tmp := metaFile(saveDir) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, metaFile(saveDir))
}

// backupMeta is the marker for the single backup slot. The slot has no
// identity beyond "the current backup", so only the capture time is kept.
type backupMeta struct {
	CapturedAt time.Time `json:"captured_at"`
}

func readBackupMeta(dir string) (backupMeta, error) {
	b, err := os.ReadFile(metaFile(dir))
	if err != nil {
		return backupMeta{}, err
	}
	var m backupMeta
	if err := json.Unmarshal(b, &m); err != nil {
		return backupMeta{}, err
	}
	return m, nil
}

func writeBackupMeta(dir string, m backupMeta) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	tmp := metaFile(dir) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, metaFile(dir))
}
