package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mlahtinen/savekeeper/internal/domain"
)

const (
	savesDirName  = "saves"
	trashDirName  = "trash"
	backupDirName = "backup"
	tmpDirName    = "tmp"

	dataDirName = "data"
)

// Store manages the save collections under a single root directory:
// saves/ for active snapshots, trash/ for soft-deleted ones, backup/ for
// the single pre-load safety copy, and tmp/ for in-flight staging.
//
// The filesystem is the database: a save exists exactly when its subtree
// exists, and its collection is the directory it sits in. The store assumes
// exclusive access to the root and the live directory for the duration of
// an operation; concurrent external writers are out of contract.
type Store struct {
	root    string
	liveDir string
	log     zerolog.Logger
}

// Option configures optional behavior of a Store.
type Option func(*Store)

// WithLogger sets the logger used for operational logging.
// The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.log = logger }
}

// New creates a Store rooted at root, snapshotting and restoring liveDir.
// The collection directories are created on demand; New only requires that
// the root itself can be created.
func New(root, liveDir string, opts ...Option) (*Store, error) {
	s := &Store{
		root:    root,
		liveDir: liveDir,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create store root %s: %w", root, domain.ErrStoreUnavailable)
	}
	return s, nil
}

// LiveDir returns the live game-state directory this store operates on.
func (s *Store) LiveDir() string { return s.liveDir }

// Root returns the store root directory.
func (s *Store) Root() string { return s.root }

func (s *Store) savesDir() string  { return filepath.Join(s.root, savesDirName) }
func (s *Store) trashDir() string  { return filepath.Join(s.root, trashDirName) }
func (s *Store) backupDir() string { return filepath.Join(s.root, backupDirName) }
func (s *Store) tmpDir() string    { return filepath.Join(s.root, tmpDirName) }

// collectionDir maps a location to its directory.
func (s *Store) collectionDir(loc domain.Location) string {
	if loc == domain.Trashed {
		return s.trashDir()
	}
	return s.savesDir()
}

// savePath returns the subtree path a save named name would occupy in loc.
func (s *Store) savePath(loc domain.Location, name string) string {
	return filepath.Join(s.collectionDir(loc), name)
}

// locate reports where a save named name currently lives, if anywhere.
// Derived from directory presence on every call rather than cached.
func (s *Store) locate(name string) (domain.Location, bool) {
	if dirExists(s.savePath(domain.Active, name)) {
		return domain.Active, true
	}
	if dirExists(s.savePath(domain.Trashed, name)) {
		return domain.Trashed, true
	}
	return domain.Active, false
}

// get reads the save named name from loc, rebuilding the entity from its
// on-disk marker.
func (s *Store) get(loc domain.Location, name string) (domain.Save, error) {
	path := s.savePath(loc, name)
	meta, err := readMeta(path)
	if err != nil {
		return domain.Save{}, fmt.Errorf("read save %q: %w: %v", name, domain.ErrStoreUnavailable, err)
	}
	return meta.ToSave(loc, path), nil
}

// validateName rejects names that would escape the collection directories
// or collide with the store's own layout.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidName)
	}
	if name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", domain.ErrInvalidName, name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", domain.ErrInvalidName, name)
	}
	return nil
}

func dirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
