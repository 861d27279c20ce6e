package domain

import "time"

// Location identifies which collection a save currently belongs to.
type Location int

const (
	// Active saves are eligible for load and remove.
	Active Location = iota

	// Trashed saves are soft-deleted; they can be restored or permanently
	// deleted, nothing else.
	Trashed
)

// String returns the collection name as used in CLI output.
func (l Location) String() string {
	switch l {
	case Active:
		return "active"
	case Trashed:
		return "trashed"
	default:
		return "unknown"
	}
}

// SourceKind records how a save's contents were captured.
type SourceKind string

const (
	// SourceLive marks a snapshot of the configured game directory.
	SourceLive SourceKind = "live"

	// SourceImport marks a snapshot of a caller-supplied directory.
	SourceImport SourceKind = "import"
)

// Save represents a single named snapshot of a directory tree.
// CreatedAt is assigned once at capture time and never changes; moving a
// save between collections preserves both name and timestamp.
type Save struct {
	// Name is the user-supplied identifier, unique store-wide.
	Name string

	// CreatedAt is the capture timestamp.
	CreatedAt time.Time

	// Location is where the save currently lives.
	Location Location

	// Source records whether the snapshot came from the live game
	// directory or an imported external directory.
	Source SourceKind

	// Path is the absolute path of the save's subtree in the store.
	Path string
}

// BackupInfo describes the single pre-load safety copy. The store exposes
// the backup slot as an optional value: absent until the first load, then
// replaced wholesale by every subsequent load.
type BackupInfo struct {
	// Path is the absolute path of the backup data tree.
	Path string

	// CapturedAt is when the backup was taken, i.e. the moment of the
	// most recent successful load.
	CapturedAt time.Time
}

// Meta is the JSON marker written inside each save's subtree. It is the
// persistent source of truth for identity and capture time, so timestamps
// survive process restarts and moves between collections.
type Meta struct {
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	Source    SourceKind `json:"source"`
}

// ToSave converts a Meta read from disk into a Save entity.
func (m Meta) ToSave(loc Location, path string) Save {
	return Save{
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		Location:  loc,
		Source:    m.Source,
		Path:      path,
	}
}
