package domain

import "errors"

// Domain errors represent the failure modes of save store operations.
// These errors are returned by the store API and can be checked with
// errors.Is; operations wrap them with the save name for context.
var (
	// ErrInvalidName is returned when a save name is empty or contains
	// path separators.
	ErrInvalidName = errors.New("savekeeper: invalid save name")

	// ErrNameConflict is returned when a save with the requested name
	// already exists where the operation would place one.
	ErrNameConflict = errors.New("savekeeper: save name already in use")

	// ErrNotFound is returned when no save with the given name exists in
	// the collection the operation targets.
	ErrNotFound = errors.New("savekeeper: save not found")

	// ErrAlreadyTrashed is returned by remove when the save is already
	// in the trash.
	ErrAlreadyTrashed = errors.New("savekeeper: save already trashed")

	// ErrNotTrashed is returned by permanent delete when the save is
	// still active; only trashed saves may be deleted.
	ErrNotTrashed = errors.New("savekeeper: save not trashed")

	// ErrSaveIsTrashed is returned by load when the named save exists
	// but sits in the trash; restore it first.
	ErrSaveIsTrashed = errors.New("savekeeper: save is trashed")

	// ErrSourceUnavailable is returned when the directory to snapshot
	// does not exist or cannot be read.
	ErrSourceUnavailable = errors.New("savekeeper: source directory unavailable")

	// ErrStoreUnavailable is returned when the store root cannot be
	// created or read.
	ErrStoreUnavailable = errors.New("savekeeper: store root unavailable")

	// ErrCopyFailed is returned when capturing a snapshot fails partway.
	// The store is left exactly as it was before the call.
	ErrCopyFailed = errors.New("savekeeper: snapshot copy failed")

	// ErrBackupFailed is returned when the pre-load backup cannot be
	// taken; the live directory is left untouched.
	ErrBackupFailed = errors.New("savekeeper: pre-load backup failed")

	// ErrLoadFailed is returned when replacing the live directory fails
	// after the backup was taken. The live directory state is undefined
	// but recoverable from the backup slot.
	ErrLoadFailed = errors.New("savekeeper: load failed")

	// ErrNoBackup is returned when the backup slot is queried while empty.
	ErrNoBackup = errors.New("savekeeper: no backup present")
)
