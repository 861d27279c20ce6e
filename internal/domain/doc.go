// Package domain contains the core entities and error taxonomy for savekeeper.
//
// This is the innermost layer: it has no dependencies on the filesystem,
// logging, or the CLI, and only describes what a save is and which ways an
// operation on the store can fail.
//
// # Entities
//
//   - [Save]: a named, timestamped snapshot of a directory tree
//   - [Location]: where a save currently lives (active or trashed)
//   - [BackupInfo]: the single pre-load safety copy, if one exists
//   - [Meta]: the JSON marker persisted alongside each snapshot
package domain
