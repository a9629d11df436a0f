// Package storage handles durable persistence for the photo library: the
// whole-store JSON snapshot and discovery of the bundled demo assets.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aprildenise/photos/internal/models"
)

const snapshotVersion = 1

// Meta records how and when a snapshot was produced.
type Meta struct {
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
}

// Snapshot is the full serialized store graph: every user with all their
// albums, photos and tags.
type Snapshot struct {
	Meta  Meta           `json:"_meta"`
	Users []*models.User `json:"users"`
}

// SnapshotSave writes the whole store to path atomically: the JSON is first
// written to a temporary file next to path and then renamed over the previous
// snapshot, so an interrupted write never corrupts the existing file.
func SnapshotSave(path string, users []*models.User) error {
	snap := Snapshot{
		Meta:  Meta{Version: snapshotVersion, SavedAt: time.Now()},
		Users: users,
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// SnapshotLoad reads and decodes the snapshot at path. Callers treat any
// error as "no usable snapshot" and fall back to a fresh store.
func SnapshotLoad(path string) (Snapshot, error) {
	var snap Snapshot
	f, err := os.Open(path)
	if err != nil {
		return snap, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return snap, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}
