package storage

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindAsset searches root recursively for a file with the given name,
// ignoring case, and returns its path. Used to resolve the bundled demo
// images during fresh-store seeding.
func FindAsset(root, name string) (string, bool) {
	var found string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable entries instead of aborting the search.
			return nil
		}
		if !d.IsDir() && strings.EqualFold(d.Name(), name) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found, found != ""
}
