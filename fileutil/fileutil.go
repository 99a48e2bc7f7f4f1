package fileutil

import (
	"io/fs"
	"path/filepath"
)

// WalkFiles calls fn for every regular file under root accepted by match.
// Walking a plain file works too, so callers can take files and directories
// alike on the command line.
func WalkFiles(root string, match func(path string) bool, fn func(path string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !match(path) {
			return nil
		}
		return fn(path)
	})
}
