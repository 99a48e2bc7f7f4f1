// Package junkfile finds OS and software generated junk in a directory
// tree. Patterns are globs matched against basenames only.
package junkfile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v2"
)

var defaultPatterns = []string{
	// macOS
	"._*",          // AppleDouble resource forks
	".DS_Store",
	".AppleDouble",
	".__MACOSX",
	".fseventsd",
	".Spotlight-V100",
	".TemporaryItems",
	".Trashes",
	".VolumeIcon.icns",
	".com.apple.*",
	".apdisk",

	// Windows
	"Thumbs.db",
	"Desktop.ini",
	"ehthumbs.db",
	"$RECYCLE.BIN",
	"System Volume Information",

	// sync clients and NAS thumbnailers
	".dropbox",
	".dropbox.attr",
	"@eaDir",
	".@__thumb",
	".bzvol",

	// stray temp files
	"*.tmp",
	"*.temp",
}

func DefaultPatterns() []string {
	return slices.Clone(defaultPatterns)
}

// Match reports whether the basename of path matches any pattern. A
// malformed pattern matches nothing.
func Match(path string, patterns []string) bool {
	base := filepath.Base(path)
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
	}
	return false
}

// Find walks root and collects matching files and directories. A matched
// directory is collected once and not descended into, it gets removed
// whole. The root itself is never a candidate.
func Find(root string, patterns []string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if !Match(d.Name(), patterns) {
			return nil
		}
		found = append(found, path)
		if d.IsDir() {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %q: %w", root, err)
	}
	return found, nil
}

// Remove deletes path, recursively when it is a directory, and reports
// which it was.
func Remove(path string) (dir bool, err error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return true, os.RemoveAll(path)
	}
	return false, os.Remove(path)
}

// LoadPatterns reads extra patterns from a YAML file.
//
//	patterns:
//	  - "*.bak"
//	  - ".syncthing*"
func LoadPatterns(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open patterns file: %w", err)
	}
	defer f.Close()

	var res struct {
		Patterns []string `yaml:"patterns"`
	}
	if err := yaml.NewDecoder(f).Decode(&res); err != nil {
		return nil, fmt.Errorf("parse patterns file: %w", err)
	}
	return res.Patterns, nil
}
