package fileutil_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ohFRY/cratetools/fileutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkFiles(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"a.mp3", "sub/b.mp3", "sub/cover.jpg"} {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	var seen []string
	err := fileutil.WalkFiles(root,
		func(path string) bool { return strings.HasSuffix(path, ".mp3") },
		func(path string) error {
			rel, _ := filepath.Rel(root, path)
			seen = append(seen, rel)
			return nil
		})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.mp3", filepath.Join("sub", "b.mp3")}, seen)
}

func TestWalkFilesSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.mp3")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	var seen []string
	err := fileutil.WalkFiles(path,
		func(string) bool { return true },
		func(p string) error { seen = append(seen, p); return nil })
	require.NoError(t, err)
	assert.Equal(t, []string{path}, seen)
}
