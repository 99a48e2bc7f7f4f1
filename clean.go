package cratetools

import (
	"fmt"

	"github.com/ohFRY/cratetools/tagpolicy"
	"github.com/ohFRY/cratetools/tags"
)

// CleanResult reports what a cleanup pass removed, or would remove when
// dry running.
type CleanResult struct {
	Removed []string
}

// CleanFile deletes every tag of the file at path not covered by keep,
// leaving cover art alone. An untagged or already-clean file is a no-op and
// nothing is written. Saves as ID3v2.4.
func CleanFile(path string, keep tagpolicy.AllowList, dryRun bool) (CleanResult, error) {
	file, err := tags.Open(path)
	if err != nil {
		return CleanResult{}, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	toDelete, changed := tagpolicy.Reconcile(file.Keys(), keep)
	if !changed || dryRun {
		return CleanResult{Removed: toDelete}, nil
	}

	for _, key := range toDelete {
		file.Delete(key)
	}
	file.SetVersion(tags.ID3v24)
	if err := file.Save(); err != nil {
		return CleanResult{}, fmt.Errorf("save: %w", err)
	}
	return CleanResult{Removed: toDelete}, nil
}
