package cratetools

import (
	"fmt"
	"os"

	"github.com/ohFRY/cratetools/rekordbox"
	"github.com/ohFRY/cratetools/tagpolicy"
	"github.com/ohFRY/cratetools/tags"
)

// ImportFile applies an overwrite plan to the file at path: the stale
// BPM/key frames go, the planned values land, everything else is untouched.
// Saves as ID3v2.3 so older players and hardware still read the frames.
func ImportFile(path string, plan tagpolicy.Overwrite) error {
	file, err := tags.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	file.SetVersion(tags.ID3v23)
	for _, key := range plan.StaleKeys() {
		file.Delete(key)
	}
	file.SetText(tagpolicy.KeyBPM, plan.BPMText())
	file.SetText(tagpolicy.KeyInitialKey, plan.Key)
	file.SetUserText(tagpolicy.DescInitialKey, plan.Key)

	if err := file.Save(); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// MissingLog collects the tracks whose resolved locations don't exist on
// disk, one "Artist - Name" line each, for following up after a run.
type MissingLog struct {
	f *os.File
}

// CreateMissingLog truncates any log left over from a previous run.
func CreateMissingLog(path string) (*MissingLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create missing log: %w", err)
	}
	return &MissingLog{f: f}, nil
}

func (l *MissingLog) Add(track rekordbox.Track) error {
	_, err := fmt.Fprintf(l.f, "%s - %s\n", track.Artist, track.Name)
	return err
}

func (l *MissingLog) Close() error {
	return l.f.Close()
}
