// Package tagpolicy decides which ID3 frames survive a cleanup or import
// pass. It only looks at frame keys, never at frame payloads, and performs
// no I/O. Keys use the qualified form "TXXX:<descriptor>" for user defined
// text frames.
package tagpolicy

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

var ErrInvalidBPM = errors.New("invalid bpm")

// Frame keys owned by the overwrite policy.
const (
	KeyBPM         = "TBPM"
	KeyInitialKey  = "TKEY"
	DescBPM        = "BPM"
	DescInitialKey = "INITIALKEY"

	KeyUserBPM        = "TXXX:" + DescBPM
	KeyUserInitialKey = "TXXX:" + DescInitialKey
)

const coverArtPrefix = "APIC"

// AllowList is a set of frame keys that a cleanup pass preserves.
type AllowList map[string]struct{}

func NewAllowList(keys ...string) AllowList {
	l := make(AllowList, len(keys))
	for _, k := range keys {
		l.Add(k)
	}
	return l
}

func (l AllowList) Add(key string)           { l[key] = struct{}{} }
func (l AllowList) Contains(key string) bool { _, ok := l[key]; return ok }

// DefaultAllowList is the reference keep-list: the standard library-facing
// frames plus the TXXX variants some players read instead.
func DefaultAllowList() AllowList {
	return NewAllowList(
		"TALB", // album
		"TPE2", // album artist
		"TPE1", // artist
		"TCMP", // compilation
		"APIC", // cover
		"TRCK", // track
		"TIT2", // title
		"TDRC", "TYER", // year, v2.4 and v2.3 forms
		"COMM", // comment
		"TCON", // genre
		"TIT1", // grouping
		"TCOM", // composer
		"TMOO", // mood
		"TPOS", // disc number
		KeyBPM,
		KeyInitialKey,

		KeyUserBPM,
		KeyUserInitialKey,
		"TXXX:MOOD",
		"TXXX:GROUPING",
		"TXXX:ALBUMARTIST",
		"TXXX:COMPILATION",
	)
}

// IsCoverArt reports whether key belongs to the attached picture family,
// which a cleanup pass never touches.
func IsCoverArt(key string) bool {
	return key == coverArtPrefix || strings.HasPrefix(key, coverArtPrefix+":")
}

// Reconcile returns the keys to delete so that only allow-listed keys and
// cover art remain. An empty collection is a no-op, not an error. The caller
// performs the deletions; changed signals whether a write is needed at all.
func Reconcile(keys []string, keep AllowList) (toDelete []string, changed bool) {
	for _, key := range keys {
		if IsCoverArt(key) {
			continue
		}
		if keep.Contains(key) {
			continue
		}
		toDelete = append(toDelete, key)
	}
	return toDelete, len(toDelete) > 0
}

// Overwrite is the plan for one BPM/key import: delete the stale frames,
// write these values.
type Overwrite struct {
	BPM int
	Key string
}

// PlanOverwrite validates a raw tempo string and key code. The tempo is
// truncated toward zero, not rounded: an exported average of 127.9 is still
// 127 whole beats per minute.
func PlanOverwrite(bpmRaw, key string) (Overwrite, error) {
	bpm, err := strconv.ParseFloat(strings.TrimSpace(bpmRaw), 64)
	if err != nil || math.IsNaN(bpm) || math.IsInf(bpm, 0) {
		return Overwrite{}, fmt.Errorf("%w: %q", ErrInvalidBPM, bpmRaw)
	}
	return Overwrite{BPM: int(bpm), Key: key}, nil
}

// StaleKeys are the frames an overwrite deletes before writing. Deleting
// the written keys too is what makes an import idempotent.
func (o Overwrite) StaleKeys() []string {
	return []string{KeyBPM, KeyInitialKey, KeyUserBPM, KeyUserInitialKey}
}

func (o Overwrite) BPMText() string {
	return strconv.Itoa(o.BPM)
}

// LoadAllowList reads a keep-list from a YAML policy file, so the policy is
// data that can be swapped without rebuilding.
//
//	keep:
//	  - TALB
//	  - TXXX:BPM
func LoadAllowList(path string) (AllowList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open policy file: %w", err)
	}
	defer f.Close()

	var res struct {
		Keep []string `yaml:"keep"`
	}
	if err := yaml.NewDecoder(f).Decode(&res); err != nil {
		return nil, fmt.Errorf("parse policy file: %w", err)
	}
	return NewAllowList(res.Keep...), nil
}
