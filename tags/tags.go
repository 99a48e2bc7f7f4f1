// Package tags wraps bogem/id3v2 to expose ID3 frames as flat, qualified
// keys. User defined text frames appear as "TXXX:<descriptor>" so that a
// policy can address a single TXXX frame without seeing the others.
package tags

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// ID3v2 revisions selectable at save time. v2.3 for compatibility with
// older players, v2.4 otherwise.
const (
	ID3v23 byte = 3
	ID3v24 byte = 4
)

const frameUserText = "TXXX"

func CanRead(absPath string) bool {
	return strings.EqualFold(filepath.Ext(absPath), ".mp3")
}

type File struct {
	tag *id3v2.Tag
}

// Open parses the ID3v2 tag of the file at path. A file with no tag at all
// opens fine and reports no keys.
func Open(path string) (*File, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	return &File{tag: tag}, nil
}

// Keys returns the qualified frame keys present, sorted. TXXX frames
// contribute one key per descriptor, every other frame ID appears once.
func (f *File) Keys() []string {
	var keys []string
	for id, frames := range f.tag.AllFrames() {
		if id != frameUserText {
			keys = append(keys, id)
			continue
		}
		for _, fr := range frames {
			udt, ok := fr.(id3v2.UserDefinedTextFrame)
			if !ok {
				continue
			}
			keys = append(keys, id+":"+udt.Description)
		}
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}

// Delete removes the frames matching a qualified key. Deleting
// "TXXX:<descriptor>" leaves the other TXXX frames in place.
func (f *File) Delete(key string) {
	if desc, ok := strings.CutPrefix(key, frameUserText+":"); ok {
		f.deleteUserText(desc)
		return
	}
	f.tag.DeleteFrames(key)
}

// bogem has no per-descriptor delete, so drop them all and put back the
// ones that don't match.
func (f *File) deleteUserText(desc string) {
	frames := f.tag.GetFrames(frameUserText)
	f.tag.DeleteFrames(frameUserText)
	for _, fr := range frames {
		udt, ok := fr.(id3v2.UserDefinedTextFrame)
		if !ok || udt.Description == desc {
			continue
		}
		f.tag.AddUserDefinedTextFrame(udt)
	}
}

// SetText replaces the text frame with the given ID.
func (f *File) SetText(id, value string) {
	f.tag.DeleteFrames(id)
	f.tag.AddTextFrame(id, f.tag.DefaultEncoding(), value)
}

// SetUserText replaces the TXXX frame with the given descriptor.
func (f *File) SetUserText(desc, value string) {
	f.deleteUserText(desc)
	f.tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    f.tag.DefaultEncoding(),
		Description: desc,
		Value:       value,
	})
}

func (f *File) Text(id string) string {
	return f.tag.GetTextFrame(id).Text
}

func (f *File) UserText(desc string) string {
	for _, fr := range f.tag.GetFrames(frameUserText) {
		if udt, ok := fr.(id3v2.UserDefinedTextFrame); ok && udt.Description == desc {
			return udt.Value
		}
	}
	return ""
}

// SetVersion selects the ID3v2 revision written by Save. It also switches
// the text encoding of subsequent writes, since v2.3 predates UTF-8 frames.
func (f *File) SetVersion(version byte) {
	f.tag.SetVersion(version)
}

func (f *File) Save() error {
	return f.tag.Save()
}

func (f *File) Close() error {
	return f.tag.Close()
}
