// Package rekordbox reads rekordbox XML collection exports.
package rekordbox

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

var ErrNoCollection = errors.New("no collection in export")

// Track is one COLLECTION entry. Attribute values are kept raw, the tempo
// in particular stays a decimal string until an overwrite plan parses it.
type Track struct {
	Name       string `xml:"Name,attr"`
	Artist     string `xml:"Artist,attr"`
	AverageBpm string `xml:"AverageBpm,attr"`
	Tonality   string `xml:"Tonality,attr"`
	Location   string `xml:"Location,attr"`
}

type export struct {
	Collection *collection `xml:"COLLECTION"`
}

type collection struct {
	Tracks []Track `xml:"TRACK"`
}

// ParseCollection returns the tracks eligible for a tag import. Tracks
// missing any of tempo, key, or location are skipped silently, they are
// incomplete records, not failures.
func ParseCollection(r io.Reader) ([]Track, error) {
	var doc export
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	if doc.Collection == nil {
		return nil, ErrNoCollection
	}

	var tracks []Track
	for _, t := range doc.Collection.Tracks {
		if t.AverageBpm == "" || t.Tonality == "" || t.Location == "" {
			continue
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}
