package rekordbox_test

import (
	"strings"
	"testing"

	"github.com/ohFRY/cratetools/rekordbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `<?xml version="1.0" encoding="UTF-8"?>
<DJ_PLAYLISTS Version="1.0.0">
  <PRODUCT Name="rekordbox" Version="6.7.4" Company="AlphaTheta"/>
  <COLLECTION Entries="3">
    <TRACK TrackID="1" Name="Valvable" Artist="Luke Vibert"
           AverageBpm="95.40" Tonality="5A"
           Location="file://localhost/Users/dj/Music/Valvable.mp3"/>
    <TRACK TrackID="2" Name="No Key" Artist="Someone"
           AverageBpm="128.00"
           Location="file://localhost/Users/dj/Music/NoKey.mp3"/>
    <TRACK TrackID="3" Name="Sharons Tone" Artist="Luke Vibert"
           AverageBpm="127.90" Tonality="8A"
           Location="file://localhost/Users/dj/My%20Music/Sharons%20Tone.mp3"/>
  </COLLECTION>
  <PLAYLISTS/>
</DJ_PLAYLISTS>`

func TestParseCollection(t *testing.T) {
	tracks, err := rekordbox.ParseCollection(strings.NewReader(sampleExport))
	require.NoError(t, err)

	// the track without a Tonality is skipped, not an error
	require.Len(t, tracks, 2)
	assert.Equal(t, "Valvable", tracks[0].Name)
	assert.Equal(t, "Luke Vibert", tracks[0].Artist)
	assert.Equal(t, "95.40", tracks[0].AverageBpm)
	assert.Equal(t, "5A", tracks[0].Tonality)
	assert.Equal(t, "file://localhost/Users/dj/Music/Valvable.mp3", tracks[0].Location)
}

func TestParseCollectionMissing(t *testing.T) {
	_, err := rekordbox.ParseCollection(strings.NewReader(`<DJ_PLAYLISTS><PLAYLISTS/></DJ_PLAYLISTS>`))
	assert.ErrorIs(t, err, rekordbox.ErrNoCollection)

	_, err = rekordbox.ParseCollection(strings.NewReader(`not xml`))
	assert.Error(t, err)
}

func TestResolveLocation(t *testing.T) {
	for _, tt := range []struct {
		raw      string
		platform rekordbox.Platform
		want     string
	}{
		{"file://localhost/Users/dj/Music/track.mp3", rekordbox.POSIX, "/Users/dj/Music/track.mp3"},
		{"file:///Users/dj/Music/track.mp3", rekordbox.POSIX, "/Users/dj/Music/track.mp3"},
		{"/Users/dj/Music/track.mp3", rekordbox.POSIX, "/Users/dj/Music/track.mp3"},
		{"file://localhost/Users/dj/My%20Music/tr%C3%A4ck.mp3", rekordbox.POSIX, "/Users/dj/My Music/träck.mp3"},
		{"file://localhost/E:/Music/track.mp3", rekordbox.Windows, `E:\Music\track.mp3`},
		{"file://localhost/E:/My%20Music/track.mp3", rekordbox.Windows, `E:\My Music\track.mp3`},
		{"/no/drive/letter.mp3", rekordbox.Windows, `\no\drive\letter.mp3`},
	} {
		assert.Equal(t, tt.want, rekordbox.ResolveLocation(tt.raw, tt.platform), "raw %q", tt.raw)
	}
}

func TestResolveLocationTotal(t *testing.T) {
	// malformed percent escapes come back undecoded rather than failing
	assert.Equal(t, "/Users/dj/bad%2", rekordbox.ResolveLocation("file://localhost/Users/dj/bad%2", rekordbox.POSIX))
	assert.Equal(t, "", rekordbox.ResolveLocation("", rekordbox.POSIX))
}

func TestParsePlatform(t *testing.T) {
	p, err := rekordbox.ParsePlatform("windows")
	require.NoError(t, err)
	assert.Equal(t, rekordbox.Windows, p)

	p, err = rekordbox.ParsePlatform("posix")
	require.NoError(t, err)
	assert.Equal(t, rekordbox.POSIX, p)

	_, err = rekordbox.ParsePlatform("beos")
	assert.Error(t, err)
}
