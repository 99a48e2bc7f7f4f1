package rekordbox

import (
	"fmt"
	"net/url"
	"runtime"
	"strings"
)

// Platform selects the path conventions ResolveLocation targets.
type Platform int

const (
	POSIX Platform = iota
	Windows
)

func (p Platform) String() string {
	if p == Windows {
		return "windows"
	}
	return "posix"
}

func ParsePlatform(s string) (Platform, error) {
	switch s {
	case "posix":
		return POSIX, nil
	case "windows":
		return Windows, nil
	}
	return 0, fmt.Errorf("unknown platform %q", s)
}

// CurrentPlatform is the platform of the running OS.
func CurrentPlatform() Platform {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return POSIX
}

// ResolveLocation converts a rekordbox location URI to a local path. It is
// total: malformed input comes back best-effort, and existence checking is
// the caller's problem.
func ResolveLocation(raw string, platform Platform) string {
	path := raw
	// localhost form first, it embeds the bare scheme as a prefix
	if p, ok := strings.CutPrefix(path, "file://localhost"); ok {
		path = p
	} else if p, ok := strings.CutPrefix(path, "file://"); ok {
		path = p
	}

	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}

	if platform == Windows {
		// exports render drive letters as "/E:/..."
		if len(path) >= 3 && path[0] == '/' && isDriveLetter(path[1]) && path[2] == ':' {
			path = path[1:]
		}
		path = strings.ReplaceAll(path, "/", `\`)
	}
	return path
}

func isDriveLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
