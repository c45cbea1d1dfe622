// Package dxvk installs, removes and detects the DXVK graphics driver
// inside a wine prefix.
package dxvk

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"winecellar/pkg/wine"
)

// DXVK builds embed their version as `DXVK: \0v<version>\0` somewhere in
// the compiled DLL. There is no structured metadata to read; the NUL
// terminator is the whole contract.
var versionMarker = []byte{'D', 'X', 'V', 'K', ':', ' ', 0x00, 'v'}

// Shortest possible match, marker included: "DXVK: \0v#.#.#\0".
const minMatchLen = 14

type window struct {
	from, to int
}

// anchorWindows are empirically observed marker locations per DLL and
// DXVK build lineage. They are a performance heuristic only: scanning the
// whole file yields the same result, just slower on a multi-megabyte DLL.
type anchorWindows struct {
	close window
	wide  window
}

var dllAnchors = map[string]anchorWindows{
	"d3d11.dll": {close: window{2_500_000, 2_900_000}, wide: window{2_000_000, 3_200_000}},
	"dxgi.dll":  {close: window{1_600_000, 2_000_000}, wide: window{1_000_000, 2_300_000}},
}

// Scan searches the raw bytes of the named driver DLL for the embedded
// version string. ok is false when the marker is absent; absence is not an
// error, it just means DXVK is not applied.
func Scan(data []byte, dll string) (string, bool) {
	anchors, known := dllAnchors[dll]
	if !known || len(data) < anchors.wide.to {
		return scanRange(data, 0, len(data))
	}

	// Most likely region first, widening outward, whole remainder last.
	order := []window{
		anchors.close,
		{anchors.wide.from, anchors.close.from},
		{anchors.close.to, anchors.wide.to},
		{0, anchors.wide.from},
		{anchors.wide.to, len(data)},
	}

	for _, win := range order {
		if version, ok := scanRange(data, win.from, win.to); ok {
			return version, true
		}
	}
	return "", false
}

// scanRange searches for marker start positions within [from, to) of data.
// The version bytes themselves are read against the full buffer, so a
// marker sitting on a window boundary decodes identically no matter which
// window found it.
func scanRange(data []byte, from, to int) (string, bool) {
	if from < 0 {
		from = 0
	}
	if to > len(data) {
		to = len(data)
	}

	for i := from; i < to; i++ {
		// The shortest match must fit in the remaining bytes.
		if i+minMatchLen > len(data) {
			break
		}
		if !bytes.HasPrefix(data[i:], versionMarker) {
			continue
		}

		rest := data[i+len(versionMarker):]
		end := bytes.IndexByte(rest, 0x00)
		if end < 0 {
			// Unterminated: ran off the end of the buffer, not a match.
			continue
		}

		return decodeLatin1(rest[:end]), true
	}

	return "", false
}

// decodeLatin1 maps each byte to the unicode code point of the same value.
func decodeLatin1(raw []byte) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, b := range raw {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

// DLLs the version probe reads, in order.
var probeDLLs = []string{"d3d11.dll", "dxgi.dll"}

// Version reports the DXVK version applied to a prefix by probing
// d3d11.dll first and dxgi.dll second. ok is false when neither carries
// the marker. Failing to read both files is an I/O error, not absence.
func Version(prefix string) (version string, ok bool, err error) {
	sys32 := wine.System32(prefix)

	var lastErr error
	for _, dll := range probeDLLs {
		data, readErr := os.ReadFile(filepath.Join(sys32, dll))
		if readErr != nil {
			lastErr = readErr
			continue
		}
		version, ok = Scan(data, dll)
		return version, ok, nil
	}

	return "", false, lastErr
}
