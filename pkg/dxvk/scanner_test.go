package dxvk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winecellar/pkg/wine"
)

// embedVersion builds a buffer of the given size with the marker and
// version planted at offset.
func embedVersion(t *testing.T, size, offset int, version string) []byte {
	t.Helper()
	buf := make([]byte, size)
	payload := append(append([]byte{}, versionMarker...), version...)
	payload = append(payload, 0x00)
	require.LessOrEqual(t, offset+len(payload), size)
	copy(buf[offset:], payload)
	return buf
}

func TestScanFindsVersionInCloseWindow(t *testing.T) {
	data := embedVersion(t, 3_300_000, 2_600_000, "2.4.1")

	version, ok := Scan(data, "d3d11.dll")
	require.True(t, ok)
	assert.Equal(t, "2.4.1", version)
}

func TestScanFindsVersionOutsideAnchors(t *testing.T) {
	// Marker inside the wide window but outside the close one, and one
	// entirely outside both. All must be found.
	offsets := []int{2_100_000, 3_000_000, 100, 3_250_000}

	for _, offset := range offsets {
		data := embedVersion(t, 3_300_000, offset, "2.4.1")
		version, ok := Scan(data, "d3d11.dll")
		require.True(t, ok, "offset %d", offset)
		assert.Equal(t, "2.4.1", version, "offset %d", offset)
	}
}

func TestScanSmallFileFullScan(t *testing.T) {
	// Smaller than the wide window end: windowing is skipped entirely.
	data := embedVersion(t, 4096, 1000, "1.10.3")

	version, ok := Scan(data, "d3d11.dll")
	require.True(t, ok)
	assert.Equal(t, "1.10.3", version)
}

func TestScanUnknownDLLFullScan(t *testing.T) {
	data := embedVersion(t, 4096, 2000, "2.0")

	version, ok := Scan(data, "d3d9.dll")
	require.True(t, ok)
	assert.Equal(t, "2.0", version)
}

func TestScanAbsentMarker(t *testing.T) {
	_, ok := Scan(make([]byte, 4096), "d3d11.dll")
	assert.False(t, ok)

	_, ok = Scan(nil, "d3d11.dll")
	assert.False(t, ok)
}

func TestScanTruncatedMatchRejected(t *testing.T) {
	// Marker present but fewer than the minimum match bytes remain.
	data := append([]byte{}, versionMarker...)
	data = append(data, '2')

	_, ok := Scan(data, "d3d11.dll")
	assert.False(t, ok)

	// Marker with version but no terminator before end of buffer.
	unterminated := append([]byte{}, versionMarker...)
	unterminated = append(unterminated, []byte("2.4.1xxxxx")...)
	_, ok = Scan(unterminated, "d3d11.dll")
	assert.False(t, ok)
}

func TestScanWindowBoundaryStraddle(t *testing.T) {
	// Marker starts just before a window edge so the version bytes cross
	// into the next window. The terminator is read against the full
	// buffer, so the result must be identical to a full scan.
	anchors := dllAnchors["d3d11.dll"]
	offset := anchors.close.to - len(versionMarker) - 2

	data := embedVersion(t, 3_300_000, offset, "2.4.1")

	version, ok := Scan(data, "d3d11.dll")
	require.True(t, ok)
	assert.Equal(t, "2.4.1", version)

	full, fullOK := scanRange(data, 0, len(data))
	require.True(t, fullOK)
	assert.Equal(t, full, version)
}

func TestScanLatin1Version(t *testing.T) {
	data := embedVersion(t, 4096, 0, "2.4\xe9")

	version, ok := Scan(data, "d3d11.dll")
	require.True(t, ok)
	assert.Equal(t, "2.4é", version)
}

func TestVersionProbesD3D11First(t *testing.T) {
	prefix := t.TempDir()
	sys32 := wine.System32(prefix)
	require.NoError(t, os.MkdirAll(sys32, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(sys32, "d3d11.dll"), embedVersion(t, 4096, 100, "2.4.1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sys32, "dxgi.dll"), embedVersion(t, 4096, 100, "9.9.9"), 0o644))

	version, ok, err := Version(prefix)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2.4.1", version)
}

func TestVersionFallsBackToDXGI(t *testing.T) {
	prefix := t.TempDir()
	sys32 := wine.System32(prefix)
	require.NoError(t, os.MkdirAll(sys32, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(sys32, "dxgi.dll"), embedVersion(t, 4096, 100, "2.3"), 0o644))

	version, ok, err := Version(prefix)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2.3", version)
}

func TestVersionNoMarkerIsNotAnError(t *testing.T) {
	prefix := t.TempDir()
	sys32 := wine.System32(prefix)
	require.NoError(t, os.MkdirAll(sys32, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sys32, "d3d11.dll"), make([]byte, 1024), 0o644))

	_, ok, err := Version(prefix)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVersionUnreadableDLLs(t *testing.T) {
	_, ok, err := Version(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
	assert.False(t, ok)
}
