package wine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinebootCommandShapes(t *testing.T) {
	tests := []struct {
		name     string
		wine     Wine
		wantBin  string
		wantArgs []string
	}{
		{
			name:     "unix helper runs directly",
			wine:     New("/opt/wine/bin/wine").WithBoot(UnixBoot("/opt/wine/bin/wineboot")),
			wantBin:  "/opt/wine/bin/wineboot",
			wantArgs: nil,
		},
		{
			name:     "windows helper runs through the main binary",
			wine:     New("/opt/wine/bin/wine").WithBoot(WindowsBoot("/build/wineboot.exe")),
			wantBin:  "/opt/wine/bin/wine",
			wantArgs: []string{"/build/wineboot.exe"},
		},
		{
			name:     "unresolved falls back to the builtin wineboot",
			wine:     New("/nonexistent/bin/wine"),
			wantBin:  "/nonexistent/bin/wine",
			wantArgs: []string{"wineboot"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bin, args := tt.wine.winebootCommand()
			assert.Equal(t, tt.wantBin, bin)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestLifecycleRequiresPrefix(t *testing.T) {
	w := New("/nonexistent/bin/wine")

	_, err := w.InitPrefix("")
	assert.ErrorIs(t, err, ErrNoPrefix)

	_, err = w.StopProcesses("", false)
	assert.ErrorIs(t, err, ErrNoPrefix)

	_, err = w.Shutdown("")
	assert.ErrorIs(t, err, ErrNoPrefix)
}

func TestInitPrefixCreatesDirectory(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "nested", "prefix")

	// The helper binary does not exist, so the boot itself fails, but the
	// directory tree must already be in place by then.
	_, err := New("/nonexistent/bin/wine").InitPrefix(prefix)
	require.Error(t, err)
	assert.DirExists(t, prefix)
}
