package proton

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winecellar/pkg/wine"
)

func TestNewPinsBundleWine(t *testing.T) {
	p := New("/opt/proton")
	w := p.Wine()

	assert.Equal(t, "/opt/proton/files/bin/wine64", w.Binary)
	assert.Equal(t, wine.ArchWin64, w.Arch)
	assert.Equal(t, wine.LoaderCurrent, w.Loader.Mode)
	assert.Equal(t, "python3", p.Python)

	server, ok := w.WineserverBin()
	require.True(t, ok)
	assert.Equal(t, "/opt/proton/files/bin/wineserver", server)
}

func TestPrefixPairLockStep(t *testing.T) {
	p := New("/opt/proton").WithPrefix("/data/compat/42")

	assert.Equal(t, "/data/compat/42", p.OuterPrefix)
	assert.Equal(t, "/data/compat/42/pfx", p.Wine().Prefix)

	// Moving the outer prefix moves the inner one with it.
	moved := p.WithPrefix("/elsewhere")
	assert.Equal(t, "/elsewhere/pfx", moved.Wine().Prefix)

	// The original pair is unchanged.
	assert.Equal(t, "/data/compat/42/pfx", p.Wine().Prefix)
}

func TestResolvedKeepsPairLockStep(t *testing.T) {
	p := New("/opt/proton").WithPrefix("/configured")

	q, err := p.resolved("/override")
	require.NoError(t, err)
	assert.Equal(t, "/override", q.OuterPrefix)
	assert.Equal(t, filepath.Join("/override", "pfx"), q.Wine().Prefix)

	q, err = p.resolved("")
	require.NoError(t, err)
	assert.Equal(t, "/configured", q.OuterPrefix)

	_, err = New("/opt/proton").resolved("")
	assert.ErrorIs(t, err, wine.ErrNoPrefix)
}

func TestEnviron(t *testing.T) {
	p := New("/opt/proton").
		WithPrefix("/data/compat/42").
		WithSteamClient("/home/u/.steam/steam").
		WithAppID(620)

	env := p.Environ()

	assert.Equal(t, "/data/compat/42", env["STEAM_COMPAT_DATA_PATH"])
	assert.Equal(t, "/home/u/.steam/steam", env["STEAM_COMPAT_CLIENT_INSTALL_PATH"])
	assert.Equal(t, "620", env["SteamAppId"])

	// Inner wine variables come along.
	assert.Equal(t, "/data/compat/42/pfx", env["WINEPREFIX"])
	assert.Equal(t, "win64", env["WINEARCH"])
}

func TestEnvironAppIDAlwaysSet(t *testing.T) {
	env := New("/opt/proton").Environ()
	assert.Equal(t, "0", env["SteamAppId"])
	assert.NotContains(t, env, "STEAM_COMPAT_DATA_PATH")
	assert.NotContains(t, env, "STEAM_COMPAT_CLIENT_INSTALL_PATH")
}

func TestLauncherArgv(t *testing.T) {
	p := New("/opt/proton").WithPrefix("/data/compat/42").WithPython("/usr/bin/python3.12")

	cmd := p.RunInPrefix("game.exe", "-windowed")
	assert.Equal(t, []string{"/usr/bin/python3.12", "/opt/proton/proton", "runinprefix", "game.exe", "-windowed"}, cmd.Args)
	assert.Nil(t, cmd.Process, "the command must not be started")
	assert.Contains(t, cmd.Env, "SteamAppId=0")

	run := p.Run("game.exe")
	assert.Equal(t, []string{"/usr/bin/python3.12", "/opt/proton/proton", "run", "game.exe"}, run.Args)

	wait := p.WaitForExitAndRun("game.exe")
	assert.Equal(t, "waitforexitandrun", wait.Args[2])
}
