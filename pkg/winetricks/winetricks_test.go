package winetricks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winecellar/pkg/wine"
)

func TestFromWine(t *testing.T) {
	w := wine.New("/opt/wine/bin/wine").
		WithPrefix("/home/u/.wine").
		WithArch(wine.ArchWin64).
		WithWineserver("/opt/wine/bin/wineserver")

	tricks := FromWine(w)

	assert.Equal(t, "winetricks", tricks.Script)
	assert.Equal(t, "/opt/wine/bin/wine", tricks.Wineloader)
	assert.Equal(t, "/opt/wine/bin/wineserver", tricks.Wineserver)
	assert.Equal(t, "/home/u/.wine", tricks.Prefix)
	assert.Equal(t, wine.ArchWin64, tricks.Arch)
}

func TestEnviron(t *testing.T) {
	tricks := New("/opt/wine/bin/wine").
		WithPrefix("/p").
		WithArch(wine.ArchWow64).
		WithWineserver("/srv")

	env := tricks.Environ()

	assert.Equal(t, "/opt/wine/bin/wine", env["WINE"])
	assert.Equal(t, "/opt/wine/bin/wine", env["WINE64"])
	assert.Equal(t, "/opt/wine/bin/wine", env["WINELOADER"])
	assert.Equal(t, "/srv", env["WINESERVER"])
	assert.Equal(t, "/p", env["WINEPREFIX"])
	assert.Equal(t, "win64", env["WINEARCH"], "wow64 maps to the win64 variable value")
}

func TestEnvironSparse(t *testing.T) {
	env := Winetricks{}.Environ()
	assert.Empty(t, env, "unset fields must not leak empty variables")
}

func TestInstallCommand(t *testing.T) {
	tricks := New("/opt/wine/bin/wine").
		WithScript("/usr/local/bin/winetricks").
		WithPrefix("/p")

	cmd := tricks.Install("corefonts", []string{"-q"}, map[string]string{"EXTRA": "1"})

	require.Equal(t, []string{"bash", "/usr/local/bin/winetricks", "corefonts", "-q"}, cmd.Args)
	assert.Nil(t, cmd.Process, "the command must not be started")
	assert.Contains(t, cmd.Env, "WINEPREFIX=/p")
	assert.Contains(t, cmd.Env, "WINE=/opt/wine/bin/wine")
	assert.Contains(t, cmd.Env, "EXTRA=1")
}
