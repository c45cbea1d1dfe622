// Package winetricks drives the external winetricks script against a wine
// installation. It only forwards configuration through the environment;
// the script's output is the caller's to consume.
package winetricks

import (
	"os/exec"

	"winecellar/pkg/wine"
)

// Winetricks configures an invocation of the winetricks script.
type Winetricks struct {
	// Script is the winetricks entrypoint, resolved via PATH by default.
	Script string

	// Wineloader is the wine binary exported as WINE and WINELOADER.
	Wineloader string

	// Wineserver is exported as WINESERVER when non-empty.
	Wineserver string

	Prefix string
	Arch   wine.Arch
}

// New creates a Winetricks around the given wine binary.
func New(wineloader string) Winetricks {
	return Winetricks{
		Script:     "winetricks",
		Wineloader: wineloader,
	}
}

// FromWine derives a Winetricks from an existing wine configuration,
// carrying over its binary, server, prefix and architecture.
func FromWine(w wine.Wine) Winetricks {
	t := New(w.Binary).WithPrefix(w.Prefix).WithArch(w.Arch)
	if server, ok := w.WineserverBin(); ok {
		t = t.WithWineserver(server)
	}
	return t
}

// WithScript returns a copy using the given winetricks script path.
func (t Winetricks) WithScript(script string) Winetricks {
	t.Script = script
	return t
}

// WithWineserver returns a copy using the given wineserver binary.
func (t Winetricks) WithWineserver(server string) Winetricks {
	t.Wineserver = server
	return t
}

// WithPrefix returns a copy using the given prefix path.
func (t Winetricks) WithPrefix(prefix string) Winetricks {
	t.Prefix = prefix
	return t
}

// WithArch returns a copy using the given prefix architecture.
func (t Winetricks) WithArch(arch wine.Arch) Winetricks {
	t.Arch = arch
	return t
}

// Environ composes the variables winetricks reads to find the wine it
// should drive.
func (t Winetricks) Environ() map[string]string {
	env := map[string]string{}

	if t.Wineloader != "" {
		env["WINE"] = t.Wineloader
		env["WINE64"] = t.Wineloader
		env["WINELOADER"] = t.Wineloader
	}
	if t.Wineserver != "" {
		env["WINESERVER"] = t.Wineserver
	}
	if t.Prefix != "" {
		env["WINEPREFIX"] = t.Prefix
	}
	if t.Arch != "" {
		env["WINEARCH"] = t.Arch.Value()
	}

	return env
}

// Install returns an unstarted command installing a winetricks component,
// e.g. "corefonts" or "vcrun2022". Extra arguments and environment entries
// are passed through verbatim.
func (t Winetricks) Install(component string, args []string, extraEnv map[string]string) *exec.Cmd {
	argv := append([]string{t.Script, component}, args...)
	cmd := exec.Command("bash", argv...)

	wine.ApplyEnviron(cmd, t.Environ())
	wine.ApplyEnviron(cmd, extraEnv)

	return cmd
}
