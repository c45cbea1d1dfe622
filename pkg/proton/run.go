package proton

import (
	"os/exec"
	"path/filepath"

	"winecellar/pkg/wine"
)

// launcher builds a command driving the bundle's launcher script with one
// of its verbs. The command is fully configured but not started.
func (p Proton) launcher(verb string, args ...string) *exec.Cmd {
	argv := append([]string{filepath.Join(p.Dir, "proton"), verb}, args...)
	cmd := exec.Command(p.Python, argv...)
	wine.ApplyEnviron(cmd, p.Environ())
	return cmd
}

// Run returns a command launching a binary through `proton run`. Proton's
// launcher expects a single binary here, not an argument vector.
func (p Proton) Run(binary string) *exec.Cmd {
	return p.launcher("run", binary)
}

// RunInPrefix returns a command running args through `proton runinprefix`,
// which boils down to the bundle's plain wine binary.
func (p Proton) RunInPrefix(args ...string) *exec.Cmd {
	return p.launcher("runinprefix", args...)
}

// WaitForExitAndRun returns a command running a binary through
// `proton waitforexitandrun`: wineserver -w first, then the binary under
// the Steam runtime shim.
func (p Proton) WaitForExitAndRun(binary string) *exec.Cmd {
	return p.launcher("waitforexitandrun", binary)
}

// Winepath converts a windows path through the wrapped wine.
func (p Proton) Winepath(path string) (string, error) {
	return p.wine.Winepath(path)
}
