package wine

import (
	"fmt"
	"os/exec"
	"strings"
)

// Version reports the version string of the main binary by running
// `wine --version`.
func (w Wine) Version() (string, error) {
	out, err := w.runCaptured("wine version", w.Binary, []string{"--version"}, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Run returns a command launching a windows binary through wine. The
// command is fully configured but not started; the caller owns its stdio
// and lifetime.
func (w Wine) Run(binary string) *exec.Cmd {
	return w.RunArgs(binary)
}

// RunArgs returns a command launching wine with arbitrary arguments.
func (w Wine) RunArgs(args ...string) *exec.Cmd {
	return w.RunArgsEnv(args, nil)
}

// RunArgsEnv returns a command launching wine with arbitrary arguments and
// extra environment variables layered over the composed set.
func (w Wine) RunArgsEnv(args []string, extraEnv map[string]string) *exec.Cmd {
	cmd := exec.Command(w.Binary, args...)
	ApplyEnviron(cmd, w.Environ())
	ApplyEnviron(cmd, extraEnv)
	return cmd
}

// Winepath converts a windows path inside the prefix to a unix path by
// running `wine winepath -u`.
func (w Wine) Winepath(path string) (string, error) {
	out, err := w.runCaptured("winepath", w.Binary, []string{"winepath", "-u", path}, w.Environ())
	if err != nil {
		return "", err
	}

	// winepath terminates its answer with a newline
	unix := strings.TrimRight(string(out), "\n")
	if !dirOrFileExists(unix) {
		return "", fmt.Errorf("%w: %s", ErrBadWinepath, unix)
	}
	return unix, nil
}
