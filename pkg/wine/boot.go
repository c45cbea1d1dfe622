package wine

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// winebootCommand maps the resolved boot helper to an invocation shape.
// A unix helper runs directly; a Windows executable runs through the main
// binary; an unresolved helper falls back to the builtin wineboot of the
// main binary itself, never to a system-wide path.
func (w Wine) winebootCommand() (string, []string) {
	switch boot := w.Wineboot(); boot.Kind {
	case BootUnix:
		return boot.Path, nil
	case BootWindows:
		return w.Binary, []string{boot.Path}
	default:
		return w.Binary, []string{"wineboot"}
	}
}

// InitPrefix initializes a wine prefix, creating its directory tree on
// demand. Runs `wineboot -i`. An empty prefix argument falls back to the
// configured prefix.
func (w Wine) InitPrefix(prefix string) ([]byte, error) {
	return w.bootWithPrefix("init prefix", prefix, "-i")
}

// UpdatePrefix updates an existing wine prefix, creating it first when
// missing. Runs `wineboot -u`.
func (w Wine) UpdatePrefix(prefix string) ([]byte, error) {
	return w.bootWithPrefix("update prefix", prefix, "-u")
}

// StopProcesses ends processes running in the prefix. Runs `wineboot -k`,
// or `wineboot -f` when force is set.
func (w Wine) StopProcesses(prefix string, force bool) ([]byte, error) {
	flag := "-k"
	if force {
		flag = "-f"
	}
	return w.boot("stop processes", prefix, flag)
}

// Restart imitates a windows restart inside the prefix. Runs `wineboot -r`.
func (w Wine) Restart(prefix string) ([]byte, error) {
	return w.boot("restart", prefix, "-r")
}

// Shutdown imitates a windows shutdown inside the prefix. Runs
// `wineboot -s`.
func (w Wine) Shutdown(prefix string) ([]byte, error) {
	return w.boot("shutdown", prefix, "-s")
}

// EndSession ends the wineboot session. Runs `wineboot -e`.
func (w Wine) EndSession(prefix string) ([]byte, error) {
	return w.boot("end session", prefix, "-e")
}

// bootWithPrefix is the lifecycle entry for operations that materialize the
// prefix directory before invoking the helper.
func (w Wine) bootWithPrefix(op, prefix, flag string) ([]byte, error) {
	path, err := w.resolvePrefix(prefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return w.runBoot(op, path, flag)
}

func (w Wine) boot(op, prefix, flag string) ([]byte, error) {
	path, err := w.resolvePrefix(prefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return w.runBoot(op, path, flag)
}

func (w Wine) runBoot(op, prefix, flag string) ([]byte, error) {
	bin, args := w.winebootCommand()
	args = append(args, flag)

	env := w.Environ()
	env["WINEPREFIX"] = prefix

	return w.runCaptured(op, bin, args, env)
}

// runCaptured runs a collaborator subprocess to completion with stdin
// closed and both output streams captured. A nonzero exit becomes a
// *CommandError carrying the full output.
func (w Wine) runCaptured(op, bin string, args []string, env map[string]string) ([]byte, error) {
	cmd := exec.Command(bin, args...)
	ApplyEnviron(cmd, env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	w.log().Debug("🚀 Running helper", "op", op, "path", bin, "args", args)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output := append(stdout.Bytes(), stderr.Bytes()...)
			cmdErr := &CommandError{Op: op, ExitCode: exitErr.ExitCode(), Output: output}
			w.log().Debug("⏹️ Helper failed", "op", op, "code", cmdErr.ExitCode)
			return stdout.Bytes(), cmdErr
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	w.log().Debug("✅ Helper finished", "op", op)
	return stdout.Bytes(), nil
}
