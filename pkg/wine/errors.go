package wine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoPrefix      = errors.New("no prefix path configured or given")
	ErrPrefixInvalid = errors.New("directory is not a wine prefix (no system.reg)")
	ErrBadWinepath   = errors.New("winepath returned a path that does not exist")
)

// CommandError reports a collaborator subprocess that exited with a nonzero
// status. The full captured output is preserved; the message is derived from
// the last non-empty output line, which is a best-effort convention shared by
// every helper invocation (wineboot, reg.exe, winepath).
type CommandError struct {
	Op       string
	ExitCode int
	Output   []byte
}

func (e *CommandError) Error() string {
	if msg := LastOutputLine(e.Output); msg != "" {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return fmt.Sprintf("%s: exit status %d", e.Op, e.ExitCode)
}

// LastOutputLine returns the last non-empty line of captured subprocess
// output, or "" when there is none.
func LastOutputLine(output []byte) string {
	lines := strings.Split(string(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
