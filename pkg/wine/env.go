package wine

import (
	"os"
	"os/exec"
	"sort"
)

// Environ composes the environment-variable set used for every spawned
// process: prefix, architecture, server and loader binaries, and the
// shared-library search paths. The result is pure and deterministic given
// the configuration; no I/O happens here. Every process-spawning operation
// routes through this single composition point.
func (w Wine) Environ() map[string]string {
	env := make(map[string]string)

	if w.Prefix != "" {
		env["WINEPREFIX"] = w.Prefix
	}

	if w.Arch != "" {
		env["WINEARCH"] = w.Arch.Value()
	}

	if server, ok := w.WineserverBin(); ok {
		env["WINESERVER"] = server
	}

	switch w.Loader.Mode {
	case LoaderCurrent:
		env["WINELOADER"] = w.Binary
	case LoaderCustom:
		env["WINELOADER"] = w.Loader.Path
	}

	if paths, ok := w.WineLibs.expand(wineLibDirs); ok {
		env["LD_LIBRARY_PATH"] = paths
	}

	if paths, ok := w.GstreamerLibs.expand(gstreamerLibDirs); ok {
		env["GST_PLUGIN_PATH"] = paths
	}

	return env
}

// ApplyEnviron layers env on top of the parent process environment of cmd,
// appending the pairs in sorted key order so repeated composition is
// deterministic.
func ApplyEnviron(cmd *exec.Cmd, env map[string]string) {
	if cmd.Env == nil {
		cmd.Env = os.Environ()
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		cmd.Env = append(cmd.Env, k+"="+env[k])
	}
}
