package wine

import (
	"fmt"
	"os"
	"path/filepath"
)

// Known lib directory names across wine build layouts.
var buildLibDirs = []string{"lib", "lib32", "lib64"}

// System32 returns the unix path of the system32 directory inside a prefix.
func System32(prefix string) string {
	return filepath.Join(prefix, "drive_c", "windows", "system32")
}

// ValidPrefix reports whether path looks like an initialized wine prefix.
// The presence of system.reg is the validity marker.
func ValidPrefix(path string) bool {
	return fileExists(filepath.Join(path, "system.reg"))
}

// resolvePrefix is the single prefix-resolution point shared by every
// operation that needs one: a per-call override wins over the configured
// prefix, and having neither is an error reported before any mutation.
func (w Wine) resolvePrefix(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if w.Prefix != "" {
		return w.Prefix, nil
	}
	return "", ErrNoPrefix
}

// Wineboot resolves the boot helper, checking in order: the explicit
// override, a sibling unix helper next to the main binary, a
// lib*/wine/*-windows subtree of the build, and finally a wineboot.exe
// already materialized inside the configured prefix. An unresolved result
// is returned as-is, never substituted with a system-wide guess.
func (w Wine) Wineboot() Boot {
	if w.Boot.Resolved() {
		return w.Boot
	}

	if sibling, ok := w.siblingBinary("wineboot"); ok {
		return UnixBoot(sibling)
	}

	// Wine builds without a wineboot script ship the Windows executable
	// under <build>/lib*/wine/<arch>-windows/.
	buildRoot := filepath.Dir(filepath.Dir(w.Binary))
	for _, lib := range buildLibDirs {
		for _, sys := range w.windowsLibArches() {
			exe := filepath.Join(buildRoot, lib, "wine", sys, "wineboot.exe")
			if fileExists(exe) {
				return WindowsBoot(exe)
			}
		}
	}

	if w.Prefix != "" {
		exe := filepath.Join(System32(w.Prefix), "wineboot.exe")
		if fileExists(exe) {
			return WindowsBoot(exe)
		}
	}

	return Boot{}
}

// windowsLibArches returns the *-windows subtree names matching the
// configured architecture, most specific first.
func (w Wine) windowsLibArches() []string {
	switch w.Arch {
	case ArchWin32:
		return []string{"i386-windows"}
	case ArchWin64:
		return []string{"x86_64-windows"}
	default:
		return []string{"x86_64-windows", "i386-windows"}
	}
}

// WineserverBin resolves the wineserver binary: the explicit override, then
// a sibling of the main binary. ok is false when neither exists, in which
// case WINESERVER stays unset.
func (w Wine) WineserverBin() (string, bool) {
	if w.Wineserver != "" {
		return w.Wineserver, true
	}
	return w.siblingBinary("wineserver")
}

// LoaderBin returns the loader binary path implied by the loader selection.
func (w Wine) LoaderBin() string {
	switch w.Loader.Mode {
	case LoaderCurrent:
		return w.Binary
	case LoaderCustom:
		return w.Loader.Path
	default:
		return "wine"
	}
}

// siblingBinary looks for name in the directory of the main binary.
func (w Wine) siblingBinary(name string) (string, bool) {
	path := filepath.Join(filepath.Dir(w.Binary), name)
	if fileExists(path) {
		return path, true
	}
	return "", false
}

// FileExists reports whether path is an existing regular file.
func FileExists(path string) bool {
	return fileExists(path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirOrFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CopyFile copies src to dst, truncating dst if it exists and preserving
// the source's permission bits.
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(src); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(dst, data, mode); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
