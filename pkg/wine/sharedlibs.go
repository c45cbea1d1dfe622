package wine

import (
	"path/filepath"
	"strings"
)

// Relative library directories of a standard wine build, in lookup order.
var wineLibDirs = []string{
	"lib",
	"lib64",
	"lib/wine/x86_64-unix",
	"lib32/wine/x86_64-unix",
	"lib64/wine/x86_64-unix",
	"lib/wine/i386-unix",
	"lib32/wine/i386-unix",
	"lib64/wine/i386-unix",
}

// Relative gstreamer plugin directories of a standard wine build.
var gstreamerLibDirs = []string{
	"lib64/gstreamer-1.0",
	"lib/gstreamer-1.0",
	"lib32/gstreamer-1.0",
}

// LibraryKind selects how a shared-library search path is built.
type LibraryKind int

const (
	// LibrariesNone leaves the corresponding variable unset.
	LibrariesNone LibraryKind = iota

	// LibrariesStandard expands the standard build-relative directory list
	// under a wine build root.
	LibrariesStandard

	// LibrariesCustom uses an explicit list of directories.
	LibrariesCustom
)

// LibrarySearch describes a shared-library search path policy. The zero
// value sets nothing. The same type serves both the runtime's own shared
// objects (LD_LIBRARY_PATH) and the gstreamer plugin subsystem
// (GST_PLUGIN_PATH); only the relative directory list differs.
type LibrarySearch struct {
	Kind  LibraryKind
	Root  string
	Paths []string
}

// StandardLibraries expands the standard directory layout under root.
func StandardLibraries(root string) LibrarySearch {
	return LibrarySearch{Kind: LibrariesStandard, Root: root}
}

// CustomLibraries uses the given directories verbatim.
func CustomLibraries(paths ...string) LibrarySearch {
	return LibrarySearch{Kind: LibrariesCustom, Paths: paths}
}

// expand returns the colon-joined search path, or ok=false when the policy
// sets nothing.
func (s LibrarySearch) expand(relative []string) (string, bool) {
	switch s.Kind {
	case LibrariesStandard:
		paths := make([]string, 0, len(relative))
		for _, dir := range relative {
			paths = append(paths, filepath.Join(s.Root, dir))
		}
		return strings.Join(paths, ":"), true

	case LibrariesCustom:
		if len(s.Paths) == 0 {
			return "", false
		}
		return strings.Join(s.Paths, ":"), true

	default:
		return "", false
	}
}
