// Package wine manages a Windows-compatibility runtime prefix hosted by a
// Wine build: environment composition, helper-binary resolution, prefix
// lifecycle and process launch.
//
// The prefix directory tree is the single shared mutable resource and the
// package provides no locking for it. Two operations mutating the same
// prefix concurrently (or one racing a wineboot invocation) may interleave
// destructively; callers that need exclusion must impose it externally.
package wine

import (
	"github.com/hashicorp/go-hclog"
)

// Arch selects the Windows architecture of a prefix. The zero value leaves
// WINEARCH unset so wine picks its own default.
type Arch string

const (
	// ArchWin32 is a 32-bit only prefix.
	ArchWin32 Arch = "win32"

	// ArchWin64 is a 64-bit only prefix.
	ArchWin64 Arch = "win64"

	// ArchWow64 is a 64-bit prefix with 32-bit support.
	ArchWow64 Arch = "wow64"
)

// Value returns the WINEARCH value for the architecture. Wine has no
// dedicated wow64 value; a wow64 prefix is a win64 prefix as far as the
// variable is concerned.
func (a Arch) Value() string {
	if a == ArchWow64 {
		return string(ArchWin64)
	}
	return string(a)
}

// ParseArch maps a user-supplied architecture name to an Arch.
func ParseArch(s string) (Arch, bool) {
	switch Arch(s) {
	case ArchWin32, ArchWin64, ArchWow64:
		return Arch(s), true
	}
	return "", false
}

// LoaderMode selects how the WINELOADER variable is derived.
type LoaderMode int

const (
	// LoaderDefault leaves WINELOADER unset so wine uses the system-wide
	// binary.
	LoaderDefault LoaderMode = iota

	// LoaderCurrent sets WINELOADER to the configured main binary.
	LoaderCurrent

	// LoaderCustom sets WINELOADER to an explicit path.
	LoaderCustom
)

// Loader carries a loader mode plus the path LoaderCustom points at. The
// zero value is LoaderDefault.
type Loader struct {
	Mode LoaderMode
	Path string
}

// CurrentLoader selects the configured main binary as the loader.
func CurrentLoader() Loader {
	return Loader{Mode: LoaderCurrent}
}

// CustomLoader selects an explicit loader binary.
func CustomLoader(path string) Loader {
	return Loader{Mode: LoaderCustom, Path: path}
}

// BootKind distinguishes the two shapes a resolved boot helper can take.
// A unix helper script is executed directly; a Windows executable has to be
// launched through the main binary.
type BootKind int

const (
	BootUnresolved BootKind = iota
	BootUnix
	BootWindows
)

// Boot is the boot-helper reference: a unix script, a Windows executable,
// or unresolved (the zero value).
type Boot struct {
	Kind BootKind
	Path string
}

// UnixBoot references a unix-executable wineboot helper.
func UnixBoot(path string) Boot {
	return Boot{Kind: BootUnix, Path: path}
}

// WindowsBoot references an in-prefix wineboot.exe that must run through
// the main binary.
func WindowsBoot(path string) Boot {
	return Boot{Kind: BootWindows, Path: path}
}

// Resolved reports whether the reference points at an actual helper.
func (b Boot) Resolved() bool {
	return b.Kind != BootUnresolved
}

// Wine describes one Wine installation plus the prefix configuration used
// when invoking it. The main binary is the identity of the value; every
// other field only shapes derived environment variables and helper lookups.
// All mutation goes through With* transforms returning a modified copy, so
// a Wine can be shared freely.
type Wine struct {
	// Binary is the path to the main wine binary.
	Binary string

	// Prefix is the WINEPREFIX used by lifecycle operations and launches.
	// Lifecycle operations accept a per-call override; see resolvePrefix.
	Prefix string

	// Arch selects the prefix architecture.
	Arch Arch

	// Boot is an explicit boot-helper override. When unresolved the helper
	// is located automatically; see Wineboot.
	Boot Boot

	// Wineserver is an explicit wineserver override.
	Wineserver string

	// Loader selects how WINELOADER is derived.
	Loader Loader

	// WineLibs configures the LD_LIBRARY_PATH composition.
	WineLibs LibrarySearch

	// GstreamerLibs configures the GST_PLUGIN_PATH composition.
	GstreamerLibs LibrarySearch

	logger hclog.Logger
}

// New creates a Wine for the given main binary with everything else unset.
func New(binary string) Wine {
	return Wine{
		Binary: binary,
		logger: hclog.NewNullLogger(),
	}
}

// Default returns a Wine using the system-wide binary.
func Default() Wine {
	return New("wine")
}

// WithPrefix returns a copy using the given prefix path.
func (w Wine) WithPrefix(prefix string) Wine {
	w.Prefix = prefix
	return w
}

// WithArch returns a copy using the given architecture.
func (w Wine) WithArch(arch Arch) Wine {
	w.Arch = arch
	return w
}

// WithBoot returns a copy using an explicit boot helper.
func (w Wine) WithBoot(boot Boot) Wine {
	w.Boot = boot
	return w
}

// WithWineserver returns a copy using an explicit wineserver binary.
func (w Wine) WithWineserver(server string) Wine {
	w.Wineserver = server
	return w
}

// WithLoader returns a copy using the given loader selection.
func (w Wine) WithLoader(loader Loader) Wine {
	w.Loader = loader
	return w
}

// WithWineLibs returns a copy using the given runtime library search.
func (w Wine) WithWineLibs(libs LibrarySearch) Wine {
	w.WineLibs = libs
	return w
}

// WithGstreamerLibs returns a copy using the given gstreamer plugin search.
func (w Wine) WithGstreamerLibs(libs LibrarySearch) Wine {
	w.GstreamerLibs = libs
	return w
}

// WithLogger returns a copy that logs through the given logger. Without it
// the value stays silent.
func (w Wine) WithLogger(logger hclog.Logger) Wine {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	w.logger = logger
	return w
}

func (w Wine) log() hclog.Logger {
	if w.logger == nil {
		return hclog.NewNullLogger()
	}
	return w.logger
}
