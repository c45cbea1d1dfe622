// Package proton layers a Steam Proton distribution on top of the wine
// package: Steam-specific environment variables, the outer/inner prefix
// pair, and the prefix-metadata files Proton's own launcher expects.
package proton

import (
	"path/filepath"
	"strconv"

	"github.com/hashicorp/go-hclog"

	"winecellar/pkg/wine"
)

// Proton is a redistributable Proton bundle. The wrapped Wine is pinned to
// the bundle's own build: its binary and wineserver live under files/bin,
// the architecture is fixed to win64 and the loader to the main binary.
//
// The outer prefix is the bundle's state directory:
//
//	.
//	├── tracked_files
//	├── version
//	└── pfx/            <- inner wine prefix
//
// The inner wine prefix is always OuterPrefix/pfx; both are moved together
// by WithPrefix and are never set independently.
type Proton struct {
	// Dir is the bundle installation directory.
	Dir string

	// OuterPrefix is the bundle's state directory, distinct from the inner
	// wine prefix. Sets STEAM_COMPAT_DATA_PATH.
	OuterPrefix string

	// SteamClientPath sets STEAM_COMPAT_CLIENT_INSTALL_PATH when non-empty.
	SteamClientPath string

	// SteamAppID sets SteamAppId. Always emitted, zero by default.
	SteamAppID uint32

	// Python is the interpreter running the bundle's launcher script.
	Python string

	wine   wine.Wine
	logger hclog.Logger
}

// New creates a Proton for the given installation directory with no prefix
// configured.
func New(dir string) Proton {
	w := wine.New(filepath.Join(dir, "files", "bin", "wine64")).
		WithArch(wine.ArchWin64).
		WithLoader(wine.CurrentLoader()).
		WithWineserver(filepath.Join(dir, "files", "bin", "wineserver"))

	return Proton{
		Dir:    dir,
		Python: "python3",
		wine:   w,
		logger: hclog.NewNullLogger(),
	}
}

// Wine returns the wrapped wine configuration.
func (p Proton) Wine() wine.Wine {
	return p.wine
}

// WithPrefix returns a copy using outer as the bundle prefix. The inner
// wine prefix follows in lock-step as outer/pfx.
func (p Proton) WithPrefix(outer string) Proton {
	p.OuterPrefix = outer
	p.wine = p.wine.WithPrefix(filepath.Join(outer, "pfx"))
	return p
}

// WithSteamClient returns a copy using the given steam client directory.
func (p Proton) WithSteamClient(path string) Proton {
	p.SteamClientPath = path
	return p
}

// WithAppID returns a copy using the given steam application id.
func (p Proton) WithAppID(id uint32) Proton {
	p.SteamAppID = id
	return p
}

// WithPython returns a copy using the given interpreter.
func (p Proton) WithPython(python string) Proton {
	p.Python = python
	return p
}

// WithBoot returns a copy whose wrapped wine uses an explicit boot helper.
func (p Proton) WithBoot(boot wine.Boot) Proton {
	p.wine = p.wine.WithBoot(boot)
	return p
}

// WithLogger returns a copy that logs through the given logger, wrapped
// wine included.
func (p Proton) WithLogger(logger hclog.Logger) Proton {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	p.logger = logger
	p.wine = p.wine.WithLogger(logger)
	return p
}

// Environ composes the bundle environment: everything the wrapped wine
// sets, plus the Steam compatibility variables.
func (p Proton) Environ() map[string]string {
	env := p.wine.Environ()

	if p.OuterPrefix != "" {
		env["STEAM_COMPAT_DATA_PATH"] = p.OuterPrefix
	}
	if p.SteamClientPath != "" {
		env["STEAM_COMPAT_CLIENT_INSTALL_PATH"] = p.SteamClientPath
	}
	env["SteamAppId"] = strconv.FormatUint(uint64(p.SteamAppID), 10)

	return env
}

// resolved applies a per-call outer-prefix override and verifies a prefix
// is configured at all, keeping the outer/inner pair in lock-step.
func (p Proton) resolved(outer string) (Proton, error) {
	if outer != "" {
		p = p.WithPrefix(outer)
	}
	if p.OuterPrefix == "" {
		return p, wine.ErrNoPrefix
	}
	return p, nil
}
