package dxvk

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"winecellar/pkg/wine"
)

// Arch selects which bitness of the DXVK build to install. It names the
// source subdirectory inside a DXVK release tarball.
type Arch string

const (
	ArchX32 Arch = "x32"
	ArchX64 Arch = "x64"
)

// InstallParams selects which driver DLLs to swap and how.
type InstallParams struct {
	DXGI      bool
	D3D9      bool
	D3D10Core bool
	D3D11     bool

	Arch Arch

	// Repair runs wineboot -u around the swap: before an install when the
	// prefix looks uninitialized, and after an uninstall to restore the
	// builtin DLLs wine tracks.
	Repair bool
}

// DefaultParams installs every DLL of a 64-bit build and repairs the
// prefix as needed.
func DefaultParams() InstallParams {
	return InstallParams{
		DXGI:      true,
		D3D9:      true,
		D3D10Core: true,
		D3D11:     true,
		Arch:      ArchX64,
		Repair:    true,
	}
}

func (p InstallParams) dlls() []string {
	var names []string
	if p.DXGI {
		names = append(names, "dxgi.dll")
	}
	if p.D3D9 {
		names = append(names, "d3d9.dll")
	}
	if p.D3D10Core {
		names = append(names, "d3d10core.dll")
	}
	if p.D3D11 {
		names = append(names, "d3d11.dll")
	}
	return names
}

// Install swaps the selected driver DLLs of an extracted DXVK build into
// the wine prefix and registers native overrides for them. Each DLL is an
// independent transaction; the first failure stops the run and leaves the
// already-installed DLLs in place.
func Install(w wine.Wine, dxvkDir string, params InstallParams, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if w.Prefix == "" {
		return wine.ErrNoPrefix
	}

	if params.Repair && !wine.ValidPrefix(w.Prefix) {
		logger.Info("🔧 Prefix not initialized, booting it first", "prefix", w.Prefix)
		if out, err := w.UpdatePrefix(""); err != nil {
			return fmt.Errorf("repair prefix: %w (%s)", err, wine.LastOutputLine(out))
		}
	}

	srcDir := filepath.Join(dxvkDir, string(params.Arch))
	sys32 := wine.System32(w.Prefix)

	for _, dll := range params.dlls() {
		logger.Debug("💿 Installing driver dll", "dll", dll, "source", srcDir)
		if err := installDLL(dll, srcDir, sys32, w); err != nil {
			return fmt.Errorf("install %s: %w", dll, err)
		}
	}

	return nil
}

// Uninstall restores the builtin DLLs parked by Install and drops their
// overrides. With Repair set the prefix is updated afterwards so wine
// re-verifies its builtin files.
func Uninstall(w wine.Wine, params InstallParams, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if w.Prefix == "" {
		return wine.ErrNoPrefix
	}

	sys32 := wine.System32(w.Prefix)

	for _, dll := range params.dlls() {
		logger.Debug("🗑️ Restoring builtin dll", "dll", dll)
		if err := restoreDLL(dll, sys32, w); err != nil {
			return fmt.Errorf("restore %s: %w", dll, err)
		}
	}

	if params.Repair {
		logger.Info("🔧 Updating prefix after driver removal", "prefix", w.Prefix)
		if out, err := w.UpdatePrefix(""); err != nil {
			return fmt.Errorf("repair prefix: %w (%s)", err, wine.LastOutputLine(out))
		}
	}

	return nil
}
