package dxvk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"winecellar/pkg/wine"
)

var (
	// ErrSourceMissing is returned when the DXVK build does not ship the
	// requested DLL.
	ErrSourceMissing = errors.New("source dll does not exist")

	// ErrDestinationMissing is returned when the prefix has no builtin DLL
	// to replace, which usually means the prefix was never booted.
	ErrDestinationMissing = errors.New("destination dll does not exist")

	// ErrNothingToRestore is returned when no backup of the builtin DLL is
	// present, so there is nothing to roll back to.
	ErrNothingToRestore = errors.New("no dll backup to restore")
)

// The builtin DLL is parked under this suffix while DXVK's copy is live.
const backupSuffix = ".old"

// installDLL swaps one builtin DLL in sys32 for the DXVK build in srcDir
// and registers a native override for it. The builtin is kept as
// <name>.old; a pre-existing backup from an earlier install is preserved
// and the intermediate copy discarded instead. A registry failure rolls
// the file swap back before reporting.
func installDLL(name, srcDir, sys32 string, registry wine.OverrideRegistry) error {
	src := filepath.Join(srcDir, name)
	dst := filepath.Join(sys32, name)
	backup := dst + backupSuffix

	if !wine.FileExists(src) {
		return fmt.Errorf("%w: %s", ErrSourceMissing, src)
	}
	if !wine.FileExists(dst) {
		return fmt.Errorf("%w: %s", ErrDestinationMissing, dst)
	}

	hadBackup := wine.FileExists(backup)
	if hadBackup {
		// The original builtin is already parked; the live file is a
		// previous DXVK copy and can go.
		if err := os.Remove(dst); err != nil {
			return err
		}
	} else {
		if err := os.Rename(dst, backup); err != nil {
			return err
		}
	}

	if err := wine.CopyFile(src, dst); err != nil {
		return err
	}

	dll := name[:len(name)-len(filepath.Ext(name))]
	if err := registry.AddOverride(dll, wine.OverrideNative); err != nil {
		// Put the builtin back so a failed install leaves the prefix
		// untouched.
		if rmErr := os.Remove(dst); rmErr != nil {
			return errors.Join(err, rmErr)
		}
		if mvErr := os.Rename(backup, dst); mvErr != nil {
			return errors.Join(err, mvErr)
		}
		return err
	}

	return nil
}

// restoreDLL undoes installDLL: it drops the override, removes the DXVK
// copy and moves the parked builtin back into place. The backup is checked
// before anything is mutated.
func restoreDLL(name, sys32 string, registry wine.OverrideRegistry) error {
	dst := filepath.Join(sys32, name)
	backup := dst + backupSuffix

	if !wine.FileExists(backup) {
		return fmt.Errorf("%w: %s", ErrNothingToRestore, backup)
	}

	dll := name[:len(name)-len(filepath.Ext(name))]
	if err := registry.DeleteOverride(dll); err != nil {
		return err
	}

	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return err
	}

	return os.Rename(backup, dst)
}
