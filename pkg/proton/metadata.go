package proton

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"winecellar/pkg/wine"
)

// The launcher script pins the prefix version it writes on boot.
var prefixVersionRe = regexp.MustCompile(`CURRENT_PREFIX_VERSION="([^"]*)"`)

const (
	versionFile      = "version"
	trackedFilesName = "tracked_files"

	// Some builds ship the manifest as <build>_tracked_files instead.
	trackedFilesPrefix = "proton_"
	trackedFilesSuffix = "_tracked_files"
)

// syncMetadata mirrors the bundle's version and tracked_files metadata into
// the outer prefix. A missing source is not an error; an I/O failure while
// copying a found source is.
func (p Proton) syncMetadata() error {
	if err := p.syncVersion(); err != nil {
		return fmt.Errorf("sync prefix version: %w", err)
	}
	if err := p.syncTrackedFiles(); err != nil {
		return fmt.Errorf("sync tracked files: %w", err)
	}
	return nil
}

// syncVersion prefers the version pinned inside the launcher script and
// falls back to the version file shipped alongside the bundle.
func (p Proton) syncVersion() error {
	dst := filepath.Join(p.OuterPrefix, versionFile)

	script, err := os.ReadFile(filepath.Join(p.Dir, "proton"))
	if err == nil {
		if m := prefixVersionRe.FindSubmatch(script); m != nil && len(m[1]) > 0 {
			p.logger.Debug("📝 Writing pinned prefix version", "version", string(m[1]))
			return os.WriteFile(dst, m[1], 0o644)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	src := filepath.Join(p.Dir, versionFile)
	if !wine.FileExists(src) {
		p.logger.Debug("🤷 Bundle ships no version metadata, skipping")
		return nil
	}

	return wine.CopyFile(src, dst)
}

// syncTrackedFiles copies the tracked_files manifest, preferring the exact
// filename and otherwise scanning the bundle directory for the prefixed
// variant.
func (p Proton) syncTrackedFiles() error {
	src := filepath.Join(p.Dir, trackedFilesName)

	if !wine.FileExists(src) {
		entries, err := os.ReadDir(p.Dir)
		if err != nil {
			return err
		}

		src = ""
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, trackedFilesPrefix) && strings.HasSuffix(name, trackedFilesSuffix) {
				src = filepath.Join(p.Dir, name)
				break
			}
		}

		if src == "" {
			p.logger.Debug("🤷 Bundle ships no tracked_files manifest, skipping")
			return nil
		}
	}

	return wine.CopyFile(src, filepath.Join(p.OuterPrefix, trackedFilesName))
}
