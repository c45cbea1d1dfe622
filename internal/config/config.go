// Package config loads the winecellar configuration file. Every field is
// optional; command-line flags override whatever the file provides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"winecellar/pkg/utils/shellparse"
)

// Config mirrors config.toml. The zero value is a valid configuration that
// falls back to the system wine and the default prefix.
type Config struct {
	// Wine is the wine binary to drive.
	Wine string `toml:"wine"`

	// Prefix is the wine prefix directory.
	Prefix string `toml:"prefix"`

	// Arch is the prefix architecture: win32, win64 or wow64.
	Arch string `toml:"arch"`

	// DxvkDir is an extracted DXVK release used by `dxvk install`.
	DxvkDir string `toml:"dxvk_dir"`

	// ProtonDir switches the runtime to a Proton bundle when set.
	ProtonDir string `toml:"proton_dir"`

	// SteamClient and SteamAppID feed the Proton compatibility variables.
	SteamClient string `toml:"steam_client"`
	SteamAppID  uint32 `toml:"steam_app_id"`

	// Wrapper is a command line prepended to every launch, e.g.
	// "gamemoderun" or "mangohud --dlsym".
	Wrapper string `toml:"wrapper"`
}

// Path returns the default configuration file location.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "winecellar", "config.toml")
}

// DefaultPrefix is the prefix used when neither flag nor file names one.
func DefaultPrefix() string {
	return filepath.Join(xdg.DataHome, "winecellar", "prefix")
}

// Load reads the configuration from the default location. A missing file
// yields the zero configuration without error.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// WrapperArgv splits the wrapper command line into the argument vector
// prepended to launches. An empty wrapper yields a nil vector.
func (c Config) WrapperArgv() ([]string, error) {
	if c.Wrapper == "" {
		return nil, nil
	}

	argv, err := shellparse.Split(c.Wrapper)
	if err != nil {
		return nil, fmt.Errorf("parse wrapper command: %w", err)
	}
	return argv, nil
}
