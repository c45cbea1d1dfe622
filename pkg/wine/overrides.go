package wine

import (
	"strings"
)

// OverrideMode is the load order recorded for a DLL override.
// See https://wiki.winehq.org/Wine_User%27s_Guide#DLL_Overrides
type OverrideMode string

const (
	OverrideNative   OverrideMode = "native"
	OverrideBuiltin  OverrideMode = "builtin"
	OverrideDisabled OverrideMode = "disabled"
)

// OverrideRegistry is the prefix-local key/value override store keyed by
// DLL base name. Wine implements it by driving reg.exe; tests substitute
// fakes.
type OverrideRegistry interface {
	AddOverride(dll string, modes ...OverrideMode) error
	DeleteOverride(dll string) error
}

const dllOverridesKey = `HKEY_CURRENT_USER\Software\Wine\DllOverrides`

// AddOverride records a DLL override in the prefix registry. With no modes
// given the override is native-only.
func (w Wine) AddOverride(dll string, modes ...OverrideMode) error {
	if len(modes) == 0 {
		modes = []OverrideMode{OverrideNative}
	}

	values := make([]string, len(modes))
	for i, mode := range modes {
		values[i] = string(mode)
	}

	args := []string{"reg", "add", dllOverridesKey, "/v", dll, "/d", strings.Join(values, ","), "/f"}
	_, err := w.runCaptured("add dll override", w.Binary, args, w.Environ())
	return err
}

// DeleteOverride removes a DLL override from the prefix registry.
func (w Wine) DeleteOverride(dll string) error {
	args := []string{"reg", "delete", dllOverridesKey, "/v", dll, "/f"}
	_, err := w.runCaptured("delete dll override", w.Binary, args, w.Environ())
	return err
}

var _ OverrideRegistry = Wine{}
