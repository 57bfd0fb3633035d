// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/wizardswithguns/wwg-launcher/pkg/platform"
)

//nolint:gochecknoglobals // Test seams for the OS lookups.
var (
	goos        = runtime.GOOS
	userHomeDir = os.UserHomeDir
	getenv      = os.Getenv
)

type (
	// EnvironmentPaths resolves OS-provided per-user locations.
	EnvironmentPaths interface {
		PerUserDataDir() (string, error)
	}

	// OSPaths resolves locations from the running platform's conventions:
	// %APPDATA% on Windows, ~/Library/Application Support on macOS, and
	// $XDG_DATA_HOME (default ~/.local/share) elsewhere.
	OSPaths struct{}
)

// PerUserDataDir implements EnvironmentPaths.
func (OSPaths) PerUserDataDir() (string, error) {
	switch goos {
	case platform.Windows:
		if dir := getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		profile := getenv("USERPROFILE")
		if profile == "" {
			return "", errors.New("neither APPDATA nor USERPROFILE is set")
		}
		return filepath.Join(profile, "AppData", "Roaming"), nil
	case platform.Darwin:
		home, err := userHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if dir := getenv("XDG_DATA_HOME"); dir != "" {
			return dir, nil
		}
		home, err := userHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

// InstallDir joins the per-user data directory reported by paths with name.
func InstallDir(paths EnvironmentPaths, name string) (string, error) {
	base, err := paths.PerUserDataDir()
	if err != nil {
		return "", fmt.Errorf("resolving per-user data directory: %w", err)
	}
	return filepath.Join(base, name), nil
}
