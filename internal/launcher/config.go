// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/wizardswithguns/wwg-launcher/pkg/platform"
)

const (
	// VersionPlaceholder is substituted with the version token in DownloadTemplate.
	VersionPlaceholder = "{version}"

	// DefaultVersionMarker is the label that identifies the version line.
	DefaultVersionMarker = "Latest Unstable Version"

	// DefaultMarkerFile is the installed-version marker at the install root.
	DefaultMarkerFile = "ver.txt"

	// DefaultInstallDirName is the subfolder created under the per-user data directory.
	DefaultInstallDirName = "wizards-with-guns"

	// executableBaseName is the game binary name without platform suffix.
	executableBaseName = "wizards-with-guns"
)

// Config is the immutable set of endpoints and paths the Orchestrator works
// against. It is built once at startup and copied into the Orchestrator.
type Config struct {
	BaseURL          string        // e.g. "https://www.wizardswithguns.com"
	VersionPath      string        // e.g. "/version"
	DownloadTemplate string        // e.g. "/download/{version}.zip"
	VersionMarker    string        // phrase identifying the version line
	InstallDir       string        // absolute install root
	MarkerFile       string        // marker filename under InstallDir
	Executable       string        // executable filename under InstallDir
	Timeout          time.Duration // HTTP client timeout; zero means none
}

// VersionURL returns the absolute URL of the version endpoint.
func (c Config) VersionURL() string {
	return strings.TrimRight(c.BaseURL, "/") + c.VersionPath
}

// DownloadURL returns the archive URL for token.
func (c Config) DownloadURL(token string) string {
	path := strings.ReplaceAll(c.DownloadTemplate, VersionPlaceholder, url.PathEscape(token))
	return strings.TrimRight(c.BaseURL, "/") + path
}

// MarkerPath returns the absolute path of the version marker file.
func (c Config) MarkerPath() string {
	return filepath.Join(c.InstallDir, c.MarkerFile)
}

// ExecutablePath returns the absolute path of the game executable.
func (c Config) ExecutablePath() string {
	return filepath.Join(c.InstallDir, c.Executable)
}

// DefaultExecutable returns the executable filename for goos.
func DefaultExecutable(goos string) string {
	if goos == platform.Windows {
		return executableBaseName + ".exe"
	}
	return executableBaseName
}
