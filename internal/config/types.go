// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/wizardswithguns/wwg-launcher/internal/launcher"
	"github.com/wizardswithguns/wwg-launcher/pkg/platform"
)

const (
	// ThemeDefault uses huh's default dialog theme.
	ThemeDefault ThemeName = "default"
	// ThemeCharm uses huh's Charm theme.
	ThemeCharm ThemeName = "charm"
	// ThemeDracula uses huh's Dracula theme.
	ThemeDracula ThemeName = "dracula"
	// ThemeCatppuccin uses huh's Catppuccin theme.
	ThemeCatppuccin ThemeName = "catppuccin"
	// ThemeBase16 uses huh's Base16 theme.
	ThemeBase16 ThemeName = "base16"

	// DefaultBaseURL is the public release server.
	DefaultBaseURL = "https://www.wizardswithguns.com"
	// DefaultVersionPath is the plaintext version page under DefaultBaseURL.
	DefaultVersionPath = "/version"
	// DefaultDownloadTemplate is the archive path under DefaultBaseURL.
	DefaultDownloadTemplate = "/download/" + launcher.VersionPlaceholder + ".zip"
)

var (
	// ErrInvalidTheme is returned when a ThemeName value is not recognized.
	ErrInvalidTheme = errors.New("invalid theme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ThemeName selects the dialog theme.
	ThemeName string

	// InvalidThemeError is returned when a ThemeName value is not recognized.
	// It wraps ErrInvalidTheme for errors.Is() compatibility.
	InvalidThemeError struct {
		Value ThemeName
	}

	// FieldError describes one invalid configuration key.
	FieldError struct {
		Key    string
		Reason string
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It collects every field-level error found.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the launcher configuration.
	Config struct {
		// Server configures the release server endpoints.
		Server ServerConfig `json:"server" mapstructure:"server" toml:"server"`
		// Install configures where the game is installed.
		Install InstallConfig `json:"install" mapstructure:"install" toml:"install"`
		// UI configures the terminal output and dialogs.
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
	}

	// ServerConfig configures the release server.
	ServerConfig struct {
		BaseURL          string `json:"base_url" mapstructure:"base_url" toml:"base_url"`
		VersionPath      string `json:"version_path" mapstructure:"version_path" toml:"version_path"`
		DownloadTemplate string `json:"download_template" mapstructure:"download_template" toml:"download_template"`
		VersionMarker    string `json:"version_marker" mapstructure:"version_marker" toml:"version_marker"`
		// TimeoutSeconds bounds each HTTP request; 0 disables the timeout.
		TimeoutSeconds int `json:"timeout_seconds" mapstructure:"timeout_seconds" toml:"timeout_seconds"`
	}

	// InstallConfig configures the install location.
	InstallConfig struct {
		// DirName is the folder created under the per-user data directory.
		DirName string `json:"dir_name" mapstructure:"dir_name" toml:"dir_name"`
		// Dir overrides the derived install directory when set.
		Dir string `json:"dir" mapstructure:"dir" toml:"dir"`
		// Executable overrides the platform default executable name when set.
		Executable string `json:"executable" mapstructure:"executable" toml:"executable"`
		// MarkerFile is the version marker file name.
		MarkerFile string `json:"marker_file" mapstructure:"marker_file" toml:"marker_file"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Banner prints the start-up banner on interactive terminals.
		Banner bool `json:"banner" mapstructure:"banner" toml:"banner"`
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
		// Accessible forces plain-text prompts instead of dialogs.
		Accessible bool `json:"accessible" mapstructure:"accessible" toml:"accessible"`
		// Theme selects the dialog theme.
		Theme ThemeName `json:"theme" mapstructure:"theme" toml:"theme"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:          DefaultBaseURL,
			VersionPath:      DefaultVersionPath,
			DownloadTemplate: DefaultDownloadTemplate,
			VersionMarker:    launcher.DefaultVersionMarker,
			TimeoutSeconds:   0,
		},
		Install: InstallConfig{
			DirName:    launcher.DefaultInstallDirName,
			Dir:        "",
			Executable: "",
			MarkerFile: launcher.DefaultMarkerFile,
		},
		UI: UIConfig{
			Banner:     true,
			Verbose:    false,
			Accessible: false,
			Theme:      ThemeDefault,
		},
	}
}

// String returns the string representation of the ThemeName.
func (n ThemeName) String() string { return string(n) }

// IsValid returns whether the ThemeName is one of the defined themes,
// and a list of validation errors if it is not.
func (n ThemeName) IsValid() (bool, []error) {
	switch n {
	case ThemeDefault, ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16:
		return true, nil
	default:
		return false, []error{&InvalidThemeError{Value: n}}
	}
}

// Error implements the error interface for InvalidThemeError.
func (e *InvalidThemeError) Error() string {
	return fmt.Sprintf("invalid theme %q (valid: default, charm, dracula, catppuccin, base16)", e.Value)
}

// Unwrap returns ErrInvalidTheme for errors.Is() compatibility.
func (e *InvalidThemeError) Unwrap() error { return ErrInvalidTheme }

// Error implements the error interface for FieldError.
func (e *FieldError) Error() string {
	return e.Key + ": " + e.Reason
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		msgs = append(msgs, fe.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so errors.Is
// matches both the sentinel and any field-level sentinel.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Validate enforces the schema rules on the merged configuration, including
// values that came from WWG_ environment variables.
func (c *Config) Validate() error {
	var errs []error
	field := func(key, reason string) {
		errs = append(errs, &FieldError{Key: key, Reason: reason})
	}

	if reason := checkBaseURL(c.Server.BaseURL); reason != "" {
		field("server.base_url", reason)
	}
	if !strings.HasPrefix(c.Server.VersionPath, "/") {
		field("server.version_path", "must start with '/'")
	}
	if !strings.Contains(c.Server.DownloadTemplate, launcher.VersionPlaceholder) {
		field("server.download_template", "must contain "+launcher.VersionPlaceholder)
	}
	if strings.TrimSpace(c.Server.VersionMarker) == "" {
		field("server.version_marker", "must not be empty")
	}
	if c.Server.TimeoutSeconds < 0 {
		field("server.timeout_seconds", "must not be negative")
	}

	if reason := checkFileName(c.Install.DirName, false); reason != "" {
		field("install.dir_name", reason)
	}
	if reason := checkFileName(c.Install.Executable, true); reason != "" {
		field("install.executable", reason)
	}
	if reason := checkFileName(c.Install.MarkerFile, false); reason != "" {
		field("install.marker_file", reason)
	}

	if valid, themeErrs := c.UI.Theme.IsValid(); !valid {
		errs = append(errs, themeErrs...)
	}

	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

func checkBaseURL(raw string) string {
	if raw == "" {
		return "must not be empty"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "must be a valid URL"
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "must use http or https"
	}
	if u.Host == "" {
		return "must include a host"
	}
	return ""
}

func checkFileName(name string, allowEmpty bool) string {
	switch {
	case name == "" && allowEmpty:
		return ""
	case strings.TrimSpace(name) == "":
		return "must not be empty"
	case strings.ContainsAny(name, `/\`):
		return "must be a file name, not a path"
	case name == "." || name == "..":
		return "must be a file name"
	case platform.IsWindowsReservedName(name):
		return "is a reserved name on Windows"
	}
	return ""
}
