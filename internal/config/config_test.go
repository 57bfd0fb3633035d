// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wizardswithguns/wwg-launcher/internal/issue"
	"github.com/wizardswithguns/wwg-launcher/internal/launcher"
	"github.com/wizardswithguns/wwg-launcher/internal/testutil"
	"github.com/wizardswithguns/wwg-launcher/pkg/platform"
)

// isolate points config discovery at empty temp directories.
func isolate(t *testing.T) LoadOptions {
	t.Helper()
	t.Cleanup(testutil.MustChdir(t, t.TempDir()))
	return LoadOptions{ConfigDirPath: t.TempDir()}
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	testutil.MustWriteFile(t, path, []byte(body))
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Server.BaseURL != "https://www.wizardswithguns.com" {
		t.Errorf("BaseURL = %q", cfg.Server.BaseURL)
	}
	if cfg.Server.DownloadTemplate != "/download/{version}.zip" {
		t.Errorf("DownloadTemplate = %q", cfg.Server.DownloadTemplate)
	}
	if cfg.Server.VersionMarker != "Latest Unstable Version" {
		t.Errorf("VersionMarker = %q", cfg.Server.VersionMarker)
	}
	if cfg.Install.DirName != "wizards-with-guns" || cfg.Install.MarkerFile != "ver.txt" {
		t.Errorf("Install = %+v", cfg.Install)
	}
	if !cfg.UI.Banner || cfg.UI.Verbose || cfg.UI.Theme != ThemeDefault {
		t.Errorf("UI = %+v", cfg.UI)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

//nolint:paralleltest // Mutates package-level OS seams.
func TestConfigDir(t *testing.T) {
	origGOOS, origHome, origGetenv := goos, userHomeDir, getenv
	t.Cleanup(func() { goos, userHomeDir, getenv = origGOOS, origHome, origGetenv })

	home := filepath.Join("/", "home", "ada")
	userHomeDir = func() (string, error) { return home, nil }

	tests := []struct {
		name string
		goos string
		env  map[string]string
		want string
	}{
		{"windows", platform.Windows, map[string]string{"APPDATA": filepath.Join("C:", "Roaming")}, filepath.Join("C:", "Roaming", "wwg")},
		{"darwin", platform.Darwin, nil, filepath.Join(home, "Library", "Application Support", "wwg")},
		{"linux xdg", platform.Linux, map[string]string{"XDG_CONFIG_HOME": filepath.Join("/", "xdg")}, filepath.Join("/", "xdg", "wwg")},
		{"linux default", platform.Linux, nil, filepath.Join(home, ".config", "wwg")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goos = tt.goos
			getenv = func(k string) string { return tt.env[k] }

			got, err := ConfigDir()
			if err != nil {
				t.Fatalf("ConfigDir() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ConfigDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

//nolint:paralleltest // Changes the working directory.
func TestLoad_Defaults(t *testing.T) {
	opts := isolate(t)

	loaded, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Path != "" {
		t.Errorf("Path = %q, want empty", loaded.Path)
	}
	if *loaded.Config != *DefaultConfig() {
		t.Errorf("Load() = %+v, want defaults", loaded.Config)
	}
}

//nolint:paralleltest // Changes the working directory.
func TestLoad_CUEFileMergesOverDefaults(t *testing.T) {
	opts := isolate(t)
	path := writeConfig(t, opts.ConfigDirPath, `
server: {
	base_url:        "http://localhost:8080"
	timeout_seconds: 30
}
ui: theme: "dracula"
`)

	loaded, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	cfg := loaded.Config
	if loaded.Path != path {
		t.Errorf("Path = %q, want %q", loaded.Path, path)
	}
	if cfg.Server.BaseURL != "http://localhost:8080" || cfg.Server.TimeoutSeconds != 30 {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.UI.Theme != ThemeDracula {
		t.Errorf("Theme = %q, want dracula", cfg.UI.Theme)
	}
	if cfg.Server.VersionPath != DefaultVersionPath || cfg.Install.MarkerFile != launcher.DefaultMarkerFile || !cfg.UI.Banner {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

//nolint:paralleltest // Changes the working directory.
func TestLoad_LocalFallback(t *testing.T) {
	opts := isolate(t)
	writeConfig(t, ".", `install: dir_name: "wwg-local"`)

	loaded, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Config.Install.DirName != "wwg-local" {
		t.Errorf("DirName = %q, want wwg-local", loaded.Config.Install.DirName)
	}
	if loaded.Path != "config.cue" {
		t.Errorf("Path = %q, want config.cue", loaded.Path)
	}
}

//nolint:paralleltest // Changes the working directory.
func TestLoad_ExplicitFile(t *testing.T) {
	opts := isolate(t)
	writeConfig(t, opts.ConfigDirPath, `ui: banner: false`)

	explicit := filepath.Join(t.TempDir(), "custom.cue")
	testutil.MustWriteFile(t, explicit, []byte(`ui: verbose: true`))
	opts.ConfigFilePath = explicit

	loaded, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !loaded.Config.UI.Verbose || !loaded.Config.UI.Banner {
		t.Errorf("the explicit file should be used exclusively, UI = %+v", loaded.Config.UI)
	}
}

//nolint:paralleltest // Changes the working directory.
func TestLoad_ExplicitFileMissing(t *testing.T) {
	opts := isolate(t)
	opts.ConfigFilePath = filepath.Join(t.TempDir(), "nope.cue")

	_, err := NewProvider().Load(context.Background(), opts)

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("Load() error = %v, want *issue.ActionableError", err)
	}
	if ae.Resource != opts.ConfigFilePath {
		t.Errorf("Resource = %q, want %q", ae.Resource, opts.ConfigFilePath)
	}
}

//nolint:paralleltest // Changes the working directory.
func TestLoad_SchemaErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{"negative timeout", `server: timeout_seconds: -1`, "timeout_seconds"},
		{"bad scheme", `server: base_url: "ftp://example.com"`, "base_url"},
		{"template without placeholder", `server: download_template: "/download/latest.zip"`, "download_template"},
		{"unknown theme", `ui: theme: "neon"`, "theme"},
		{"path in marker file", `install: marker_file: "../ver.txt"`, "marker_file"},
		{"unknown field", `server: mirror: "x"`, "mirror"},
		{"wrong type", `ui: banner: "yes"`, "banner"},
		{"syntax error", `server: {`, "config.cue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := isolate(t)
			writeConfig(t, opts.ConfigDirPath, tt.body)

			_, err := NewProvider().Load(context.Background(), opts)
			if err == nil {
				t.Fatal("Load() should fail")
			}

			var ae *issue.ActionableError
			if !errors.As(err, &ae) || ae.Operation != "load configuration" {
				t.Errorf("Load() error = %v, want a load configuration ActionableError", err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Load() error = %v, want mention of %q", err, tt.contains)
			}
		})
	}
}

//nolint:paralleltest // Mutates the process environment.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	opts := isolate(t)
	writeConfig(t, opts.ConfigDirPath, `server: base_url: "http://from-file.example"`)
	t.Cleanup(testutil.MustSetenv(t, "WWG_SERVER_BASE_URL", "http://from-env.example"))
	t.Cleanup(testutil.MustSetenv(t, "WWG_SERVER_TIMEOUT_SECONDS", "7"))
	t.Cleanup(testutil.MustSetenv(t, "WWG_UI_BANNER", "false"))

	loaded, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	cfg := loaded.Config
	if cfg.Server.BaseURL != "http://from-env.example" {
		t.Errorf("BaseURL = %q, want the environment value", cfg.Server.BaseURL)
	}
	if cfg.Server.TimeoutSeconds != 7 {
		t.Errorf("TimeoutSeconds = %d, want 7", cfg.Server.TimeoutSeconds)
	}
	if cfg.UI.Banner {
		t.Error("Banner = true, want false from WWG_UI_BANNER")
	}
}

//nolint:paralleltest // Mutates the process environment.
func TestLoad_InvalidEnvironmentValue(t *testing.T) {
	opts := isolate(t)
	t.Cleanup(testutil.MustSetenv(t, "WWG_UI_THEME", "neon"))

	_, err := NewProvider().Load(context.Background(), opts)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
	}
	if !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("Load() error = %v, want ErrInvalidTheme in the chain", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewProvider().Load(ctx, LoadOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

type stubPaths string

func (s stubPaths) PerUserDataDir() (string, error) { return string(s), nil }

func TestToLauncher(t *testing.T) {
	t.Parallel()

	data := filepath.Join("/", "data")

	t.Run("derived", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Server.TimeoutSeconds = 15

		got, err := ToLauncher(cfg, stubPaths(data), platform.Windows)
		if err != nil {
			t.Fatalf("ToLauncher() error: %v", err)
		}
		if got.InstallDir != filepath.Join(data, "wizards-with-guns") {
			t.Errorf("InstallDir = %q", got.InstallDir)
		}
		if got.Executable != "wizards-with-guns.exe" {
			t.Errorf("Executable = %q", got.Executable)
		}
		if got.Timeout != 15*time.Second {
			t.Errorf("Timeout = %v", got.Timeout)
		}
		if got.VersionURL() != "https://www.wizardswithguns.com/version" {
			t.Errorf("VersionURL() = %q", got.VersionURL())
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Install.Dir = filepath.Join("/", "opt", "wwg")
		cfg.Install.Executable = "game.bin"

		got, err := ToLauncher(cfg, stubPaths(data), platform.Linux)
		if err != nil {
			t.Fatalf("ToLauncher() error: %v", err)
		}
		if got.InstallDir != cfg.Install.Dir || got.Executable != "game.bin" {
			t.Errorf("ToLauncher() = %+v", got)
		}
	})
}

func TestConfig_TOML(t *testing.T) {
	t.Parallel()

	out, err := DefaultConfig().TOML()
	if err != nil {
		t.Fatalf("TOML() error: %v", err)
	}

	text := string(out)
	for _, want := range []string{"[server]", "[install]", "[ui]", "base_url", "https://www.wizardswithguns.com", "marker_file", "theme"} {
		if !strings.Contains(text, want) {
			t.Errorf("TOML() missing %q:\n%s", want, text)
		}
	}
}
