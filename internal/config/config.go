// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"

	"github.com/wizardswithguns/wwg-launcher/internal/issue"
	"github.com/wizardswithguns/wwg-launcher/internal/launcher"
	"github.com/wizardswithguns/wwg-launcher/pkg/platform"
)

const (
	// AppName is the application name used for the config directory.
	AppName = "wwg"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes every environment override, e.g. WWG_SERVER_BASE_URL.
	EnvPrefix = "WWG"

	// maxConfigFileSize bounds the config file read (1MB).
	maxConfigFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

//nolint:gochecknoglobals // Test seams for the OS lookups.
var (
	goos        = runtime.GOOS
	userHomeDir = os.UserHomeDir
	getenv      = os.Getenv
)

// ConfigDir returns the launcher configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch goos {
	case platform.Windows:
		configDir = getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := userHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := userHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// loadWithOptions resolves the config file, merges it over the defaults and
// environment, validates the result, and reports which file was used ("" when
// none was found).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := newViper()

	resolvedPath, err := resolveConfigFile(opts)
	if err != nil {
		return nil, "", err
	}
	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Run 'wwg config --defaults' to see the built-in values").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(displayPath(resolvedPath)).
			WithSuggestion("Fix the keys listed above in the config file or the " + EnvPrefix + "_ environment variables").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// newViper returns a Viper instance seeded with the defaults and bound to
// WWG_ environment variables.
func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("server.base_url", defaults.Server.BaseURL)
	v.SetDefault("server.version_path", defaults.Server.VersionPath)
	v.SetDefault("server.download_template", defaults.Server.DownloadTemplate)
	v.SetDefault("server.version_marker", defaults.Server.VersionMarker)
	v.SetDefault("server.timeout_seconds", defaults.Server.TimeoutSeconds)
	v.SetDefault("install.dir_name", defaults.Install.DirName)
	v.SetDefault("install.dir", defaults.Install.Dir)
	v.SetDefault("install.executable", defaults.Install.Executable)
	v.SetDefault("install.marker_file", defaults.Install.MarkerFile)
	v.SetDefault("ui.banner", defaults.UI.Banner)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.accessible", defaults.UI.Accessible)
	v.SetDefault("ui.theme", string(defaults.UI.Theme))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// resolveConfigFile picks the config file: the explicit path when given (it
// must exist), else ConfigDir()/config.cue, else ./config.cue. It returns ""
// when no file exists.
func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	cfgDir := opts.ConfigDirPath
	if cfgDir == "" {
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		cfgDir = dir
	}

	fileName := ConfigFileName + "." + ConfigFileExt
	if cuePath := filepath.Join(cfgDir, fileName); fileExists(cuePath) {
		return cuePath, nil
	}
	if fileExists(fileName) {
		return fileName, nil
	}
	return "", nil
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper. The file decodes to a map rather than a
// struct so unset fields keep their Viper defaults.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if int64(len(data)) > maxConfigFileSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", path, len(data), maxConfigFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return formatCUEError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return formatCUEError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return formatCUEError(err, path)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// ToLauncher resolves cfg into the immutable launcher.Config. An empty
// install.dir is derived from paths and install.dir_name, and an empty
// install.executable selects the default for targetOS.
func ToLauncher(cfg *Config, paths launcher.EnvironmentPaths, targetOS string) (launcher.Config, error) {
	installDir := cfg.Install.Dir
	if installDir == "" {
		dir, err := launcher.InstallDir(paths, cfg.Install.DirName)
		if err != nil {
			return launcher.Config{}, err
		}
		installDir = dir
	}

	executable := cfg.Install.Executable
	if executable == "" {
		executable = launcher.DefaultExecutable(targetOS)
	}

	return launcher.Config{
		BaseURL:          cfg.Server.BaseURL,
		VersionPath:      cfg.Server.VersionPath,
		DownloadTemplate: cfg.Server.DownloadTemplate,
		VersionMarker:    cfg.Server.VersionMarker,
		InstallDir:       installDir,
		MarkerFile:       cfg.Install.MarkerFile,
		Executable:       executable,
		Timeout:          time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}, nil
}

func displayPath(path string) string {
	if path == "" {
		return "defaults and environment"
	}
	return path
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
