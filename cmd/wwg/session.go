// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/wizardswithguns/wwg-launcher/internal/config"
	"github.com/wizardswithguns/wwg-launcher/internal/issue"
	"github.com/wizardswithguns/wwg-launcher/internal/launcher"
	"github.com/wizardswithguns/wwg-launcher/internal/tui"
)

// errDataDir marks failures to resolve the install directory.
var errDataDir = errors.New("per-user data directory unavailable")

//nolint:gochecknoglobals // Test seams for the environment the CLI runs in.
var (
	configProvider   config.Provider                    = config.NewProvider()
	environmentPaths launcher.EnvironmentPaths          = launcher.OSPaths{}
	processLauncher  launcher.ProcessLauncher           = launcher.ExecLauncher{}
	newNotifier      func(tui.Config) launcher.Notifier = tui.NewNotifier
	isOutputTerminal func() bool                        = tui.IsOutputTerminal
)

// session is the resolved configuration for one CLI invocation.
type session struct {
	cfg     *config.Config
	cfgPath string
	launch  launcher.Config
	logger  *log.Logger
	verbose bool
}

// newSession loads the configuration and resolves the install location.
func newSession(ctx context.Context, flags *rootFlags, stderr io.Writer) (*session, error) {
	loaded, err := configProvider.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configFile})
	if err != nil {
		return nil, err
	}

	verbose := flags.verbose || loaded.Config.UI.Verbose
	logger := newLogger(stderr, verbose)
	if loaded.Path != "" {
		logger.Debug("loaded configuration", "path", loaded.Path)
	}

	lcfg, err := config.ToLauncher(loaded.Config, environmentPaths, runtime.GOOS)
	if err != nil {
		return nil, issue.WrapWithContext(fmt.Errorf("%w: %w", errDataDir, err), "resolve install directory", "")
	}
	logger.Debug("install directory", "path", lcfg.InstallDir)

	return &session{
		cfg:     loaded.Config,
		cfgPath: loaded.Path,
		launch:  lcfg,
		logger:  logger,
		verbose: verbose,
	}, nil
}

// newLogger returns the CLI logger: warnings and errors by default, debug
// output when verbose.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

func (s *session) tuiConfig() tui.Config {
	c := tui.DefaultConfig()
	c.Theme = tui.Theme(s.cfg.UI.Theme)
	c.Accessible = c.Accessible || s.cfg.UI.Accessible
	return c
}

// orchestrator builds the Orchestrator for this session, writing progress
// messages to progress.
func (s *session) orchestrator(progress *progressWriter) *launcher.Orchestrator {
	client := launcher.NewClient(
		launcher.WithHTTPClient(&http.Client{Timeout: s.launch.Timeout}),
		launcher.WithUserAgent("wwg/"+Version),
	)
	notifier := quietNotifier{Notifier: newNotifier(s.tuiConfig()), progress: progress}
	return launcher.New(s.launch, notifier,
		launcher.WithClient(client),
		launcher.WithProcessLauncher(processLauncher),
		launcher.WithLogger(s.logger),
		launcher.WithReporter(progress),
	)
}

// showBanner reports whether the banner is enabled by flag and config and
// stdout can display it.
func (s *session) showBanner(flags *rootFlags) bool {
	return !flags.noBanner && s.cfg.UI.Banner && isOutputTerminal()
}
