// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
)

type (
	// Orchestrator runs the check, install, and launch workflow against a
	// single immutable Config. It holds no mutable state between calls.
	Orchestrator struct {
		cfg      Config
		client   *Client
		notifier Notifier
		procs    ProcessLauncher
		logger   *log.Logger
		out      io.Writer
	}

	// Option configures an Orchestrator during construction.
	Option func(*Orchestrator)

	// Outcome summarizes what a Run did.
	Outcome struct {
		// LatestVersion is the token reported by the server, empty when the
		// check failed.
		LatestVersion string
		// InstalledVersion is the token in the marker before the run.
		InstalledVersion string
		// Installed is true when an archive was installed during the run.
		Installed bool
		// LaunchAttempted is true when the executable was found and started.
		LaunchAttempted bool
		// Offline is true when the version check failed with a network error.
		Offline bool
		// Aborted is true when the user declined to launch while offline.
		Aborted bool
	}
)

// WithClient replaces the HTTP client used for both requests.
func WithClient(c *Client) Option {
	return func(o *Orchestrator) {
		o.client = c
	}
}

// WithProcessLauncher replaces the process launcher, mainly for tests.
func WithProcessLauncher(p ProcessLauncher) Option {
	return func(o *Orchestrator) {
		o.procs = p
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = l
	}
}

// WithReporter sets where progress messages are written. The default discards them.
func WithReporter(w io.Writer) Option {
	return func(o *Orchestrator) {
		o.out = w
	}
}

// New creates an Orchestrator for cfg. notifier must not be nil.
func New(cfg Config, notifier Notifier, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg:      cfg,
		notifier: notifier,
		procs:    ExecLauncher{},
		logger:   log.New(io.Discard),
		out:      io.Discard,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.client == nil {
		o.client = NewClient(WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}
	return o
}

// Config returns the configuration the Orchestrator was built with.
func (o *Orchestrator) Config() Config {
	return o.cfg
}

// FetchLatestVersion queries the version endpoint and extracts the token.
func (o *Orchestrator) FetchLatestVersion(ctx context.Context) (string, error) {
	versionURL := o.cfg.VersionURL()
	o.logger.Debug("checking for updates", "url", redactURL(versionURL))

	body, err := o.client.GetText(ctx, versionURL)
	if err != nil {
		return "", err
	}

	token, ok := ParseVersion(body, o.cfg.VersionMarker)
	if !ok {
		return "", &ParseError{URL: versionURL, Marker: o.cfg.VersionMarker}
	}
	o.logger.Debug("latest version", "version", token)

	return token, nil
}

// ReadInstalledVersion returns the trimmed marker contents, or ("", false)
// when no readable marker exists.
func (o *Orchestrator) ReadInstalledVersion() (string, bool) {
	return readMarker(o.cfg.MarkerPath())
}

// InstallVersion downloads the archive for token, extracts it over the
// install directory, and records token in the marker. A failure part way
// leaves whatever was already written in place.
func (o *Orchestrator) InstallVersion(ctx context.Context, token string) error {
	dir := o.cfg.InstallDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &FilesystemError{Op: "create install directory", Path: dir, Err: err}
	}

	archiveURL := o.cfg.DownloadURL(token)
	o.report(fmt.Sprintf("Downloading %s...", archiveURL))

	archive, err := o.downloadArchive(ctx, archiveURL, dir)
	if err != nil {
		return err
	}

	o.report("Extracting...")
	if err := extractZip(archive, dir); err != nil {
		_ = os.Remove(archive)
		return err
	}
	if err := os.Remove(archive); err != nil {
		return &FilesystemError{Op: "remove archive", Path: archive, Err: err}
	}

	if err := writeMarker(o.cfg.MarkerPath(), token); err != nil {
		return err
	}
	o.logger.Info("installed", "version", token, "path", dir)
	o.report(fmt.Sprintf("Version %s installed successfully.", token))

	return nil
}

// Run performs one full check, install, and launch cycle.
//
// A network failure during the version check asks the Notifier whether to
// launch the existing install anyway. Any other failure is shown through
// Notifier.ReportError and ends the run without launching; the returned error
// is the one that was reported. Declining the offline prompt returns a nil
// error with Outcome.Aborted set. A failure to start the executable is
// reported and returned but the install remains valid.
func (o *Orchestrator) Run(ctx context.Context) (Outcome, error) {
	var out Outcome
	installed, hasInstall := o.ReadInstalledVersion()
	out.InstalledVersion = installed

	latest, err := o.FetchLatestVersion(ctx)
	if err != nil {
		if errors.Is(err, ErrNetwork) && !errors.Is(err, context.Canceled) {
			out.Offline = true
			o.logger.Warn("version check failed", "error", err)
			if !o.notifier.Confirm(OfflinePrompt) {
				out.Aborted = true
				return out, nil
			}
			return o.launchOutcome(out)
		}
		return out, o.fail(err)
	}
	out.LatestVersion = latest

	switch {
	case !hasInstall:
		o.report("Installing the latest version...")
	case installed != latest:
		o.report(fmt.Sprintf("Updating from version %s to %s...", installed, latest))
	default:
		o.report(fmt.Sprintf("You already have the latest version: %s", installed))
		return o.launchOutcome(out)
	}

	if err := o.InstallVersion(ctx, latest); err != nil {
		return out, o.fail(err)
	}
	out.Installed = true

	return o.launchOutcome(out)
}

func (o *Orchestrator) launchOutcome(out Outcome) (Outcome, error) {
	attempted, err := o.launch()
	out.LaunchAttempted = attempted
	if err != nil {
		return out, o.fail(err)
	}
	return out, nil
}

// fail reports err through the Notifier and returns it unchanged. A canceled
// context is returned without a dialog.
func (o *Orchestrator) fail(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	o.logger.Error("run failed", "error", err)
	o.notifier.ReportError(UserMessage(err))
	return err
}

func (o *Orchestrator) report(msg string) {
	_, _ = fmt.Fprintln(o.out, msg)
}
