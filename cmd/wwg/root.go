// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the wwg command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/wizardswithguns/wwg-launcher/internal/issue"
	"github.com/wizardswithguns/wwg-launcher/internal/launcher"
	"github.com/wizardswithguns/wwg-launcher/internal/tui"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// errLaunchDeclined is returned when the server is unreachable and the user
// chose not to start the installed version.
var errLaunchDeclined = errors.New("launch declined while offline")

type (
	// rootFlags holds the persistent flags shared by every subcommand.
	rootFlags struct {
		configFile string
		verbose    bool
		noBanner   bool
	}

	// runner is the part of launcher.Orchestrator the default command drives.
	runner interface {
		Run(ctx context.Context) (launcher.Outcome, error)
	}

	// launchParams bundles the dependencies of the default command so that
	// runLaunch can be tested without a Cobra command or a real server.
	launchParams struct {
		stdout      io.Writer
		stderr      io.Writer
		runner      runner
		banner      bool
		bannerDelay time.Duration
		verbose     bool
		issueStyle  string // glamour style for troubleshooting output
	}
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	if code := exitCodeFor(err); !code.IsSuccess() {
		os.Exit(int(code))
	}
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "wwg",
		Short: "Keep Wizards with Guns up to date and start it",
		Long: TitleStyle.Render("wwg") + SubtitleStyle.Render(" - the Wizards with Guns launcher") + `

Running wwg without a subcommand asks the release server for the latest
version, installs it when the local copy differs, and starts the game.
If the server does not answer you can still start the installed version.

` + SubtitleStyle.Render("Examples:") + `
  wwg                 Update if needed, then start the game
  wwg status          Compare the installed and latest versions
  wwg config          Show the effective configuration`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			s, err := newSession(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return configFailure(cmd.ErrOrStderr(), err, flags.verbose)
			}

			progress := newProgressWriter(cmd.OutOrStdout(), isOutputTerminal())
			defer func() { _ = progress.Close() }()

			p := launchParams{
				stdout:      cmd.OutOrStdout(),
				stderr:      cmd.ErrOrStderr(),
				runner:      s.orchestrator(progress),
				banner:      s.showBanner(flags),
				bannerDelay: tui.BannerDelay,
				verbose:     s.verbose,
				issueStyle:  issueStyle(),
			}

			if err := runLaunch(cmd.Context(), p); err != nil {
				return &ExitError{Code: exitFailure, Err: err}
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default is <config dir>/wwg/config.cue)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVar(&flags.noBanner, "no-banner", false, "do not print the start-up banner")

	rootCmd.AddCommand(newStatusCommand(flags))
	rootCmd.AddCommand(newConfigCommand(flags))

	return rootCmd
}

// runLaunch is the update-and-launch workflow, separated from Cobra for
// testability. Failures have already been shown to the user by the
// Notifier; in verbose mode a troubleshooting page follows on stderr.
func runLaunch(ctx context.Context, p launchParams) error {
	if p.banner {
		if err := tui.PrintBanner(p.stdout, p.bannerDelay); err != nil {
			return fmt.Errorf("printing banner: %w", err)
		}
		fmt.Fprintln(p.stdout)
	}

	out, err := p.runner.Run(ctx)
	if err != nil {
		if p.verbose {
			renderIssue(p.stderr, err, p.issueStyle)
		}
		return err
	}

	if out.Aborted {
		return errLaunchDeclined
	}
	if out.Offline {
		if out.LaunchAttempted {
			fmt.Fprintln(p.stderr, WarningStyle.Render("The server did not respond; started the installed version without updating."))
		} else {
			fmt.Fprintln(p.stderr, WarningStyle.Render("The server did not respond and no installed version was found."))
		}
	}

	return nil
}

// configFailure prints a configuration or data-directory error together
// with its troubleshooting page and returns the matching ExitError.
func configFailure(w io.Writer, err error, verbose bool) error {
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	renderIssue(w, err, issueStyle())
	return &ExitError{Code: exitConfig, Err: err}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
