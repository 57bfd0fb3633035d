// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wizardswithguns/wwg-launcher/internal/launcher"
)

const notInstalled = "(not installed)"

type (
	// versionChecker is the read-only part of launcher.Orchestrator.
	versionChecker interface {
		FetchLatestVersion(ctx context.Context) (string, error)
		ReadInstalledVersion() (string, bool)
	}

	// statusParams bundles the dependencies of the status command.
	statusParams struct {
		stdout     io.Writer
		checker    versionChecker
		installDir string
		configPath string
	}
)

// newStatusCommand creates `wwg status`, which compares the installed version
// with the server's latest without installing or launching anything.
func newStatusCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Compare the installed version with the latest release",
		Long: `Compare the installed version with the latest release.

status reads the local version marker and asks the release server for the
latest version. It never downloads, installs, or starts anything.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			s, err := newSession(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return configFailure(cmd.ErrOrStderr(), err, flags.verbose)
			}

			p := statusParams{
				stdout:     cmd.OutOrStdout(),
				checker:    s.orchestrator(newProgressWriter(io.Discard, false)),
				installDir: s.launch.InstallDir,
				configPath: s.cfgPath,
			}

			if err := runStatus(cmd.Context(), p); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+launcher.UserMessage(err))
				if s.verbose {
					renderIssue(cmd.ErrOrStderr(), err, issueStyle())
				}
				return &ExitError{Code: exitFailure, Err: err}
			}
			return nil
		},
	}
}

// runStatus prints the installed and latest versions as a table. When the
// server cannot be reached the table is still printed without the latest
// version before the error is returned.
func runStatus(ctx context.Context, p statusParams) error {
	configPath := "(defaults)"
	if p.configPath != "" {
		configPath = p.configPath
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendRow(table.Row{"Config file", configPath})
	t.AppendRow(table.Row{"Install directory", p.installDir})

	installed, ok := p.checker.ReadInstalledVersion()
	if ok {
		t.AppendRow(table.Row{"Installed version", installed})
	} else {
		t.AppendRow(table.Row{"Installed version", notInstalled})
	}

	latest, err := p.checker.FetchLatestVersion(ctx)
	if err != nil {
		t.Render()
		return fmt.Errorf("checking latest version: %w", err)
	}
	t.AppendRow(table.Row{"Latest version", latest})
	t.Render()
	fmt.Fprintln(p.stdout)

	switch {
	case !ok:
		fmt.Fprintln(p.stdout, WarningStyle.Render("Not installed.")+" Run 'wwg' to install "+ValueStyle.Render(latest)+".")
	case installed != latest:
		fmt.Fprintln(p.stdout, WarningStyle.Render("An update is available:")+" "+
			ValueStyle.Render(installed)+" → "+ValueStyle.Render(latest))
		fmt.Fprintln(p.stdout, "Run 'wwg' to install it.")
	default:
		fmt.Fprintln(p.stdout, SuccessStyle.Render("Up to date."))
	}

	return nil
}
