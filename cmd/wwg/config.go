// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wizardswithguns/wwg-launcher/internal/config"
)

// configParams bundles the inputs of the config command.
type configParams struct {
	stdout io.Writer
	loaded *config.Loaded
	// defaults is true when loaded holds the built-in defaults only.
	defaults bool
}

// newConfigCommand creates `wwg config`, which prints the effective
// configuration as TOML.
func newConfigCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration as TOML.

The output merges the built-in defaults, the config file, and WWG_
environment variables, in that order of precedence from lowest to highest.`,
		Example: `  # Show the configuration in use
  wwg config

  # Show the built-in defaults only
  wwg config --defaults

  # Inspect a specific file
  wwg config --config ./config.cue`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			defaultsFlag, _ := cmd.Flags().GetBool("defaults")

			p := configParams{stdout: cmd.OutOrStdout(), defaults: defaultsFlag}
			if defaultsFlag {
				p.loaded = &config.Loaded{Config: config.DefaultConfig()}
			} else {
				loaded, err := configProvider.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: flags.configFile})
				if err != nil {
					return configFailure(cmd.ErrOrStderr(), err, flags.verbose)
				}
				p.loaded = loaded
			}

			return runConfig(p)
		},
	}

	cmd.Flags().Bool("defaults", false, "Show the built-in defaults, ignoring config files and environment")

	return cmd
}

// runConfig writes the configuration with a comment header naming its
// source, so the output stays valid TOML.
func runConfig(p configParams) error {
	data, err := p.loaded.Config.TOML()
	if err != nil {
		return err
	}

	source := p.loaded.Path
	switch {
	case p.defaults:
		source = "built-in defaults"
	case source == "":
		source = "defaults and environment"
	}
	fmt.Fprintf(p.stdout, "# Source: %s\n", source)
	if dir, dirErr := config.ConfigDir(); dirErr == nil {
		fmt.Fprintf(p.stdout, "# Config directory: %s\n", dir)
	}
	fmt.Fprintln(p.stdout)

	_, err = p.stdout.Write(data)
	return err
}
