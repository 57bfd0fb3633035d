// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/wizardswithguns/wwg-launcher/pkg/types"
)

// Exit codes returned by the CLI.
const (
	// exitFailure covers reported run failures and a declined offline launch.
	exitFailure types.ExitCode = 1
	// exitConfig is returned when the configuration cannot be loaded or resolved.
	exitConfig types.ExitCode = 2
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit status " + e.Code.String()
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeFor returns the process exit status for an error returned by the
// root command. Codes outside 0-255, and a zero code carried by a non-nil
// error, fall back to exitFailure.
func exitCodeFor(err error) types.ExitCode {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code.Validate() == nil && !exitErr.Code.IsSuccess() {
		return exitErr.Code
	}
	return exitFailure
}
