// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/wizardswithguns/wwg-launcher/internal/config"
	"github.com/wizardswithguns/wwg-launcher/internal/issue"
	"github.com/wizardswithguns/wwg-launcher/internal/launcher"
)

// issueFor maps a failure to the troubleshooting page that explains it.
func issueFor(err error) (issue.Id, bool) {
	var (
		netErr *launcher.NetworkError
		fsErr  *launcher.FilesystemError
		ae     *issue.ActionableError
	)

	switch {
	case errors.Is(err, errDataDir):
		return issue.DataDirNotFoundId, true
	case errors.As(err, &ae), errors.Is(err, config.ErrInvalidConfig):
		return issue.ConfigLoadFailedId, true
	case errors.As(err, &netErr):
		if netErr.Op == launcher.OpDownload {
			return issue.DownloadFailedId, true
		}
		return issue.ServerUnreachableId, true
	case errors.Is(err, launcher.ErrParse):
		return issue.VersionNotFoundId, true
	case errors.As(err, &fsErr):
		if fsErr.Op == launcher.OpLaunch {
			return issue.LaunchFailedId, true
		}
		return issue.InstallFailedId, true
	default:
		return 0, false
	}
}

// renderIssue writes the troubleshooting page for err, if there is one.
func renderIssue(w io.Writer, err error, style string) {
	id, ok := issueFor(err)
	if !ok {
		return
	}
	rendered, renderErr := issue.Get(id).Render(style)
	if renderErr != nil {
		return
	}
	fmt.Fprint(w, rendered)
}

// issueStyle picks the glamour style for troubleshooting pages.
func issueStyle() string {
	if isOutputTerminal() {
		return "dark"
	}
	return "notty"
}
