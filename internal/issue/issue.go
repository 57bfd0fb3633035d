// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Id identifies a troubleshooting entry.
type Id int

const (
	ServerUnreachableId Id = iota + 1
	VersionNotFoundId
	DownloadFailedId
	InstallFailedId
	LaunchFailedId
	ConfigLoadFailedId
	DataDirNotFoundId
)

type (
	// MarkdownMsg is troubleshooting text rendered with glamour.
	MarkdownMsg string

	// HttpLink is a URL listed under "See also".
	HttpLink string

	// Issue is a troubleshooting entry shown after a failed run.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		extLinks []HttpLink
	}
)

//nolint:gochecknoglobals // Swapped out by tests.
var render = glamour.Render

// Id returns the issue identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw markdown body.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// ExtLinks returns a copy of the external links.
func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue as terminal markdown using the glamour style at
// stylePath ("dark", "light", "notty", or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

//nolint:gochecknoglobals // Static catalog.
var (
	serverUnreachableIssue = &Issue{
		id: ServerUnreachableId,
		mdMsg: `
# The release server is not responding

The launcher could not read the latest version from the server, so no update
was installed.

## Things you can try
- Check your internet connection and any proxy settings
- Open the server in a browser to see whether it is up
- Run again with more detail:
~~~
$ wwg --verbose
~~~`,
		extLinks: []HttpLink{"https://www.wizardswithguns.com"},
	}

	versionNotFoundIssue = &Issue{
		id: VersionNotFoundId,
		mdMsg: `
# No version information found

The server answered, but its version page has no line with the expected
label. The site may be under maintenance.

## Things you can try
- Wait a few minutes and start the launcher again
- If you changed ` + "`server.version_marker`" + ` in your config, check it matches the page
- Show the configuration in use:
~~~
$ wwg config
~~~`,
	}

	downloadFailedIssue = &Issue{
		id: DownloadFailedId,
		mdMsg: `
# Download failed

The archive for the latest version could not be downloaded. Your existing
installation was left as it was.

## Things you can try
- Start the launcher again; the download begins from scratch
- Check that ` + "`server.download_template`" + ` contains ` + "`{version}`" + `
- Compare the installed and latest versions:
~~~
$ wwg status
~~~`,
	}

	installFailedIssue = &Issue{
		id: InstallFailedId,
		mdMsg: `
# Installation failed

The update could not be written to the install directory. Some files may
already have been replaced; the next successful run repairs them.

## Things you can try
- Close the game if it is still running
- Check that you can write to the install directory
- Make sure there is enough free disk space`,
	}

	launchFailedIssue = &Issue{
		id: LaunchFailedId,
		mdMsg: `
# The game could not be started

The installation is complete but starting the executable failed.

## Things you can try
- Check that your antivirus did not quarantine the executable
- Delete ` + "`ver.txt`" + ` in the install directory to force a reinstall
- Start the game directly from the install directory`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

Your config file contains invalid CUE or values outside the allowed ranges.

## Things you can try
- Check the field named in the error above
- Remove the file to fall back to the built-in defaults
- Show the defaults:
~~~
$ wwg config
~~~`,
	}

	dataDirNotFoundIssue = &Issue{
		id: DataDirNotFoundId,
		mdMsg: `
# Could not find your application data directory

The launcher installs the game under your per-user data directory but the
operating system did not report one.

## Things you can try
- On Windows, make sure ` + "`APPDATA`" + ` is set
- Elsewhere, make sure ` + "`HOME`" + ` or ` + "`XDG_DATA_HOME`" + ` is set
- Set ` + "`install.dir`" + ` in your config to an absolute path`,
	}

	issues = map[Id]*Issue{
		serverUnreachableIssue.Id(): serverUnreachableIssue,
		versionNotFoundIssue.Id():   versionNotFoundIssue,
		downloadFailedIssue.Id():    downloadFailedIssue,
		installFailedIssue.Id():     installFailedIssue,
		launchFailedIssue.Id():      launchFailedIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		dataDirNotFoundIssue.Id():   dataDirNotFoundIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return int(a.id) - int(b.id)
	})
}

// Get returns the issue for id, or nil when none exists.
func Get(id Id) *Issue {
	return issues[id]
}
