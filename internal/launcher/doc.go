// SPDX-License-Identifier: MPL-2.0

// Package launcher implements the update-and-launch workflow for the game
// client: it asks the release server for the latest version token, installs
// that version into the per-user install directory when the local marker
// differs, and starts the installed executable as a detached process.
//
// The package is organized into a handful of concerns:
//   - client.go: HTTP access to the version endpoint and archive downloads
//   - version.go: extraction of the version token from the endpoint body
//   - marker.go: reading and writing the installed-version marker file
//   - install.go: archive download and zip extraction into the install directory
//   - paths.go: per-user data directory lookup behind EnvironmentPaths
//   - launch.go: detached process start through a ProcessLauncher
//   - orchestrator.go: Orchestrator, which composes the above into Run
package launcher
