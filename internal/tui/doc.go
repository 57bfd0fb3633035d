// SPDX-License-Identifier: MPL-2.0

// Package tui renders the launcher's terminal surface: the start-up banner
// and the error and launch-anyway dialogs. Dialogs are charmbracelet/huh
// forms; on Windows without a console they fall back to native message boxes.
package tui
