// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes operating system names and the file naming
// rules that differ between them.
package platform
