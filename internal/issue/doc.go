// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries an operation, a resource, and suggestions for CLI
// failures. Issue is a catalog of markdown troubleshooting entries rendered
// with glamour after a failed run.
package issue
