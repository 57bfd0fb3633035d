// SPDX-License-Identifier: MPL-2.0

// Package config handles launcher configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/wwg/config.cue (or the XDG equivalent on Linux,
// ~/Library/Application Support/wwg/config.cue on macOS, %APPDATA%\wwg\config.cue on
// Windows), falling back to ./config.cue. Every key can be overridden through a WWG_
// environment variable, for example WWG_SERVER_BASE_URL.
//
// The file is validated against an embedded CUE schema (config_schema.cue) before it is
// merged over the built-in defaults, so type errors point at the offending field.
package config
