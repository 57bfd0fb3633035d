// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// readMarker returns the trimmed marker contents, or false when the file
// cannot be read. A missing install directory is the common false case.
func readMarker(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// writeMarker replaces the marker at path with token. The token is written to
// a temp file in the same directory and renamed into place so a reader never
// sees a half-written marker.
func writeMarker(path, token string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ver-*.tmp")
	if err != nil {
		return &FilesystemError{Op: "write version marker", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.WriteString(token); err != nil {
		_ = tmp.Close()
		return &FilesystemError{Op: "write version marker", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &FilesystemError{Op: "write version marker", Path: path, Err: err}
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return &FilesystemError{Op: "write version marker", Path: path, Err: fmt.Errorf("setting permissions: %w", err)}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &FilesystemError{Op: "write version marker", Path: path, Err: err}
	}
	renamed = true

	return nil
}
