// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
	"net/http"
)

// Operation names carried in NetworkError.Op and FilesystemError.Op for the
// steps callers tell apart.
const (
	OpFetch    = "fetching"
	OpDownload = "downloading"
	OpLaunch   = "launch executable"
)

var (
	// ErrNetwork is the sentinel matched by every *NetworkError.
	ErrNetwork = errors.New("network error")
	// ErrParse is the sentinel matched by every *ParseError.
	ErrParse = errors.New("version information not found")
	// ErrFilesystem is the sentinel matched by every *FilesystemError.
	ErrFilesystem = errors.New("filesystem error")
	// ErrUnsafeArchiveEntry is returned when a zip entry would be written outside
	// the install directory.
	ErrUnsafeArchiveEntry = errors.New("archive entry escapes install directory")
	// ErrEntryTooLarge is returned when a zip entry exceeds maxEntryBytes.
	ErrEntryTooLarge = errors.New("archive entry exceeds size limit")
)

type (
	// NetworkError reports a failure reaching or reading from the release server:
	// DNS, connection, timeout, or a non-2xx status. StatusCode is zero when no
	// response was received.
	NetworkError struct {
		Op         string
		URL        string
		StatusCode int
		Err        error
	}

	// ParseError reports a reachable version endpoint whose body does not carry
	// the expected marker line.
	ParseError struct {
		URL    string
		Marker string
	}

	// FilesystemError reports a directory, extraction, write, or process-start
	// failure on the local machine.
	FilesystemError struct {
		Op   string
		Path string
		Err  error
	}
)

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Op, redactURL(e.URL), e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, redactURL(e.URL), e.Err)
}

// Unwrap returns the underlying transport error, if any.
func (e *NetworkError) Unwrap() error { return e.Err }

// Is reports whether target is ErrNetwork.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: no line containing %q in %s", ErrParse, e.Marker, redactURL(e.URL))
}

// Unwrap returns ErrParse for errors.Is() compatibility.
func (e *ParseError) Unwrap() error { return ErrParse }

// Error implements the error interface.
func (e *FilesystemError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FilesystemError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFilesystem.
func (e *FilesystemError) Is(target error) bool { return target == ErrFilesystem }

// UserMessage renders err the way the launcher presents failures in its error
// dialog. HTTP status failures get a status-specific line; everything else is
// reported as an unexpected error with the raw description.
func UserMessage(err error) string {
	var netErr *NetworkError
	if errors.As(err, &netErr) && netErr.StatusCode != 0 {
		if netErr.StatusCode == http.StatusNotFound {
			return "404 Error: The requested URL was not found on the server."
		}
		return fmt.Sprintf("HTTP Error: %d", netErr.StatusCode)
	}
	return fmt.Sprintf("An unexpected error occurred: %v", err)
}
