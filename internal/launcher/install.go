// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxEntryBytes is the upper bound on a single extracted file (4 GB).
// Prevents decompression bombs from filling the disk.
const maxEntryBytes = 4 << 30

// downloadArchive downloads archiveURL into a temp file inside dir and returns
// its path. The caller removes the file.
func (o *Orchestrator) downloadArchive(ctx context.Context, archiveURL, dir string) (_ string, err error) {
	tmp, err := os.CreateTemp(dir, ".wwg-download-*.zip")
	if err != nil {
		return "", &FilesystemError{Op: "create download file", Path: dir, Err: err}
	}
	defer func() {
		if closeErr := tmp.Close(); closeErr != nil && err == nil {
			err = &FilesystemError{Op: "write download file", Path: tmp.Name(), Err: closeErr}
		}
		if err != nil {
			// Best-effort removal of partially written temp file.
			_ = os.Remove(tmp.Name())
		}
	}()

	n, err := o.client.Download(ctx, archiveURL, tmp)
	if err != nil {
		return "", err
	}
	o.logger.Debug("archive downloaded", "url", redactURL(archiveURL), "bytes", n, "path", tmp.Name())

	return tmp.Name(), nil
}

// extractZip writes every entry of the zip archive at src under dest,
// replacing files that already exist. Directory entries are created, symlink
// entries are skipped, and entries that would land outside dest are rejected.
func extractZip(src, dest string) error {
	// Non-local names are handled per entry by entryTarget.
	r, err := zip.OpenReader(src)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return &FilesystemError{Op: "open archive", Path: src, Err: err}
	}
	defer func() { _ = r.Close() }() // read-only archive handle

	for _, f := range r.File {
		target, err := entryTarget(dest, f.Name)
		if err != nil {
			return &FilesystemError{Op: "extract archive entry", Path: f.Name, Err: err}
		}

		mode := f.Mode()
		switch {
		case mode&fs.ModeSymlink != 0:
			continue
		case f.FileInfo().IsDir():
			if err := os.MkdirAll(target, 0o755); err != nil {
				return &FilesystemError{Op: "create directory", Path: target, Err: err}
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return &FilesystemError{Op: "create directory", Path: filepath.Dir(target), Err: err}
		}
		if err := extractFile(f, target); err != nil {
			return &FilesystemError{Op: "extract archive entry", Path: target, Err: err}
		}
	}

	return nil
}

// extractFile copies a single zip entry into target, truncating any existing file.
func extractFile(f *zip.File, target string) (err error) {
	perm := f.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening entry: %w", err)
	}
	defer func() { _ = rc.Close() }() // read-only entry reader

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	n, err := io.Copy(out, io.LimitReader(rc, maxEntryBytes+1))
	if err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}
	if n > maxEntryBytes {
		return ErrEntryTooLarge
	}
	return nil
}

// entryTarget resolves a zip entry name to a path under dest, rejecting
// absolute names and names that climb out of dest.
func entryTarget(dest, name string) (string, error) {
	rel := filepath.FromSlash(name)
	if filepath.IsAbs(rel) || filepath.VolumeName(rel) != "" || strings.HasPrefix(rel, string(filepath.Separator)) {
		return "", ErrUnsafeArchiveEntry
	}

	target := filepath.Join(dest, rel)
	back, err := filepath.Rel(dest, target)
	if err != nil {
		return "", errors.Join(ErrUnsafeArchiveEntry, err)
	}
	if back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) {
		return "", ErrUnsafeArchiveEntry
	}
	return target, nil
}
