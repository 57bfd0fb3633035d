// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"archive/zip"
	"bytes"
	"io/fs"
	"slices"
	"testing"
)

// ZipEntry describes one member of a fixture archive. A Name ending in "/"
// is written as a directory entry.
type ZipEntry struct {
	Name string
	Body string
	Mode fs.FileMode
}

// BuildZip returns a zip archive holding entries in order.
func BuildZip(t testing.TB, entries ...ZipEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		hdr := &zip.FileHeader{Name: e.Name, Method: zip.Deflate}
		if e.Mode != 0 {
			hdr.SetMode(e.Mode)
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			t.Fatalf("failed to add %s to zip: %v", e.Name, err)
		}
		if e.Body == "" {
			continue
		}
		if _, err := w.Write([]byte(e.Body)); err != nil {
			t.Fatalf("failed to write %s to zip: %v", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to finish zip: %v", err)
	}
	return buf.Bytes()
}

// ZipFiles is BuildZip for a name-to-body map, written in sorted name order.
func ZipFiles(t testing.TB, files map[string]string) []byte {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	entries := make([]ZipEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, ZipEntry{Name: name, Body: files[name]})
	}
	return BuildZip(t, entries...)
}
