// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
)

func TestZipFiles_SortedEntries(t *testing.T) {
	t.Parallel()

	data := ZipFiles(t, map[string]string{
		"b.txt":     "bee",
		"a.txt":     "ay",
		"sub/c.txt": "see",
	})

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() error: %v", err)
	}

	want := []struct{ name, body string }{
		{"a.txt", "ay"},
		{"b.txt", "bee"},
		{"sub/c.txt", "see"},
	}
	if len(r.File) != len(want) {
		t.Fatalf("got %d entries, want %d", len(r.File), len(want))
	}
	for i, f := range r.File {
		if f.Name != want[i].name {
			t.Errorf("entry %d name = %q, want %q", i, f.Name, want[i].name)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Open(%s) error: %v", f.Name, err)
		}
		body, err := io.ReadAll(rc)
		MustClose(t, rc)
		if err != nil {
			t.Fatalf("ReadAll(%s) error: %v", f.Name, err)
		}
		if string(body) != want[i].body {
			t.Errorf("entry %s body = %q, want %q", f.Name, body, want[i].body)
		}
	}
}

func TestBuildZip_DirectoryEntry(t *testing.T) {
	t.Parallel()

	data := BuildZip(t, ZipEntry{Name: "assets/"}, ZipEntry{Name: "assets/x.bin", Body: "x"})

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() error: %v", err)
	}
	if !r.File[0].FileInfo().IsDir() {
		t.Errorf("entry %q should be a directory", r.File[0].Name)
	}
	if r.File[1].FileInfo().IsDir() {
		t.Errorf("entry %q should be a file", r.File[1].Name)
	}
}
