// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wizardswithguns/wwg-launcher/internal/testutil"
)

func writeArchive(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.zip")
	testutil.MustWriteFile(t, path, data)
	return path
}

func TestExtractZip(t *testing.T) {
	t.Parallel()

	archive := writeArchive(t, testutil.BuildZip(t,
		testutil.ZipEntry{Name: "wizards-with-guns.exe", Body: "binary", Mode: 0o755},
		testutil.ZipEntry{Name: "data/"},
		testutil.ZipEntry{Name: "data/levels/one.dat", Body: "level"},
	))
	dest := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dest, "wizards-with-guns.exe"), []byte("an older and longer binary"))

	if err := extractZip(archive, dest); err != nil {
		t.Fatalf("extractZip() error: %v", err)
	}

	if got := testutil.MustReadFile(t, filepath.Join(dest, "wizards-with-guns.exe")); got != "binary" {
		t.Errorf("executable = %q, want overwritten contents", got)
	}
	if got := testutil.MustReadFile(t, filepath.Join(dest, "data", "levels", "one.dat")); got != "level" {
		t.Errorf("nested file = %q, want %q", got, "level")
	}
	if info, err := os.Stat(filepath.Join(dest, "data")); err != nil || !info.IsDir() {
		t.Errorf("data/ should be a directory, stat err = %v", err)
	}
}

func TestExtractZip_RejectsTraversal(t *testing.T) {
	t.Parallel()

	archive := writeArchive(t, testutil.BuildZip(t,
		testutil.ZipEntry{Name: "../escape.txt", Body: "nope"},
	))
	parent := t.TempDir()
	dest := filepath.Join(parent, "install")

	err := extractZip(archive, dest)
	if !errors.Is(err, ErrUnsafeArchiveEntry) {
		t.Fatalf("extractZip() error = %v, want ErrUnsafeArchiveEntry", err)
	}
	if !errors.Is(err, ErrFilesystem) {
		t.Errorf("extractZip() error = %v, want ErrFilesystem", err)
	}
	if _, statErr := os.Stat(filepath.Join(parent, "escape.txt")); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("escape.txt was written outside the install dir")
	}
}

func TestExtractZip_NotAZip(t *testing.T) {
	t.Parallel()

	archive := writeArchive(t, []byte("<html>not a zip</html>"))

	if err := extractZip(archive, t.TempDir()); !errors.Is(err, ErrFilesystem) {
		t.Errorf("extractZip() error = %v, want ErrFilesystem", err)
	}
}

func TestEntryTarget(t *testing.T) {
	t.Parallel()

	dest := t.TempDir()
	tests := []struct {
		name    string
		entry   string
		want    string
		wantErr bool
	}{
		{name: "plain file", entry: "game.exe", want: filepath.Join(dest, "game.exe")},
		{name: "nested", entry: "a/b/c.txt", want: filepath.Join(dest, "a", "b", "c.txt")},
		{name: "inner dotdot stays inside", entry: "a/../b.txt", want: filepath.Join(dest, "b.txt")},
		{name: "parent", entry: "../x", wantErr: true},
		{name: "deep parent", entry: "a/../../x", wantErr: true},
		{name: "absolute", entry: "/etc/passwd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := entryTarget(dest, tt.entry)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsafeArchiveEntry) {
					t.Errorf("entryTarget(%q) error = %v, want ErrUnsafeArchiveEntry", tt.entry, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("entryTarget(%q) error: %v", tt.entry, err)
			}
			if got != tt.want {
				t.Errorf("entryTarget(%q) = %q, want %q", tt.entry, got, tt.want)
			}
		})
	}
}
