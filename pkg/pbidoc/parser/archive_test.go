package parser

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenPackageReadsInPlace(t *testing.T) {
	dir := t.TempDir()
	path := writePackage(t, dir, `{"sections": []}`, `{"model": {}}`)

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	pkg, err := OpenPackage(path)
	if err != nil {
		t.Fatalf("OpenPackage failed: %v", err)
	}

	if !pkg.Has(LayoutEntry) || !pkg.Has(ModelEntry) {
		t.Error("expected both descriptors in package")
	}
	if pkg.Has("Report/Missing") {
		t.Error("unexpected entry reported present")
	}

	data, err := pkg.ReadEntry(LayoutEntry)
	if err != nil {
		t.Fatalf("ReadEntry failed: %v", err)
	}
	if !bytes.Equal(data, utf16le(t, `{"sections": []}`)) {
		t.Errorf("unexpected layout bytes: %v", data)
	}

	if _, err := pkg.ReadEntry("Report/Missing"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}

	if err := pkg.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := pkg.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("package missing after read: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Error("package changed on disk")
	}
}

func TestOpenPackageCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pbit")
	if err := os.WriteFile(path, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenPackage(path); err == nil {
		t.Error("expected error for corrupt archive")
	}
}

func TestEnsureArchive(t *testing.T) {
	dir := t.TempDir()
	original := writePackage(t, dir, `{}`, `{}`)
	archive := ArchivePath(original)

	renamed, err := EnsureArchive(original, archive)
	if err != nil {
		t.Fatalf("EnsureArchive failed: %v", err)
	}
	if !renamed {
		t.Error("expected the package to be renamed")
	}
	if _, err := os.Stat(archive); err != nil {
		t.Errorf("archive not created: %v", err)
	}
	if _, err := os.Stat(original); !os.IsNotExist(err) {
		t.Errorf("original should have been renamed, stat err = %v", err)
	}

	restored, err := RestorePackage(archive, original)
	if err != nil {
		t.Fatalf("RestorePackage failed: %v", err)
	}
	if !restored {
		t.Error("expected the archive to be renamed back")
	}
	if _, err := os.Stat(original); err != nil {
		t.Errorf("original not restored: %v", err)
	}
}

func TestEnsureArchiveResumesInterruptedRun(t *testing.T) {
	dir := t.TempDir()
	original := writePackage(t, dir, `{}`, `{}`)
	archive := ArchivePath(original)
	if err := os.Rename(original, archive); err != nil {
		t.Fatal(err)
	}

	renamed, err := EnsureArchive(original, archive)
	if err != nil {
		t.Fatalf("EnsureArchive failed: %v", err)
	}
	if renamed {
		t.Error("nothing to rename when only the archive exists")
	}

	restored, err := RestorePackage(archive, original)
	if err != nil {
		t.Fatalf("RestorePackage failed: %v", err)
	}
	if !restored {
		t.Error("expected the archive to be renamed back")
	}
	if _, err := os.Stat(original); err != nil {
		t.Errorf("original not restored: %v", err)
	}
}

func TestRestorePackageKeepsExistingPackage(t *testing.T) {
	dir := t.TempDir()
	original := writePackage(t, dir, `{}`, `{}`)
	archive := ArchivePath(original)
	if err := os.WriteFile(archive, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(original)
	if err != nil {
		t.Fatal(err)
	}

	restored, err := RestorePackage(archive, original)
	if err != nil {
		t.Fatalf("RestorePackage failed: %v", err)
	}
	if restored {
		t.Error("an existing package must not be replaced")
	}

	after, err := os.ReadFile(original)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("package content changed")
	}
	if _, err := os.Stat(archive); err != nil {
		t.Errorf("archive should be left in place: %v", err)
	}
}

func TestArchivePath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{filepath.Join("reports", "Sales.pbit"), filepath.Join("reports", "Sales.zip")},
		{"Sales.v2.pbit", "Sales.v2.zip"},
		{"Sales", "Sales.zip"},
		{"Sales.zip", "Sales.zip"},
	}

	for _, tt := range tests {
		if got := ArchivePath(tt.path); got != tt.expected {
			t.Errorf("ArchivePath(%q) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}

func TestEnsureArchiveExisting(t *testing.T) {
	dir := t.TempDir()
	original := writePackage(t, dir, `{}`, `{}`)
	archive := ArchivePath(original)
	if err := os.WriteFile(archive, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	renamed, err := EnsureArchive(original, archive)
	if err != nil {
		t.Fatalf("EnsureArchive failed: %v", err)
	}
	if renamed {
		t.Error("an existing archive must not be replaced")
	}
	if _, err := os.Stat(original); err != nil {
		t.Errorf("original should be untouched: %v", err)
	}
}

func TestEnsureArchiveMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := EnsureArchive(filepath.Join(dir, "none.pbit"), filepath.Join(dir, "none.zip"))
	if err == nil {
		t.Error("expected error when neither path exists")
	}
}

func TestExtractEntries(t *testing.T) {
	dir := t.TempDir()
	path := writePackage(t, dir, `{"sections": []}`, `{"model": {}}`)
	dest := filepath.Join(dir, "work")

	if err := ExtractEntries(path, dest, []string{LayoutEntry, ModelEntry}); err != nil {
		t.Fatalf("ExtractEntries failed: %v", err)
	}

	for _, name := range []string{LayoutEntry, ModelEntry} {
		if _, err := os.Stat(filepath.Join(dest, filepath.FromSlash(name))); err != nil {
			t.Errorf("entry %s not extracted: %v", name, err)
		}
	}
}

func TestExtractEntriesMissingEntry(t *testing.T) {
	dir := t.TempDir()
	path := writePackage(t, dir, `{}`, `{}`)

	err := ExtractEntries(path, dir, []string{"Report/StaticResources"})
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestEntryTargetRejectsEscape(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"Report/Layout", false},
		{"DataModelSchema", false},
		{"../outside", true},
		{"Report/../../outside", true},
	}

	dest := t.TempDir()
	for _, tt := range tests {
		_, err := entryTarget(dest, tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("entryTarget(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
