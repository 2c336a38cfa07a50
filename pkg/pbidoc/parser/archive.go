// Package parser provides Power BI package parsing utilities.
package parser

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Entry names of the descriptors inside a report package.
const (
	LayoutEntry = "Report/Layout"
	ModelEntry  = "DataModelSchema"
)

// ErrEntryNotFound indicates a named entry is missing from the archive.
var ErrEntryNotFound = errors.New("entry not found in archive")

// Package is a report package opened as a zip archive in place.
type Package struct {
	zr *zip.ReadCloser
}

// OpenPackage opens a report package for reading without renaming it.
func OpenPackage(path string) (*Package, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening package archive: %w", err)
	}
	return &Package{zr: zr}, nil
}

// Close releases the underlying archive.
func (p *Package) Close() error {
	if p.zr != nil {
		err := p.zr.Close()
		p.zr = nil
		return err
	}
	return nil
}

// Has reports whether the archive contains the named entry.
func (p *Package) Has(name string) bool {
	return findZipFile(&p.zr.Reader, name) != nil
}

// ReadEntry returns the content of a named entry.
func (p *Package) ReadEntry(name string) ([]byte, error) {
	return readZipFile(&p.zr.Reader, name)
}

// ArchivePath returns the .zip path a package is renamed to in rename mode.
func ArchivePath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".zip"
}

// EnsureArchive renames originalPath to archivePath and reports whether it
// did. An archive already present at archivePath is used as is, so a rerun
// after an interrupted run picks up where it stopped.
func EnsureArchive(originalPath, archivePath string) (bool, error) {
	exists, err := fileExists(archivePath)
	if err != nil || exists {
		return false, err
	}
	if err := os.Rename(originalPath, archivePath); err != nil {
		return false, err
	}
	return true, nil
}

// RestorePackage renames the archive back to the package's original path and
// reports whether it did. Nothing is renamed while a file exists at
// originalPath, so an archive never replaces a package.
func RestorePackage(archivePath, originalPath string) (bool, error) {
	exists, err := fileExists(originalPath)
	if err != nil || exists {
		return false, err
	}
	if err := os.Rename(archivePath, originalPath); err != nil {
		return false, err
	}
	return true, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ExtractEntries writes each named entry of the archive under destDir,
// keeping the entry's internal relative path.
func ExtractEntries(archivePath, destDir string, entries []string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer r.Close()

	for _, name := range entries {
		target, err := entryTarget(destDir, name)
		if err != nil {
			return err
		}

		data, err := readZipFile(&r.Reader, name)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return err
		}
	}

	return nil
}

// entryTarget maps an archive entry name to a path under destDir and
// rejects names that would escape it.
func entryTarget(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	rel, err := filepath.Rel(destDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("illegal entry path: %s", name)
	}
	return target, nil
}

func findZipFile(r *zip.Reader, name string) *zip.File {
	for _, f := range r.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	f := findZipFile(r, name)
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
