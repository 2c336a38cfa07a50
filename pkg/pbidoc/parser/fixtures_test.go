package parser

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

// utf16le encodes s the way Power BI stores its descriptors.
func utf16le(t *testing.T, s string) []byte {
	t.Helper()
	b, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatalf("encoding UTF-16LE: %v", err)
	}
	return b
}

// writeZip writes a zip archive holding the given entries.
func writeZip(t *testing.T, path string, entries map[string][]byte) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, data := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating entry %s: %v", name, err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("writing entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
}

// writePackage writes a .pbit package with UTF-16LE descriptors.
func writePackage(t *testing.T, dir, layoutJSON, modelJSON string) string {
	t.Helper()
	path := filepath.Join(dir, "Sales.pbit")
	writeZip(t, path, map[string][]byte{
		LayoutEntry:       utf16le(t, layoutJSON),
		ModelEntry:        utf16le(t, modelJSON),
		"Version":         utf16le(t, "1.28"),
		"[Content_Types]": []byte("<Types/>"),
	})
	return path
}
