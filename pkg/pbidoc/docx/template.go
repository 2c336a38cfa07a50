// Package docx fills Word (.docx) templates with generated documentation.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Package part names
const (
	contentTypesPart = "[Content_Types].xml"
	documentPart     = "word/document.xml"
)

// XML namespace of WordprocessingML
const nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// part is one file of the package, kept in archive order.
type part struct {
	header zip.FileHeader
	data   []byte
}

// Template is a .docx package loaded in memory. Rendering never modifies
// the template, so one Template can render any number of documents.
type Template struct {
	parts []part
}

// Open loads a .docx template from disk.
func Open(filename string) (*Template, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Read(bytes.NewReader(data), int64(len(data)))
}

// Read loads a .docx template from r.
func Read(r io.ReaderAt, size int64) (*Template, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	t := &Template{}
	for _, f := range zr.File {
		data, err := readAll(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		t.parts = append(t.parts, part{
			header: zip.FileHeader{
				Name:     f.Name,
				Method:   f.Method,
				Modified: f.Modified,
			},
			data: data,
		})
	}

	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// validate checks that required DOCX files exist.
func (t *Template) validate() error {
	required := []string{contentTypesPart, documentPart}
	for _, name := range required {
		if t.find(name) < 0 {
			return fmt.Errorf("missing required file: %s", name)
		}
	}
	return nil
}

// Paragraphs returns the body paragraphs of the template.
func (t *Template) Paragraphs() ([]Paragraph, error) {
	return scanParagraphs(t.parts[t.find(documentPart)].data)
}

func (t *Template) find(name string) int {
	return findPart(t.parts, name)
}

func findPart(parts []part, name string) int {
	for i, p := range parts {
		if p.header.Name == name {
			return i
		}
	}
	return -1
}

func readAll(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
