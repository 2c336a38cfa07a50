package docx

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"os"
)

// Document is a rendered .docx package held in memory.
type Document struct {
	parts []part

	// Missing lists the section headings not found in the template.
	Missing []string
}

// Paragraphs returns the body paragraphs of the document.
func (d *Document) Paragraphs() ([]Paragraph, error) {
	return scanParagraphs(d.parts[findPart(d.parts, documentPart)].data)
}

// WriteTo writes the document as a .docx package.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	for _, p := range d.parts {
		header := p.header
		fw, err := zw.CreateHeader(&header)
		if err != nil {
			return cw.n, fmt.Errorf("writing %s: %w", p.header.Name, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			return cw.n, fmt.Errorf("writing %s: %w", p.header.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// Save writes the document to filename, replacing any file already there.
func (d *Document) Save(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if _, err := d.WriteTo(bw); err != nil {
		return err
	}
	return bw.Flush()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
