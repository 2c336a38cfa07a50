package docx

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// Paragraph is a body-level paragraph (<w:p>) of document.xml.
type Paragraph struct {
	// Text is the paragraph text; tabs and breaks appear as "\t" and "\n".
	Text string

	start    int64  // offset of the opening tag
	end      int64  // offset just past the closing tag
	closeTag int64  // offset of the closing tag, -1 when self-closing
	qname    string // element name as written, e.g. "w:p"
}

// prefix returns the namespace prefix the paragraph element is written with.
func (p Paragraph) prefix() string {
	if i := strings.IndexByte(p.qname, ':'); i >= 0 {
		return p.qname[:i]
	}
	return ""
}

// scanParagraphs lists the paragraphs that are direct children of <w:body>,
// in document order. Paragraphs inside tables, text boxes and other
// containers are not included.
func scanParagraphs(doc []byte) ([]Paragraph, error) {
	decoder := xml.NewDecoder(bytes.NewReader(doc))

	var (
		result    []Paragraph
		cur       *Paragraph
		text      strings.Builder
		depth     int
		bodyDepth = -1
		paraDepth int
		inText    int
		skip      int // depth inside nested content that does not belong to the paragraph text
	)

	for {
		offset := decoder.InputOffset()
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if skip > 0 {
				skip++
				continue
			}
			if t.Name.Space != nsW {
				continue
			}
			switch {
			case t.Name.Local == "body" && bodyDepth < 0:
				bodyDepth = depth
			case cur == nil && bodyDepth >= 0 && t.Name.Local == "p" && depth == bodyDepth+1:
				cur = &Paragraph{start: offset, closeTag: -1, qname: rawName(doc, offset)}
				paraDepth = depth
				text.Reset()
			case cur != nil:
				switch t.Name.Local {
				case "txbxContent", "delText":
					skip = 1
				case "t":
					inText++
				case "tab":
					text.WriteByte('\t')
				case "br", "cr":
					text.WriteByte('\n')
				}
			}

		case xml.EndElement:
			if cur != nil && depth == paraDepth && t.Name.Space == nsW && t.Name.Local == "p" {
				end := decoder.InputOffset()
				if end > offset {
					cur.closeTag = offset
				}
				cur.end = end
				cur.Text = text.String()
				result = append(result, *cur)
				cur = nil
			} else if cur != nil {
				switch {
				case skip > 0:
					skip--
				case t.Name.Space == nsW && t.Name.Local == "t" && inText > 0:
					inText--
				}
			}
			depth--

		case xml.CharData:
			if cur != nil && inText > 0 && skip == 0 {
				text.Write(t)
			}
		}
	}

	return result, nil
}

// rawName returns the element name of the tag starting at offset.
func rawName(doc []byte, offset int64) string {
	rest := doc[offset:]
	if len(rest) == 0 || rest[0] != '<' {
		return "w:p"
	}
	rest = rest[1:]
	end := bytes.IndexAny(rest, " \t\r\n/>")
	if end < 0 {
		return "w:p"
	}
	return string(rest[:end])
}
