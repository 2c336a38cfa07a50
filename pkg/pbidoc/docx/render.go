package docx

import (
	"encoding/xml"
	"sort"
	"strings"
)

// Section is a block of text to place under a heading paragraph.
type Section struct {
	// Heading is the exact (trimmed) text of the heading paragraph.
	Heading string
	// Text is the block inserted as a new paragraph after the heading.
	Text string
}

// RenderInput holds the values written into a template.
type RenderInput struct {
	// Date is appended to every paragraph containing a date marker.
	Date string
	// ReportName is appended to every paragraph containing a report name marker.
	ReportName string
	// DateMarkers and ReportNameMarkers are the phrases that identify the
	// paragraphs to complete.
	DateMarkers       []string
	ReportNameMarkers []string
	// Sections are placed after their headings, in order.
	Sections []Section
}

// edit replaces n bytes at offset with text.
type edit struct {
	offset int64
	n      int64
	text   string
	seq    int
}

// Render fills the template and returns the resulting document in memory.
// A section whose heading is not found in the template is left out and
// reported in Document.Missing.
func (t *Template) Render(in RenderInput) (*Document, error) {
	idx := t.find(documentPart)
	doc := t.parts[idx].data

	paragraphs, err := scanParagraphs(doc)
	if err != nil {
		return nil, err
	}

	var edits []edit
	add := func(e edit) {
		e.seq = len(edits)
		edits = append(edits, e)
	}

	for _, p := range paragraphs {
		switch {
		case containsAny(p.Text, in.DateMarkers):
			add(appendRun(doc, p, " "+in.Date))
		case containsAny(p.Text, in.ReportNameMarkers):
			add(appendRun(doc, p, " "+in.ReportName))
		}
	}

	var missing []string
	for _, s := range in.Sections {
		p, ok := findHeading(paragraphs, s.Heading)
		if !ok {
			missing = append(missing, s.Heading)
			continue
		}
		add(edit{offset: p.end, text: paragraphXML(p.prefix(), s.Text)})
	}

	parts := make([]part, len(t.parts))
	copy(parts, t.parts)
	parts[idx].data = applyEdits(doc, edits)

	return &Document{parts: parts, Missing: missing}, nil
}

// findHeading returns the first paragraph whose trimmed text equals heading.
func findHeading(paragraphs []Paragraph, heading string) (Paragraph, bool) {
	for _, p := range paragraphs {
		if strings.TrimSpace(p.Text) == heading {
			return p, true
		}
	}
	return Paragraph{}, false
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// appendRun returns the edit adding a text run at the end of a paragraph.
func appendRun(doc []byte, p Paragraph, text string) edit {
	run := runXML(p.prefix(), text)
	if p.closeTag >= 0 {
		return edit{offset: p.closeTag, text: run}
	}

	// Self-closing paragraph: reopen it around the new run
	raw := strings.TrimSpace(string(doc[p.start:p.end]))
	open := strings.TrimSpace(strings.TrimSuffix(raw, "/>")) + ">"
	return edit{
		offset: p.start,
		n:      p.end - p.start,
		text:   open + run + "</" + p.qname + ">",
	}
}

// applyEdits applies edits from the end of the document backwards so
// earlier offsets stay valid. Edits at the same offset keep their order.
func applyEdits(doc []byte, edits []edit) []byte {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].offset != edits[j].offset {
			return edits[i].offset > edits[j].offset
		}
		return edits[i].seq > edits[j].seq
	})

	out := make([]byte, len(doc))
	copy(out, doc)
	for _, e := range edits {
		tail := append([]byte(e.text), out[e.offset+e.n:]...)
		out = append(out[:e.offset], tail...)
	}
	return out
}

func qualify(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}

// paragraphXML builds a paragraph holding a single run of text.
func paragraphXML(prefix, text string) string {
	p := qualify(prefix, "p")
	return "<" + p + ">" + runXML(prefix, text) + "</" + p + ">"
}

// runXML builds a run of text. Newlines become breaks and tabs become tab
// elements, as Word does when text is typed in.
func runXML(prefix, text string) string {
	r := qualify(prefix, "r")
	var b strings.Builder
	b.WriteString("<" + r + ">")

	text = strings.ReplaceAll(text, "\r\n", "\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString("<" + qualify(prefix, "br") + "/>")
		}
		for j, segment := range strings.Split(line, "\t") {
			if j > 0 {
				b.WriteString("<" + qualify(prefix, "tab") + "/>")
			}
			if segment == "" {
				continue
			}
			t := qualify(prefix, "t")
			b.WriteString("<" + t + ` xml:space="preserve">`)
			xml.EscapeText(&b, []byte(segment))
			b.WriteString("</" + t + ">")
		}
	}

	b.WriteString("</" + r + ">")
	return b.String()
}
