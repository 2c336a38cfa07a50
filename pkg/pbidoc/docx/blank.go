package docx

import (
	"archive/zip"
	"encoding/xml"
	"strings"
	"time"
)

// Paragraph styles defined by NewTemplate.
const (
	StyleNormal   = "Normal"
	StyleTitle    = "Title"
	StyleHeading1 = "Heading1"
)

// TemplateParagraph is one paragraph of a generated template.
type TemplateParagraph struct {
	// Style is a paragraph style id; empty means Normal.
	Style string
	Text  string
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="` + nsW + `">` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:qFormat/>` +
	`<w:rPr><w:sz w:val="56"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:qFormat/>` +
	`<w:pPr><w:keepNext/><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="0"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>` +
	`</w:styles>`

// NewTemplate builds a template package holding the given paragraphs.
func NewTemplate(paragraphs []TemplateParagraph) *Template {
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString("<w:p>")
		if p.Style != "" && p.Style != StyleNormal {
			body.WriteString(`<w:pPr><w:pStyle w:val="`)
			xml.EscapeText(&body, []byte(p.Style))
			body.WriteString(`"/></w:pPr>`)
		}
		if p.Text != "" {
			body.WriteString(runXML("w", p.Text))
		}
		body.WriteString("</w:p>")
	}

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="` + nsW + `"><w:body>` + body.String() +
		`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr></w:body></w:document>`

	now := time.Now()
	newPart := func(name, data string) part {
		return part{
			header: zip.FileHeader{Name: name, Method: zip.Deflate, Modified: now},
			data:   []byte(data),
		}
	}

	return &Template{parts: []part{
		newPart(contentTypesPart, contentTypesXML),
		newPart("_rels/.rels", packageRelsXML),
		newPart(documentPart, document),
		newPart("word/_rels/document.xml.rels", documentRelsXML),
		newPart("word/styles.xml", stylesXML),
	}}
}

// Save writes the template itself as a .docx package.
func (t *Template) Save(filename string) error {
	return (&Document{parts: t.parts}).Save(filename)
}
