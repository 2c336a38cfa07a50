package docx

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// templateFromBody packages a document.xml body into a template.
func templateFromBody(t *testing.T, prefix, body string) *Template {
	t.Helper()

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<` + prefix + `:document xmlns:` + prefix + `="` + nsW + `"><` + prefix + `:body>` + body +
		`</` + prefix + `:body></` + prefix + `:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range []struct{ name, data string }{
		{contentTypesPart, contentTypesXML},
		{documentPart, document},
	} {
		w, err := zw.Create(f.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(f.data)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	tmpl, err := Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	return tmpl
}

func paragraphTexts(t *testing.T, paragraphs []Paragraph, err error) []string {
	t.Helper()
	if err != nil {
		t.Fatalf("scanning paragraphs: %v", err)
	}
	texts := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		texts[i] = p.Text
	}
	return texts
}

func sampleTemplate() *Template {
	return NewTemplate([]TemplateParagraph{
		{Style: StyleTitle, Text: "Documentação"},
		{Text: "Data da documentação:"},
		{Text: "Nome do Relatório:"},
		{Style: StyleHeading1, Text: "Páginas"},
		{Style: StyleHeading1, Text: "Medidas"},
		{Text: "Fim"},
	})
}

func TestRender(t *testing.T) {
	tmpl := sampleTemplate()

	doc, err := tmpl.Render(RenderInput{
		Date:              "15/10/2026",
		ReportName:        "Sales",
		DateMarkers:       []string{"Data da documentação:"},
		ReportNameMarkers: []string{"Nome do Relatório:"},
		Sections: []Section{
			{Heading: "Páginas", Text: "\nOverview\n-----------\n"},
			{Heading: "Medidas", Text: ""},
		},
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(doc.Missing) != 0 {
		t.Errorf("unexpected missing headings: %v", doc.Missing)
	}

	paragraphs, err := doc.Paragraphs()
	got := paragraphTexts(t, paragraphs, err)
	want := []string{
		"Documentação",
		"Data da documentação: 15/10/2026",
		"Nome do Relatório: Sales",
		"Páginas",
		"\nOverview\n-----------\n",
		"Medidas",
		"",
		"Fim",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDatePrecedesReportName(t *testing.T) {
	tmpl := NewTemplate([]TemplateParagraph{{Text: "Documentation date: / Report name:"}})

	doc, err := tmpl.Render(RenderInput{
		Date:              "01/02/2026",
		ReportName:        "Sales",
		DateMarkers:       []string{"Documentation date:"},
		ReportNameMarkers: []string{"Report name:"},
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	paragraphs, err := doc.Paragraphs()
	got := paragraphTexts(t, paragraphs, err)
	if diff := cmp.Diff([]string{"Documentation date: / Report name: 01/02/2026"}, got); diff != "" {
		t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderReportsMissingHeadings(t *testing.T) {
	doc, err := sampleTemplate().Render(RenderInput{
		Sections: []Section{
			{Heading: "Páginas", Text: "a"},
			{Heading: "Fontes", Text: "b"},
			{Heading: "Relacionamentos", Text: "c"},
		},
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if diff := cmp.Diff([]string{"Fontes", "Relacionamentos"}, doc.Missing); diff != "" {
		t.Errorf("missing mismatch (-want +got):\n%s", diff)
	}

	paragraphs, err := doc.Paragraphs()
	got := paragraphTexts(t, paragraphs, err)
	if len(got) != 7 {
		t.Errorf("expected one inserted paragraph, got %q", got)
	}
}

func TestRenderFirstMatchingHeadingOnly(t *testing.T) {
	tmpl := NewTemplate([]TemplateParagraph{
		{Text: "  Visuais  "},
		{Text: "Visuais"},
	})

	doc, err := tmpl.Render(RenderInput{Sections: []Section{{Heading: "Visuais", Text: "x"}}})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	paragraphs, err := doc.Paragraphs()
	got := paragraphTexts(t, paragraphs, err)
	if diff := cmp.Diff([]string{"  Visuais  ", "x", "Visuais"}, got); diff != "" {
		t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderLeavesTemplateUnchanged(t *testing.T) {
	tmpl := sampleTemplate()
	before, err := tmpl.Paragraphs()
	if err != nil {
		t.Fatal(err)
	}

	in := RenderInput{
		Date:        "15/10/2026",
		DateMarkers: []string{"Data da documentação:"},
		Sections:    []Section{{Heading: "Páginas", Text: "p"}},
	}
	for i := 0; i < 2; i++ {
		doc, err := tmpl.Render(in)
		if err != nil {
			t.Fatalf("Render %d failed: %v", i, err)
		}
		paragraphs, err := doc.Paragraphs()
		got := paragraphTexts(t, paragraphs, err)
		if got[1] != "Data da documentação: 15/10/2026" {
			t.Errorf("render %d: date paragraph = %q", i, got[1])
		}
	}

	after, err := tmpl.Paragraphs()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(paragraphTexts(t, before, nil), paragraphTexts(t, after, nil)); diff != "" {
		t.Errorf("template changed (-before +after):\n%s", diff)
	}
}

func TestRenderKeepsNamespacePrefix(t *testing.T) {
	tmpl := templateFromBody(t, "wx",
		`<wx:p><wx:r><wx:t>Fontes</wx:t></wx:r></wx:p>`+
			`<wx:p><wx:r><wx:t>Data da documentação:</wx:t></wx:r></wx:p>`)

	doc, err := tmpl.Render(RenderInput{
		Date:        "15/10/2026",
		DateMarkers: []string{"Data da documentação:"},
		Sections:    []Section{{Heading: "Fontes", Text: "a\tb"}},
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	data := doc.parts[findPart(doc.parts, documentPart)].data
	if strings.Contains(string(data), "<w:") {
		t.Errorf("inserted markup uses the wrong prefix:\n%s", data)
	}

	paragraphs, err := doc.Paragraphs()
	got := paragraphTexts(t, paragraphs, err)
	want := []string{"Fontes", "a\tb", "Data da documentação: 15/10/2026"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
	}
}

func TestScanParagraphsBodyLevelOnly(t *testing.T) {
	tmpl := templateFromBody(t, "w",
		`<w:p><w:r><w:t>one</w:t><w:tab/><w:t>two</w:t><w:br/><w:t>three</w:t></w:r></w:p>`+
			`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>in table</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`+
			`<w:p><w:r><w:t>before</w:t></w:r><w:r><w:txbxContent><w:p><w:r><w:t>boxed</w:t></w:r></w:p></w:txbxContent></w:r>`+
			`<w:del><w:r><w:delText>gone</w:delText></w:r></w:del><w:r><w:t>after</w:t></w:r></w:p>`+
			`<w:p/>`)

	paragraphs, err := tmpl.Paragraphs()
	got := paragraphTexts(t, paragraphs, err)
	want := []string{"one\ttwo\nthree", "beforeafter", ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
	}
	if paragraphs[2].closeTag != -1 {
		t.Errorf("self-closing paragraph has closeTag %d", paragraphs[2].closeTag)
	}
}

func TestAppendRunSelfClosing(t *testing.T) {
	doc := []byte(`<w:document xmlns:w="` + nsW + `"><w:body><w:p w:rsidR="00A1"/></w:body></w:document>`)

	paragraphs, err := scanParagraphs(doc)
	if err != nil || len(paragraphs) != 1 {
		t.Fatalf("scanParagraphs = %v, %v", paragraphs, err)
	}

	out := applyEdits(doc, []edit{appendRun(doc, paragraphs[0], "added")})
	paragraphs, err = scanParagraphs(out)
	got := paragraphTexts(t, paragraphs, err)
	if diff := cmp.Diff([]string{"added"}, got); diff != "" {
		t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(out), `<w:p w:rsidR="00A1">`) {
		t.Errorf("paragraph attributes lost:\n%s", out)
	}
}

func TestRunXMLEscapesText(t *testing.T) {
	got := runXML("w", "a < b & c\nd")
	want := `<w:r><w:t xml:space="preserve">a &lt; b &amp; c</w:t><w:br/><w:t xml:space="preserve">d</w:t></w:r>`
	if got != want {
		t.Errorf("runXML() = %q, expected %q", got, want)
	}
}

func TestSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "modelo.docx")
	if err := sampleTemplate().Save(templatePath); err != nil {
		t.Fatalf("Save template failed: %v", err)
	}

	tmpl, err := Open(templatePath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	doc, err := tmpl.Render(RenderInput{Sections: []Section{{Heading: "Medidas", Text: "m"}}})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	outPath := filepath.Join(dir, "out.docx")
	if err := doc.Save(outPath); err != nil {
		t.Fatalf("Save document failed: %v", err)
	}

	reopened, err := Open(outPath)
	if err != nil {
		t.Fatalf("Open rendered document failed: %v", err)
	}
	paragraphs, err := reopened.Paragraphs()
	got := paragraphTexts(t, paragraphs, err)
	if len(got) != 7 || got[5] != "m" {
		t.Errorf("unexpected paragraphs after round trip: %q", got)
	}

	zr, err := zip.OpenReader(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	wantNames := []string{contentTypesPart, "_rels/.rels", documentPart, "word/_rels/document.xml.rels", "word/styles.xml"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Errorf("part order mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRejectsIncompletePackage(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(contentTypesPart)
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte(contentTypesXML))
	zw.Close()

	if _, err := Read(bytes.NewReader(buf.Bytes()), int64(buf.Len())); err == nil {
		t.Error("expected an error for a package without word/document.xml")
	}

	if _, err := Read(strings.NewReader("not a zip"), 9); err == nil {
		t.Error("expected an error for a non-ZIP file")
	}
}
