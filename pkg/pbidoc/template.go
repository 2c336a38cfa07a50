package pbidoc

import (
	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/docx"
	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/models"
	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/output"
)

var documentTitles = map[string]string{
	"pt": "Documentação Técnica",
	"en": "Technical Documentation",
}

// DefaultTemplate builds a template holding the date and report name markers
// and one heading per documentation category.
func DefaultTemplate(labels output.Labels) *docx.Template {
	base, _ := labels.Tag.Base()
	title, ok := documentTitles[base.String()]
	if !ok {
		title = documentTitles["pt"]
	}

	paragraphs := []docx.TemplateParagraph{
		{Style: docx.StyleTitle, Text: title},
		{Text: labels.DateMarkers[langIndex(base.String())]},
		{Text: labels.ReportNameMarkers[langIndex(base.String())]},
	}
	for _, c := range models.Categories {
		paragraphs = append(paragraphs, docx.TemplateParagraph{
			Style: docx.StyleHeading1,
			Text:  output.Capitalize(labels.Title(c), labels.Tag),
		})
	}
	return docx.NewTemplate(paragraphs)
}

// langIndex picks the marker written for a language; markers are listed
// Portuguese first.
func langIndex(base string) int {
	if base == "en" {
		return 1
	}
	return 0
}
