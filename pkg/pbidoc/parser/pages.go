package parser

import "github.com/ukaji3/pbidoc-go/pkg/pbidoc/models"

// ExtractPages lists the report pages in layout order.
func ExtractPages(layout models.Layout) []models.PageRecord {
	result := make([]models.PageRecord, 0, len(layout.Sections))
	for _, section := range layout.Sections {
		result = append(result, pageRecord(section))
	}
	return result
}

func pageRecord(section models.Section) models.PageRecord {
	if section.DisplayName == nil {
		return models.PageRecord{Untitled: true}
	}
	return models.PageRecord{Name: *section.DisplayName}
}
