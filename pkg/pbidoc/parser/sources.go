package parser

import "github.com/ukaji3/pbidoc-go/pkg/pbidoc/models"

// ExtractSources lists the partitions of every user table with their data source.
func ExtractSources(schema models.ModelSchema) []models.SourceRecord {
	var result []models.SourceRecord
	for _, table := range schema.Model.Tables {
		if IsAutoTable(table.Name) {
			continue
		}
		for _, p := range table.Partitions {
			result = append(result, models.SourceRecord{
				Table:      table.Name,
				Mode:       p.Mode,
				SourceType: p.Source.Type,
				Expression: p.Source.Expression.String(),
			})
		}
	}
	return result
}
