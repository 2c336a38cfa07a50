package parser

import "github.com/ukaji3/pbidoc-go/pkg/pbidoc/models"

// measureKey identifies a measure within the model.
type measureKey struct {
	table   string
	measure string
}

// ExtractMeasures lists the measures of every user table. A (table, measure)
// pair enumerated more than once is reported only at its first occurrence.
func ExtractMeasures(schema models.ModelSchema) []models.MeasureRecord {
	var result []models.MeasureRecord
	seen := make(map[measureKey]bool)

	for _, table := range schema.Model.Tables {
		if IsAutoTable(table.Name) {
			continue
		}
		for _, m := range table.Measures {
			key := measureKey{table: table.Name, measure: m.Name}
			if seen[key] {
				continue
			}
			seen[key] = true

			result = append(result, models.MeasureRecord{
				Table:      table.Name,
				Measure:    m.Name,
				Expression: m.Expression.String(),
			})
		}
	}
	return result
}
