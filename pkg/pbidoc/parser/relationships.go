package parser

import "github.com/ukaji3/pbidoc-go/pkg/pbidoc/models"

// ExtractRelationships lists the relationships whose endpoints are both user tables.
func ExtractRelationships(schema models.ModelSchema) []models.RelationshipRecord {
	var result []models.RelationshipRecord
	for _, rel := range schema.Model.Relationships {
		if IsAutoTable(rel.FromTable) || IsAutoTable(rel.ToTable) {
			continue
		}
		result = append(result, models.RelationshipRecord{
			FromTable:  rel.FromTable,
			ToTable:    rel.ToTable,
			FromColumn: rel.FromColumn,
			ToColumn:   rel.ToColumn,
		})
	}
	return result
}
