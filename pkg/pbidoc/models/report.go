package models

// Report represents the metadata extracted from one report package.
type Report struct {
	// Name is the report name (package file name without extension).
	Name string `json:"name"`
	// Pages lists the report pages.
	Pages []PageRecord `json:"pages"`
	// Visuals lists the visuals of every page.
	Visuals []VisualRecord `json:"visuals"`
	// Columns lists the columns of user tables.
	Columns []ColumnRecord `json:"columns"`
	// Measures lists the measures of user tables.
	Measures []MeasureRecord `json:"measures"`
	// Sources lists the partitions of user tables.
	Sources []SourceRecord `json:"sources"`
	// Relationships lists relationships between user tables.
	Relationships []RelationshipRecord `json:"relationships"`
}

// Category identifies one facet of the report documentation.
type Category string

const (
	CategoryPages         Category = "pages"
	CategoryTables        Category = "tables"
	CategoryMeasures      Category = "measures"
	CategoryVisuals       Category = "visuals"
	CategorySources       Category = "sources"
	CategoryRelationships Category = "relationships"
)

// Categories lists every category in document order.
var Categories = []Category{
	CategoryPages,
	CategoryTables,
	CategoryMeasures,
	CategoryVisuals,
	CategorySources,
	CategoryRelationships,
}

// Len returns the number of records the report holds for a category.
func (r *Report) Len(c Category) int {
	switch c {
	case CategoryPages:
		return len(r.Pages)
	case CategoryTables:
		return len(r.Columns)
	case CategoryMeasures:
		return len(r.Measures)
	case CategoryVisuals:
		return len(r.Visuals)
	case CategorySources:
		return len(r.Sources)
	case CategoryRelationships:
		return len(r.Relationships)
	default:
		return 0
	}
}
