package models

// PageRecord describes one report page.
type PageRecord struct {
	// Name is the page display name.
	Name string `json:"name"`
	// Untitled is set when the page has no display name.
	Untitled bool `json:"untitled,omitempty"`
}

// VisualRecord describes one visual and where it sits on its page.
type VisualRecord struct {
	// Page is the owning page name.
	Page string `json:"page"`
	// PageUntitled is set when the owning page has no display name.
	PageUntitled bool `json:"page_untitled,omitempty"`
	// X is the left offset, truncated to an integer.
	X int `json:"x"`
	// Y is the top offset, truncated to an integer.
	Y int `json:"y"`
	// Height is the visual height, truncated to an integer.
	Height int `json:"height"`
	// Width is the visual width, truncated to an integer.
	Width int `json:"width"`
	// VisualType is the visual kind.
	VisualType string `json:"visual_type"`
	// QueryRefs lists the fields and measures bound to the visual.
	QueryRefs []string `json:"query_refs,omitempty"`
}

// ColumnRecord describes one table column.
type ColumnRecord struct {
	Table      string `json:"table"`
	Column     string `json:"column"`
	DataType   string `json:"data_type"`
	Calculated bool   `json:"calculated"`
}

// MeasureRecord describes one measure.
type MeasureRecord struct {
	Table      string `json:"table"`
	Measure    string `json:"measure"`
	Expression string `json:"expression"`
}

// SourceRecord describes one table partition and its data source.
type SourceRecord struct {
	Table      string `json:"table"`
	Mode       string `json:"mode"`
	SourceType string `json:"source_type"`
	Expression string `json:"expression"`
}

// RelationshipRecord describes one relationship between two tables.
type RelationshipRecord struct {
	FromTable  string `json:"from_table"`
	ToTable    string `json:"to_table"`
	FromColumn string `json:"from_column"`
	ToColumn   string `json:"to_column"`
}
