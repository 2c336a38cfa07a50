package models

// ModelSchema represents the data model schema descriptor (DataModelSchema).
type ModelSchema struct {
	// Name is the model database name.
	Name string `json:"name,omitempty"`
	// CompatibilityLevel is the tabular model compatibility level.
	CompatibilityLevel int `json:"compatibilityLevel,omitempty"`
	// Model holds the semantic model.
	Model Model `json:"model"`
}

// Model is the semantic data model.
type Model struct {
	Culture       string         `json:"culture,omitempty"`
	Tables        []Table        `json:"tables"`
	Relationships []Relationship `json:"relationships"`
}

// Table is a model table with its columns, measures and partitions.
type Table struct {
	Name       string      `json:"name"`
	Columns    []Column    `json:"columns"`
	Measures   []Measure   `json:"measures"`
	Partitions []Partition `json:"partitions"`
}

// Column is a table column.
type Column struct {
	Name     string `json:"name"`
	DataType string `json:"dataType"`
	// Type is the column kind tag; calculated columns carry
	// "calculated" or "calculatedTableColumn".
	Type string `json:"type,omitempty"`
}

// Measure is a DAX measure.
type Measure struct {
	Name       string     `json:"name"`
	Expression Expression `json:"expression"`
}

// Partition is a data-loading unit of a table.
type Partition struct {
	Name   string          `json:"name,omitempty"`
	Mode   string          `json:"mode"`
	Source PartitionSource `json:"source"`
}

// PartitionSource describes where a partition loads its data from.
type PartitionSource struct {
	Type       string     `json:"type"`
	Expression Expression `json:"expression"`
}

// Relationship links a column of one table to a column of another.
type Relationship struct {
	Name       string `json:"name,omitempty"`
	FromTable  string `json:"fromTable"`
	FromColumn string `json:"fromColumn"`
	ToTable    string `json:"toTable"`
	ToColumn   string `json:"toColumn"`
}
