package parser

import (
	"strings"

	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/models"
)

// AutoTablePrefixes are the name prefixes of the calendar tables Power BI
// generates on its own. They are left out of the documentation.
var AutoTablePrefixes = []string{"DateTableTemplate", "LocalDateTable"}

// calculatedColumnTypes are the column type tags of calculated columns.
var calculatedColumnTypes = map[string]bool{
	"calculatedTableColumn": true,
	"calculated":            true,
}

// IsAutoTable reports whether a table name carries an auto-table prefix.
func IsAutoTable(name string) bool {
	for _, prefix := range AutoTablePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// IsCalculatedColumn reports whether a column is a calculated column.
func IsCalculatedColumn(col models.Column) bool {
	return calculatedColumnTypes[col.Type]
}

// ExtractColumns lists the columns of every user table in schema order.
func ExtractColumns(schema models.ModelSchema) []models.ColumnRecord {
	var result []models.ColumnRecord
	for _, table := range schema.Model.Tables {
		if IsAutoTable(table.Name) {
			continue
		}
		for _, col := range table.Columns {
			result = append(result, models.ColumnRecord{
				Table:      table.Name,
				Column:     col.Name,
				DataType:   col.DataType,
				Calculated: IsCalculatedColumn(col),
			})
		}
	}
	return result
}
