package output

import (
	"strconv"
	"strings"

	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/models"
)

// Delimiter separates records within a text block.
const Delimiter = "-----------"

// Block is the rendered text of one documentation category.
type Block struct {
	Category models.Category
	// Heading is the capitalised title the block is placed under.
	Heading string
	// Text is the rendered records.
	Text string
}

// Blocks renders every category of the report in document order.
func Blocks(report *models.Report, labels Labels) []Block {
	blocks := make([]Block, 0, len(models.Categories))
	for _, c := range models.Categories {
		blocks = append(blocks, Block{
			Category: c,
			Heading:  Capitalize(labels.Title(c), labels.Tag),
			Text:     Format(report, c, labels),
		})
	}
	return blocks
}

// Format renders a single category of the report.
func Format(report *models.Report, c models.Category, labels Labels) string {
	switch c {
	case models.CategoryPages:
		return FormatPages(report.Pages, labels)
	case models.CategoryTables:
		return FormatColumns(report.Columns, labels)
	case models.CategoryMeasures:
		return FormatMeasures(report.Measures, labels)
	case models.CategoryVisuals:
		return FormatVisuals(report.Visuals, labels)
	case models.CategorySources:
		return FormatSources(report.Sources, labels)
	case models.CategoryRelationships:
		return FormatRelationships(report.Relationships, labels)
	default:
		return ""
	}
}

// FormatPages renders one record per page holding the page name.
func FormatPages(pages []models.PageRecord, labels Labels) string {
	records := make([]string, 0, len(pages))
	for _, p := range pages {
		name := p.Name
		if p.Untitled {
			name = labels.UntitledPage
		}
		records = append(records, record(name))
	}
	return block(records)
}

// FormatVisuals renders one record per visual.
func FormatVisuals(visuals []models.VisualRecord, labels Labels) string {
	records := make([]string, 0, len(visuals))
	for _, v := range visuals {
		page := v.Page
		if v.PageUntitled {
			page = labels.UntitledPage
		}
		refs := labels.NoQueryRefs
		if len(v.QueryRefs) > 0 {
			refs = strings.Join(v.QueryRefs, ", ")
		}
		records = append(records, record(
			field(labels.Page, page),
			field(labels.X, strconv.Itoa(v.X)),
			field(labels.Y, strconv.Itoa(v.Y)),
			field(labels.Height, strconv.Itoa(v.Height)),
			field(labels.Width, strconv.Itoa(v.Width)),
			field(labels.VisualType, v.VisualType),
			field(labels.QueryRefs, refs),
		))
	}
	return block(records)
}

// FormatColumns renders one record per table column.
func FormatColumns(columns []models.ColumnRecord, labels Labels) string {
	records := make([]string, 0, len(columns))
	for _, c := range columns {
		records = append(records, record(
			field(labels.Table, c.Table),
			field(labels.Column, c.Column),
			field(labels.DataType, c.DataType),
			field(labels.Calculated, labels.YesNo(c.Calculated)),
		))
	}
	return block(records)
}

// FormatMeasures renders one record per measure.
func FormatMeasures(measures []models.MeasureRecord, labels Labels) string {
	records := make([]string, 0, len(measures))
	for _, m := range measures {
		records = append(records, record(
			field(labels.Table, m.Table),
			field(labels.Measure, m.Measure),
			field(labels.Expression, m.Expression),
		))
	}
	return block(records)
}

// FormatSources renders one record per partition.
func FormatSources(sources []models.SourceRecord, labels Labels) string {
	records := make([]string, 0, len(sources))
	for _, s := range sources {
		records = append(records, record(
			field(labels.Table, s.Table),
			field(labels.Mode, s.Mode),
			field(labels.SourceType, s.SourceType),
			field(labels.Source, s.Expression),
		))
	}
	return block(records)
}

// FormatRelationships renders one record per relationship.
func FormatRelationships(rels []models.RelationshipRecord, labels Labels) string {
	records := make([]string, 0, len(rels))
	for _, r := range rels {
		records = append(records, record(
			field(labels.FromTable, r.FromTable),
			field(labels.ToTable, r.ToTable),
			field(labels.FromColumn, r.FromColumn),
			field(labels.ToColumn, r.ToColumn),
		))
	}
	return block(records)
}

func field(label, value string) string {
	return label + ": " + value
}

// record writes each line followed by the delimiter line.
func record(lines ...string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(Delimiter)
	b.WriteByte('\n')
	return b.String()
}

// block joins records with newlines after a leading empty line.
func block(records []string) string {
	if len(records) == 0 {
		return ""
	}
	return "\n" + strings.Join(records, "\n")
}
