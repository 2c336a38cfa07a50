package output

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/models"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize creates with a new workbook.
const defaultSheet = "Sheet1"

// SheetRows returns the header and data rows of a category's inventory sheet.
func SheetRows(report *models.Report, c models.Category, labels Labels) (header []string, rows [][]interface{}) {
	switch c {
	case models.CategoryPages:
		header = []string{labels.Page}
		for _, p := range report.Pages {
			name := p.Name
			if p.Untitled {
				name = labels.UntitledPage
			}
			rows = append(rows, []interface{}{name})
		}
	case models.CategoryVisuals:
		header = []string{labels.Page, labels.X, labels.Y, labels.Height, labels.Width, labels.VisualType, labels.QueryRefs}
		for _, v := range report.Visuals {
			page := v.Page
			if v.PageUntitled {
				page = labels.UntitledPage
			}
			refs := labels.NoQueryRefs
			if len(v.QueryRefs) > 0 {
				refs = strings.Join(v.QueryRefs, ", ")
			}
			rows = append(rows, []interface{}{page, v.X, v.Y, v.Height, v.Width, v.VisualType, refs})
		}
	case models.CategoryTables:
		header = []string{labels.Table, labels.Column, labels.DataType, labels.Calculated}
		for _, col := range report.Columns {
			rows = append(rows, []interface{}{col.Table, col.Column, col.DataType, labels.YesNo(col.Calculated)})
		}
	case models.CategoryMeasures:
		header = []string{labels.Table, labels.Measure, labels.Expression}
		for _, m := range report.Measures {
			rows = append(rows, []interface{}{m.Table, m.Measure, m.Expression})
		}
	case models.CategorySources:
		header = []string{labels.Table, labels.Mode, labels.SourceType, labels.Source}
		for _, s := range report.Sources {
			rows = append(rows, []interface{}{s.Table, s.Mode, s.SourceType, s.Expression})
		}
	case models.CategoryRelationships:
		header = []string{labels.FromTable, labels.ToTable, labels.FromColumn, labels.ToColumn}
		for _, r := range report.Relationships {
			rows = append(rows, []interface{}{r.FromTable, r.ToTable, r.FromColumn, r.ToColumn})
		}
	}
	return header, rows
}

// WriteWorkbook writes the report as an XLSX inventory with one sheet per category.
// Text longer than excelize.TotalCellChars characters, such as M sources
// embedding inline data, is cut to fit a cell and logged as a warning.
func WriteWorkbook(report *models.Report, labels Labels, path string, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, c := range models.Categories {
		sheet := labels.Title(c)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return fmt.Errorf("naming sheet %q: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("creating sheet %q: %w", sheet, err)
		}

		header, rows := SheetRows(report, c, labels)
		truncated, err := writeSheet(f, sheet, header, rows)
		if err != nil {
			return fmt.Errorf("writing sheet %q: %w", sheet, err)
		}
		for _, cell := range truncated {
			log.Warn("cell text exceeds the XLSX limit; truncated",
				"sheet", sheet, "cell", cell, "limit", excelize.TotalCellChars)
		}
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// writeSheet writes the header and rows and returns the cells whose text was cut.
func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) ([]string, error) {
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return nil, err
	}

	var truncated []string
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		values := make([]interface{}, len(row))
		for j, v := range row {
			s, ok := v.(string)
			if !ok || utf8.RuneCountInString(s) <= excelize.TotalCellChars {
				values[j] = v
				continue
			}
			values[j] = string([]rune(s)[:excelize.TotalCellChars])
			name, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			truncated = append(truncated, name)
		}

		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	if len(header) > 0 {
		last, err := excelize.ColumnNumberToName(len(header))
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, "A", last, 24); err != nil {
			return nil, err
		}
	}
	return truncated, nil
}
