// Package output renders extracted report metadata into text, JSON and XLSX.
package output

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Labels holds every user-facing string of the generated documentation.
type Labels struct {
	// Tag is the language the labels are written in.
	Tag language.Tag

	// Visual record fields.
	Page, X, Y, Height, Width, VisualType, QueryRefs string
	// NoQueryRefs is written when a visual uses no field or measure.
	NoQueryRefs string
	// UntitledPage replaces a missing page name.
	UntitledPage string

	// Column record fields.
	Table, Column, DataType, Calculated string
	Yes, No                             string

	// Measure record fields.
	Measure, Expression string

	// Source record fields.
	Mode, SourceType, Source string

	// Relationship record fields.
	FromTable, ToTable, FromColumn, ToColumn string

	// Titles maps each category to its section heading.
	Titles map[models.Category]string

	// DateMarkers and ReportNameMarkers are the template phrases completed
	// with the documentation date and the report name.
	DateMarkers       []string
	ReportNameMarkers []string
}

var (
	dateMarkers       = []string{"Data da documentação:", "Documentation date:"}
	reportNameMarkers = []string{"Nome do Relatório:", "Report name:"}
)

// Portuguese returns the default label set.
func Portuguese() Labels {
	return Labels{
		Tag:          language.BrazilianPortuguese,
		Page:         "Página",
		X:            "X",
		Y:            "Y",
		Height:       "Altura",
		Width:        "Largura",
		VisualType:   "Tipo de visual",
		QueryRefs:    "Medidas utilizadas",
		NoQueryRefs:  "Não há medidas utilizadas no visual",
		UntitledPage: "Sem Nome",
		Table:        "Tabela",
		Column:       "Coluna",
		DataType:     "Tipo de dados",
		Calculated:   "Coluna calculada?",
		Yes:          "Sim",
		No:           "Não",
		Measure:      "Medida",
		Expression:   "Expressão",
		Mode:         "Modo de importação",
		SourceType:   "Tipo de importação",
		Source:       "Fonte",
		FromTable:    "Da tabela",
		ToTable:      "Para tabela",
		FromColumn:   "Da coluna",
		ToColumn:     "Para coluna",
		Titles: map[models.Category]string{
			models.CategoryPages:         "Páginas",
			models.CategoryTables:        "Tabelas",
			models.CategoryMeasures:      "Medidas",
			models.CategoryVisuals:       "Visuais",
			models.CategorySources:       "Fontes",
			models.CategoryRelationships: "Relacionamentos",
		},
		DateMarkers:       dateMarkers,
		ReportNameMarkers: reportNameMarkers,
	}
}

// English returns the English label set.
func English() Labels {
	return Labels{
		Tag:          language.English,
		Page:         "Page",
		X:            "X",
		Y:            "Y",
		Height:       "Height",
		Width:        "Width",
		VisualType:   "Visual type",
		QueryRefs:    "Measures used",
		NoQueryRefs:  "No measures used in the visual",
		UntitledPage: "No Name",
		Table:        "Table",
		Column:       "Column",
		DataType:     "Data type",
		Calculated:   "Calculated column?",
		Yes:          "Yes",
		No:           "No",
		Measure:      "Measure",
		Expression:   "Expression",
		Mode:         "Import mode",
		SourceType:   "Import type",
		Source:       "Source",
		FromTable:    "From table",
		ToTable:      "To table",
		FromColumn:   "From column",
		ToColumn:     "To column",
		Titles: map[models.Category]string{
			models.CategoryPages:         "Pages",
			models.CategoryTables:        "Tables",
			models.CategoryMeasures:      "Measures",
			models.CategoryVisuals:       "Visuals",
			models.CategorySources:       "Sources",
			models.CategoryRelationships: "Relationships",
		},
		DateMarkers:       dateMarkers,
		ReportNameMarkers: reportNameMarkers,
	}
}

var supported = []language.Tag{language.BrazilianPortuguese, language.English}

// LabelsFor returns the label set matching a BCP 47 language tag.
// An empty tag selects Portuguese.
func LabelsFor(tag string) (Labels, error) {
	if strings.TrimSpace(tag) == "" {
		return Portuguese(), nil
	}

	t, err := language.Parse(tag)
	if err != nil {
		return Labels{}, fmt.Errorf("parsing language %q: %w", tag, err)
	}

	_, idx, conf := language.NewMatcher(supported).Match(t)
	if conf == language.No {
		return Labels{}, fmt.Errorf("unsupported language %q (supported: pt, en)", tag)
	}
	if idx == 1 {
		return English(), nil
	}
	return Portuguese(), nil
}

// Title returns the section heading of a category.
func (l Labels) Title(c models.Category) string {
	if t, ok := l.Titles[c]; ok {
		return t
	}
	return string(c)
}

// YesNo renders a boolean flag.
func (l Labels) YesNo(b bool) string {
	if b {
		return l.Yes
	}
	return l.No
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string, tag language.Tag) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(tag).String(s[:size]) + cases.Lower(tag).String(s[size:])
}
