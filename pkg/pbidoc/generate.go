package pbidoc

import (
	"fmt"
	"os"
	"time"

	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/config"
	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/docx"
	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/models"
	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/output"
)

// Result describes a documentation run.
type Result struct {
	// Report is the extracted metadata.
	Report *models.Report
	// DocumentPath is where the Word document was written.
	DocumentPath string
	// JSONPath and XLSXPath are set when the matching export was written.
	JSONPath string
	XLSXPath string
	// Missing lists the section headings the template does not contain.
	Missing []string
}

// Generate extracts the configured report and writes its documentation.
// Existing output files are never overwritten; a versioned name is used instead.
func Generate(cfg *config.Config, opts Options) (*Result, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if opts.Encoding == "" {
		opts.Encoding = cfg.Report.Encoding
	}
	log := opts.logger()

	labels, err := output.LabelsFor(cfg.Template.Language)
	if err != nil {
		return nil, err
	}

	report, err := Extract(cfg.PackagePath(), opts)
	if err != nil {
		return nil, err
	}

	tmpl, err := docx.Open(cfg.TemplatePath())
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}

	doc, err := Render(tmpl, report, labels, opts.now())
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}
	for _, heading := range doc.Missing {
		log.Warn("template has no heading for section; content left out", "heading", heading, "template", cfg.TemplatePath())
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return nil, err
	}

	result := &Result{Report: report, Missing: doc.Missing}

	result.DocumentPath, err = output.ResolveOutputPath(cfg.OutputPath())
	if err != nil {
		return nil, err
	}
	if err := doc.Save(result.DocumentPath); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	log.Info("documentation generated", "path", result.DocumentPath)

	if cfg.Output.JSON {
		result.JSONPath, err = writeJSON(report, cfg)
		if err != nil {
			return nil, err
		}
		log.Info("JSON export written", "path", result.JSONPath)
	}

	if cfg.Output.XLSX {
		result.XLSXPath, err = output.ResolveOutputPath(cfg.XLSXPath())
		if err != nil {
			return nil, err
		}
		if err := output.WriteWorkbook(report, labels, result.XLSXPath, log); err != nil {
			return nil, err
		}
		log.Info("XLSX export written", "path", result.XLSXPath)
	}

	return result, nil
}

// Render fills a template with the report's text blocks.
func Render(tmpl *docx.Template, report *models.Report, labels output.Labels, date time.Time) (*docx.Document, error) {
	blocks := output.Blocks(report, labels)

	sections := make([]docx.Section, 0, len(blocks))
	for _, b := range blocks {
		sections = append(sections, docx.Section{Heading: b.Heading, Text: b.Text})
	}

	return tmpl.Render(docx.RenderInput{
		Date:              date.Format(DateLayout),
		ReportName:        report.Name,
		DateMarkers:       labels.DateMarkers,
		ReportNameMarkers: labels.ReportNameMarkers,
		Sections:          sections,
	})
}

func writeJSON(report *models.Report, cfg *config.Config) (string, error) {
	path, err := output.ResolveOutputPath(cfg.JSONPath())
	if err != nil {
		return "", err
	}

	data, err := output.ToJSON(report, cfg.Output.Pretty)
	if err != nil {
		return "", fmt.Errorf("serialization failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write output: %w", err)
	}
	return path, nil
}
