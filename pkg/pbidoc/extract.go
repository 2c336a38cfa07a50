package pbidoc

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/models"
	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/parser"
)

// descriptors are the package entries the documentation is built from.
var descriptors = []string{parser.LayoutEntry, parser.ModelEntry}

// Extract extracts report metadata from a Power BI package.
func Extract(path string, opts Options) (*models.Report, error) {
	if err := checkPackage(path, opts); err != nil {
		return nil, err
	}

	layout, schema, err := loadDescriptors(path, opts)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Build(name, layout, schema, opts), nil
}

// checkPackage fails with ErrFileNotFound unless the package exists. In
// rename mode the archive left by an interrupted run stands in for it.
func checkPackage(path string, opts Options) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	if opts.RenameToArchive {
		if _, aerr := os.Stat(parser.ArchivePath(path)); aerr == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrFileNotFound, path)
}

// Build runs every extractor over the loaded descriptors. Visuals whose
// configuration cannot be decoded are logged and kept as empty records.
func Build(name string, layout models.Layout, schema models.ModelSchema, opts Options) *models.Report {
	log := opts.logger()

	visuals, errs := parser.ExtractVisuals(layout)
	for _, err := range errs {
		log.Warn("failed to decode visual configuration; visual left empty", "report", name, "error", err)
	}

	report := &models.Report{
		Name:          name,
		Pages:         parser.ExtractPages(layout),
		Visuals:       visuals,
		Columns:       parser.ExtractColumns(schema),
		Measures:      parser.ExtractMeasures(schema),
		Sources:       parser.ExtractSources(schema),
		Relationships: parser.ExtractRelationships(schema),
	}

	args := []any{"report", name}
	for _, c := range models.Categories {
		args = append(args, string(c), report.Len(c))
	}
	log.Debug("report extracted", args...)

	return report
}

// loadDescriptors reads and decodes the layout and model descriptors.
// Decoding failures are logged and yield empty documents unless opts.Strict
// is set; archive failures always abort.
func loadDescriptors(path string, opts Options) (layout models.Layout, schema models.ModelSchema, err error) {
	log := opts.logger()
	archivePath := path

	if opts.RenameToArchive {
		archivePath = parser.ArchivePath(path)
		renamed, rerr := parser.EnsureArchive(path, archivePath)
		if rerr != nil {
			return layout, schema, NewExtractionError("", "archive", fmt.Errorf("renaming package: %w", rerr))
		}
		if !renamed && archivePath != path {
			if _, serr := os.Stat(path); serr == nil {
				log.Warn("archive already present; reading it instead of the package", "archive", archivePath)
			} else {
				log.Info("resuming from the archive of an interrupted run", "archive", archivePath)
			}
		}
		defer func() {
			if archivePath == path {
				return
			}
			restored, rerr := parser.RestorePackage(archivePath, path)
			switch {
			case rerr != nil:
				log.Error("could not restore report package", "archive", archivePath, "package", path, "error", rerr)
				if err == nil {
					err = NewExtractionError("", "archive", fmt.Errorf("restoring package: %w", rerr))
				}
			case !restored:
				log.Warn("package and archive both present; archive left in place", "archive", archivePath, "package", path)
			case !renamed:
				log.Info("package restored from the archive of an interrupted run", "package", path)
			}
		}()
	}

	var (
		layoutRes parser.LoadResult[models.Layout]
		modelRes  parser.LoadResult[models.ModelSchema]
	)
	enc := opts.EncodingOrDefault()

	if opts.ExtractDir != "" {
		if err := parser.ExtractEntries(archivePath, opts.ExtractDir, descriptors); err != nil {
			return layout, schema, archiveError("", err)
		}
		layoutRes = parser.LoadLayout(filepath.Join(opts.ExtractDir, filepath.FromSlash(parser.LayoutEntry)), enc)
		modelRes = parser.LoadModel(filepath.Join(opts.ExtractDir, filepath.FromSlash(parser.ModelEntry)), enc)
	} else {
		pkg, err := parser.OpenPackage(archivePath)
		if err != nil {
			return layout, schema, archiveError("", err)
		}
		defer pkg.Close()

		data := make(map[string][]byte, len(descriptors))
		for _, name := range descriptors {
			b, err := pkg.ReadEntry(name)
			if err != nil {
				return layout, schema, archiveError(name, err)
			}
			data[name] = b
		}
		layoutRes = parser.DecodeLayout(data[parser.LayoutEntry], enc)
		modelRes = parser.DecodeModel(data[parser.ModelEntry], enc)
	}

	if !layoutRes.OK() {
		if opts.Strict {
			return layout, schema, NewExtractionError(parser.LayoutEntry, "layout", layoutRes.Err)
		}
		log.Warn("failed to load JSON; pages and visuals left empty", "entry", parser.LayoutEntry, "error", layoutRes.Err)
	}
	if !modelRes.OK() {
		if opts.Strict {
			return layout, schema, NewExtractionError(parser.ModelEntry, "model", modelRes.Err)
		}
		log.Warn("failed to load JSON; model sections left empty", "entry", parser.ModelEntry, "error", modelRes.Err)
	}

	log.Debug("descriptors loaded",
		"package", path,
		"sections", len(layoutRes.Value.Sections),
		"tables", len(modelRes.Value.Model.Tables),
		"relationships", len(modelRes.Value.Model.Relationships))

	return layoutRes.Value, modelRes.Value, nil
}

// archiveError classifies an archive access failure.
func archiveError(entry string, err error) error {
	if errors.Is(err, zip.ErrFormat) || errors.Is(err, zip.ErrAlgorithm) || errors.Is(err, zip.ErrChecksum) {
		err = fmt.Errorf("%w: %w", ErrInvalidPackage, err)
	}
	return NewExtractionError(entry, "archive", err)
}
