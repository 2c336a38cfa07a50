package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/models"
)

// VisualConfigError reports a visual container whose configuration could
// not be decoded.
type VisualConfigError struct {
	Section   int // page index in the layout
	Container int // visual index on the page
	Err       error
}

func (e *VisualConfigError) Error() string {
	return fmt.Sprintf("visual %d on page %d: %v", e.Container, e.Section, e.Err)
}

func (e *VisualConfigError) Unwrap() error {
	return e.Err
}

// ExtractVisuals lists every visual of every page in layout order.
// Each container's configuration is decoded in a second pass; a container
// whose configuration cannot be decoded is reported with zero position,
// no type and no query references, and its error is returned alongside.
func ExtractVisuals(layout models.Layout) ([]models.VisualRecord, []error) {
	var (
		result []models.VisualRecord
		errs   []error
	)
	for i, section := range layout.Sections {
		page := pageRecord(section)
		for j, container := range section.VisualContainers {
			cfg, err := ParseVisualConfig(container)
			if err != nil {
				errs = append(errs, &VisualConfigError{Section: i, Container: j, Err: err})
			}
			pos := firstPosition(cfg)

			result = append(result, models.VisualRecord{
				Page:         page.Name,
				PageUntitled: page.Untitled,
				X:            int(pos.X),
				Y:            int(pos.Y),
				Height:       int(pos.Height),
				Width:        int(pos.Width),
				VisualType:   cfg.SingleVisual.VisualType,
				QueryRefs:    queryRefs(cfg.SingleVisual.Projections),
			})
		}
	}
	return result, errs
}

// ParseVisualConfig decodes the JSON-encoded configuration of a visual container.
// An empty configuration decodes as an empty object.
func ParseVisualConfig(container models.VisualContainer) (models.VisualConfig, error) {
	var cfg models.VisualConfig
	raw := strings.TrimSpace(container.Config)
	if raw == "" {
		return cfg, nil
	}
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return models.VisualConfig{}, err
	}
	return cfg, nil
}

// firstPosition returns the position of the first layout variant.
func firstPosition(cfg models.VisualConfig) models.Position {
	if len(cfg.Layouts) == 0 {
		return models.Position{}
	}
	return cfg.Layouts[0].Position
}

// queryRefs flattens the projections into their non-empty query references.
func queryRefs(projections models.Projections) []string {
	var refs []string
	for _, proj := range projections {
		for _, item := range proj.Items {
			if item.QueryRef != "" {
				refs = append(refs, item.QueryRef)
			}
		}
	}
	return refs
}
