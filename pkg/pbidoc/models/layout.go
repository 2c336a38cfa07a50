// Package models defines data structures for Power BI report extraction.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Layout represents the report layout descriptor (Report/Layout).
type Layout struct {
	// Sections are the report pages in display order.
	Sections []Section `json:"sections"`
}

// Section represents a single report page.
type Section struct {
	// DisplayName is the page name shown in Power BI (nil when absent).
	DisplayName *string `json:"displayName,omitempty"`
	// VisualContainers are the visuals placed on the page.
	VisualContainers []VisualContainer `json:"visualContainers"`
}

// VisualContainer represents a visual placed on a page.
type VisualContainer struct {
	// Config is the visual configuration, itself a JSON document encoded as a string.
	Config string `json:"config"`
}

// VisualConfig is the decoded form of VisualContainer.Config.
type VisualConfig struct {
	SingleVisual SingleVisual   `json:"singleVisual"`
	Layouts      []VisualLayout `json:"layouts"`
}

// SingleVisual holds the visual type and its field bindings.
type SingleVisual struct {
	// VisualType is the visual kind (e.g., barChart, card).
	VisualType string `json:"visualType"`
	// Projections maps projection roles to the fields bound to them.
	Projections Projections `json:"projections"`
}

// VisualLayout holds a visual's placement for one layout variant.
type VisualLayout struct {
	Position Position `json:"position"`
}

// Position is the visual's placement on the page canvas.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// Projection is one projection role with the fields bound to it.
type Projection struct {
	Role  string
	Items []ProjectionItem
}

// ProjectionItem references a field or measure used by a visual.
type ProjectionItem struct {
	QueryRef string `json:"queryRef"`
}

// Projections is an ordered list of projection roles.
// It decodes from a JSON object and keeps the object's key order.
type Projections []Projection

// UnmarshalJSON decodes a role -> items object preserving key order.
func (p *Projections) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("projections: expected object, got %v", tok)
	}

	var result Projections
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		role, _ := keyTok.(string)

		var items []ProjectionItem
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("projections %q: %w", role, err)
		}
		result = append(result, Projection{Role: role, Items: items})
	}

	// Closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = result
	return nil
}

// MarshalJSON encodes projections back into a role -> items object.
func (p Projections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, proj := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(proj.Role)
		if err != nil {
			return nil, err
		}
		items := proj.Items
		if items == nil {
			items = []ProjectionItem{}
		}
		value, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
