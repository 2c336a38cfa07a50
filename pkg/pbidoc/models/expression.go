package models

import (
	"encoding/json"
	"strings"
)

// Expression is a DAX or M expression. The schema stores it either as a
// single string or as a list of line fragments.
type Expression struct {
	// Fragments holds the expression lines. A plain string is kept as one fragment.
	Fragments []string
	// List reports whether the expression was stored as a list of fragments.
	List bool
}

// NewExpression returns a single-string expression.
func NewExpression(s string) Expression {
	return Expression{Fragments: []string{s}}
}

// NewFragmentedExpression returns an expression stored as line fragments.
func NewFragmentedExpression(fragments ...string) Expression {
	return Expression{Fragments: fragments, List: true}
}

// String renders the expression. List expressions are joined with single
// spaces after dropping blank fragments.
func (e Expression) String() string {
	if !e.List {
		return strings.Join(e.Fragments, "")
	}

	parts := make([]string, 0, len(e.Fragments))
	for _, f := range e.Fragments {
		if strings.TrimSpace(f) == "" {
			continue
		}
		parts = append(parts, f)
	}
	return strings.Join(parts, " ")
}

// UnmarshalJSON accepts a string, an array of strings, or null.
func (e *Expression) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*e = Expression{}
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		fragments := make([]string, 0, len(raw))
		for _, r := range raw {
			var s string
			if err := json.Unmarshal(r, &s); err != nil {
				// Non-string fragment: keep its literal text
				s = string(r)
			}
			fragments = append(fragments, s)
		}
		*e = NewFragmentedExpression(fragments...)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*e = NewExpression(s)
	return nil
}

// MarshalJSON encodes the expression in the shape it was read.
func (e Expression) MarshalJSON() ([]byte, error) {
	if e.List {
		fragments := e.Fragments
		if fragments == nil {
			fragments = []string{}
		}
		return json.Marshal(fragments)
	}
	return json.Marshal(e.String())
}
