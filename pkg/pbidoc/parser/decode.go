package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the text encoding of the descriptors inside a report package.
const DefaultEncoding = "utf-16le"

// LoadResult carries a decoded document together with the load error, so a
// successfully parsed empty document can be told apart from a failed load.
type LoadResult[T any] struct {
	// Value is the decoded document, or its zero value when Err is set.
	Value T
	// Err is the read or decode error, if any.
	Err error
}

// OK reports whether the document was loaded.
func (r LoadResult[T]) OK() bool {
	return r.Err == nil
}

// LookupEncoding resolves an encoding label such as "utf-16le", "utf-16-le" or "utf-8".
// The returned encoding honours a leading byte order mark when present.
func LookupEncoding(label string) (encoding.Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(label))
	if name == "" {
		name = DefaultEncoding
	}
	// Python-style labels
	name = strings.NewReplacer("utf-16-le", "utf-16le", "utf-16-be", "utf-16be", "utf8", "utf-8").Replace(name)

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	return bomAware{enc}, nil
}

// bomAware lets a byte order mark override the configured encoding.
type bomAware struct {
	encoding.Encoding
}

func (b bomAware) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: unicode.BOMOverride(b.Encoding.NewDecoder())}
}

// DecodeJSON decodes data in the named text encoding and unmarshals it into v.
func DecodeJSON(data []byte, encodingLabel string, v any) error {
	enc, err := LookupEncoding(encodingLabel)
	if err != nil {
		return err
	}

	text, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", encodingLabel, err)
	}
	// A UTF-8 BOM left by lenient decoders is not valid JSON
	text = bytes.TrimPrefix(text, []byte("\xef\xbb\xbf"))

	if err := json.Unmarshal(text, v); err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}
	return nil
}

// LoadJSON reads the file at path and decodes it into v.
func LoadJSON(path, encodingLabel string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := DecodeJSON(data, encodingLabel, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadLayout loads a layout descriptor from disk.
func LoadLayout(path, encodingLabel string) LoadResult[models.Layout] {
	var layout models.Layout
	if err := LoadJSON(path, encodingLabel, &layout); err != nil {
		return LoadResult[models.Layout]{Err: err}
	}
	return LoadResult[models.Layout]{Value: layout}
}

// LoadModel loads a model schema descriptor from disk.
func LoadModel(path, encodingLabel string) LoadResult[models.ModelSchema] {
	var schema models.ModelSchema
	if err := LoadJSON(path, encodingLabel, &schema); err != nil {
		return LoadResult[models.ModelSchema]{Err: err}
	}
	return LoadResult[models.ModelSchema]{Value: schema}
}

// DecodeLayout decodes an in-memory layout descriptor.
func DecodeLayout(data []byte, encodingLabel string) LoadResult[models.Layout] {
	var layout models.Layout
	if err := DecodeJSON(data, encodingLabel, &layout); err != nil {
		return LoadResult[models.Layout]{Err: fmt.Errorf("%s: %w", LayoutEntry, err)}
	}
	return LoadResult[models.Layout]{Value: layout}
}

// DecodeModel decodes an in-memory model schema descriptor.
func DecodeModel(data []byte, encodingLabel string) LoadResult[models.ModelSchema] {
	var schema models.ModelSchema
	if err := DecodeJSON(data, encodingLabel, &schema); err != nil {
		return LoadResult[models.ModelSchema]{Err: fmt.Errorf("%s: %w", ModelEntry, err)}
	}
	return LoadResult[models.ModelSchema]{Value: schema}
}
