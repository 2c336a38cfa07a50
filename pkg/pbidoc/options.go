// Package pbidoc generates Word documentation from Power BI report packages.
package pbidoc

import (
	"log/slog"
	"time"

	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/parser"
)

// DateLayout is the format of the documentation date written into the template.
const DateLayout = "02/01/2006"

// Options configures extraction behavior.
type Options struct {
	// Encoding is the text encoding of the package descriptors.
	// Defaults to UTF-16 little-endian.
	Encoding string
	// ExtractDir, when set, receives a copy of the descriptors and they are
	// loaded from there instead of from memory.
	ExtractDir string
	// RenameToArchive renames the package to a .zip file while it is read and
	// renames it back afterwards, for tools that key on the extension.
	RenameToArchive bool
	// Strict aborts when a descriptor cannot be decoded instead of
	// documenting it as empty.
	Strict bool
	// Now returns the documentation date. Defaults to time.Now.
	Now func() time.Time
	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Encoding: parser.DefaultEncoding,
	}
}

// EncodingOrDefault returns the descriptor encoding to use.
func (o Options) EncodingOrDefault() string {
	if o.Encoding != "" {
		return o.Encoding
	}
	return parser.DefaultEncoding
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
