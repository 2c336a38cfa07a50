package pbidoc

import (
	"archive/zip"
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/parser"
	"golang.org/x/text/encoding/unicode"
)

const sampleLayout = `{
	"sections": [
		{
			"displayName": "Overview",
			"visualContainers": [
				{"config": "{\"singleVisual\":{\"visualType\":\"card\",\"projections\":{\"Values\":[{\"queryRef\":\"Sales.Total\"}]}},\"layouts\":[{\"position\":{\"x\":10.7,\"y\":0,\"height\":200,\"width\":300.2}}]}"}
			]
		},
		{"visualContainers": []}
	]
}`

const sampleModel = `{
	"name": "Sales",
	"model": {
		"tables": [
			{
				"name": "Sales",
				"columns": [{"name": "Amount", "dataType": "double"}],
				"measures": [{"name": "Total", "expression": ["SUM(", "Sales[Amount]", ")"]}],
				"partitions": [{"mode": "import", "source": {"type": "m", "expression": "let Source = 1 in Source"}}]
			},
			{
				"name": "LocalDateTable_1",
				"columns": [{"name": "Date", "dataType": "dateTime"}]
			}
		],
		"relationships": [
			{"fromTable": "Sales", "fromColumn": "Date", "toTable": "LocalDateTable_1", "toColumn": "Date"}
		]
	}
}`

// writePackage writes dir/Sales.pbit with UTF-16LE descriptors.
// A nil descriptor is left out of the archive.
func writePackage(t *testing.T, dir string, layout, model *string) string {
	t.Helper()

	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	entries := map[string]string{}
	if layout != nil {
		entries[parser.LayoutEntry] = *layout
	}
	if model != nil {
		entries[parser.ModelEntry] = *model
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, text := range entries {
		data, err := enc.Bytes([]byte(text))
		if err != nil {
			t.Fatalf("encoding %s: %v", name, err)
		}
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "Sales.pbit")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeSamplePackage(t *testing.T, dir string) string {
	layout, model := sampleLayout, sampleModel
	return writePackage(t, dir, &layout, &model)
}

// testOptions returns options whose logs go to the returned buffer.
func testOptions() (Options, *bytes.Buffer) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return opts, &buf
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
