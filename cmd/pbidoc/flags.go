package main

import (
	"github.com/spf13/pflag"
	"github.com/ukaji3/pbidoc-go/pkg/pbidoc"
	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/config"
)

// flagValues holds command-line values that override the config file.
type flagValues struct {
	reportDir   string
	reportName  string
	reportExt   string
	encoding    string
	templateDir string
	template    string
	language    string
	outputDir   string
	extractDir  string
	rename      bool
	strict      bool
	json        bool
	xlsx        bool
	pretty      bool
}

var flags flagValues

func bindReportFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flags.reportDir, "report-dir", "", "Directory holding the report package")
	fs.StringVarP(&flags.reportName, "report-name", "n", "", "Report name (package file name without extension)")
	fs.StringVar(&flags.reportExt, "report-ext", "", "Report package extension (default .pbit)")
	fs.StringVar(&flags.encoding, "encoding", "", "Text encoding of the package descriptors (default utf-16le)")
	fs.StringVar(&flags.templateDir, "template-dir", "", "Directory holding the Word template")
	fs.StringVarP(&flags.template, "template", "t", "", "Word template file name")
	fs.StringVarP(&flags.language, "lang", "l", "", "Documentation language: pt or en")
	fs.StringVar(&flags.extractDir, "extract-dir", "", "Also extract the package descriptors into this directory")
	fs.BoolVar(&flags.rename, "rename", false, "Rename the package to .zip while reading it (legacy behaviour)")
	fs.BoolVar(&flags.strict, "strict", false, "Abort when a descriptor cannot be decoded")
}

func bindGenerateFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flags.outputDir, "output-dir", "", "Directory for the generated files")
	fs.BoolVar(&flags.json, "json", false, "Also write the extracted metadata as JSON")
	fs.BoolVar(&flags.xlsx, "xlsx", false, "Also write the extracted metadata as an XLSX inventory")
	fs.BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
}

// applyFlags copies the flags set on the command line into cfg.
func applyFlags(fs *pflag.FlagSet, cfg *config.Config) {
	set := func(name string, dst *string, value string) {
		if fs.Changed(name) {
			*dst = value
		}
	}
	set("report-dir", &cfg.Report.Dir, flags.reportDir)
	set("report-name", &cfg.Report.Name, flags.reportName)
	set("report-ext", &cfg.Report.Extension, flags.reportExt)
	set("encoding", &cfg.Report.Encoding, flags.encoding)
	set("template-dir", &cfg.Template.Dir, flags.templateDir)
	set("template", &cfg.Template.Name, flags.template)
	set("lang", &cfg.Template.Language, flags.language)
	set("output-dir", &cfg.Output.Dir, flags.outputDir)

	if fs.Changed("json") {
		cfg.Output.JSON = flags.json
	}
	if fs.Changed("xlsx") {
		cfg.Output.XLSX = flags.xlsx
	}
	if fs.Changed("pretty") {
		cfg.Output.Pretty = flags.pretty
	}
}

func extractOptions() pbidoc.Options {
	return pbidoc.Options{
		Encoding:        flags.encoding,
		ExtractDir:      flags.extractDir,
		RenameToArchive: flags.rename,
		Strict:          flags.strict,
	}
}
