package config

// DefaultConfig returns configuration with sensible defaults.
// The report name has no default and must be configured.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Dir:       ".",
			Extension: ".pbit",
			Encoding:  "utf-16le",
		},
		Template: TemplateConfig{
			Dir:      ".",
			Name:     "modelo_documentacao.docx",
			Language: "pt",
		},
		Output: OutputConfig{
			Dir: ".",
		},
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
func Merge(loaded, defaults *Config) *Config {
	return &Config{
		Report: ReportConfig{
			Dir:       pick(loaded.Report.Dir, defaults.Report.Dir),
			Name:      pick(loaded.Report.Name, defaults.Report.Name),
			Extension: pick(loaded.Report.Extension, defaults.Report.Extension),
			Encoding:  pick(loaded.Report.Encoding, defaults.Report.Encoding),
		},
		Template: TemplateConfig{
			Dir:      pick(loaded.Template.Dir, defaults.Template.Dir),
			Name:     pick(loaded.Template.Name, defaults.Template.Name),
			Language: pick(loaded.Template.Language, defaults.Template.Language),
		},
		Output: OutputConfig{
			Dir:    pick(loaded.Output.Dir, defaults.Output.Dir),
			JSON:   loaded.Output.JSON || defaults.Output.JSON,
			XLSX:   loaded.Output.XLSX || defaults.Output.XLSX,
			Pretty: loaded.Output.Pretty || defaults.Output.Pretty,
		},
	}
}

func pick(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
