// Package config loads pbidoc configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the configuration file looked up in the working directory
const ConfigFileName = "pbidoc.yaml"

// Config holds all pbidoc configuration
type Config struct {
	Report   ReportConfig   `yaml:"report"`
	Template TemplateConfig `yaml:"template"`
	Output   OutputConfig   `yaml:"output"`
}

// ReportConfig locates the report package
type ReportConfig struct {
	Dir       string `yaml:"dir"`
	Name      string `yaml:"name"`
	Extension string `yaml:"extension"`
	Encoding  string `yaml:"encoding"`
}

// TemplateConfig locates the Word template
type TemplateConfig struct {
	Dir      string `yaml:"dir"`
	Name     string `yaml:"name"`
	Language string `yaml:"language"`
}

// OutputConfig controls where and what is written
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	JSON   bool   `yaml:"json"`
	XLSX   bool   `yaml:"xlsx"`
	Pretty bool   `yaml:"pretty"`
}

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads pbidoc.yaml from workDir, falling back to defaults when absent.
func Load(workDir string) (*Config, error) {
	return LoadFromPath(filepath.Join(workDir, ConfigFileName))
}

// LoadFromPath reads config from a specific path and merges it with defaults.
// A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return Merge(loaded, DefaultConfig()), nil
}

// Validate checks that config values are valid.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Report.Name) == "" {
		return fmt.Errorf("%w: report name is required", ErrInvalidConfig)
	}

	if strings.ContainsAny(cfg.Report.Name, `/\`) {
		return fmt.Errorf("%w: report name must not contain path separators, got %q",
			ErrInvalidConfig, cfg.Report.Name)
	}

	if !strings.HasPrefix(cfg.Report.Extension, ".") {
		return fmt.Errorf("%w: report extension must start with a dot, got %q",
			ErrInvalidConfig, cfg.Report.Extension)
	}

	if strings.TrimSpace(cfg.Template.Name) == "" {
		return fmt.Errorf("%w: template name is required", ErrInvalidConfig)
	}

	return nil
}

// PackagePath returns the path of the report package.
func (c *Config) PackagePath() string {
	return filepath.Join(c.Report.Dir, c.Report.Name+c.Report.Extension)
}

// TemplatePath returns the path of the Word template.
func (c *Config) TemplatePath() string {
	return filepath.Join(c.Template.Dir, c.Template.Name)
}

// OutputPath returns the desired path of the generated document.
func (c *Config) OutputPath() string {
	return c.outputFile(".docx")
}

// JSONPath returns the desired path of the JSON export.
func (c *Config) JSONPath() string {
	return c.outputFile(".json")
}

// XLSXPath returns the desired path of the XLSX export.
func (c *Config) XLSXPath() string {
	return c.outputFile(".xlsx")
}

func (c *Config) outputFile(ext string) string {
	return filepath.Join(c.Output.Dir, c.Report.Name+"_doc"+ext)
}

// SaveDefault writes the default configuration to path.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	header := "# pbidoc configuration\n# report.name is required; paths are relative to the working directory\n\n"
	data = append([]byte(header), data...)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
