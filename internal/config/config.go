// Package config holds the analyzer lookup tables and template section lists.
//
// The configuration is constructed once at startup and treated as immutable
// for the rest of the run. There is no package-level state: callers hold the
// *Config and pass it to every component that needs a table.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the full configuration for an analysis run.
type Config struct {
	Analyzers Analyzers           `yaml:"analyzers"`
	Sections  map[string][]string `yaml:"sections"`
}

// Analyzers carries the two lookup tables the detectors require.
type Analyzers struct {
	// FileExtensions maps a bare extension (no dot) to a language name.
	FileExtensions map[string]string `yaml:"file_extensions"`
	// ProjectFiles maps a marker filename, glob, or path segment to the
	// display name of the technology its presence implies.
	ProjectFiles map[string]string `yaml:"project_files"`
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parse built-in config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load returns the built-in configuration overlaid with the file at path.
// An empty path returns the defaults unchanged. A missing or malformed file
// is fatal: the run cannot proceed without valid tables.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var user Config
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.overlay(&user)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Language resolves a file extension (without the leading dot) to a language
// name.
func (c *Config) Language(ext string) (string, bool) {
	name, ok := c.Analyzers.FileExtensions[ext]
	return name, ok
}

// SectionsFor returns the section list for a template, falling back to the
// "standard" list when the template has no entry of its own.
func (c *Config) SectionsFor(template string) []string {
	if s, ok := c.Sections[template]; ok {
		return s
	}
	return c.Sections["standard"]
}

// overlay merges user values on top of the defaults: table entries are
// merged key by key, section lists replace the whole list per template.
func (c *Config) overlay(user *Config) {
	for ext, lang := range user.Analyzers.FileExtensions {
		c.Analyzers.FileExtensions[ext] = lang
	}
	for marker, tech := range user.Analyzers.ProjectFiles {
		c.Analyzers.ProjectFiles[marker] = tech
	}
	for tmpl, sections := range user.Sections {
		c.Sections[tmpl] = sections
	}
}

func (c *Config) validate() error {
	if len(c.Analyzers.FileExtensions) == 0 {
		return fmt.Errorf("config: analyzers.file_extensions is empty")
	}
	if len(c.Analyzers.ProjectFiles) == 0 {
		return fmt.Errorf("config: analyzers.project_files is empty")
	}
	return nil
}
