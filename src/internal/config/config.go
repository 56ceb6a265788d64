// Package config loads bibtool's rule file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"bibtool/src/internal/lint"
)

const (
	// DefaultFile is read from the working directory when present.
	DefaultFile = ".bibtool.yaml"
	// EnvFile names the config file through the environment (or a .env file).
	EnvFile = "BIBTOOL_CONFIG"
)

// Color modes for report output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the on-disk rule file.
type Config struct {
	Directive string              `yaml:"directive,omitempty"`
	Width     int                 `yaml:"width,omitempty"`
	Color     string              `yaml:"color,omitempty"`
	Required  map[string][]string `yaml:"required,omitempty"`
	Exempt    map[string][]string `yaml:"exempt,omitempty"`
}

// Load reads the config at path. An empty path tries DefaultFile and falls back
// to an empty Config when it does not exist; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks enumerated values and numeric ranges.
func (c *Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", c.Width)
	}
	return ValidateColor(c.Color)
}

// ValidateColor accepts "", auto, always and never.
func ValidateColor(mode string) error {
	switch mode {
	case "", ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("invalid color mode: %s (valid: %s, %s, %s)", mode, ColorAuto, ColorAlways, ColorNever)
}

// Rules merges the file's overrides onto lint.DefaultRules. Each type listed
// under required, and each venue listed under exempt, replaces the default.
func (c *Config) Rules() lint.Rules {
	r := lint.DefaultRules()
	if c == nil {
		return r
	}
	if c.Directive != "" {
		r.Directive = c.Directive
	}
	for typ, specs := range c.Required {
		r.Required[strings.ToLower(typ)] = lint.ParseSpecs(strings.Join(specs, " "))
	}
	for venue, fields := range c.Exempt {
		r.Exempt[venue] = append([]string(nil), fields...)
	}
	return r
}

// UnknownTypes lists configured types that no check or writer knows about;
// they still apply, but are usually typos.
func (c *Config) UnknownTypes() []string {
	known := map[string]bool{}
	for _, t := range KnownTypes {
		known[t] = true
	}
	var out []string
	for typ := range c.Required {
		if !known[strings.ToLower(typ)] {
			out = append(out, typ)
		}
	}
	sort.Strings(out)
	return out
}

// KnownTypes are the standard BibTeX entry types.
var KnownTypes = []string{
	"article", "book", "booklet", "conference", "inbook", "incollection",
	"inproceedings", "manual", "mastersthesis", "misc", "phdthesis",
	"proceedings", "techreport", "unpublished", "online",
}
