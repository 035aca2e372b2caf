package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/isoconv/internal/convert"
)

// Config is the converter configuration.
type Config struct {
	German GermanConfig  `toml:"german" yaml:"german"`
	Tables []TableConfig `toml:"tables" yaml:"tables"`
}

// GermanConfig controls German quote digraph decoding.
type GermanConfig struct {
	// Strictness is "conservative" or "aggressive".
	Strictness string `toml:"strictness" yaml:"strictness"`
}

// TableConfig defines a custom rule table. Each rule is a
// [pattern, replacement] pair; rules are applied in order.
type TableConfig struct {
	Name        string     `toml:"name" yaml:"name"`
	Description string     `toml:"description" yaml:"description"`
	Rules       [][]string `toml:"rules" yaml:"rules"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		German: GermanConfig{Strictness: "conservative"},
	}
}

// Load reads configuration from path. The format is chosen by file
// extension: .toml, or .yaml/.yml. A missing file is not an error;
// the defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse decodes configuration data. The source path selects the format
// by extension and names the file in errors.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		return nil, &ParseError{Path: path, Message: fmt.Sprintf("unsupported config format %q", ext)}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.German.Strictness != "" {
		if _, err := convert.ParseStrictness(c.German.Strictness); err != nil {
			return &ParseError{Path: "german.strictness", Message: err.Error(), Err: err}
		}
	}

	seen := make(map[string]bool, len(c.Tables))
	for _, t := range c.Tables {
		if t.Name == "" {
			return &TableError{Table: t.Name, Message: "name must not be empty"}
		}
		if seen[t.Name] {
			return &TableError{Table: t.Name, Message: "duplicate table name"}
		}
		seen[t.Name] = true
		for i, rule := range t.Rules {
			if len(rule) != 2 {
				return &TableError{
					Table:   t.Name,
					Message: fmt.Sprintf("rule %d: want [pattern, replacement], got %d elements", i, len(rule)),
				}
			}
		}
	}
	return nil
}

// Strictness returns the configured German decoding strictness.
// An unset value means conservative.
func (c *Config) Strictness() convert.Strictness {
	s, err := convert.ParseStrictness(c.German.Strictness)
	if err != nil {
		return convert.Conservative
	}
	return s
}

// CompileTables compiles the custom table definitions. Invalid patterns
// surface as a TableError wrapping the compile failure.
func (c *Config) CompileTables() ([]*convert.Table, error) {
	if len(c.Tables) == 0 {
		return nil, nil
	}

	tables := make([]*convert.Table, 0, len(c.Tables))
	for _, t := range c.Tables {
		rules := make([]convert.Rule, len(t.Rules))
		for i, r := range t.Rules {
			rules[i] = convert.Rule{Pattern: r[0], Replacement: r[1]}
		}
		tab, err := convert.NewTable(t.Name, rules)
		if err != nil {
			return nil, &TableError{Table: t.Name, Message: err.Error(), Err: err}
		}
		tables = append(tables, tab)
	}
	return tables, nil
}
