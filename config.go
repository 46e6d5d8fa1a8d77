package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

const defaultMaxRedirects = 16

// Config is the checker configuration read from a YAML file.
type Config struct {
	Exceptions   ExceptionsConfig `yaml:"exceptions"`
	MaxRedirects int              `yaml:"max_redirects"`
	// Extensions of files whose links are checked, e.g. ".html".
	Extensions []string `yaml:"extensions"`
}

// ExceptionsConfig lists pages that are never checked.
type ExceptionsConfig struct {
	// Suffixes match whole trailing path elements.
	Suffixes []string `yaml:"suffixes"`
	// Globs are doublestar patterns matched against root-relative paths.
	Globs []string `yaml:"globs"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Exceptions: ExceptionsConfig{
			Suffixes: []string{
				"std/string/struct.String.html",
				"interpret/struct.ValTy.html",
				"symbol/struct.InternedString.html",
				"ast/struct.ThinVec.html",
				"util/struct.ThinVec.html",
				"util/struct.RcSlice.html",
				"layout/struct.TyLayout.html",
				"ty/struct.Slice.html",
				"ty/enum.Attributes.html",
				"ty/struct.SymbolName.html",
				"string/struct.String.html",
				"btree_set/struct.BTreeSet.html",
				"struct.BTreeSet.html",
				"btree_map/struct.BTreeMap.html",
				"hash_map/struct.HashMap.html",
				"hash_set/struct.HashSet.html",
				"sync/struct.Lrc.html",
				"sync/struct.RwLock.html",
				"deriving/generic/index.html",
				"deriving/generic/macro.vec.html",
				"deriving/custom/macro.panic.html",
				"proc_macro_impl/macro.panic.html",
			},
		},
		MaxRedirects: defaultMaxRedirects,
		Extensions:   []string{".html"},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.MaxRedirects <= 0 {
		return fmt.Errorf("max_redirects must be positive")
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions must not be empty")
	}

	for _, e := range c.Extensions {
		if !strings.HasPrefix(e, ".") || len(e) < 2 {
			return fmt.Errorf("invalid extension %q", e)
		}
	}

	for _, s := range c.Exceptions.Suffixes {
		if s == "" || strings.HasPrefix(s, "/") {
			return fmt.Errorf("invalid exception suffix %q", s)
		}
	}

	for _, g := range c.Exceptions.Globs {
		if !doublestar.ValidatePattern(g) {
			return fmt.Errorf("invalid exception glob %q", g)
		}
	}

	return nil
}

// LoadFromFile reads a configuration from a YAML file on top of the defaults.
// Lists present in the file replace the default ones.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return c, nil
}

// Merge overlays the non-zero values of other.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if len(other.Exceptions.Suffixes) > 0 {
		c.Exceptions.Suffixes = other.Exceptions.Suffixes
	}
	if len(other.Exceptions.Globs) > 0 {
		c.Exceptions.Globs = other.Exceptions.Globs
	}
	if other.MaxRedirects != 0 {
		c.MaxRedirects = other.MaxRedirects
	}
	if len(other.Extensions) > 0 {
		c.Extensions = other.Extensions
	}
}
