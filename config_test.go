package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, defaultMaxRedirects, c.MaxRedirects)
	assert.Equal(t, []string{".html"}, c.Extensions)
	assert.Contains(t, c.Exceptions.Suffixes, "std/string/struct.String.html")
	assert.Empty(t, c.Exceptions.Globs)
	assert.NoError(t, c.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid default config", func(c *Config) {}, false},
		{"zero max redirects", func(c *Config) { c.MaxRedirects = 0 }, true},
		{"negative max redirects", func(c *Config) { c.MaxRedirects = -1 }, true},
		{"no extensions", func(c *Config) { c.Extensions = nil }, true},
		{"extension without dot", func(c *Config) { c.Extensions = []string{"html"} }, true},
		{"bare dot extension", func(c *Config) { c.Extensions = []string{"."} }, true},
		{"empty suffix", func(c *Config) { c.Exceptions.Suffixes = []string{""} }, true},
		{"absolute suffix", func(c *Config) { c.Exceptions.Suffixes = []string{"/a.html"} }, true},
		{"valid glob", func(c *Config) { c.Exceptions.Globs = []string{"**/deriving/*.html"} }, false},
		{"invalid glob", func(c *Config) { c.Exceptions.Globs = []string{"[a-"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(c)

			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "linkcheck.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
exceptions:
  suffixes:
    - core/struct.Foo.html
  globs:
    - "**/generic/*.html"
max_redirects: 4
`), 0644))

	c, err := LoadFromFile(p)

	require.NoError(t, err)
	assert.Equal(t, []string{"core/struct.Foo.html"}, c.Exceptions.Suffixes)
	assert.Equal(t, []string{"**/generic/*.html"}, c.Exceptions.Globs)
	assert.Equal(t, 4, c.MaxRedirects)
	assert.Equal(t, []string{".html"}, c.Extensions)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromFileInvalid(t *testing.T) {
	p := filepath.Join(t.TempDir(), "linkcheck.yaml")
	require.NoError(t, os.WriteFile(p, []byte("max_redirects: [1"), 0644))

	_, err := LoadFromFile(p)

	assert.Error(t, err)
}

func TestConfigMerge(t *testing.T) {
	c := DefaultConfig()

	c.Merge(nil)
	c.Merge(&Config{})

	assert.Equal(t, DefaultConfig(), c)

	c.Merge(&Config{
		Exceptions:   ExceptionsConfig{Globs: []string{"*.html"}},
		MaxRedirects: 3,
		Extensions:   []string{".htm"},
	})

	assert.Equal(t, DefaultConfig().Exceptions.Suffixes, c.Exceptions.Suffixes)
	assert.Equal(t, []string{"*.html"}, c.Exceptions.Globs)
	assert.Equal(t, 3, c.MaxRedirects)
	assert.Equal(t, []string{".htm"}, c.Extensions)
}
