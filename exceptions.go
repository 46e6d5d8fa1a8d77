package main

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// exceptions is the list of pages with known broken links.
type exceptions struct {
	suffixes []string
	globs    []string
}

func newExceptions(c ExceptionsConfig) exceptions {
	ss := make([]string, 0, len(c.Suffixes))

	for _, s := range c.Suffixes {
		ss = append(ss, path.Clean(s))
	}

	return exceptions{ss, c.Globs}
}

// Match reports whether file, relative to the document root, is excepted.
func (e exceptions) Match(file string) bool {
	for _, s := range e.suffixes {
		if file == s || strings.HasSuffix(file, "/"+s) {
			return true
		}
	}

	for _, g := range e.globs {
		// Patterns are validated with the configuration.
		if ok, _ := doublestar.Match(g, file); ok {
			return true
		}
	}

	return false
}
