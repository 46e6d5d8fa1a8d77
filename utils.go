package main

import (
	"path"
	"strings"
)

// splitLines splits s the way a text reader would: a final newline does not
// start a new line and a carriage return before a newline is dropped.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	ls := strings.Split(strings.TrimSuffix(s, "\n"), "\n")

	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\r")
	}

	return ls
}

// extension returns the extension of the last path element including its
// dot, or an empty string. Dot files like ".nojekyll" have no extension.
func extension(p string) string {
	name := path.Base(p)

	if strings.LastIndexByte(name, '.') <= 0 {
		return ""
	}

	return path.Ext(name)
}

func hasExtension(p string, exts []string) bool {
	e := extension(p)

	for _, ext := range exts {
		if e == ext {
			return true
		}
	}

	return false
}
