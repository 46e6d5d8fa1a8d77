package main

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// eachAttribute scans contents line by line for attr (with its leading space,
// e.g. " href") and calls f with every quoted value, its 1-based line number
// and the href of the most recent <base> tag.
//
// This is a scanner, not a parser. Anything that does not look like
// `attr = "value"` or `attr = 'value'` on a single line is skipped.
func eachAttribute(contents, attr string, f func(value string, line int, base string)) {
	base := ""

	for i, line := range splitLines(contents) {
		for {
			j := strings.Index(line, attr)

			if j < 0 {
				break
			}

			// <base> is expected before any link it applies to, so one pass is
			// enough.
			isBase := tagBefore(line[:j]) == atom.Base
			rest := line[j+len(attr):]
			line = rest

			k := strings.IndexByte(rest, '=')

			if k < 0 || !isBlank(rest[:k]) {
				continue
			}

			rest = rest[k+1:]
			k = strings.IndexAny(rest, `"'`)

			if k < 0 || !isBlank(rest[:k]) {
				continue
			}

			quote := rest[k]
			rest = rest[k+1:]
			k = strings.IndexByte(rest, quote)

			if k < 0 {
				continue
			}

			if isBase {
				base = rest[:k]
				continue
			}

			f(rest[:k], i+1, base)
		}
	}
}

// tagBefore returns the element whose name ends s, as `<base` does before
// ` href`, or 0 if s does not end with an opening tag name.
func tagBefore(s string) atom.Atom {
	i := strings.LastIndexByte(s, '<')

	if i < 0 {
		return 0
	}

	return atom.Lookup([]byte(strings.ToLower(s[i+1:])))
}

func isBlank(s string) bool {
	return strings.TrimLeft(s, " \t") == ""
}
