package main

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

const (
	redirectMarker = "Redirecting to <a href="
	redirectLine   = 6
)

var errRedirectLoop = errors.New("redirect loop")

type brokenRedirectError struct {
	target string
	err    error
}

func (e *brokenRedirectError) Error() string {
	return fmt.Sprintf("broken redirect to %s: %v", e.target, e.err)
}

func (e *brokenRedirectError) Unwrap() error {
	return e.err
}

// redirectTarget returns the URL a soft redirect page points to. Only the
// 7th line of a page is looked at.
func redirectTarget(contents string) (string, bool) {
	ls := splitLines(contents)

	if len(ls) <= redirectLine {
		return "", false
	}

	l := ls[redirectLine]
	i := strings.Index(l, redirectMarker)

	if i < 0 {
		return "", false
	}

	l = l[i+len(redirectMarker):]
	i = strings.IndexByte(l, '"')

	if i < 0 {
		return "", false
	}

	l = l[i+1:]
	i = strings.IndexByte(l, '"')

	if i < 0 {
		return "", false
	}

	return l[:i], true
}

// redirectChain tracks the pages followed while resolving one link.
type redirectChain struct {
	max  int
	seen map[string]bool
}

func newRedirectChain(max int) *redirectChain {
	return &redirectChain{max, map[string]bool{}}
}

// follow resolves the redirect target u found in file to the next page of the
// chain.
func (c *redirectChain) follow(file, u string) (string, error) {
	c.seen[file] = true

	u, _, _ = strings.Cut(u, "#")
	u, _, _ = strings.Cut(u, "?")

	p, err := navigate(path.Dir(file), u)

	if err != nil {
		return "", err
	} else if c.seen[p] || len(c.seen) > c.max {
		return "", &brokenRedirectError{p, errRedirectLoop}
	}

	return p, nil
}
