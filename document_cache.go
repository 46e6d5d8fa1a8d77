package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
)

type loadMode int

const (
	// A page that is itself a redirect is reported as errIsRedirect.
	skipRedirect loadMode = iota
	// Redirects are followed to the page they point to.
	followRedirect
	// Like followRedirect, but the page was named by a redirect, so a missing
	// page is a broken redirect.
	fromRedirect
)

var errIsRedirect = errors.New("page is a redirect")

var idEncoder = strings.NewReplacer(
	"<", "%3C",
	">", "%3E",
	" ", "%20",
	"?", "%3F",
	"'", "%27",
	"&", "%26",
	",", "%2C",
	":", "%3A",
	";", "%3B",
	"[", "%5B",
	"]", "%5D",
	`"`, "%22",
)

type fileEntry struct {
	source string
	ids    map[string]struct{}
	parsed bool
}

// documentCache holds every non-redirect page loaded during a run, keyed by
// its path relative to the document root. Anchors of a page are parsed at
// most once.
type documentCache struct {
	fsys         fs.FS
	entries      map[string]*fileEntry
	maxRedirects int
	reporter     *reporter
	logger       *slog.Logger
}

func newDocumentCache(fsys fs.FS, maxRedirects int, r *reporter, l *slog.Logger) *documentCache {
	return &documentCache{fsys, map[string]*fileEntry{}, maxRedirects, r, l}
}

// Load returns the path and contents of the page at file, or of the page a
// redirect at file eventually points to.
func (c *documentCache) Load(file string, mode loadMode) (string, string, error) {
	return c.load(file, mode, newRedirectChain(c.maxRedirects))
}

func (c *documentCache) load(file string, mode loadMode, rc *redirectChain) (string, string, error) {
	if e, ok := c.entries[file]; ok {
		return file, e.source, nil
	}

	bs, err := fs.ReadFile(c.fsys, file)

	if err != nil {
		if mode == fromRedirect {
			return "", "", &brokenRedirectError{file, err}
		}

		return "", "", fmt.Errorf("error loading %s: %w", file, err)
	}

	s := string(bs)
	u, ok := redirectTarget(s)

	if !ok {
		c.entries[file] = &fileEntry{source: s, ids: map[string]struct{}{}}
		return file, s, nil
	} else if mode == skipRedirect {
		return "", "", errIsRedirect
	}

	c.logger.Debug("following redirect", "file", file, "target", u)

	p, err := rc.follow(file, u)

	if err != nil {
		return "", "", err
	}

	return c.load(p, fromRedirect, rc)
}

// ParseIDs registers the anchors of a loaded page. Only the first call for a
// page does any work.
func (c *documentCache) ParseIDs(file string) {
	e, ok := c.entries[file]

	if !ok || e.parsed {
		return
	}

	e.parsed = true

	eachAttribute(e.source, " id", func(v string, l int, _ string) {
		id := strings.TrimLeft(v, "#")

		if _, ok := e.ids[id]; ok {
			c.reporter.DuplicateID(file, l, v)
		}

		e.ids[id] = struct{}{}
		e.ids[idEncoder.Replace(id)] = struct{}{}
	})
}

func (c *documentCache) HasID(file, id string) bool {
	e, ok := c.entries[file]

	if !ok {
		return false
	}

	_, ok = e.ids[id]
	return ok
}

// Release drops the source of a page. Its anchors are kept for pages
// checked later.
func (c *documentCache) Release(file string) {
	if e, ok := c.entries[file]; ok {
		e.source = ""
		c.logger.Debug("released source", "file", file, "ids", len(e.ids))
	}
}
