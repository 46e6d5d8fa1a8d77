package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
)

// fileChecker walks a document tree and checks the local links of every page
// in it.
type fileChecker struct {
	fsys       fs.FS
	cache      *documentCache
	exceptions exceptions
	extensions []string
	reporter   *reporter
	metrics    *metrics
	logger     *slog.Logger
}

func newFileChecker(fsys fs.FS, c *Config, r *reporter, m *metrics, l *slog.Logger) *fileChecker {
	return &fileChecker{
		fsys,
		newDocumentCache(fsys, c.MaxRedirects, r, l),
		newExceptions(c.Exceptions),
		c.Extensions,
		r,
		m,
		l,
	}
}

// Walk checks every file under dir, depth first.
func (c *fileChecker) Walk(dir string) error {
	es, err := fs.ReadDir(c.fsys, dir)

	if err != nil {
		return err
	}

	for _, e := range es {
		p := path.Join(dir, e.Name())

		if e.IsDir() {
			if err := c.Walk(p); err != nil {
				return err
			}

			continue
		}

		ok, err := c.Check(p)

		if err != nil {
			return err
		} else if ok {
			c.cache.Release(p)
		}
	}

	return nil
}

// Check checks the links in file. It returns false if the file was skipped.
func (c *fileChecker) Check(file string) (bool, error) {
	if !hasExtension(file, c.extensions) {
		c.skip(file, "extension")
		return false, nil
	} else if c.excepted(file) {
		c.skip(file, "exception")
		return false, nil
	}

	_, s, err := c.cache.Load(file, skipRedirect)

	if errors.Is(err, errIsRedirect) {
		c.skip(file, "redirect")
		return false, nil
	} else if err != nil {
		return false, err
	}

	c.logger.Debug("checking file", "file", file)
	c.metrics.filesChecked.Inc()
	c.cache.ParseIDs(file)

	eachAttribute(s, " href", func(u string, l int, base string) {
		if err == nil {
			err = c.checkLink(file, l, u, base)
		}
	})

	return err == nil, err
}

func (c *fileChecker) checkLink(file string, line int, u, base string) error {
	r, ok, err := resolveURL(file, u, base)

	if err != nil {
		return fmt.Errorf("%s:%d: %w", file, line, err)
	} else if !ok {
		return nil
	}

	c.metrics.linksChecked.Inc()

	i, err := fs.Stat(c.fsys, r.path)

	if err != nil {
		c.reporter.BrokenLink(file, line, r.path)
		return nil
	} else if i.IsDir() {
		// Links to directories show up as directory listings when the pages
		// are browsed offline.
		c.reporter.DirectoryLink(file, line, r.path)
		return nil
	} else if extension(r.path) != "" && !hasExtension(r.path, c.extensions) {
		return nil
	}

	p, _, err := c.cache.Load(r.path, followRedirect)

	if e := (*brokenRedirectError)(nil); errors.As(err, &e) {
		c.reporter.BrokenRedirect(file, line, e.target)
		return nil
	} else if err != nil {
		return fmt.Errorf("%s:%d: %w", file, line, err)
	}

	if !c.walked(p) {
		// The walk never releases pages it does not check, so keep only
		// their anchors.
		c.cache.ParseIDs(p)
		c.cache.Release(p)
	}

	if !r.checkedFragment() {
		return nil
	}

	c.cache.ParseIDs(p)

	if !c.cache.HasID(p, r.fragment) {
		c.reporter.BrokenFragment(file, line, r.fragment, p)
	}

	return nil
}

func (c *fileChecker) excepted(file string) bool {
	return c.exceptions.Match(file)
}

// walked reports whether Walk checks and then releases file.
func (c *fileChecker) walked(file string) bool {
	return hasExtension(file, c.extensions) && !c.excepted(file)
}

func (c *fileChecker) skip(file, reason string) {
	c.logger.Debug("skipping file", "file", file, "reason", reason)
	c.metrics.filesSkipped.WithLabelValues(reason).Inc()
}
