package main

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
)

var externalSchemes = []string{"http:", "https:", "javascript:", "ftp:", "irc:", "data:"}

// Fragments like `#1-6` are line numbers interpreted by javascript.
var lineFragment = regexp.MustCompile(`^[0-9]+(-[0-9]+)?$`)

var (
	errEscapesRoot  = errors.New("path escapes the document root")
	errAbsolutePath = errors.New("root-absolute path")
)

type resolvedURL struct {
	path        string
	fragment    string
	hasFragment bool
}

// checkedFragment reports whether the fragment has to exist in the target's
// anchor set.
func (u resolvedURL) checkedFragment() bool {
	return u.hasFragment && u.fragment != "" && !lineFragment.MatchString(u.fragment)
}

func isExternalURL(u string) bool {
	for _, s := range externalSchemes {
		if strings.HasPrefix(u, s) {
			return true
		}
	}

	return false
}

// resolveURL resolves u found in file under base to a path relative to the
// document root. It returns false for external URLs.
func resolveURL(file, u, base string) (resolvedURL, bool, error) {
	if isExternalURL(u) {
		return resolvedURL{}, false, nil
	}

	r := resolvedURL{}
	u, r.fragment, r.hasFragment = strings.Cut(u, "#")
	u, _, _ = strings.Cut(u, "?")

	if base == "" && u == "" {
		r.path = file
		return r, true, nil
	} else if isExternalURL(base) {
		return resolvedURL{}, false, nil
	}

	p, err := navigate(path.Dir(file), joinBase(base, u))

	if err != nil {
		return resolvedURL{}, false, err
	}

	r.path = p
	return r, true, nil
}

func joinBase(base, u string) string {
	if base == "" || strings.HasPrefix(u, "/") {
		return u
	}

	return base + "/" + u
}

// navigate applies the relative path rel to the directory dir. Both are
// relative to the document root and so is the result.
func navigate(dir, rel string) (string, error) {
	if strings.HasPrefix(rel, "/") {
		return "", fmt.Errorf("%w: %s", errAbsolutePath, rel)
	}

	ss := []string{}

	if dir != "." && dir != "" {
		ss = strings.Split(dir, "/")
	}

	for _, s := range strings.Split(rel, "/") {
		switch s {
		case "", ".":
		case "..":
			if len(ss) == 0 {
				return "", fmt.Errorf("%w: %s from %s", errEscapesRoot, rel, dir)
			}

			ss = ss[:len(ss)-1]
		default:
			ss = append(ss, s)
		}
	}

	if len(ss) == 0 {
		return ".", nil
	}

	return strings.Join(ss, "/"), nil
}
