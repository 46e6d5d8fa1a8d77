package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
)

type defectKind string

const (
	duplicateID    defectKind = "duplicate_id"
	directoryLink  defectKind = "directory_link"
	brokenRedirect defectKind = "broken_redirect"
	brokenFragment defectKind = "broken_fragment"
	brokenLink     defectKind = "broken_link"
)

// reporter prints defects as soon as they are found.
type reporter struct {
	writer   io.Writer
	location *color.Color
	counts   map[defectKind]int
	metrics  *metrics
}

func newReporter(w io.Writer, colored bool, m *metrics) *reporter {
	c := color.New(color.FgRed, color.Bold)

	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return &reporter{w, c, map[defectKind]int{}, m}
}

func (r *reporter) DuplicateID(file string, line int, id string) {
	r.report(duplicateID, file, line, "id is not unique: `%s`", id)
}

func (r *reporter) DirectoryLink(file string, line int, target string) {
	r.report(directoryLink, file, line, "directory link - %s", target)
}

func (r *reporter) BrokenRedirect(file string, line int, target string) {
	r.report(brokenRedirect, file, line, "broken redirect to %s", target)
}

func (r *reporter) BrokenFragment(file string, line int, fragment, target string) {
	r.report(brokenFragment, file, line, "broken link fragment `#%s` pointing to `%s`", fragment, target)
}

func (r *reporter) BrokenLink(file string, line int, target string) {
	r.report(brokenLink, file, line, "broken link - %s", target)
}

func (r *reporter) report(k defectKind, file string, line int, format string, args ...interface{}) {
	r.counts[k]++
	r.metrics.defects.WithLabelValues(string(k)).Inc()

	r.location.Fprintf(r.writer, "%s:%d:", file, line)
	fmt.Fprintf(r.writer, " "+format+"\n", args...)
}

func (r *reporter) Failed() bool {
	return len(r.counts) != 0
}

// Summary lists the number of defects of each kind, one kind per line.
func (r *reporter) Summary() string {
	ss := make([]string, 0, len(r.counts))

	for k, n := range r.counts {
		ss = append(ss, fmt.Sprintf("%s: %d", k, n))
	}

	sort.Strings(ss)

	return strings.Join(ss, "\n")
}
