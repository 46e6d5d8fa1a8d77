package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetArguments(t *testing.T) {
	for _, c := range []struct {
		argv      []string
		arguments arguments
	}{
		{
			[]string{"docs"},
			arguments{"docs", "", "", 0, "auto", false},
		},
		{
			[]string{"-v", "build/doc"},
			arguments{"build/doc", "", "", 0, "auto", true},
		},
		{
			[]string{"-c", "linkcheck.yaml", "-m", "out.prom", "-r", "3", "--color=never", "docs"},
			arguments{"docs", "linkcheck.yaml", "out.prom", 3, "never", false},
		},
		{
			[]string{"--config", "c.yaml", "--metrics-file", "m.prom", "--max-redirects", "8", "--color", "always", "docs"},
			arguments{"docs", "c.yaml", "m.prom", 8, "always", false},
		},
	} {
		a, err := getArguments(c.argv)

		require.NoError(t, err, c.argv)
		assert.Equal(t, c.arguments, a, c.argv)
	}
}

func TestGetArgumentsError(t *testing.T) {
	for _, ss := range [][]string{
		{"--color=sometimes", "docs"},
		{"-r", "0", "docs"},
		{"-r", "many", "docs"},
	} {
		_, err := getArguments(ss)

		assert.Error(t, err, ss)
	}
}
