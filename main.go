package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/kr/text"
)

func main() {
	args, err := getArguments(nil)

	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(run(args, os.Stdout, os.Stderr))
}

func run(args arguments, stdout, stderr io.Writer) int {
	switch args.color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	level := slog.LevelInfo

	if args.verbose {
		level = slog.LevelDebug
	}

	l := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	c, err := loadConfig(args)

	if err != nil {
		printError(stderr, err)
		return 1
	}

	d, err := filepath.Abs(args.directory)

	if err != nil {
		printError(stderr, err)
		return 1
	} else if i, err := os.Stat(d); err != nil {
		printError(stderr, err)
		return 1
	} else if !i.IsDir() {
		printError(stderr, fmt.Errorf("%s is not a directory", d))
		return 1
	}

	l.Debug("checking documents", "root", d)

	m := newMetrics()
	r := newReporter(stdout, !color.NoColor, m)

	if err := newFileChecker(os.DirFS(d), c, r, m, l).Walk("."); err != nil {
		printError(stderr, err)
		return 1
	}

	if args.metricsFile != "" {
		if err := m.WriteTextfile(args.metricsFile); err != nil {
			printError(stderr, err)
			return 1
		}
	}

	if r.Failed() {
		color.New(color.FgRed).Fprintln(stderr, "found some broken links")
		fmt.Fprint(stderr, text.Indent(r.Summary()+"\n", "\t"))
		return 1
	}

	return 0
}

func loadConfig(args arguments) (*Config, error) {
	c := DefaultConfig()

	if args.configFile != "" {
		cc, err := LoadFromFile(args.configFile)

		if err != nil {
			return nil, err
		}

		c = cc
	}

	c.Merge(&Config{MaxRedirects: args.maxRedirects})

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func printError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintln(w, "error:")
	fmt.Fprint(w, text.Indent(err.Error()+"\n", "\t"))
}
