package main

import (
	"fmt"
	"strconv"

	"github.com/docopt/docopt-go"
)

const usage = `Link checker for generated HTML documentation

Usage:
	linkcheck [-c <file>] [-m <file>] [-r <n>] [--color=<when>] [-v] <directory>

Options:
	-c, --config <file>        YAML configuration file.
	-m, --metrics-file <file>  Write Prometheus metrics to a text file.
	-r, --max-redirects <n>    Maximum length of redirect chains.
	--color <when>             Colorize output: auto, always or never. [default: auto]
	-v, --verbose              Log every checked file.
	-h, --help                 Show this help.`

type arguments struct {
	directory    string
	configFile   string
	metricsFile  string
	maxRedirects int
	color        string
	verbose      bool
}

func getArguments(ss []string) (arguments, error) {
	args, err := docopt.ParseArgs(usage, ss, "0.1.0")

	if err != nil {
		return arguments{}, err
	}

	n := 0

	if s, ok := args["--max-redirects"].(string); ok {
		n, err = strconv.Atoi(s)

		if err != nil || n <= 0 {
			return arguments{}, fmt.Errorf("invalid max redirects: %s", s)
		}
	}

	c := args["--color"].(string)

	switch c {
	case "auto", "always", "never":
	default:
		return arguments{}, fmt.Errorf("invalid color mode: %s", c)
	}

	return arguments{
		args["<directory>"].(string),
		optionalString(args, "--config"),
		optionalString(args, "--metrics-file"),
		n,
		c,
		args["--verbose"].(bool),
	}, nil
}

func optionalString(args docopt.Opts, k string) string {
	s, _ := args[k].(string)
	return s
}
