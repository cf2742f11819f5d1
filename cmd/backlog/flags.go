package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pablasso/backlog/internal/config"
	"github.com/pablasso/backlog/internal/demo"
)

type parseResult struct {
	Seed        *int64       // nil when --seed was not given
	Preset      *demo.Preset // nil when --preset was not given
	Autoplay    bool
	ShowHelp    bool
	ShowVersion bool
	HelpText    string
}

// apply overrides cfg with the flags that were given.
func (r parseResult) apply(cfg *config.Config) {
	if r.Seed != nil {
		cfg.Seed = *r.Seed
	}
	if r.Preset != nil {
		cfg.Preset = *r.Preset
	}
}

func parseArgs(args []string) (parseResult, error) {
	fs := flag.NewFlagSet("backlog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	seed := fs.Int64("seed", 0, "Random seed for a reproducible backlog (0 = random)")
	preset := fs.String("preset", string(demo.PresetMedium), "Autoplay preset: quick|medium|slow")
	autoplay := fs.Bool("autoplay", false, "Start with autoplay running")
	showVersion := fs.Bool("version", false, "Show version information")
	showVersionShort := fs.Bool("v", false, "Show version information")

	usage := func() string {
		var b strings.Builder
		fmt.Fprintln(&b, "Usage: backlog [flags]")
		fmt.Fprintln(&b, "       backlog <command> [flags]")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Backlog is an infinite business task list. Complete a task and follow-ups appear.")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Commands: seed, spawn, chain, catalog, play (run 'backlog help' for details)")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Flags:")
		fs.SetOutput(&b)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
		return b.String()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return parseResult{ShowHelp: true, HelpText: usage()}, nil
		}
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	if fs.NArg() > 0 {
		return parseResult{}, fmt.Errorf("positional args are not supported\n\n%s", usage())
	}

	if *showVersion || *showVersionShort {
		return parseResult{ShowVersion: true}, nil
	}

	res := parseResult{Autoplay: *autoplay}
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			res.Seed = seed
		case "preset":
			p, err := demo.ParsePreset(*preset)
			if err != nil {
				parseErr = err
				return
			}
			res.Preset = &p
		}
	})
	if parseErr != nil {
		return parseResult{}, fmt.Errorf("%v\n\n%s", parseErr, usage())
	}

	return res, nil
}
