package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pablasso/backlog/internal/cli"
	"github.com/pablasso/backlog/internal/config"
	"github.com/pablasso/backlog/internal/demo"
	"github.com/pablasso/backlog/internal/tui"
	"github.com/pablasso/backlog/internal/version"
)

func main() {
	// No args or flags only launch the TUI; a subcommand routes to the CLI
	if len(os.Args) == 1 || strings.HasPrefix(os.Args[1], "-") {
		if err := runTUI(os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI(args []string) error {
	res, err := parseArgs(args)
	if err != nil {
		return err
	}
	if res.ShowHelp {
		fmt.Print(res.HelpText)
		return nil
	}
	if res.ShowVersion {
		fmt.Printf("backlog %s (%s, built %s)\n", version.Version, version.CommitSHA, version.BuildDate)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	res.apply(&cfg)

	playback, err := demo.NewConfig(cfg.Preset, 0)
	if err != nil {
		return err
	}

	// The alt screen owns the terminal while the TUI runs.
	logger := logrus.New()
	cli.ConfigureLogger(logger, cfg, io.Discard)

	return tui.Run(tui.Options{
		Engine:   cli.NewEngine(cfg, logger, time.Now),
		Autoplay: res.Autoplay,
		Config:   playback,
	})
}
