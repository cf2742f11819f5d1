package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pablasso/backlog/internal/demo"
	"github.com/pablasso/backlog/internal/tui"
)

var (
	playPreset   string
	playAutoplay bool
	playHeadless bool
	playSteps    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive backlog",
	Long: `Open the backlog in the terminal UI. Complete tasks with x and watch
follow-ups arrive, or press a to let autoplay work through the list.

Presets:
  quick    one completion every 500ms
  medium   one completion every 2s (default)
  slow     one completion every 5s

With --headless, autoplay runs without the UI and prints each completion.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playPreset, "preset", string(demo.PresetMedium), "Autoplay preset: quick|medium|slow")
	playCmd.Flags().BoolVar(&playAutoplay, "autoplay", false, "Start with autoplay running")
	playCmd.Flags().BoolVar(&playHeadless, "headless", false, "Autoplay without the UI, printing to stdout")
	playCmd.Flags().IntVar(&playSteps, "steps", 0, "Stop autoplay after this many completions (0 = never)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	preset := settings.Preset
	if cmd.Flags().Changed("preset") {
		p, err := demo.ParsePreset(playPreset)
		if err != nil {
			return err
		}
		preset = p
	}

	cfg, err := demo.NewConfig(preset, playSteps)
	if err != nil {
		return err
	}
	e := newEngine()

	if !playHeadless {
		// The alt screen owns the terminal while the TUI runs.
		logger.SetOutput(io.Discard)
		return tui.Run(tui.Options{Engine: e, Autoplay: playAutoplay, Config: cfg})
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	_, err = demo.NewRunner(demo.NewBacklog(e), cfg, cmd.OutOrStdout(), logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
