package cli

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pablasso/backlog/internal/config"
	"github.com/pablasso/backlog/internal/engine"
	"github.com/pablasso/backlog/internal/rng"
	"github.com/pablasso/backlog/internal/version"
)

var (
	seedFlag      int64
	debugFlag     bool
	logFormatFlag string

	// settings is resolved in PersistentPreRunE: flag > env > .env > default.
	settings = config.Default()
	logger   = logrus.New()
	now      = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "backlog",
	Short: "Infinite business task backlog",
	Long: `Backlog generates realistic business tasks across eight departments and
spawns follow-up work every time a task is completed, so the list never runs dry.

Run without a subcommand to open the interactive backlog.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "Random seed for reproducible output (0 = random)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Log follow-up decisions to stderr")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", string(config.LogFormatText), "Log format: text|json")

	rootCmd.AddCommand(seedCmd, spawnCmd, chainCmd, catalogCmd, playCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seedFlag
	}
	if flags.Changed("debug") {
		cfg.Debug = debugFlag
	}
	if flags.Changed("log-format") {
		format, err := config.ParseLogFormat(logFormatFlag)
		if err != nil {
			return err
		}
		cfg.LogFormat = format
	}

	settings = cfg
	ConfigureLogger(logger, cfg, cmd.ErrOrStderr())
	return nil
}

// ConfigureLogger applies level and format from cfg and sends output to w.
func ConfigureLogger(l *logrus.Logger, cfg config.Config, w io.Writer) {
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		l.SetLevel(logrus.DebugLevel)
	}
	if cfg.LogFormat == config.LogFormatJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// NewEngine builds an engine for cfg. A non-zero seed makes every draw, and
// therefore every id, reproducible.
func NewEngine(cfg config.Config, log logrus.FieldLogger, clock engine.Clock) *engine.Engine {
	src := rng.NewEntropy()
	if cfg.Seed != 0 {
		src = rng.NewSeeded(cfg.Seed)
	}
	return engine.New(
		engine.WithSource(src),
		engine.WithLogger(log),
		engine.WithClock(clock),
	)
}

func newEngine() *engine.Engine {
	return NewEngine(settings, logger, now)
}
