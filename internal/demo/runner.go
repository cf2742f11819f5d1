package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pablasso/backlog/internal/engine"
)

// Runner plays a backlog without a terminal UI, writing one line per
// completion and one per spawned follow-up.
type Runner struct {
	backlog *Backlog
	config  Config
	out     io.Writer
	log     logrus.FieldLogger
}

// NewRunner creates a Runner writing to out.
func NewRunner(b *Backlog, config Config, out io.Writer, log logrus.FieldLogger) *Runner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{backlog: b, config: config, out: out, log: log}
}

// Run completes tasks until MaxSteps is reached, the backlog runs dry, or ctx
// is cancelled. It returns the number of completed tasks.
func (r *Runner) Run(ctx context.Context) (int, error) {
	steps := 0
	for r.config.MaxSteps == 0 || steps < r.config.MaxSteps {
		select {
		case <-ctx.Done():
			return steps, ctx.Err()
		default:
		}

		done, spawned, ok := r.backlog.Step()
		if !ok {
			r.log.Debug("backlog has no open tasks, stopping")
			return steps, nil
		}
		steps++
		if err := r.report(steps, done, spawned); err != nil {
			return steps, err
		}

		if r.config.MaxSteps != 0 && steps >= r.config.MaxSteps {
			break
		}
		// Use select with timer to respect context cancellation during delay
		select {
		case <-ctx.Done():
			return steps, ctx.Err()
		case <-time.After(r.config.Interval):
		}
	}
	return steps, nil
}

func (r *Runner) report(step int, done engine.Task, spawned []engine.Task) error {
	if _, err := fmt.Fprintf(r.out, "[%d] done %-10s %-8s %s\n", step, done.Category, done.Priority, done.Title); err != nil {
		return err
	}
	for _, t := range spawned {
		if _, err := fmt.Fprintf(r.out, "      + %-10s %-8s %s\n", t.Category, t.Priority, t.Title); err != nil {
			return err
		}
	}
	return nil
}
