package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/backlog/internal/analysis"
	"github.com/pablasso/backlog/internal/catalog"
	"github.com/pablasso/backlog/internal/engine"
)

var (
	chainSteps    int
	chainCategory string
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Follow one task through successive completions",
	Long: `Create a task, complete it, and keep completing its first follow-up.
Prints the resulting lineage and a summary of everything spawned along the way.`,
	Args: cobra.NoArgs,
	RunE: runChain,
}

func init() {
	chainCmd.Flags().IntVar(&chainSteps, "steps", 10, "Number of completions to simulate")
	chainCmd.Flags().StringVar(&chainCategory, "category", "", "Category of the first task (default random)")
}

func runChain(cmd *cobra.Command, args []string) error {
	if chainSteps < 1 {
		return fmt.Errorf("--steps must be at least 1, got %d", chainSteps)
	}
	var category catalog.CategoryID
	if chainCategory != "" {
		c, err := catalog.ParseCategory(chainCategory)
		if err != nil {
			return err
		}
		category = c
	}

	e := newEngine()
	current := e.CreateTask(category, "")
	all := []engine.Task{current}
	for i := 0; i < chainSteps; i++ {
		done, spawned := e.Complete(current)
		if i := indexOf(all, done.ID); i >= 0 {
			all[i] = done
		}
		all = append(all, spawned...)
		current = spawned[0]
	}

	out := cmd.OutOrStdout()
	for i, t := range analysis.Lineage(all, current.ID) {
		state := "open"
		if t.Completed {
			state = "done"
		}
		fmt.Fprintf(out, "%3d. %-4s %-10s %-8s %s\n", i+1, state, t.Category, t.Priority, t.Title)
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, analysis.FormatSummary(analysis.Summarize(all)))
	return nil
}

func indexOf(tasks []engine.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
