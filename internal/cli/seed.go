package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pablasso/backlog/internal/engine"
)

var seedJSON bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate an initial backlog",
	Long:  `Generate one task per department plus a few extras, as a table or as a JSON array.`,
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedJSON, "json", false, "Print tasks as a JSON array")
}

func runSeed(cmd *cobra.Command, args []string) error {
	tasks := newEngine().GenerateInitialTasks()
	if seedJSON {
		return writeJSON(cmd.OutOrStdout(), tasks)
	}
	return writeTable(cmd.OutOrStdout(), tasks, now())
}

func writeTable(out io.Writer, tasks []engine.Task, at time.Time) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tPRIORITY\tDUE\tTITLE")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID),
			t.Category,
			t.Priority,
			formatDue(at, t.DueDate),
			t.Title,
		)
	}
	return w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatDue returns a human-readable time until due.
func formatDue(now, due time.Time) string {
	duration := due.Sub(now)
	if duration < 0 {
		return "overdue"
	}
	if duration < time.Minute {
		return "now"
	}

	minutes := int(duration.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("in %dm", minutes)
	}

	hours := int(duration.Hours())
	if hours < 24 {
		return fmt.Sprintf("in %dh", hours)
	}

	days := hours / 24
	return fmt.Sprintf("in %dd", days)
}
