package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/backlog/internal/engine"
)

var spawnCmd = &cobra.Command{
	Use:   "spawn",
	Short: "Spawn follow-ups for tasks read from stdin",
	Long: `Read tasks as JSON (one object per line, or a single array) from stdin.
Each task is marked completed if it is not already, and is written back
followed by its follow-ups, one JSON object per line.`,
	Args: cobra.NoArgs,
	RunE: runSpawn,
}

func runSpawn(cmd *cobra.Command, args []string) error {
	tasks, err := readTasks(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading tasks: %w", err)
	}

	e := newEngine()
	var out []engine.Task
	for _, t := range tasks {
		done, spawned := t, []engine.Task(nil)
		if t.Completed {
			spawned = e.SpawnFollowUps(t)
		} else {
			done, spawned = e.Complete(t)
		}
		out = append(out, done)
		out = append(out, spawned...)
	}
	return writeJSONLines(cmd.OutOrStdout(), out)
}
