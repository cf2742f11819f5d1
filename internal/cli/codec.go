package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/pablasso/backlog/internal/engine"
)

var errNoInput = errors.New("no tasks on input")

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// writeJSONLines writes one compact JSON object per task.
func writeJSONLines(w io.Writer, tasks []engine.Task) error {
	for _, t := range tasks {
		data, err := sonic.ConfigStd.Marshal(t)
		if err != nil {
			return fmt.Errorf("encoding task %s: %w", t.ID, err)
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// readTasks accepts either a JSON array of tasks or one task object per line.
func readTasks(r io.Reader) ([]engine.Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errNoInput
	}

	if data[0] == '[' {
		var tasks []engine.Task
		if err := sonic.ConfigStd.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("decoding task array: %w", err)
		}
		if len(tasks) == 0 {
			return nil, errNoInput
		}
		return tasks, nil
	}

	var tasks []engine.Task
	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var t engine.Task
		if err := sonic.ConfigStd.Unmarshal(line, &t); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
