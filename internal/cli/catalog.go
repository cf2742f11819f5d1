package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pablasso/backlog/internal/catalog"
	"github.com/pablasso/backlog/internal/tui/styles"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [category]",
	Short: "List workflow templates and their follow-ups",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	categories := catalog.Categories
	if len(args) == 1 {
		id, err := catalog.ParseCategory(args[0])
		if err != nil {
			return err
		}
		c, _ := catalog.LookupCategory(id)
		categories = []catalog.Category{c}
	}

	c := catalog.Default()
	out := cmd.OutOrStdout()
	for i, category := range categories {
		if i > 0 {
			fmt.Fprintln(out)
		}
		writeCategory(out, category, c.TemplatesFor(category.ID))
	}
	return nil
}

func writeCategory(out io.Writer, category catalog.Category, templates []catalog.WorkflowTemplate) {
	header := fmt.Sprintf("%s %s", category.Icon, category.Label)
	fmt.Fprintf(out, "%s %s\n", styles.Category(category.ID).Render(header),
		styles.SubtleStyle.Render(fmt.Sprintf("(%d templates)", len(templates))))

	for _, tmpl := range templates {
		fmt.Fprintf(out, "  %s  %s\n", tmpl.Title, styles.SubtleStyle.Render(tmpl.Key))
		for _, fu := range tmpl.FollowUps {
			var notes []string
			if fu.Category != category.ID {
				notes = append(notes, fu.Category.Label())
			}
			if fu.Priority != "" {
				notes = append(notes, string(fu.Priority))
			}
			line := "    -> " + fu.Title
			if len(notes) > 0 {
				line += " " + styles.SubtleStyle.Render("["+strings.Join(notes, ", ")+"]")
			}
			fmt.Fprintln(out, line)
		}
	}
}
