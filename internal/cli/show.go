package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/me/taskflow/pkg/model"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <task_id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.Get("/api/v1/tasks/" + args[0])
			if err != nil {
				return fmt.Errorf("get task: %w", err)
			}
			var task model.Task
			if err := resp.decode(&task); err != nil {
				return err
			}
			printTask(cmd.OutOrStdout(), &task)
			return nil
		},
	}
}

func printTask(out io.Writer, t *model.Task) {
	fmt.Fprintf(out, "Task: %s\n", bold(t.ID))
	fmt.Fprintf(out, "  Title:     %s\n", t.Title)
	if t.Description != "" {
		fmt.Fprintf(out, "  Notes:     %s\n", t.Description)
	}
	fmt.Fprintf(out, "  Status:    %s\n", statusCell(t.Status, 0))
	fmt.Fprintf(out, "  Priority:  %d\n", t.Priority)
	fmt.Fprintf(out, "  Estimate:  %d min\n", t.EstimatedMinutes)
	fmt.Fprintf(out, "  Deadline:  %s\n", dueCell(t.Deadline))
	fmt.Fprintf(out, "  Created:   %s\n", t.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintf(out, "  Updated:   %s\n", t.UpdatedAt.Local().Format(timeLayout))
}
