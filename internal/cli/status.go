package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/me/taskflow/pkg/model"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <task_id> <todo|in-progress|done>",
		Short: "Change the status of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, ok := model.ParseTaskStatus(args[1])
			if !ok {
				return fmt.Errorf("invalid status %q (want todo, in-progress or done)", args[1])
			}
			return setStatus(cmd.OutOrStdout(), args[0], st)
		},
	}
}

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <task_id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStatus(cmd.OutOrStdout(), args[0], model.TaskStatusDone)
		},
	}
}

func setStatus(out io.Writer, id string, st model.TaskStatus) error {
	resp, err := client.Patch("/api/v1/tasks/"+id+"/status", map[string]string{"status": st.String()})
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	var task model.Task
	if err := resp.decode(&task); err != nil {
		return err
	}
	fmt.Fprintf(out, "Task %s: %s\n", task.ID, statusCell(task.Status, 0))
	return nil
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task_id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.Delete("/api/v1/tasks/" + args[0]); err != nil {
				return fmt.Errorf("delete task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %s deleted\n", args[0])
			return nil
		},
	}
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show task counts per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.Get("/api/v1/tasks/summary")
			if err != nil {
				return fmt.Errorf("task summary: %w", err)
			}
			var sum model.TaskSummary
			if err := resp.decode(&sum); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d total, %d todo, %d in progress, %d done\n",
				sum.Total, sum.Todo, sum.InProgress, sum.Done)
			return nil
		},
	}
}
