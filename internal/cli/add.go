package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/me/taskflow/pkg/model"
)

func newAddCmd() *cobra.Command {
	var req model.CreateTaskRequest
	var deadline string
	var due time.Duration

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Record a new task",
		Long: `Record a new task. The deadline is either an absolute RFC 3339 time
(--deadline 2026-03-02T17:00:00Z) or an offset from now (--due 4h30m).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Title = args[0]

			switch {
			case deadline != "" && due != 0:
				return fmt.Errorf("use either --deadline or --due, not both")
			case deadline != "":
				t, err := time.Parse(time.RFC3339, deadline)
				if err != nil {
					return fmt.Errorf("invalid --deadline: %w", err)
				}
				req.Deadline = t
			case due != 0:
				req.Deadline = time.Now().Add(due).Truncate(time.Minute)
			default:
				return fmt.Errorf("a deadline is required (--deadline or --due)")
			}

			if apiErr := req.Validate(); apiErr != nil {
				return apiErr
			}

			resp, err := client.Post("/api/v1/tasks/", req)
			if err != nil {
				return fmt.Errorf("create task: %w", err)
			}
			var task model.Task
			if err := resp.decode(&task); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task created: %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline as RFC 3339 timestamp")
	cmd.Flags().DurationVar(&due, "due", 0, "Deadline as an offset from now (e.g. 90m, 4h)")
	cmd.Flags().IntVar(&req.EstimatedMinutes, "minutes", 30, "Estimated effort in minutes")
	cmd.Flags().IntVar(&req.Priority, "priority", 3, "Priority from 1 (low) to 5 (urgent)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Free-form notes")
	return cmd
}
