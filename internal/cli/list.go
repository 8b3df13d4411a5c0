package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/me/taskflow/pkg/model"
)

func newListCmd() *cobra.Command {
	var status string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in deadline order",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if status != "" {
				st, ok := model.ParseTaskStatus(status)
				if !ok {
					return fmt.Errorf("invalid status %q (want todo, in-progress or done)", status)
				}
				q.Set("status", st.String())
			}
			if limit > 0 {
				q.Set("limit", strconv.Itoa(limit))
			}
			if offset > 0 {
				q.Set("offset", strconv.Itoa(offset))
			}
			path := "/api/v1/tasks/"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			resp, err := client.Get(path)
			if err != nil {
				return fmt.Errorf("list tasks: %w", err)
			}

			var tasks []model.Task
			if err := resp.decode(&tasks); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintln(out, "No tasks found.")
				return nil
			}

			fmt.Fprintf(out, "%-42s  %-11s  %-3s  %-5s  %-30s  %s\n", "ID", "STATUS", "PRI", "MIN", "TITLE", "DUE")
			fmt.Fprintf(out, "%-42s  %-11s  %-3s  %-5s  %-30s  %s\n", "--", "------", "---", "---", "-----", "---")
			for _, t := range tasks {
				fmt.Fprintf(out, "%-42s  %s  %-3d  %-5d  %-30s  %s\n",
					t.ID, statusCell(t.Status, 11), t.Priority, t.EstimatedMinutes, truncate(t.Title, 30), dueCell(t.Deadline))
			}

			if resp.Pagination != nil && resp.Pagination.HasMore {
				fmt.Fprintf(out, "\n(%d of %d shown)\n", len(tasks), resp.Pagination.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only show tasks with this status (todo, in-progress, done)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of tasks to show (server default 20, max 100)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of tasks to skip")
	return cmd
}
