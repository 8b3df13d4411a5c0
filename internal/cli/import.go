package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/me/taskflow/pkg/model"
)

// taskFile is the YAML layout accepted by import:
//
//	tasks:
//	  - title: Write report
//	    deadline: 2026-03-02T17:00:00Z
//	    estimated_minutes: 90
//	    priority: 4
//	  - title: Call back
//	    due: 2h
//	    estimated_minutes: 15
//	    priority: 2
type taskFile struct {
	Tasks []taskEntry `yaml:"tasks"`
}

type taskEntry struct {
	model.CreateTaskRequest `yaml:",inline"`
	Due                     string `yaml:"due,omitempty"`
}

// loadTaskFile parses path and resolves relative "due" offsets against now.
// Every entry is validated before any is returned.
func loadTaskFile(path string, now time.Time) ([]model.CreateTaskRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	var f taskFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	if len(f.Tasks) == 0 {
		return nil, fmt.Errorf("%s: no tasks", path)
	}

	reqs := make([]model.CreateTaskRequest, 0, len(f.Tasks))
	for i, e := range f.Tasks {
		req := e.CreateTaskRequest
		if e.Due != "" {
			if !req.Deadline.IsZero() {
				return nil, fmt.Errorf("task %d (%q): set deadline or due, not both", i+1, req.Title)
			}
			d, err := time.ParseDuration(e.Due)
			if err != nil {
				return nil, fmt.Errorf("task %d (%q): invalid due: %w", i+1, req.Title, err)
			}
			req.Deadline = now.Add(d).Truncate(time.Minute)
		}
		if apiErr := req.Validate(); apiErr != nil {
			return nil, fmt.Errorf("task %d (%q): %w", i+1, req.Title, apiErr)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Create tasks from a YAML file",
		Long: `Create every task listed in a YAML file. The whole file is validated
before anything is sent, so a bad entry creates nothing.

  tasks:
    - title: Write report
      deadline: 2026-03-02T17:00:00Z
      estimated_minutes: 90
      priority: 4
      description: Q1 numbers
    - title: Call back
      due: 2h
      estimated_minutes: 15
      priority: 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := loadTaskFile(args[0], time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, req := range reqs {
				resp, err := client.Post("/api/v1/tasks/", req)
				if err != nil {
					return fmt.Errorf("create task %d (%q): %w", i+1, req.Title, err)
				}
				var task model.Task
				if err := resp.decode(&task); err != nil {
					return err
				}
				fmt.Fprintf(out, "Task created: %s  %s\n", task.ID, task.Title)
			}
			fmt.Fprintf(out, "Imported %d tasks\n", len(reqs))
			return nil
		},
	}
}
