package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/me/taskflow/pkg/model"
)

const defaultCapacity = 480

func newScheduleCmd() *cobra.Command {
	var strategy string
	var capacity int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Plan the order of pending tasks",
		Long: `Order every pending task with one strategy and simulate working through
them back to back from now.

Strategies:
  edf              earliest deadline first (ties: higher priority, then shorter)
  weighted-greedy  priority x deadline urgency / duration, highest first`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.Post("/api/v1/schedule/", model.ScheduleRequest{
				Strategy:               model.ParseStrategyType(strategy),
				AvailableMinutesPerDay: capacity,
			})
			if err != nil {
				return fmt.Errorf("schedule: %w", err)
			}
			var sched model.ScheduleResponse
			if err := resp.decode(&sched); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printMetrics(out, &sched)
			fmt.Fprintln(out)
			printOrder(out, &sched)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "edf", "Scheduling strategy (edf, weighted-greedy)")
	cmd.Flags().IntVar(&capacity, "capacity", defaultCapacity, "Minutes available per day (30-1440)")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var capacity int
	var diff bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare every strategy over the pending tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.Post("/api/v1/schedule/compare", model.CompareRequest{
				AvailableMinutesPerDay: capacity,
			})
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			var cmp model.CompareResponse
			if err := resp.decode(&cmp); err != nil {
				return err
			}
			if cmp.EDF == nil || cmp.WeightedGreedy == nil {
				return fmt.Errorf("compare: incomplete response")
			}

			out := cmd.OutOrStdout()
			if diff {
				text, err := orderDiff(cmp.EDF, cmp.WeightedGreedy)
				if err != nil {
					return err
				}
				if text == "" {
					fmt.Fprintln(out, "Both strategies produce the same order.")
					return nil
				}
				fmt.Fprint(out, text)
				return nil
			}

			fmt.Fprintf(out, "%-18s  %-9s  %-14s  %-10s  %s\n", "STRATEGY", "ON TIME", "AVG LATE (MIN)", "TOTAL MIN", "OVERLOADED")
			for _, s := range []*model.ScheduleResponse{cmp.EDF, cmp.WeightedGreedy} {
				fmt.Fprintf(out, "%-18s  %-9s  %-14.1f  %-10d  %s\n",
					s.Strategy, rateCell(s.OnTimeRate), s.AverageTardinessMinutes, s.TotalEstimatedMinutes, overloadCell(s.Overloaded))
			}
			for _, s := range []*model.ScheduleResponse{cmp.EDF, cmp.WeightedGreedy} {
				fmt.Fprintf(out, "\n%s\n", bold(s.Strategy))
				printOrder(out, s)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", defaultCapacity, "Minutes available per day (30-1440)")
	cmd.Flags().BoolVar(&diff, "diff", false, "Print a unified diff of the EDF order against the weighted-greedy order")
	return cmd
}

func overloadCell(overloaded bool) string {
	if overloaded {
		return red("yes")
	}
	return "no"
}

func printMetrics(out io.Writer, s *model.ScheduleResponse) {
	fmt.Fprintf(out, "Strategy:       %s\n", bold(s.Strategy))
	fmt.Fprintf(out, "Capacity:       %d min/day\n", s.AvailableMinutesPerDay)
	fmt.Fprintf(out, "Planned work:   %d min\n", s.TotalEstimatedMinutes)
	fmt.Fprintf(out, "Overloaded:     %s\n", overloadCell(s.Overloaded))
	fmt.Fprintf(out, "On time:        %s\n", rateCell(s.OnTimeRate))
	fmt.Fprintf(out, "Avg. lateness:  %.1f min\n", s.AverageTardinessMinutes)
}

func printOrder(out io.Writer, s *model.ScheduleResponse) {
	if len(s.OrderedTasks) == 0 {
		fmt.Fprintln(out, "No pending tasks.")
		return
	}
	fmt.Fprintf(out, "%-3s  %-30s  %-3s  %-5s  %-8s  %-16s  %-6s  %s\n", "#", "TITLE", "PRI", "MIN", "SCORE", "FINISH", "LATE", "REASON")
	for i, t := range s.OrderedTasks {
		late := fmt.Sprintf("%-6d", t.TardinessMinutes)
		if t.TardinessMinutes > 0 {
			late = red(late)
		}
		fmt.Fprintf(out, "%-3d  %-30s  %-3d  %-5d  %-8.3f  %-16s  %s  %s\n",
			i+1, truncate(t.Title, 30), t.Priority, t.EstimatedMinutes, t.Score,
			t.ProjectedFinish.Local().Format(timeLayout), late, t.Reason)
	}
}

// orderDiff renders a unified diff between two orders, one task per line.
// It returns "" when the orders match.
func orderDiff(a, b *model.ScheduleResponse) (string, error) {
	lines := func(s *model.ScheduleResponse) []string {
		out := make([]string, len(s.OrderedTasks))
		for i, t := range s.OrderedTasks {
			out[i] = fmt.Sprintf("%s  %s\n", t.ID, t.Title)
		}
		return out
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        lines(a),
		B:        lines(b),
		FromFile: strings.ToLower(a.Strategy.String()),
		ToFile:   strings.ToLower(b.Strategy.String()),
		Context:  len(a.OrderedTasks),
	})
	if err != nil {
		return "", fmt.Errorf("diff orders: %w", err)
	}
	return text, nil
}
