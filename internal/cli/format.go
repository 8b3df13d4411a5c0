package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/me/taskflow/pkg/model"
)

const timeLayout = "2006-01-02 15:04"

var (
	bold   = color.New(color.Bold).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

// statusCell pads then colors a status so table columns stay aligned.
func statusCell(s model.TaskStatus, width int) string {
	cell := fmt.Sprintf("%-*s", width, s)
	switch s {
	case model.TaskStatusDone:
		return green(cell)
	case model.TaskStatusInProgress:
		return cyan(cell)
	default:
		return cell
	}
}

// dueCell renders a deadline as local wall time plus a relative phrase.
func dueCell(deadline time.Time) string {
	return fmt.Sprintf("%s (%s)", deadline.Local().Format(timeLayout), humanize.Time(deadline))
}

// rateCell colors an on-time rate: green when every task lands, red when none do.
func rateCell(rate float64) string {
	cell := fmt.Sprintf("%.0f%%", rate*100)
	switch {
	case rate >= 1:
		return green(cell)
	case rate <= 0:
		return red(cell)
	default:
		return yellow(cell)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
