// Package schedule orders pending tasks under a chosen strategy and
// simulates executing that order back to back from a start instant.
//
// Everything here except Service is a pure function of its arguments: no
// clock reads, no I/O, no shared state. Service is the boundary that fetches
// tasks from a TaskSource and samples the current time.
package schedule

import (
	"time"

	"github.com/me/taskflow/pkg/model"
)

// Snapshot is a read-only copy of the task fields the scheduler needs.
// Snapshots are passed by value; the scheduler never touches stored tasks.
type Snapshot struct {
	ID               string
	Title            string
	Deadline         time.Time
	EstimatedMinutes int
	Priority         int
	Status           model.TaskStatus
}

// SnapshotOf copies the scheduling fields of t.
func SnapshotOf(t *model.Task) Snapshot {
	return Snapshot{
		ID:               t.ID,
		Title:            t.Title,
		Deadline:         t.Deadline,
		EstimatedMinutes: t.EstimatedMinutes,
		Priority:         t.Priority,
		Status:           t.Status,
	}
}

// PendingSnapshots returns snapshots of every task that is not DONE, in
// input order. Completed tasks never reach a strategy or the simulator.
func PendingSnapshots(tasks []*model.Task) []Snapshot {
	out := make([]Snapshot, 0, len(tasks))
	for _, t := range tasks {
		if t == nil || !t.IsPending() {
			continue
		}
		out = append(out, SnapshotOf(t))
	}
	return out
}

// minutesBetween returns whole minutes from a to b, truncated toward zero.
func minutesBetween(a, b time.Time) int64 {
	return int64(b.Sub(a) / time.Minute)
}
