package schedule

import (
	"sort"
	"time"
)

// EarliestDeadlineFirst orders by deadline ascending, then priority
// descending, then estimated minutes ascending. Full ties keep input order.
// Ranking is purely positional, so every score is 0.
func EarliestDeadlineFirst(tasks []Snapshot, _ time.Time) Result {
	ordered := make([]Snapshot, len(tasks))
	copy(ordered, tasks)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if !a.Deadline.Equal(b.Deadline) {
			return a.Deadline.Before(b.Deadline)
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.EstimatedMinutes < b.EstimatedMinutes
	})

	scores := make(map[string]float64, len(ordered))
	for _, t := range ordered {
		scores[t.ID] = 0
	}
	return Result{Ordered: ordered, Scores: scores}
}
