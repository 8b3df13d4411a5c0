package schedule

import (
	"math"
	"sort"
	"time"
)

const (
	minutesPerDay = 1440.0
	maxUrgency    = 10.0
)

// WeightedGreedy scores each task by priority, duration and deadline urgency
// and orders by score descending. Equal scores keep input order.
//
// This is a greedy heuristic. It favours high priority, short, and
// close-to-due tasks but does not minimise total tardiness.
func WeightedGreedy(tasks []Snapshot, now time.Time) Result {
	scores := make(map[string]float64, len(tasks))
	for _, t := range tasks {
		scores[t.ID] = GreedyScore(t, now)
	}

	ordered := make([]Snapshot, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i].ID] > scores[ordered[j].ID]
	})
	return Result{Ordered: ordered, Scores: scores}
}

// GreedyScore computes priority * (1 + urgency) / max(1, estimatedMinutes).
// Urgency is 10 for overdue tasks and min(10, 1440 / minutesToDeadline)
// otherwise, so it saturates for anything due within about a day.
func GreedyScore(t Snapshot, now time.Time) float64 {
	p := float64(t.Priority)
	d := math.Max(1, float64(t.EstimatedMinutes))
	return p * (1 + Urgency(t.Deadline, now)) / d
}

// Urgency is the deadline component of GreedyScore.
func Urgency(deadline, now time.Time) float64 {
	m := minutesBetween(now, deadline)
	if m <= 0 {
		return maxUrgency
	}
	return math.Min(maxUrgency, minutesPerDay/float64(m))
}
