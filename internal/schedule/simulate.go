package schedule

import (
	"math"
	"time"
)

// Reasons attached to scheduled tasks. They explain a task's situation and
// play no part in ordering.
const (
	ReasonOverdue      = "Overdue deadline"
	ReasonDeadlineNear = "Deadline very close"
	ReasonHighPriority = "High priority"
	ReasonShortTask    = "Short task"
	ReasonHighScore    = "High weighted score"
	ReasonNormal       = "Normal"
)

// Outcome is the simulated execution of one task.
type Outcome struct {
	Task             Snapshot
	Score            float64
	Reason           string
	Finish           time.Time
	TardinessMinutes int64
}

// OnTime reports whether the task finishes by its deadline.
func (o Outcome) OnTime() bool {
	return o.TardinessMinutes == 0
}

// Simulation is the projected result of running an ordering back to back.
type Simulation struct {
	Outcomes                []Outcome
	TotalEstimatedMinutes   int
	Overloaded              bool
	OnTimeRate              float64
	AverageTardinessMinutes float64
}

// Simulate walks ordered once from start, executing tasks back to back with
// no idle time. Tardiness is whole minutes past the deadline (truncated), and
// a task is on time only when its tardiness is exactly 0.
//
// An empty ordering has OnTimeRate 1 and AverageTardinessMinutes 0: with no
// tasks, none are late.
func Simulate(ordered []Snapshot, scores map[string]float64, capacityMinutes int, start time.Time) Simulation {
	sim := Simulation{
		Outcomes:   make([]Outcome, 0, len(ordered)),
		OnTimeRate: 1,
	}

	current := start
	var elapsed int64
	onTime := 0
	var totalTardiness int64
	for _, t := range ordered {
		sim.TotalEstimatedMinutes += t.EstimatedMinutes
		elapsed += int64(t.EstimatedMinutes)
		current = addMinutes(current, int64(t.EstimatedMinutes))

		tardiness := tardinessMinutes(elapsed, t.Deadline.Sub(start))
		if tardiness == 0 {
			onTime++
		}
		totalTardiness += tardiness

		score := scores[t.ID]
		sim.Outcomes = append(sim.Outcomes, Outcome{
			Task:             t,
			Score:            score,
			Reason:           Reason(t, score, start),
			Finish:           current,
			TardinessMinutes: tardiness,
		})
	}

	sim.Overloaded = sim.TotalEstimatedMinutes > capacityMinutes
	if n := len(ordered); n > 0 {
		sim.OnTimeRate = float64(onTime) / float64(n)
		sim.AverageTardinessMinutes = float64(totalTardiness) / float64(n)
	}
	return sim
}

// tardinessMinutes is the whole minutes (truncated) by which a finish
// elapsed minutes after start overshoots a deadline at offset due from start,
// or 0 when on time. Elapsed time stays in minutes so long plans never
// overflow a time.Duration.
func tardinessMinutes(elapsed int64, due time.Duration) int64 {
	late := elapsed - int64(due/time.Minute)
	if due%time.Minute > 0 {
		late--
	}
	return max(0, late)
}

// addMinutes advances t by m minutes in steps that fit a time.Duration.
func addMinutes(t time.Time, m int64) time.Time {
	const step = int64(math.MaxInt64 / int64(time.Minute))
	for m > step {
		t = t.Add(time.Duration(step) * time.Minute)
		m -= step
	}
	return t.Add(time.Duration(m) * time.Minute)
}

// Reason explains a task's rank relative to now. The first matching rule wins.
func Reason(t Snapshot, score float64, now time.Time) string {
	m := minutesBetween(now, t.Deadline)
	switch {
	case m <= 0:
		return ReasonOverdue
	case m <= 60:
		return ReasonDeadlineNear
	case t.Priority >= 4:
		return ReasonHighPriority
	case t.EstimatedMinutes <= 30:
		return ReasonShortTask
	case score > 0:
		return ReasonHighScore
	default:
		return ReasonNormal
	}
}
