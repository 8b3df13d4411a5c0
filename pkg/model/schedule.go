package model

import "time"

// Daily capacity bounds accepted by the schedule endpoints, in minutes.
const (
	MinDailyCapacityMinutes = 30
	MaxDailyCapacityMinutes = 1440
)

// ScheduleRequest selects a strategy and the minutes available per day.
type ScheduleRequest struct {
	Strategy               StrategyType `json:"strategy"`
	AvailableMinutesPerDay int          `json:"available_minutes_per_day"`
}

// CompareRequest carries the minutes available per day for a comparison.
type CompareRequest struct {
	AvailableMinutesPerDay int `json:"available_minutes_per_day"`
}

// ScheduledTask is one entry of an ordered schedule.
type ScheduledTask struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Deadline         time.Time  `json:"deadline"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	Priority         int        `json:"priority"`
	Status           TaskStatus `json:"status"`
	Score            float64    `json:"score"`
	Reason           string     `json:"reason"`
	ProjectedFinish  time.Time  `json:"projected_finish"`
	TardinessMinutes int64      `json:"tardiness_minutes"`
}

// ScheduleResponse is the ordering produced by one strategy together with
// the simulated outcome of executing it back to back.
type ScheduleResponse struct {
	Strategy                StrategyType    `json:"strategy"`
	AvailableMinutesPerDay  int             `json:"available_minutes_per_day"`
	TotalEstimatedMinutes   int             `json:"total_estimated_minutes"`
	Overloaded              bool            `json:"overloaded"`
	OnTimeRate              float64         `json:"on_time_rate"`
	AverageTardinessMinutes float64         `json:"average_tardiness_minutes"`
	OrderedTasks            []ScheduledTask `json:"ordered_tasks"`
}

// CompareResponse holds both strategies' schedules side by side.
type CompareResponse struct {
	EDF            *ScheduleResponse `json:"edf"`
	WeightedGreedy *ScheduleResponse `json:"weighted_greedy"`
}
