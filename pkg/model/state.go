package model

import "strings"

// TaskStatus represents the lifecycle status of a Task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// String returns the string representation of the task status.
func (s TaskStatus) String() string {
	return string(s)
}

// IsValid returns true if s is one of the known statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// IsPending returns true for any status other than DONE.
func (s TaskStatus) IsPending() bool {
	return s != TaskStatusDone
}

// ParseTaskStatus accepts case-insensitive names and the dashed form
// ("in-progress") used on the command line.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	st := TaskStatus(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	return st, st.IsValid()
}

// StrategyType identifies a scheduling strategy.
type StrategyType string

const (
	StrategyEDF            StrategyType = "EDF"
	StrategyWeightedGreedy StrategyType = "WEIGHTED_GREEDY"
)

// String returns the string representation of the strategy type.
func (s StrategyType) String() string {
	return string(s)
}

// ParseStrategyType normalizes user input ("edf", "weighted-greedy") to a
// StrategyType. The result is not checked against known strategies; the
// scheduler rejects unknown values.
func ParseStrategyType(s string) StrategyType {
	return StrategyType(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
}
